package readers

import (
	"math"
	"testing"

	"golang.org/x/exp/slices"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestDeterministicCoinFlipper_Repeatability(t *testing.T) {
	seed := uint64(42)
	bits := 3
	flipper1 := NewDeterministicCoinFlipper(seed, bits)
	flipper2 := NewDeterministicCoinFlipper(seed, bits)

	const n = 100
	for i := 0; i < n; i++ {
		if flipper1.Flip() != flipper2.Flip() {
			t.Fatalf("flip mismatch at index %d", i)
		}
	}
}

func TestDeterministicCoinFlipper_BiasCounts(t *testing.T) {
	seed := uint64(12345)
	const totalFlips = 256

	type biasCase struct {
		bits          int
		expectedHeads int
	}
	testCases := []biasCase{
		{1, 128},
		{2, 64},
		{3, 32},
		{4, 16},
	}

	for _, tc := range testCases {
		flipper := NewDeterministicCoinFlipper(seed, tc.bits)
		count := 0
		for i := 0; i < totalFlips; i++ {
			if flipper.Flip() {
				count++
			}
		}
		difference := math.Abs(float64(count - tc.expectedHeads))
		epsilon := max(float64(tc.expectedHeads)*0.25, 8)
		if difference > epsilon {
			t.Errorf("with %d bits, expected %d heads, got %d (difference %f, tolerance %f)", tc.bits, tc.expectedHeads, count, difference, epsilon)
		}
	}
}

func TestSource(t *testing.T) {
	a := NewSource(7).Ints(64, 10)
	b := NewSource(7).Ints(64, 10)
	assert.DeepEqual(t, a, b)
	for _, v := range a {
		assert.Check(t, v >= 0 && v < 10, "value %d out of bounds", v)
	}

	c := NewSource(8).Ints(64, 10)
	assert.Check(t, !slices.Equal(a, c))
}

func TestSourceIntnPanics(t *testing.T) {
	assert.Assert(t, is.Panics(func() { NewSource(1).Intn(0) }))
}
