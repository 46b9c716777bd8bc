package main

import (
	"bytes"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"hop.computer/containers/config"
	"hop.computer/containers/dialogue"
)

func runDemo(t *testing.T, d demo) string {
	t.Helper()
	var buf bytes.Buffer
	d.run(dialogue.NewRendererTo(&buf, false), config.DefaultScenario())
	return buf.String()
}

func TestListDemo(t *testing.T) {
	out := runDemo(t, demos[0])
	for _, line := range []string{
		" - Contents: 1 <-> 2 <-> 3 <-> 4 <-> 5\n",
		" - Copy after writing -1 at 0: -1 <-> 2 <-> 3 <-> 4 <-> 5\n",
		" - Original is untouched: 1 <-> 2 <-> 3 <-> 4 <-> 5\n",
		" - Source length after move: 0\n",
		" - Swapped into the empty list: -1 <-> 2 <-> 3 <-> 4 <-> 5\n",
		" - Contents: 10 <-> 20\n",
		" - Element 1: 20\n",
		" !! At(10): index 10 out of range [0:2]\n",
		" - Contents: 1 <-> 2 <-> 4 <-> 5\n",
		" - Length: 4\n",
		" - Mapped: 3 <-> 6 <-> 12 <-> 15\n",
		" - Lengths: 3 <-> 6 <-> 10\n",
		" - Removing from the empty list: false\n",
	} {
		assert.Check(t, is.Contains(out, line))
	}
}

func TestVecDemo(t *testing.T) {
	out := runDemo(t, demos[1])
	for _, line := range []string{
		" - Vector: (0, 1, 2, 3)\n",
		" - Sum with itself: (0, 2, 4, 6)\n",
		" - Vector: (10, 20)\n",
		" - x: 10\n",
		" - y: 20\n",
		" - x: 30\n",
		" - Sum: (2, 3, 4)\n",
		" - x, y, z: 1, 2, 3\n",
		" - Get(5): 0\n",
		" !! At(5): index 5 out of range [0:3]\n",
	} {
		assert.Check(t, is.Contains(out, line))
	}
}

func multiplyByCases(t *testing.T) {
	assert.Equal(t, multiplyBy(2), 2)
	assert.Equal(t, multiplyBy(2, 3, 4), 24)
}

func TestMultiplyBy(t *testing.T) {
	t.Run("factors", multiplyByCases)
}
