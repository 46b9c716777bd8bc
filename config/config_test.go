package config

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"
	"gotest.tools/assert"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func intPtr(i int) *int {
	return &i
}

func TestLoadScenarioFromFile(t *testing.T) {
	s, err := LoadScenario("testdata/demo.toml")
	assert.NilError(t, err)
	expected := &Scenario{
		Title: "demo scenario",
		List: ListScenario{
			Ints:     []int{1, 2, 3, 4, 5},
			Words:    []string{"Go", "Rust", "Haskell"},
			RemoveAt: intPtr(0),
			Factor:   2,
			Probe:    7,
		},
		Vector: VectorScenario{
			A: []int{3, 4},
			B: []int{5, 6, 7},
		},
	}
	assert.DeepEqual(t, s, expected)
}

func TestLoadScenarioDefaults(t *testing.T) {
	s, err := LoadScenario("")
	assert.NilError(t, err)
	assert.DeepEqual(t, s, DefaultScenario())

	fileSystem = fstest.MapFS{
		"partial.toml": &fstest.MapFile{
			Data: []byte("[list]\nints = [9, 8]\n"),
		},
	}
	defer func() { fileSystem = osFS{} }()

	s, err = LoadScenario("partial.toml")
	assert.NilError(t, err)
	expected := DefaultScenario()
	expected.List.Ints = []int{9, 8}
	assert.DeepEqual(t, s, expected)
}

func TestParseScenarioErrors(t *testing.T) {
	_, err := ParseScenario([]byte("[list]\nbogus = 1\n"))
	assert.Check(t, errors.Is(err, ErrUnknownSetting))
	assert.ErrorContains(t, err, "list.bogus")

	_, err = ParseScenario([]byte("[vector]\na = [1, 2, 3]\n"))
	assert.Check(t, errors.Is(err, ErrVectorShape))
	assert.ErrorContains(t, err, "vector.a")

	_, err = ParseScenario([]byte("[list\n"))
	assert.Check(t, err != nil)
}

func TestLoadScenarioMissing(t *testing.T) {
	fileSystem = fstest.MapFS{}
	defer func() { fileSystem = osFS{} }()

	_, err := LoadScenario("missing.toml")
	assert.Check(t, errors.Is(err, fs.ErrNotExist))
}

func TestDefaultScenarioIsFresh(t *testing.T) {
	a := DefaultScenario()
	a.List.Ints[0] = 100
	b := DefaultScenario()
	assert.Equal(t, b.List.Ints[0], 1)
	assert.DeepEqual(t, a.Vector, b.Vector, cmpopts.EquateEmpty())
}
