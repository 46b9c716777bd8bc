// Package config contains structures for parsing the scenario that drives the
// containers demonstration.
package config

import (
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"hop.computer/containers/pkg/combinators"
	"hop.computer/containers/pkg/loader"
)

// ErrUnknownSetting is returned when a scenario file contains a key that does
// not map to any setting.
var ErrUnknownSetting = errors.New("unknown setting")

// ErrVectorShape is returned when a vector setting has the wrong number of
// elements.
var ErrVectorShape = errors.New("wrong number of vector elements")

// Scenario represents a parsed demonstration scenario.
type Scenario struct {
	Title  string         `toml:"title"`
	List   ListScenario   `toml:"list"`
	Vector VectorScenario `toml:"vector"`
}

// ListScenario holds the inputs of the list demonstration.
type ListScenario struct {
	Ints     []int    `toml:"ints"`
	Words    []string `toml:"words"`
	RemoveAt *int     `toml:"remove_at"`
	Factor   int      `toml:"factor"`
	Probe    int      `toml:"probe"`
}

// VectorScenario holds the inputs of the vector demonstration. A is a 2D
// point, B a 3D point.
type VectorScenario struct {
	A []int `toml:"a"`
	B []int `toml:"b"`
}

// DefaultTitle is used when a scenario does not name itself.
const DefaultTitle = "generic containers"

// DefaultScenario returns the scenario used when no file is given.
func DefaultScenario() *Scenario {
	removeAt := 2
	return &Scenario{
		Title: DefaultTitle,
		List: ListScenario{
			Ints:     []int{1, 2, 3, 4, 5},
			Words:    []string{"C++", "Python", "JavaScript"},
			RemoveAt: &removeAt,
			Factor:   3,
			Probe:    10,
		},
		Vector: VectorScenario{
			A: []int{10, 20},
			B: []int{1, 2, 3},
		},
	}
}

// withDefaults fills every unset field of s from DefaultScenario.
func (s *Scenario) withDefaults() *Scenario {
	d := DefaultScenario()
	s.Title = combinators.Or(s.Title, d.Title)
	s.List.Ints = combinators.SliceOr(s.List.Ints, d.List.Ints)
	s.List.Words = combinators.SliceOr(s.List.Words, d.List.Words)
	if s.List.RemoveAt == nil {
		s.List.RemoveAt = d.List.RemoveAt
	}
	s.List.Factor = combinators.Or(s.List.Factor, d.List.Factor)
	s.List.Probe = combinators.Or(s.List.Probe, d.List.Probe)
	s.Vector.A = combinators.SliceOr(s.Vector.A, d.Vector.A)
	s.Vector.B = combinators.SliceOr(s.Vector.B, d.Vector.B)
	return s
}

func (s *Scenario) validate() error {
	if len(s.Vector.A) != 2 {
		return pkgerrors.Wrapf(ErrVectorShape, "vector.a has %d elements, want 2", len(s.Vector.A))
	}
	if len(s.Vector.B) != 3 {
		return pkgerrors.Wrapf(ErrVectorShape, "vector.b has %d elements, want 3", len(s.Vector.B))
	}
	return nil
}

// ParseScenario decodes a TOML scenario, applying defaults to every setting
// the document leaves out.
func ParseScenario(b []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(string(b), &s)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return nil, pkgerrors.Wrapf(ErrUnknownSetting, "%s", strings.Join(keys, ", "))
	}
	s.withDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var scenarios = loader.Loader[*Scenario]{}

// LoadScenario reads and parses the scenario at path. If path is empty, the
// default scenario is returned. Parsed files are cached by path.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		return DefaultScenario(), nil
	}
	c, _, err := scenarios.LoadOrGet(fileSystem, path, ParseScenario)
	if err != nil {
		return nil, err
	}
	return c.Parsed, nil
}
