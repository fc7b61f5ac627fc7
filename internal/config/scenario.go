// Package config loads dlsolve scenario files: a domain, an atom set, and a
// push/pop/query script, in the struct-of-yaml-tags + DefaultConfig style
// codenerd uses for its own config layer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/autotaker/csisat/difflog"
)

// AtomSpec is one atom as written in a scenario file: "X - Y <rel> C", with
// Y omitted for a unary bound.
type AtomSpec struct {
	X   string  `yaml:"x"`
	Y   string  `yaml:"y,omitempty"`
	Rel string  `yaml:"rel"` // one of "<=", "<", "="
	C   float64 `yaml:"c"`
}

// Step is one scripted action against the engine. Exactly one field should
// be set; Push/Pop dominate when both happen to be present.
type Step struct {
	Push      string `yaml:"push,omitempty"` // atom index, optionally "~"-prefixed for negation
	Pop       bool   `yaml:"pop,omitempty"`
	Core      bool   `yaml:"core,omitempty"`
	Propagate bool   `yaml:"propagate,omitempty"`
}

// Scenario is the full contents of a scenario YAML file (spec §"Supplemental
// features": the replay driver's input format).
type Scenario struct {
	Domain string     `yaml:"domain"` // "real" or "integer"
	Atoms  []AtomSpec `yaml:"atoms"`
	Shared []string   `yaml:"shared,omitempty"`
	Script []Step     `yaml:"script"`
}

// DefaultScenario returns an empty, Real-domain scenario with no atoms and
// no script, the zero-work baseline a caller can extend.
func DefaultScenario() Scenario {
	return Scenario{Domain: "real"}
}

// Load reads and parses a scenario file from path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: reading scenario %q: %w", path, err)
	}
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("config: parsing scenario %q: %w", path, err)
	}
	return sc, nil
}

// ResolvedDomain resolves the scenario's domain string to a difflog.Domain, Real
// by default for an empty or unrecognized value.
func (s Scenario) ResolvedDomain() difflog.Domain {
	if s.Domain == "integer" {
		return difflog.Integer
	}
	return difflog.Real
}

// ToAtoms converts every AtomSpec into a difflog.Atom. Returns an error for
// an unrecognized Rel string.
func (s Scenario) ToAtoms() ([]difflog.Atom, error) {
	atoms := make([]difflog.Atom, len(s.Atoms))
	for i, spec := range s.Atoms {
		rel, err := parseRelation(spec.Rel)
		if err != nil {
			return nil, fmt.Errorf("config: atom %d: %w", i, err)
		}
		atoms[i] = difflog.Atom{X: spec.X, Y: spec.Y, Rel: rel, C: spec.C}
	}
	return atoms, nil
}

func parseRelation(s string) (difflog.Relation, error) {
	switch s {
	case "<=":
		return difflog.LessEq, nil
	case "<":
		return difflog.LessStrict, nil
	case "=":
		return difflog.Equal, nil
	default:
		return 0, fmt.Errorf("unrecognized relation %q (want one of \"<=\", \"<\", \"=\")", s)
	}
}
