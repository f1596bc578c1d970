// Package config loads and validates encounter scenarios from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/fauna/organism"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Scenario describes a named roster of organisms and a script of encounters
// to run against it. Execution is fully deterministic: the script is the
// only source of events.
type Scenario struct {
	Name   string        `yaml:"name"`
	Roster []RosterEntry `yaml:"roster"`
	Script []Step        `yaml:"script"`
}

// RosterEntry declares one organism.
type RosterEntry struct {
	Name     string `yaml:"name"`
	Species  string `yaml:"species"`
	Diet     string `yaml:"diet"`
	Vitality uint64 `yaml:"vitality"`
}

// Step is one scripted event: either a single pairwise meeting or a series.
// Exactly one of Meet and Series must be set.
type Step struct {
	Meet   []string `yaml:"meet,omitempty"` // exactly two roster names
	Series *Series  `yaml:"series,omitempty"`
}

// Series folds Subject through meetings with each counterpart in order.
type Series struct {
	Subject      string   `yaml:"subject"`
	Counterparts []string `yaml:"counterparts"`
}

// Load reads a scenario from path, or the embedded default scenario when
// path is empty, and validates it.
func Load(path string) (*Scenario, error) {
	data := defaultsYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading scenario file: %w", err)
		}
		data = b
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks roster and script consistency: diets parse, names are
// unique, every step references known organisms, meetings name exactly two
// distinct participants, and no step pairs two plants. Rejecting plant
// pairs here keeps bad scenario files from ever reaching the engine, which
// treats a plant-vs-plant meeting as a programming error.
func (sc *Scenario) Validate() error {
	if len(sc.Roster) == 0 {
		return fmt.Errorf("scenario %q: empty roster", sc.Name)
	}

	diets := make(map[string]organism.Diet, len(sc.Roster))
	for _, e := range sc.Roster {
		if e.Name == "" {
			return fmt.Errorf("scenario %q: roster entry without a name", sc.Name)
		}
		if _, dup := diets[e.Name]; dup {
			return fmt.Errorf("scenario %q: duplicate organism name %q", sc.Name, e.Name)
		}
		d, err := organism.ParseDiet(e.Diet)
		if err != nil {
			return fmt.Errorf("scenario %q: organism %q: %w", sc.Name, e.Name, err)
		}
		diets[e.Name] = d
	}

	for i, step := range sc.Script {
		switch {
		case len(step.Meet) > 0 && step.Series != nil:
			return fmt.Errorf("step %d: both meet and series set", i)
		case len(step.Meet) > 0:
			if err := validatePair(diets, step.Meet); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		case step.Series != nil:
			if err := validateSeries(diets, step.Series); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		default:
			return fmt.Errorf("step %d: neither meet nor series set", i)
		}
	}
	return nil
}

func validatePair(diets map[string]organism.Diet, pair []string) error {
	if len(pair) != 2 {
		return fmt.Errorf("meet needs exactly two names, got %d", len(pair))
	}
	if pair[0] == pair[1] {
		return fmt.Errorf("organism %q cannot meet itself", pair[0])
	}
	for _, name := range pair {
		if _, ok := diets[name]; !ok {
			return fmt.Errorf("unknown organism %q", name)
		}
	}
	if diets[pair[0]] == organism.Plant && diets[pair[1]] == organism.Plant {
		return fmt.Errorf("plants %q and %q cannot meet", pair[0], pair[1])
	}
	return nil
}

func validateSeries(diets map[string]organism.Diet, s *Series) error {
	if _, ok := diets[s.Subject]; !ok {
		return fmt.Errorf("unknown series subject %q", s.Subject)
	}
	if len(s.Counterparts) == 0 {
		return fmt.Errorf("series for %q has no counterparts", s.Subject)
	}
	for _, name := range s.Counterparts {
		if name == s.Subject {
			return fmt.Errorf("organism %q cannot meet itself", name)
		}
		if _, ok := diets[name]; !ok {
			return fmt.Errorf("unknown organism %q", name)
		}
		if diets[s.Subject] == organism.Plant && diets[name] == organism.Plant {
			return fmt.Errorf("plants %q and %q cannot meet", s.Subject, name)
		}
	}
	return nil
}

// WriteYAML writes the scenario to a YAML file.
func (sc *Scenario) WriteYAML(path string) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	return nil
}
