// Package population keeps the living roster for scripted encounter runs.
package population

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/fauna/config"
	"github.com/pthm-cable/fauna/organism"
)

// ErrUnknownName reports a lookup for an organism the roster never admitted.
var ErrUnknownName = errors.New("population: unknown organism name")

// Member is the per-entity component tracked for every roster organism.
type Member struct {
	Name       string
	Org        organism.Organism[string]
	Encounters int // state write-backs from resolved steps; a series counts once for its subject
	Offspring  int // children this organism parented
}

// Roster is an ECS-backed registry of named organisms. Iteration order is
// admission order, so runs over the same scenario are fully deterministic.
type Roster struct {
	world  *ecs.World
	mapper *ecs.Map1[Member]
	byName map[string]ecs.Entity
	order  []string
	births int
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	world := ecs.NewWorld()
	return &Roster{
		world:  world,
		mapper: ecs.NewMap1[Member](world),
		byName: make(map[string]ecs.Entity),
	}
}

// FromScenario builds a roster holding every organism a validated scenario
// declares.
func FromScenario(sc *config.Scenario) (*Roster, error) {
	r := NewRoster()
	for _, e := range sc.Roster {
		diet, err := organism.ParseDiet(e.Diet)
		if err != nil {
			return nil, fmt.Errorf("population: organism %q: %w", e.Name, err)
		}
		if err := r.Add(e.Name, organism.New(e.Species, diet, e.Vitality)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add admits a new organism under a unique name.
func (r *Roster) Add(name string, org organism.Organism[string]) error {
	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("population: duplicate organism name %q", name)
	}
	m := Member{Name: name, Org: org}
	r.byName[name] = r.mapper.NewEntity(&m)
	r.order = append(r.order, name)
	return nil
}

// Get returns the current state of the named organism.
func (r *Roster) Get(name string) (organism.Organism[string], error) {
	m, err := r.member(name)
	if err != nil {
		return organism.Organism[string]{}, err
	}
	return m.Org, nil
}

// Set replaces the state of an existing organism and bumps its encounter
// counter.
func (r *Roster) Set(name string, org organism.Organism[string]) error {
	m, err := r.member(name)
	if err != nil {
		return err
	}
	m.Org = org
	m.Encounters++
	return nil
}

// AdmitOffspring registers a child parented by the named organism, deriving
// a deterministic roster name from the parent's. Returns the child's name.
func (r *Roster) AdmitOffspring(parent string, child organism.Organism[string]) (string, error) {
	if _, err := r.member(parent); err != nil {
		return "", err
	}

	r.births++
	name := fmt.Sprintf("%s-child-%d", parent, r.births)
	if err := r.Add(name, child); err != nil {
		return "", err
	}

	// Adding the child can grow component storage, which invalidates any
	// previously fetched member pointer. Fetch the parent again before
	// touching its counter.
	m, err := r.member(parent)
	if err != nil {
		return "", err
	}
	m.Offspring++
	return name, nil
}

// Names returns all roster names in admission order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of admitted organisms, dead ones included.
func (r *Roster) Len() int { return len(r.order) }

// Members returns a snapshot of every member in admission order.
func (r *Roster) Members() []Member {
	out := make([]Member, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.mapper.Get(r.byName[name]))
	}
	return out
}

// Vitalities returns every organism's vitality in admission order.
func (r *Roster) Vitalities() []uint64 {
	out := make([]uint64, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.mapper.Get(r.byName[name]).Org.Vitality())
	}
	return out
}

func (r *Roster) member(name string) (*Member, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return r.mapper.Get(e), nil
}
