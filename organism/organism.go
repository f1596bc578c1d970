// Package organism models individual ecosystem members as immutable values
// and resolves what happens when two of them meet.
package organism

import "fmt"

// Diet encodes feeding capability as two independent flags.
// The zero value is Plant: an organism that eats neither meat nor plants.
type Diet uint8

const (
	eatsMeat Diet = 1 << iota
	eatsPlants
)

// The four feeding variants. Plant-ness is always derived from the flags,
// never tagged separately.
const (
	Plant     Diet = 0
	Carnivore Diet = eatsMeat
	Herbivore Diet = eatsPlants
	Omnivore  Diet = eatsMeat | eatsPlants
)

// EatsMeat reports whether the diet includes animals.
func (d Diet) EatsMeat() bool { return d&eatsMeat != 0 }

// EatsPlants reports whether the diet includes plants.
func (d Diet) EatsPlants() bool { return d&eatsPlants != 0 }

func (d Diet) String() string {
	switch d {
	case Plant:
		return "plant"
	case Herbivore:
		return "herbivore"
	case Carnivore:
		return "carnivore"
	case Omnivore:
		return "omnivore"
	}
	return fmt.Sprintf("Diet(%d)", uint8(d))
}

// ParseDiet converts a scenario-file diet name into a Diet.
func ParseDiet(s string) (Diet, error) {
	switch s {
	case "plant":
		return Plant, nil
	case "herbivore":
		return Herbivore, nil
	case "carnivore":
		return Carnivore, nil
	case "omnivore":
		return Omnivore, nil
	}
	return Plant, fmt.Errorf("organism: unknown diet %q", s)
}

// Organism is an immutable (species identity, diet, vitality) value.
// Vitality zero means dead. The species type parameter is constrained to
// comparable, so species identity always supports equality; because both
// arguments of Encounter share the parameter, meetings across different
// species-identity types do not compile.
//
// Organisms with equal species identity but different diets belong to
// different species.
type Organism[S comparable] struct {
	species  S
	diet     Diet
	vitality uint64
}

// New constructs an organism with the given species identity, diet, and
// starting vitality.
func New[S comparable](species S, diet Diet, vitality uint64) Organism[S] {
	return Organism[S]{species: species, diet: diet, vitality: vitality}
}

// NewPlant constructs an immobile plant.
func NewPlant[S comparable](species S, vitality uint64) Organism[S] {
	return New(species, Plant, vitality)
}

// NewHerbivore constructs a plant-eater.
func NewHerbivore[S comparable](species S, vitality uint64) Organism[S] {
	return New(species, Herbivore, vitality)
}

// NewCarnivore constructs a meat-eater.
func NewCarnivore[S comparable](species S, vitality uint64) Organism[S] {
	return New(species, Carnivore, vitality)
}

// NewOmnivore constructs an organism that eats both meat and plants.
func NewOmnivore[S comparable](species S, vitality uint64) Organism[S] {
	return New(species, Omnivore, vitality)
}

// Vitality returns the current vitality.
func (o Organism[S]) Vitality() uint64 { return o.vitality }

// Dead reports whether vitality has reached zero.
func (o Organism[S]) Dead() bool { return o.vitality == 0 }

// Species returns the species identity.
func (o Organism[S]) Species() S { return o.species }

// Diet returns the feeding variant.
func (o Organism[S]) Diet() Diet { return o.diet }

// IsPlant reports whether the organism eats neither meat nor plants.
func (o Organism[S]) IsPlant() bool { return !o.diet.EatsMeat() && !o.diet.EatsPlants() }

// IsHerbivore reports whether the organism eats only plants.
func (o Organism[S]) IsHerbivore() bool { return !o.diet.EatsMeat() && o.diet.EatsPlants() }

// IsCarnivore reports whether the organism eats only meat.
func (o Organism[S]) IsCarnivore() bool { return o.diet.EatsMeat() && !o.diet.EatsPlants() }

// IsOmnivore reports whether the organism eats both meat and plants.
func (o Organism[S]) IsOmnivore() bool { return o.diet.EatsMeat() && o.diet.EatsPlants() }

// CanEat reports whether o is able to consume other, judged purely by
// capability against the other's plant-ness: meat-eaters can eat any
// non-plant, plant-eaters can eat plants. Whether consumption actually
// happens is decided by the encounter rules.
func (o Organism[S]) CanEat(other Organism[S]) bool {
	if o.diet.EatsMeat() && !other.IsPlant() {
		return true
	}
	if o.diet.EatsPlants() && other.IsPlant() {
		return true
	}
	return false
}

// SameSpecies reports whether both organisms have equal species identity
// and identical diets.
func (o Organism[S]) SameSpecies(other Organism[S]) bool {
	return o.species == other.species && o.diet == other.diet
}

// WithVitality returns a copy of o with vitality set to v.
func (o Organism[S]) WithVitality(v uint64) Organism[S] {
	o.vitality = v
	return o
}

// AddVitality returns a copy of o with delta added to its vitality.
// Engine-internal deltas are halves or wholes of existing vitalities, so no
// overflow guard is applied here.
func (o Organism[S]) AddVitality(delta uint64) Organism[S] {
	return o.WithVitality(o.vitality + delta)
}

// Kill returns a dead copy of o.
func (o Organism[S]) Kill() Organism[S] { return o.WithVitality(0) }
