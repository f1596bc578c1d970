package organism

// Rule identifies which entry of the ordered rule table decided an
// encounter. Classification is strictly ordered: the first matching rule
// wins and later rules are never consulted.
type Rule uint8

const (
	// RuleDeadParty: at least one side is dead; nothing happens.
	RuleDeadParty Rule = iota
	// RuleMating: same species; the parents produce a child.
	RuleMating
	// RuleStalemate: neither side can eat the other; nothing happens.
	RuleStalemate
	// RuleFight: two animals that can eat each other fight to the death.
	RuleFight
	// RuleGraze: one side is a plant the other can eat.
	RuleGraze
	// RulePredation: exactly one animal can eat the other.
	RulePredation
)

func (r Rule) String() string {
	switch r {
	case RuleDeadParty:
		return "dead_party"
	case RuleMating:
		return "mating"
	case RuleStalemate:
		return "stalemate"
	case RuleFight:
		return "fight"
	case RuleGraze:
		return "graze"
	case RulePredation:
		return "predation"
	}
	return "unknown"
}

// Classify returns the rule that decides a meeting between a and b without
// resolving it. Two plants can never meet; Classify panics if asked about
// such a pair.
func Classify[S comparable](a, b Organism[S]) Rule {
	if a.IsPlant() && b.IsPlant() {
		panic("organism: plants are immobile and cannot meet")
	}
	switch {
	case a.Dead() || b.Dead():
		return RuleDeadParty
	case a.SameSpecies(b):
		return RuleMating
	case !a.CanEat(b) && !b.CanEat(a):
		return RuleStalemate
	case !a.IsPlant() && !b.IsPlant() && a.CanEat(b) && b.CanEat(a):
		return RuleFight
	case b.IsPlant() && a.CanEat(b), a.IsPlant() && b.CanEat(a):
		return RuleGraze
	case a.CanEat(b) || b.CanEat(a):
		return RulePredation
	}
	panic("organism: encounter rules exhausted, capability model violated")
}

// Encounter resolves a single meeting between a and b. It returns the
// post-encounter states in argument order, plus the child born from
// same-species mating, nil otherwise. Inputs are never modified; every
// comparison and addition uses the pre-encounter vitalities of both sides.
//
// Outcomes by rule:
//   - dead party, stalemate: both unchanged.
//   - mating: parents unchanged, child of the same species with the
//     rounded-down mean of the parents' vitalities.
//   - fight: the higher vitality wins and gains half the loser's vitality,
//     rounded down; the loser dies. An exact tie kills both and neither
//     gains anything.
//   - graze: the plant dies and the eater gains its whole vitality.
//   - predation: prey at least as vital as the hunter escapes untouched;
//     otherwise the prey dies and the hunter gains half its vitality,
//     rounded down.
//
// Encounter panics when both sides are plants.
func Encounter[S comparable](a, b Organism[S]) (Organism[S], Organism[S], *Organism[S]) {
	switch Classify(a, b) {
	case RuleDeadParty, RuleStalemate:
		return a, b, nil

	case RuleMating:
		child := New(a.species, a.diet, (a.vitality+b.vitality)/2)
		return a, b, &child

	case RuleFight:
		aDies := b.vitality >= a.vitality
		bDies := a.vitality >= b.vitality
		aOut, bOut := a.Kill(), b.Kill()
		if !aDies {
			aOut = a.AddVitality(b.vitality / 2)
		}
		if !bDies {
			bOut = b.AddVitality(a.vitality / 2)
		}
		return aOut, bOut, nil

	case RuleGraze:
		if b.IsPlant() {
			return a.AddVitality(b.vitality), b.Kill(), nil
		}
		return a.Kill(), b.AddVitality(a.vitality), nil

	case RulePredation:
		if a.CanEat(b) {
			if b.vitality >= a.vitality {
				return a, b, nil
			}
			return a.AddVitality(b.vitality / 2), b.Kill(), nil
		}
		if a.vitality >= b.vitality {
			return a, b, nil
		}
		return a.Kill(), b.AddVitality(a.vitality / 2), nil
	}

	panic("organism: encounter rules exhausted, capability model violated")
}

// EncounterSeries folds first through meetings with each counterpart from
// left to right, keeping only first's evolving state. Counterpart outcomes
// and any children are discarded. With no counterparts, first is returned
// unchanged.
func EncounterSeries[S comparable](first Organism[S], rest ...Organism[S]) Organism[S] {
	for _, other := range rest {
		first, _, _ = Encounter(first, other)
	}
	return first
}
