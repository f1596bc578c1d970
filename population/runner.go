package population

import (
	"fmt"

	"github.com/pthm-cable/fauna/config"
	"github.com/pthm-cable/fauna/organism"
	"github.com/pthm-cable/fauna/telemetry"
)

// Runner executes a scenario script against a roster, one step at a time,
// and collects a telemetry record per resolved encounter. Series steps emit
// one record per counterpart.
type Runner struct {
	roster  *Roster
	records []telemetry.EncounterRecord
}

// NewRunner creates a runner over an existing roster.
func NewRunner(r *Roster) *Runner {
	return &Runner{roster: r}
}

// Roster returns the roster the runner mutates.
func (rn *Runner) Roster() *Roster { return rn.roster }

// Run executes every script step in order and returns the telemetry
// records. The scenario must already be validated; a step referencing an
// unknown name fails the run.
func (rn *Runner) Run(sc *config.Scenario) ([]telemetry.EncounterRecord, error) {
	for i, step := range sc.Script {
		switch {
		case len(step.Meet) == 2:
			if err := rn.meet(i, step.Meet[0], step.Meet[1]); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		case step.Series != nil:
			if err := rn.series(i, step.Series); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("step %d: neither meet nor series set", i)
		}
	}
	return rn.records, nil
}

// meet resolves one pairwise encounter and writes both outcomes back.
func (rn *Runner) meet(step int, leftName, rightName string) error {
	left, err := rn.roster.Get(leftName)
	if err != nil {
		return err
	}
	right, err := rn.roster.Get(rightName)
	if err != nil {
		return err
	}

	rec := telemetry.EncounterRecord{
		Step:        step,
		Kind:        "meet",
		Rule:        organism.Classify(left, right).String(),
		Left:        leftName,
		Right:       rightName,
		LeftBefore:  left.Vitality(),
		RightBefore: right.Vitality(),
	}

	leftOut, rightOut, child := organism.Encounter(left, right)
	if err := rn.roster.Set(leftName, leftOut); err != nil {
		return err
	}
	if err := rn.roster.Set(rightName, rightOut); err != nil {
		return err
	}
	rec.LeftAfter = leftOut.Vitality()
	rec.RightAfter = rightOut.Vitality()

	if child != nil {
		name, err := rn.roster.AdmitOffspring(leftName, *child)
		if err != nil {
			return err
		}
		rec.Offspring = name
		rec.OffspringVitality = child.Vitality()
	}

	rn.records = append(rn.records, rec)
	return nil
}

// series folds the subject through its counterparts. Only the subject's
// state is written back; counterpart states and any children are discarded,
// matching the series semantics of the engine.
func (rn *Runner) series(step int, s *config.Series) error {
	subject, err := rn.roster.Get(s.Subject)
	if err != nil {
		return err
	}

	for _, counterName := range s.Counterparts {
		counter, err := rn.roster.Get(counterName)
		if err != nil {
			return err
		}

		rec := telemetry.EncounterRecord{
			Step:        step,
			Kind:        "series",
			Rule:        organism.Classify(subject, counter).String(),
			Left:        s.Subject,
			Right:       counterName,
			LeftBefore:  subject.Vitality(),
			RightBefore: counter.Vitality(),
		}

		subject = organism.EncounterSeries(subject, counter)
		rec.LeftAfter = subject.Vitality()
		rec.RightAfter = counter.Vitality()
		rn.records = append(rn.records, rec)
	}

	return rn.roster.Set(s.Subject, subject)
}
