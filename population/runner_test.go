package population

import (
	"testing"

	"github.com/pthm-cable/fauna/config"
)

func savannaScenario() *config.Scenario {
	return &config.Scenario{
		Name: "savanna",
		Roster: []config.RosterEntry{
			{Name: "amara", Species: "lion", Diet: "carnivore", Vitality: 100},
			{Name: "bahati", Species: "lion", Diet: "carnivore", Vitality: 70},
			{Name: "gira", Species: "gazelle", Diet: "herbivore", Vitality: 60},
			{Name: "thorn", Species: "acacia", Diet: "plant", Vitality: 40},
			{Name: "pumba", Species: "warthog", Diet: "omnivore", Vitality: 55},
		},
		Script: []config.Step{
			{Meet: []string{"amara", "bahati"}},
			{Meet: []string{"gira", "thorn"}},
			{Meet: []string{"amara", "gira"}},
			{Series: &config.Series{Subject: "pumba", Counterparts: []string{"thorn", "bahati"}}},
		},
	}
}

func TestRunnerRun(t *testing.T) {
	sc := savannaScenario()
	roster, err := FromScenario(sc)
	if err != nil {
		t.Fatal(err)
	}

	records, err := NewRunner(roster).Run(sc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// One record per meet, one per series counterpart.
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}

	// Step 0: lions mate; parents unchanged, child joins the roster.
	if records[0].Rule != "mating" || records[0].Offspring != "amara-child-1" {
		t.Errorf("step 0 record = %+v", records[0])
	}
	if records[0].OffspringVitality != 85 {
		t.Errorf("child vitality = %d, want 85", records[0].OffspringVitality)
	}
	cub, err := roster.Get("amara-child-1")
	if err != nil {
		t.Fatalf("child not admitted: %v", err)
	}
	if cub.Vitality() != 85 {
		t.Errorf("admitted child vitality = %d, want 85", cub.Vitality())
	}

	// Step 1: gazelle grazes the acacia whole.
	if records[1].Rule != "graze" || records[1].LeftAfter != 100 || records[1].RightAfter != 0 {
		t.Errorf("step 1 record = %+v", records[1])
	}

	// Step 2: the gazelle is now as vital as the lion and escapes.
	if records[2].Rule != "predation" || records[2].LeftAfter != 100 || records[2].RightAfter != 100 {
		t.Errorf("step 2 record = %+v", records[2])
	}

	// Step 3, first counterpart: the acacia is already dead.
	if records[3].Kind != "series" || records[3].Rule != "dead_party" {
		t.Errorf("step 3 record = %+v", records[3])
	}

	// Step 3, second counterpart: warthog and lion fight, the lion wins.
	if records[4].Rule != "fight" || records[4].LeftAfter != 0 {
		t.Errorf("step 4 record = %+v", records[4])
	}

	// Series discards counterpart outcomes: bahati keeps its vitality even
	// though it won the fight inside the fold.
	bahati, err := roster.Get("bahati")
	if err != nil {
		t.Fatal(err)
	}
	if bahati.Vitality() != 70 {
		t.Errorf("bahati vitality = %d, want 70 (series must not write back counterparts)", bahati.Vitality())
	}

	pumba, err := roster.Get("pumba")
	if err != nil {
		t.Fatal(err)
	}
	if !pumba.Dead() {
		t.Errorf("pumba vitality = %d, want 0", pumba.Vitality())
	}

	// A whole series is one write-back for its subject, and counterparts
	// are never written back at all.
	for _, m := range roster.Members() {
		switch m.Name {
		case "pumba":
			// One meet (none) plus one series.
			if m.Encounters != 1 {
				t.Errorf("pumba write-backs = %d, want 1", m.Encounters)
			}
		case "bahati":
			// One meet; the series fold does not touch counterparts.
			if m.Encounters != 1 {
				t.Errorf("bahati write-backs = %d, want 1", m.Encounters)
			}
		}
	}
}

func TestRunnerUnknownName(t *testing.T) {
	sc := &config.Scenario{
		Roster: []config.RosterEntry{
			{Name: "gira", Species: "gazelle", Diet: "herbivore", Vitality: 60},
		},
		Script: []config.Step{{Meet: []string{"gira", "ghost"}}},
	}

	roster, err := FromScenario(sc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewRunner(roster).Run(sc); err == nil {
		t.Error("Run should fail on an unknown participant")
	}
}

func TestRunnerEmptyScript(t *testing.T) {
	sc := savannaScenario()
	sc.Script = nil

	roster, err := FromScenario(sc)
	if err != nil {
		t.Fatal(err)
	}
	records, err := NewRunner(roster).Run(sc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("empty script produced %d records", len(records))
	}
}
