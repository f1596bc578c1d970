// Package main runs a scripted encounter scenario and reports the outcome.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/pthm-cable/fauna/config"
	"github.com/pthm-cable/fauna/population"
	"github.com/pthm-cable/fauna/telemetry"
)

func main() {
	// CLI flags
	scenarioPath := flag.String("scenario", "", "Scenario YAML file (empty = built-in savanna scenario)")
	outputDir := flag.String("output", "", "Output directory for encounters.csv (empty = disabled)")
	quiet := flag.Bool("quiet", false, "Suppress per-encounter output")
	flag.Parse()

	sc, err := config.Load(*scenarioPath)
	if err != nil {
		log.Fatalf("loading scenario: %v", err)
	}

	roster, err := population.FromScenario(sc)
	if err != nil {
		log.Fatalf("building roster: %v", err)
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("opening output directory: %v", err)
	}
	defer om.Close()

	records, err := population.NewRunner(roster).Run(sc)
	if err != nil {
		log.Fatalf("running scenario %q: %v", sc.Name, err)
	}

	if err := om.WriteEncounters(records); err != nil {
		log.Fatalf("writing telemetry: %v", err)
	}

	if !*quiet {
		for _, rec := range records {
			line := fmt.Sprintf("step %2d  %-6s %-10s %s(%d->%d) vs %s(%d->%d)",
				rec.Step, rec.Kind, rec.Rule,
				rec.Left, rec.LeftBefore, rec.LeftAfter,
				rec.Right, rec.RightBefore, rec.RightAfter)
			if rec.Offspring != "" {
				line += fmt.Sprintf("  child %s(%d)", rec.Offspring, rec.OffspringVitality)
			}
			fmt.Println(line)
		}
	}

	summary := telemetry.Summarize(roster.Vitalities())
	slog.Info("run complete",
		"scenario", sc.Name,
		"encounters", len(records),
		"population", summary,
	)
}
