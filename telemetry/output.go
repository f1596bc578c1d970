package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir           string
	encounterFile *os.File

	encounterHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled); all write
// methods are no-ops on a nil manager.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	path := filepath.Join(dir, "encounters.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating encounters.csv: %w", err)
	}
	om.encounterFile = f

	return om, nil
}

// WriteEncounter appends one record to encounters.csv.
func (om *OutputManager) WriteEncounter(rec EncounterRecord) error {
	if om == nil {
		return nil
	}

	records := []EncounterRecord{rec}

	if !om.encounterHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.encounterFile); err != nil {
			return fmt.Errorf("writing encounter record: %w", err)
		}
		om.encounterHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.encounterFile); err != nil {
			return fmt.Errorf("writing encounter record: %w", err)
		}
	}

	return nil
}

// WriteEncounters appends a batch of records in order.
func (om *OutputManager) WriteEncounters(recs []EncounterRecord) error {
	if om == nil {
		return nil
	}
	for _, rec := range recs {
		if err := om.WriteEncounter(rec); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	if om.encounterFile != nil {
		if err := om.encounterFile.Close(); err != nil {
			return fmt.Errorf("closing encounters.csv: %w", err)
		}
		om.encounterFile = nil
	}
	return nil
}
