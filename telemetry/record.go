// Package telemetry records scripted-run outcomes and summary statistics.
package telemetry

// EncounterRecord is one CSV row describing a resolved scripted encounter.
// Vitalities are captured before and after resolution so escape and no-op
// outcomes stay visible in the log.
type EncounterRecord struct {
	Step        int    `csv:"step"`
	Kind        string `csv:"kind"` // "meet" or "series"
	Rule        string `csv:"rule"`
	Left        string `csv:"left"`
	Right       string `csv:"right"`
	LeftBefore  uint64 `csv:"left_before"`
	RightBefore uint64 `csv:"right_before"`
	LeftAfter   uint64 `csv:"left_after"`
	RightAfter  uint64 `csv:"right_after"`

	// Offspring is the roster name given to the child, empty when the
	// step produced none.
	Offspring         string `csv:"offspring"`
	OffspringVitality uint64 `csv:"offspring_vitality"`
}
