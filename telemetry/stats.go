package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregated vitality statistics for a roster.
type Summary struct {
	Count int
	Alive int
	Dead  int

	Mean   float64
	StdDev float64
	P10    float64
	Median float64
	P90    float64
	Min    uint64
	Max    uint64
}

// Summarize computes vitality statistics over a set of organisms.
// A zero vitality counts as dead.
func Summarize(vitals []uint64) Summary {
	s := Summary{Count: len(vitals)}
	if len(vitals) == 0 {
		return s
	}

	xs := make([]float64, 0, len(vitals))
	s.Min = vitals[0]
	for _, v := range vitals {
		if v == 0 {
			s.Dead++
		} else {
			s.Alive++
		}
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		xs = append(xs, float64(v))
	}
	sort.Float64s(xs)

	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		s.StdDev = 0
	}
	s.P10 = stat.Quantile(0.1, stat.Empirical, xs, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, xs, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, xs, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("count", s.Count),
		slog.Int("alive", s.Alive),
		slog.Int("dead", s.Dead),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("p10", s.P10),
		slog.Float64("median", s.Median),
		slog.Float64("p90", s.P90),
		slog.Uint64("min", s.Min),
		slog.Uint64("max", s.Max),
	)
}
