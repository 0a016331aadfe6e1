// Package metrics derives summary counters from finished snapshot
// sequences: how many comparisons and swaps a run performed, how large its
// auxiliary structures grew, how many frames it recorded.
package metrics

import "github.com/san-kum/algoviz/internal/trace"

// Metric accumulates one summary value over a sequence, snapshot by
// snapshot.
type Metric interface {
	Name() string
	Observe(s trace.Snapshot)
	Value() float64
	Reset()
}

// Defaults is the metric set attached to every archived run.
func Defaults() []Metric {
	return []Metric{
		NewStepCount(),
		NewKindCount("comparisons", trace.KindCompare),
		NewKindCount("swaps", trace.KindSwap),
		NewHighWater(),
	}
}

// Summarize runs every metric over the sequence and collects the values.
func Summarize(seq trace.Sequence, ms []Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range seq {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
