package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// Subsets generates the power set by doubling: each value extends every
// subset built so far. The accumulator lives in the "subsets" group.
type Subsets struct{}

func NewSubsets() *Subsets {
	return &Subsets{}
}

func (s *Subsets) ID() string {
	return "subsets"
}

func (s *Subsets) Contract() trace.Contract {
	return trace.Contract{
		Description: "power set by extending every existing subset with each value",
		Input:       "values (distinct)",
		Primary:     "the input values (static)",
		Cursors:     []string{"i", "count"},
		Groups:      []string{"subsets"},
	}
}

func (s *Subsets) Validate(in trace.Input) error {
	if len(in.Values) > maxSubset {
		return invalid("too many values: %d exceeds %d", len(in.Values), maxSubset)
	}
	seen := make(map[int]bool, len(in.Values))
	for i, v := range in.Values {
		if seen[v] {
			return invalid("duplicate value %d at index %d", v, i)
		}
		seen[v] = true
	}
	return nil
}

func (s *Subsets) MaxSteps(in trace.Input) int {
	return 1<<len(in.Values) + len(in.Values) + 16
}

func (s *Subsets) Run(in trace.Input, rec *trace.Recorder) {
	vals := in.Clone().Values
	subsets := [][]int{{}}

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("power set of %s: start with the empty subset", joinInts(vals)),
		Primary: vals,
		Cursors: map[string]int{"i": -1, "count": 1},
		Groups:  map[string][][]int{"subsets": subsets},
	})

	for i, v := range vals {
		rec.Record(trace.Snapshot{
			Kind:    trace.KindMove,
			Message: fmt.Sprintf("consider value %d", v),
			Primary: vals,
			Cursors: map[string]int{"i": i, "count": len(subsets)},
			Groups:  map[string][][]int{"subsets": subsets},
		})
		count := len(subsets)
		for j := 0; j < count; j++ {
			ns := make([]int, len(subsets[j]), len(subsets[j])+1)
			copy(ns, subsets[j])
			ns = append(ns, v)
			subsets = append(subsets, ns)
			rec.Record(trace.Snapshot{
				Kind:    trace.KindEmit,
				Message: fmt.Sprintf("extend %s with %d: %s", joinInts(subsets[j]), v, joinInts(ns)),
				Primary: vals,
				Cursors: map[string]int{"i": i, "count": len(subsets)},
				Groups:  map[string][][]int{"subsets": subsets},
			})
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("generated %d subsets", len(subsets)),
		Primary: vals,
		Cursors: map[string]int{"i": len(vals) - 1, "count": len(subsets)},
		Groups:  map[string][][]int{"subsets": subsets},
	})
}
