package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// CyclicSort places each value of a 0..n-1 permutation at the index equal to
// the value itself.
type CyclicSort struct{}

func NewCyclicSort() *CyclicSort {
	return &CyclicSort{}
}

func (c *CyclicSort) ID() string {
	return "cyclic-sort"
}

func (c *CyclicSort) Contract() trace.Contract {
	return trace.Contract{
		Description: "place each value at the index it names",
		Input:       "values (permutation of 0..n-1)",
		Primary:     "the array being sorted",
		Cursors:     []string{"i"},
	}
}

func (c *CyclicSort) Validate(in trace.Input) error {
	if err := checkValues(in, 0); err != nil {
		return err
	}
	return checkPermutation(in.Values, len(in.Values)-1)
}

func (c *CyclicSort) MaxSteps(in trace.Input) int {
	return 2*len(in.Values) + 8
}

func (c *CyclicSort) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	n := len(nums)

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("cyclic sort of %d values: every value is its own home index", n),
		Primary: nums,
		Cursors: map[string]int{"i": 0},
	})

	i := 0
	for i < n {
		v := nums[i]
		if v == i {
			rec.Record(trace.Snapshot{
				Kind:    trace.KindMove,
				Message: fmt.Sprintf("index %d already holds %d, advance", i, v),
				Primary: nums,
				Cursors: map[string]int{"i": i + 1},
			})
			i++
			continue
		}
		nums[i], nums[v] = nums[v], nums[i]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindSwap,
			Message: fmt.Sprintf("swap %d to its home at index %d", v, v),
			Primary: nums,
			Cursors: map[string]int{"i": i, "home": v},
		})
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: "sorted: every index holds its own value",
		Primary: nums,
		Cursors: map[string]int{"i": n},
	})
}

// checkPermutation verifies values are distinct and within [0, max]. For
// cyclic sort max is n-1 (a full permutation); for missing number it is n
// (one value of 0..n absent).
func checkPermutation(values []int, max int) error {
	seen := make(map[int]bool, len(values))
	for i, v := range values {
		if v < 0 || v > max {
			return invalid("value %d at index %d outside [0,%d]", v, i, max)
		}
		if seen[v] {
			return invalid("duplicate value %d at index %d", v, i)
		}
		seen[v] = true
	}
	return nil
}
