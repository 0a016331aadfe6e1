package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// MissingNumber finds the single absent value of 0..n in an array of n
// distinct values, by cyclic-sorting everything that has a home and then
// scanning for the first index that does not hold itself.
type MissingNumber struct{}

func NewMissingNumber() *MissingNumber {
	return &MissingNumber{}
}

func (m *MissingNumber) ID() string {
	return "missing-number"
}

func (m *MissingNumber) Contract() trace.Contract {
	return trace.Contract{
		Description: "find the absent value of 0..n via cyclic sort",
		Input:       "values (n distinct values from 0..n)",
		Primary:     "the array being placed",
		Cursors:     []string{"i", "missing"},
	}
}

func (m *MissingNumber) Validate(in trace.Input) error {
	if err := checkValues(in, 1); err != nil {
		return err
	}
	return checkPermutation(in.Values, len(in.Values))
}

func (m *MissingNumber) MaxSteps(in trace.Input) int {
	return 3*len(in.Values) + 8
}

func (m *MissingNumber) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	n := len(nums)

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("%d distinct values from 0..%d, one is missing", n, n),
		Primary: nums,
		Cursors: map[string]int{"i": 0},
	})

	i := 0
	for i < n {
		v := nums[i]
		switch {
		case v == i:
			rec.Record(trace.Snapshot{
				Kind:    trace.KindMove,
				Message: fmt.Sprintf("index %d already holds %d, advance", i, v),
				Primary: nums,
				Cursors: map[string]int{"i": i + 1},
			})
			i++
		case v == n:
			rec.Record(trace.Snapshot{
				Kind:    trace.KindSkip,
				Message: fmt.Sprintf("value %d has no home in the array, skip", v),
				Primary: nums,
				Cursors: map[string]int{"i": i + 1},
			})
			i++
		default:
			nums[i], nums[v] = nums[v], nums[i]
			rec.Record(trace.Snapshot{
				Kind:    trace.KindSwap,
				Message: fmt.Sprintf("swap %d to its home at index %d", v, v),
				Primary: nums,
				Cursors: map[string]int{"i": i, "home": v},
			})
		}
	}

	missing := n
	for idx := 0; idx < n; idx++ {
		if nums[idx] != idx {
			missing = idx
			rec.Record(trace.Snapshot{
				Kind:    trace.KindCompare,
				Message: fmt.Sprintf("index %d holds %d, not %d", idx, nums[idx], idx),
				Primary: nums,
				Cursors: map[string]int{"i": idx},
			})
			break
		}
		rec.Record(trace.Snapshot{
			Kind:    trace.KindCompare,
			Message: fmt.Sprintf("index %d holds itself", idx),
			Primary: nums,
			Cursors: map[string]int{"i": idx},
		})
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("missing number is %d", missing),
		Primary: nums,
		Cursors: map[string]int{"missing": missing},
	})
}
