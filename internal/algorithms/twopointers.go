package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// TwoPointers walks a sorted array from both ends looking for a pair that
// sums to the target.
type TwoPointers struct{}

func NewTwoPointers() *TwoPointers {
	return &TwoPointers{}
}

func (p *TwoPointers) ID() string {
	return "two-pointers"
}

func (p *TwoPointers) Contract() trace.Contract {
	return trace.Contract{
		Description: "find a pair summing to the target from both ends",
		Input:       "values (sorted ascending) + target",
		Primary:     "the sorted array (static)",
		Cursors:     []string{"left", "right"},
	}
}

func (p *TwoPointers) Validate(in trace.Input) error {
	if err := checkValues(in, 0); err != nil {
		return err
	}
	return checkSorted(in.Values)
}

func (p *TwoPointers) MaxSteps(in trace.Input) int {
	return 2*len(in.Values) + 8
}

func (p *TwoPointers) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	target := in.Target
	left, right := 0, len(nums)-1

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("find two values summing to %d, pointers at both ends", target),
		Primary: nums,
		Cursors: map[string]int{"left": left, "right": right},
	})

	for left < right {
		sum := nums[left] + nums[right]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindCompare,
			Message: fmt.Sprintf("nums[%d]+nums[%d] = %d+%d = %d vs target %d", left, right, nums[left], nums[right], sum, target),
			Primary: nums,
			Cursors: map[string]int{"left": left, "right": right},
		})
		switch {
		case sum == target:
			rec.Finish(trace.Snapshot{
				Kind:    trace.KindDone,
				Message: fmt.Sprintf("pair found: nums[%d]=%d and nums[%d]=%d", left, nums[left], right, nums[right]),
				Primary: nums,
				Cursors: map[string]int{"left": left, "right": right},
			})
			return
		case sum < target:
			left++
			rec.Record(trace.Snapshot{
				Kind:    trace.KindMove,
				Message: "sum too small, advance left pointer",
				Primary: nums,
				Cursors: map[string]int{"left": left, "right": right},
			})
		default:
			right--
			rec.Record(trace.Snapshot{
				Kind:    trace.KindMove,
				Message: "sum too large, retreat right pointer",
				Primary: nums,
				Cursors: map[string]int{"left": left, "right": right},
			})
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("no pair sums to %d", target),
		Primary: nums,
		Cursors: map[string]int{"left": left, "right": right},
	})
}
