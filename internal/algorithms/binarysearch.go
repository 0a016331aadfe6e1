package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// BinarySearch halves a sorted range until the target is found or the
// range is empty. The primary structure never changes; only the low, mid
// and high cursors move.
type BinarySearch struct{}

func NewBinarySearch() *BinarySearch {
	return &BinarySearch{}
}

func (b *BinarySearch) ID() string {
	return "binary-search"
}

func (b *BinarySearch) Contract() trace.Contract {
	return trace.Contract{
		Description: "halve a sorted range until the target is found",
		Input:       "values (sorted ascending) + target",
		Primary:     "the sorted array (static)",
		Cursors:     []string{"low", "mid", "high", "found"},
	}
}

func (b *BinarySearch) Validate(in trace.Input) error {
	if err := checkValues(in, 0); err != nil {
		return err
	}
	return checkSorted(in.Values)
}

func (b *BinarySearch) MaxSteps(in trace.Input) int {
	return 2*ceilLog2(len(in.Values)+1) + 8
}

func (b *BinarySearch) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	target := in.Target
	low, high := 0, len(nums)-1

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("search for %d in %d sorted values", target, len(nums)),
		Primary: nums,
		Cursors: map[string]int{"low": low, "high": high},
	})

	for low <= high {
		mid := low + (high-low)/2
		rec.Record(trace.Snapshot{
			Kind:    trace.KindCompare,
			Message: fmt.Sprintf("mid=%d: compare nums[%d]=%d with target %d", mid, mid, nums[mid], target),
			Primary: nums,
			Cursors: map[string]int{"low": low, "mid": mid, "high": high},
		})
		switch {
		case nums[mid] == target:
			rec.Finish(trace.Snapshot{
				Kind:    trace.KindDone,
				Message: fmt.Sprintf("found target %d at index %d", target, mid),
				Primary: nums,
				Cursors: map[string]int{"low": low, "mid": mid, "high": high, "found": mid},
			})
			return
		case nums[mid] < target:
			low = mid + 1
			rec.Record(trace.Snapshot{
				Kind:    trace.KindMove,
				Message: fmt.Sprintf("%d < %d, discard left half", nums[mid], target),
				Primary: nums,
				Cursors: map[string]int{"low": low, "high": high},
			})
		default:
			high = mid - 1
			rec.Record(trace.Snapshot{
				Kind:    trace.KindMove,
				Message: fmt.Sprintf("%d > %d, discard right half", nums[mid], target),
				Primary: nums,
				Cursors: map[string]int{"low": low, "high": high},
			})
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("target %d not present", target),
		Primary: nums,
		Cursors: map[string]int{"low": low, "high": high, "found": -1},
	})
}
