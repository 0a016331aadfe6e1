package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// QuickSort sorts in place with Lomuto partitioning, pivot at the right edge
// of each range. Settled pivot positions accumulate in the "settled" aux
// structure.
type QuickSort struct{}

func NewQuickSort() *QuickSort {
	return &QuickSort{}
}

func (q *QuickSort) ID() string {
	return "quick-sort"
}

func (q *QuickSort) Contract() trace.Contract {
	return trace.Contract{
		Description: "partition around a pivot, recurse into both halves",
		Input:       "values",
		Primary:     "the array being sorted",
		Cursors:     []string{"lo", "hi", "pivot", "i", "j"},
		Aux:         []string{"settled"},
	}
}

func (q *QuickSort) Validate(in trace.Input) error {
	return checkValues(in, 0)
}

func (q *QuickSort) MaxSteps(in trace.Input) int {
	n := len(in.Values)
	return n*n + 6*n + 16
}

func (q *QuickSort) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	settled := make([]bool, len(nums))

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("quick sort %d values", len(nums)),
		Primary: nums,
		Aux:     map[string][]int{"settled": {}},
	})

	q.sortRange(nums, 0, len(nums)-1, settled, rec)

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: "sorted: every position settled",
		Primary: nums,
		Aux:     map[string][]int{"settled": trueIndices(settled)},
	})
}

func (q *QuickSort) sortRange(nums []int, lo, hi int, settled []bool, rec *trace.Recorder) {
	if lo > hi {
		return
	}
	if lo == hi {
		settled[lo] = true
		rec.Record(trace.Snapshot{
			Kind:    trace.KindSettle,
			Message: fmt.Sprintf("single value %d settled at index %d", nums[lo], lo),
			Primary: nums,
			Cursors: map[string]int{"lo": lo, "hi": hi},
			Aux:     map[string][]int{"settled": trueIndices(settled)},
		})
		return
	}

	pivot := nums[hi]
	rec.Record(trace.Snapshot{
		Kind:    trace.KindSplit,
		Message: fmt.Sprintf("partition [%d..%d] around pivot nums[%d]=%d", lo, hi, hi, pivot),
		Primary: nums,
		Cursors: map[string]int{"lo": lo, "hi": hi, "pivot": hi},
		Aux:     map[string][]int{"settled": trueIndices(settled)},
	})

	i := lo - 1
	for j := lo; j < hi; j++ {
		rec.Record(trace.Snapshot{
			Kind:    trace.KindCompare,
			Message: fmt.Sprintf("nums[%d]=%d vs pivot %d", j, nums[j], pivot),
			Primary: nums,
			Cursors: map[string]int{"lo": lo, "hi": hi, "pivot": hi, "i": i, "j": j},
			Aux:     map[string][]int{"settled": trueIndices(settled)},
		})
		if nums[j] < pivot {
			i++
			if i != j {
				nums[i], nums[j] = nums[j], nums[i]
				rec.Record(trace.Snapshot{
					Kind:    trace.KindSwap,
					Message: fmt.Sprintf("%d belongs left of the pivot: swap indexes %d and %d", nums[i], i, j),
					Primary: nums,
					Cursors: map[string]int{"lo": lo, "hi": hi, "pivot": hi, "i": i, "j": j},
					Aux:     map[string][]int{"settled": trueIndices(settled)},
				})
			}
		}
	}

	i++
	if i != hi {
		nums[i], nums[hi] = nums[hi], nums[i]
	}
	settled[i] = true
	rec.Record(trace.Snapshot{
		Kind:    trace.KindSettle,
		Message: fmt.Sprintf("pivot %d settled at index %d", pivot, i),
		Primary: nums,
		Cursors: map[string]int{"lo": lo, "hi": hi, "pivot": i},
		Aux:     map[string][]int{"settled": trueIndices(settled)},
	})

	q.sortRange(nums, lo, i-1, settled, rec)
	q.sortRange(nums, i+1, hi, settled, rec)
}
