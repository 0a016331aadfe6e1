package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// MergeSort splits ranges down to single values, then merges sorted halves
// back through temporary buffers. The aux structures show what remains of
// each half during a merge.
type MergeSort struct{}

func NewMergeSort() *MergeSort {
	return &MergeSort{}
}

func (m *MergeSort) ID() string {
	return "merge-sort"
}

func (m *MergeSort) Contract() trace.Contract {
	return trace.Contract{
		Description: "split to single values, merge sorted halves",
		Input:       "values",
		Primary:     "the array being sorted",
		Cursors:     []string{"lo", "mid", "hi", "k"},
		Aux:         []string{"left", "right"},
	}
}

func (m *MergeSort) Validate(in trace.Input) error {
	return checkValues(in, 0)
}

func (m *MergeSort) MaxSteps(in trace.Input) int {
	n := len(in.Values)
	return 3*n*ceilLog2(n+1) + 4*n + 16
}

func (m *MergeSort) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("merge sort %d values", len(nums)),
		Primary: nums,
	})

	m.sortRange(nums, 0, len(nums)-1, rec)

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: "sorted: all ranges merged",
		Primary: nums,
	})
}

func (m *MergeSort) sortRange(nums []int, lo, hi int, rec *trace.Recorder) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	rec.Record(trace.Snapshot{
		Kind:    trace.KindSplit,
		Message: fmt.Sprintf("split [%d..%d] into [%d..%d] and [%d..%d]", lo, hi, lo, mid, mid+1, hi),
		Primary: nums,
		Cursors: map[string]int{"lo": lo, "mid": mid, "hi": hi},
	})

	m.sortRange(nums, lo, mid, rec)
	m.sortRange(nums, mid+1, hi, rec)
	m.merge(nums, lo, mid, hi, rec)
}

func (m *MergeSort) merge(nums []int, lo, mid, hi int, rec *trace.Recorder) {
	left := append([]int{}, nums[lo:mid+1]...)
	right := append([]int{}, nums[mid+1:hi+1]...)

	li, ri, k := 0, 0, lo
	for li < len(left) && ri < len(right) {
		rec.Record(trace.Snapshot{
			Kind:    trace.KindCompare,
			Message: fmt.Sprintf("compare left %d with right %d", left[li], right[ri]),
			Primary: nums,
			Cursors: map[string]int{"lo": lo, "mid": mid, "hi": hi, "k": k},
			Aux:     map[string][]int{"left": left[li:], "right": right[ri:]},
		})
		var v int
		var side string
		if left[li] <= right[ri] {
			v, side = left[li], "left"
			li++
		} else {
			v, side = right[ri], "right"
			ri++
		}
		nums[k] = v
		rec.Record(trace.Snapshot{
			Kind:    trace.KindAssign,
			Message: fmt.Sprintf("place %d from the %s half at index %d", v, side, k),
			Primary: nums,
			Cursors: map[string]int{"lo": lo, "mid": mid, "hi": hi, "k": k},
			Aux:     map[string][]int{"left": left[li:], "right": right[ri:]},
		})
		k++
	}
	for li < len(left) {
		nums[k] = left[li]
		li++
		rec.Record(trace.Snapshot{
			Kind:    trace.KindAssign,
			Message: fmt.Sprintf("right half exhausted, copy %d to index %d", nums[k], k),
			Primary: nums,
			Cursors: map[string]int{"lo": lo, "mid": mid, "hi": hi, "k": k},
			Aux:     map[string][]int{"left": left[li:], "right": {}},
		})
		k++
	}
	for ri < len(right) {
		nums[k] = right[ri]
		ri++
		rec.Record(trace.Snapshot{
			Kind:    trace.KindAssign,
			Message: fmt.Sprintf("left half exhausted, copy %d to index %d", nums[k], k),
			Primary: nums,
			Cursors: map[string]int{"lo": lo, "mid": mid, "hi": hi, "k": k},
			Aux:     map[string][]int{"left": {}, "right": right[ri:]},
		})
		k++
	}

	rec.Record(trace.Snapshot{
		Kind:    trace.KindMerge,
		Message: fmt.Sprintf("range [%d..%d] merged", lo, hi),
		Primary: nums,
		Cursors: map[string]int{"lo": lo, "hi": hi},
	})
}
