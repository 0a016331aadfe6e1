package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// HeapSort builds an in-place max-heap and repeatedly extracts the maximum
// to the end of the array. The heap region is recorded as a sorted multiset,
// the settled tail as "sorted".
type HeapSort struct{}

func NewHeapSort() *HeapSort {
	return &HeapSort{}
}

func (h *HeapSort) ID() string {
	return "heap-sort"
}

func (h *HeapSort) Contract() trace.Contract {
	return trace.Contract{
		Description: "build a max-heap, extract the maximum n times",
		Input:       "values",
		Primary:     "the array being sorted",
		Cursors:     []string{"root", "child", "size"},
		Aux:         []string{"heap", "sorted"},
	}
}

func (h *HeapSort) Validate(in trace.Input) error {
	return checkValues(in, 0)
}

func (h *HeapSort) MaxSteps(in trace.Input) int {
	n := len(in.Values)
	return 4*n*ceilLog2(n+1) + 2*n + 16
}

func (h *HeapSort) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	n := len(nums)

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("heap sort %d values", n),
		Primary: nums,
		Cursors: map[string]int{"size": n},
	})

	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(nums, i, n, rec)
	}

	if n > 0 {
		rec.Record(trace.Snapshot{
			Kind:    trace.KindEmit,
			Message: fmt.Sprintf("max-heap built, maximum %d at the root", nums[0]),
			Primary: nums,
			Cursors: map[string]int{"size": n},
			Aux:     map[string][]int{"heap": sortedMultiset(nums), "sorted": {}},
		})
	}

	for end := n - 1; end > 0; end-- {
		nums[0], nums[end] = nums[end], nums[0]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindSettle,
			Message: fmt.Sprintf("extract maximum %d to index %d", nums[end], end),
			Primary: nums,
			Cursors: map[string]int{"size": end},
			Aux:     map[string][]int{"heap": sortedMultiset(nums[:end]), "sorted": nums[end:]},
		})
		h.siftDown(nums, 0, end, rec)
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: "sorted: heap drained",
		Primary: nums,
		Cursors: map[string]int{"size": 0},
		Aux:     map[string][]int{"heap": {}, "sorted": nums},
	})
}

func (h *HeapSort) siftDown(nums []int, root, size int, rec *trace.Recorder) {
	for {
		child := 2*root + 1
		if child >= size {
			return
		}
		if child+1 < size && nums[child+1] > nums[child] {
			child++
		}
		rec.Record(trace.Snapshot{
			Kind:    trace.KindCompare,
			Message: fmt.Sprintf("compare nums[%d]=%d with its larger child nums[%d]=%d", root, nums[root], child, nums[child]),
			Primary: nums,
			Cursors: map[string]int{"root": root, "child": child, "size": size},
			Aux:     map[string][]int{"heap": sortedMultiset(nums[:size]), "sorted": nums[size:]},
		})
		if nums[root] >= nums[child] {
			return
		}
		nums[root], nums[child] = nums[child], nums[root]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindSwap,
			Message: fmt.Sprintf("sift %d down: swap indexes %d and %d", nums[child], root, child),
			Primary: nums,
			Cursors: map[string]int{"root": root, "child": child, "size": size},
			Aux:     map[string][]int{"heap": sortedMultiset(nums[:size]), "sorted": nums[size:]},
		})
		root = child
	}
}
