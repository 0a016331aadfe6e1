package algorithms

import (
	"container/heap"
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// TwoHeaps tracks the running median of a value stream: a max-heap holds the
// lower half, a min-heap the upper half, rebalanced so their sizes never
// differ by more than one. Heap contents are recorded as sorted multisets.
type TwoHeaps struct{}

func NewTwoHeaps() *TwoHeaps {
	return &TwoHeaps{}
}

func (t *TwoHeaps) ID() string {
	return "two-heaps"
}

func (t *TwoHeaps) Contract() trace.Contract {
	return trace.Contract{
		Description: "running median with a lower max-heap and upper min-heap",
		Input:       "values (arrival order)",
		Primary:     "the value stream (static)",
		Cursors:     []string{"i", "lowSize", "highSize"},
		Aux:         []string{"low", "high"},
	}
}

func (t *TwoHeaps) Validate(in trace.Input) error {
	return checkValues(in, 1)
}

func (t *TwoHeaps) MaxSteps(in trace.Input) int {
	return 3*len(in.Values) + 16
}

func (t *TwoHeaps) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	low := &maxHeap{}
	high := &minHeap{}

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("running median over %d arriving values", len(nums)),
		Primary: nums,
		Cursors: map[string]int{"i": -1, "lowSize": 0, "highSize": 0},
		Aux:     map[string][]int{"low": {}, "high": {}},
	})

	for i, v := range nums {
		var side string
		if low.Len() == 0 || v <= (*low)[0] {
			heap.Push(low, v)
			side = "lower"
		} else {
			heap.Push(high, v)
			side = "upper"
		}
		rec.Record(trace.Snapshot{
			Kind:    trace.KindPush,
			Message: fmt.Sprintf("%d joins the %s half", v, side),
			Primary: nums,
			Cursors: map[string]int{"i": i, "lowSize": low.Len(), "highSize": high.Len()},
			Aux:     map[string][]int{"low": sortedMultiset(*low), "high": sortedMultiset(*high)},
		})

		if low.Len() > high.Len()+1 {
			moved := heap.Pop(low).(int)
			heap.Push(high, moved)
			rec.Record(trace.Snapshot{
				Kind:    trace.KindMove,
				Message: fmt.Sprintf("rebalance: %d moves to the upper half", moved),
				Primary: nums,
				Cursors: map[string]int{"i": i, "lowSize": low.Len(), "highSize": high.Len()},
				Aux:     map[string][]int{"low": sortedMultiset(*low), "high": sortedMultiset(*high)},
			})
		} else if high.Len() > low.Len()+1 {
			moved := heap.Pop(high).(int)
			heap.Push(low, moved)
			rec.Record(trace.Snapshot{
				Kind:    trace.KindMove,
				Message: fmt.Sprintf("rebalance: %d moves to the lower half", moved),
				Primary: nums,
				Cursors: map[string]int{"i": i, "lowSize": low.Len(), "highSize": high.Len()},
				Aux:     map[string][]int{"low": sortedMultiset(*low), "high": sortedMultiset(*high)},
			})
		}

		rec.Record(trace.Snapshot{
			Kind:    trace.KindEmit,
			Message: fmt.Sprintf("median after %d value(s) is %s", i+1, medianText(low, high)),
			Primary: nums,
			Cursors: map[string]int{"i": i, "lowSize": low.Len(), "highSize": high.Len()},
			Aux:     map[string][]int{"low": sortedMultiset(*low), "high": sortedMultiset(*high)},
		})
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("final median is %s", medianText(low, high)),
		Primary: nums,
		Cursors: map[string]int{"i": len(nums) - 1, "lowSize": low.Len(), "highSize": high.Len()},
		Aux:     map[string][]int{"low": sortedMultiset(*low), "high": sortedMultiset(*high)},
	})
}

func medianText(low *maxHeap, high *minHeap) string {
	switch {
	case low.Len() > high.Len():
		return fmt.Sprintf("%d", (*low)[0])
	case high.Len() > low.Len():
		return fmt.Sprintf("%d", (*high)[0])
	default:
		sum := (*low)[0] + (*high)[0]
		if sum%2 == 0 {
			return fmt.Sprintf("%d", sum/2)
		}
		return fmt.Sprintf("%.1f", float64(sum)/2)
	}
}
