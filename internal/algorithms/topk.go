package algorithms

import (
	"container/heap"
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// TopK keeps the k largest values seen so far in a min-heap of size k: any
// newcomer larger than the smallest candidate evicts it.
type TopK struct{}

func NewTopK() *TopK {
	return &TopK{}
}

func (t *TopK) ID() string {
	return "top-k"
}

func (t *TopK) Contract() trace.Contract {
	return trace.Contract{
		Description: "k largest values via a bounded min-heap",
		Input:       "values + k",
		Primary:     "the value stream (static)",
		Cursors:     []string{"i"},
		Aux:         []string{"heap"},
	}
}

func (t *TopK) Validate(in trace.Input) error {
	if err := checkValues(in, 1); err != nil {
		return err
	}
	if in.K < 1 || in.K > len(in.Values) {
		return invalid("k=%d outside [1,%d]", in.K, len(in.Values))
	}
	return nil
}

func (t *TopK) MaxSteps(in trace.Input) int {
	return 2*len(in.Values) + 16
}

func (t *TopK) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	k := in.K
	h := &minHeap{}

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("track the %d largest of %d values", k, len(nums)),
		Primary: nums,
		Cursors: map[string]int{"i": -1},
		Aux:     map[string][]int{"heap": {}},
	})

	for i, v := range nums {
		if h.Len() < k {
			heap.Push(h, v)
			rec.Record(trace.Snapshot{
				Kind:    trace.KindPush,
				Message: fmt.Sprintf("%d enters the candidate set", v),
				Primary: nums,
				Cursors: map[string]int{"i": i},
				Aux:     map[string][]int{"heap": sortedMultiset(*h)},
			})
			continue
		}
		smallest := (*h)[0]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindCompare,
			Message: fmt.Sprintf("%d vs smallest candidate %d", v, smallest),
			Primary: nums,
			Cursors: map[string]int{"i": i},
			Aux:     map[string][]int{"heap": sortedMultiset(*h)},
		})
		if v > smallest {
			heap.Pop(h)
			heap.Push(h, v)
			rec.Record(trace.Snapshot{
				Kind:    trace.KindEvict,
				Message: fmt.Sprintf("%d replaces %d among the candidates", v, smallest),
				Primary: nums,
				Cursors: map[string]int{"i": i},
				Aux:     map[string][]int{"heap": sortedMultiset(*h)},
			})
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("the %d largest values: %s", k, joinInts(sortedMultiset(*h))),
		Primary: nums,
		Cursors: map[string]int{"i": len(nums) - 1},
		Aux:     map[string][]int{"heap": sortedMultiset(*h)},
	})
}
