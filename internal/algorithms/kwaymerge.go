package algorithms

import (
	"container/heap"
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// KWayMerge merges k sorted lists through a min-heap holding one head per
// list. Ties break toward the lower list index, keeping runs deterministic.
type KWayMerge struct{}

func NewKWayMerge() *KWayMerge {
	return &KWayMerge{}
}

func (m *KWayMerge) ID() string {
	return "k-way-merge"
}

func (m *KWayMerge) Contract() trace.Contract {
	return trace.Contract{
		Description: "merge k sorted lists through a min-heap of their heads",
		Input:       "lists (each sorted ascending)",
		Primary:     "the merged output so far",
		Cursors:     []string{"list<i> (consumed per list)"},
		Aux:         []string{"heap"},
		Groups:      []string{"lists"},
	}
}

func (m *KWayMerge) Validate(in trace.Input) error {
	if len(in.Lists) < 1 {
		return invalid("need at least one list")
	}
	if len(in.Lists) > maxKSource {
		return invalid("too many lists: %d exceeds %d", len(in.Lists), maxKSource)
	}
	total := 0
	for i, l := range in.Lists {
		total += len(l)
		if err := checkSorted(l); err != nil {
			return invalid("list %d not sorted ascending", i)
		}
	}
	if total > maxValues {
		return invalid("too many values: %d exceeds %d", total, maxValues)
	}
	return nil
}

func (m *KWayMerge) MaxSteps(in trace.Input) int {
	total := 0
	for _, l := range in.Lists {
		total += len(l)
	}
	return 2*total + len(in.Lists) + 16
}

func (m *KWayMerge) Run(in trace.Input, rec *trace.Recorder) {
	lists := in.Clone().Lists
	h := &kwayHeap{}
	merged := []int{}
	consumed := make([]int, len(lists))

	total := 0
	for _, l := range lists {
		total += len(l)
	}

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("merge %d sorted lists holding %d values", len(lists), total),
		Primary: merged,
		Cursors: listCursors(consumed),
		Aux:     map[string][]int{"heap": {}},
		Groups:  map[string][][]int{"lists": lists},
	})

	for i, l := range lists {
		if len(l) == 0 {
			continue
		}
		heap.Push(h, kwayItem{value: l[0], list: i, pos: 0})
		rec.Record(trace.Snapshot{
			Kind:    trace.KindPush,
			Message: fmt.Sprintf("push head %d of list %d", l[0], i),
			Primary: merged,
			Cursors: listCursors(consumed),
			Aux:     map[string][]int{"heap": h.values()},
			Groups:  map[string][][]int{"lists": lists},
		})
	}

	for h.Len() > 0 {
		it := heap.Pop(h).(kwayItem)
		merged = append(merged, it.value)
		consumed[it.list] = it.pos + 1
		rec.Record(trace.Snapshot{
			Kind:    trace.KindEmit,
			Message: fmt.Sprintf("take %d from list %d", it.value, it.list),
			Primary: merged,
			Cursors: listCursors(consumed),
			Aux:     map[string][]int{"heap": h.values()},
			Groups:  map[string][][]int{"lists": lists},
		})
		if next := it.pos + 1; next < len(lists[it.list]) {
			v := lists[it.list][next]
			heap.Push(h, kwayItem{value: v, list: it.list, pos: next})
			rec.Record(trace.Snapshot{
				Kind:    trace.KindPush,
				Message: fmt.Sprintf("push next %d from list %d", v, it.list),
				Primary: merged,
				Cursors: listCursors(consumed),
				Aux:     map[string][]int{"heap": h.values()},
				Groups:  map[string][][]int{"lists": lists},
			})
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("merged %d values: %s", len(merged), joinInts(merged)),
		Primary: merged,
		Cursors: listCursors(consumed),
		Aux:     map[string][]int{"heap": {}},
		Groups:  map[string][][]int{"lists": lists},
	})
}

func listCursors(consumed []int) map[string]int {
	m := make(map[string]int, len(consumed))
	for i, c := range consumed {
		m[fmt.Sprintf("list%d", i)] = c
	}
	return m
}

type kwayItem struct {
	value int
	list  int
	pos   int
}

type kwayHeap []kwayItem

func (h kwayHeap) Len() int { return len(h) }

func (h kwayHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value < h[j].value
	}
	return h[i].list < h[j].list
}

func (h kwayHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *kwayHeap) Push(x any) {
	*h = append(*h, x.(kwayItem))
}

func (h *kwayHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func (h kwayHeap) values() []int {
	vals := make([]int, len(h))
	for i, it := range h {
		vals[i] = it.value
	}
	return sortedMultiset(vals)
}
