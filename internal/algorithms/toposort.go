package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// TopoSort orders courses by Kahn's algorithm. Each input pair [course,
// prerequisite] is an edge from the prerequisite to the course; the primary
// structure is the live prerequisite-count table. Cyclic inputs are rejected
// up front.
type TopoSort struct{}

func NewTopoSort() *TopoSort {
	return &TopoSort{}
}

func (t *TopoSort) ID() string {
	return "topo-sort"
}

func (t *TopoSort) Contract() trace.Contract {
	return trace.Contract{
		Description: "dependency order by repeatedly taking zero-prerequisite courses",
		Input:       "nodes (courses) + pairs ([course, prerequisite])",
		Primary:     "prerequisite count per course",
		Cursors:     []string{"current", "node"},
		Aux:         []string{"queue", "order"},
	}
}

func (t *TopoSort) Validate(in trace.Input) error {
	if err := checkGraph(in); err != nil {
		return err
	}
	adj := adjacency(in.Nodes, prereqEdges(in.Pairs), true)
	if processed := kahnCount(in.Nodes, adj); processed < in.Nodes {
		return invalid("prerequisites contain a cycle: only %d of %d courses orderable", processed, in.Nodes)
	}
	return nil
}

func (t *TopoSort) MaxSteps(in trace.Input) int {
	return 3*in.Nodes + len(in.Pairs) + 16
}

func (t *TopoSort) Run(in trace.Input, rec *trace.Recorder) {
	n := in.Nodes
	adj := adjacency(n, prereqEdges(in.Pairs), true)

	indeg := make([]int, n)
	for _, deps := range adj {
		for _, w := range deps {
			indeg[w]++
		}
	}

	queue := []int{}
	order := []int{}

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("order %d courses by prerequisite counts", n),
		Primary: indeg,
		Aux:     map[string][]int{"queue": queue, "order": order},
	})

	for c := 0; c < n; c++ {
		if indeg[c] == 0 {
			queue = append(queue, c)
			rec.Record(trace.Snapshot{
				Kind:    trace.KindEnqueue,
				Message: fmt.Sprintf("course %d has no prerequisites", c),
				Primary: indeg,
				Cursors: map[string]int{"node": c},
				Aux:     map[string][]int{"queue": queue, "order": order},
			})
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		rec.Record(trace.Snapshot{
			Kind:    trace.KindEmit,
			Message: fmt.Sprintf("take course %d", u),
			Primary: indeg,
			Cursors: map[string]int{"current": u},
			Aux:     map[string][]int{"queue": queue, "order": order},
		})
		for _, w := range adj[u] {
			indeg[w]--
			rec.Record(trace.Snapshot{
				Kind:    trace.KindAssign,
				Message: fmt.Sprintf("course %d done: %d prerequisite(s) left for course %d", u, indeg[w], w),
				Primary: indeg,
				Cursors: map[string]int{"current": u, "node": w},
				Aux:     map[string][]int{"queue": queue, "order": order},
			})
			if indeg[w] == 0 {
				queue = append(queue, w)
				rec.Record(trace.Snapshot{
					Kind:    trace.KindEnqueue,
					Message: fmt.Sprintf("course %d unlocked", w),
					Primary: indeg,
					Cursors: map[string]int{"current": u, "node": w},
					Aux:     map[string][]int{"queue": queue, "order": order},
				})
			}
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("valid course order: %s", joinInts(order)),
		Primary: indeg,
		Aux:     map[string][]int{"queue": {}, "order": order},
	})
}

// prereqEdges flips [course, prerequisite] pairs into prerequisite→course
// edges, so finishing a prerequisite lowers the counts of what it unlocks.
func prereqEdges(pairs [][2]int) [][2]int {
	edges := make([][2]int, len(pairs))
	for i, p := range pairs {
		edges[i] = [2]int{p[1], p[0]}
	}
	return edges
}

// kahnCount runs an unrecorded Kahn pass and reports how many nodes were
// ordered; anything short of n means a cycle.
func kahnCount(n int, adj [][]int) int {
	indeg := make([]int, n)
	for _, deps := range adj {
		for _, w := range deps {
			indeg[w]++
		}
	}
	queue := []int{}
	for c := 0; c < n; c++ {
		if indeg[c] == 0 {
			queue = append(queue, c)
		}
	}
	processed := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		processed++
		for _, w := range adj[u] {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}
	return processed
}
