package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// BFS traverses an undirected graph level by level from a start node. The
// primary structure is the visit order; the queue and visited set are aux
// structures. Neighbors are explored in ascending order.
type BFS struct{}

func NewBFS() *BFS {
	return &BFS{}
}

func (b *BFS) ID() string {
	return "bfs"
}

func (b *BFS) Contract() trace.Contract {
	return trace.Contract{
		Description: "breadth-first traversal from a start node",
		Input:       "nodes + pairs (undirected edges) + target (start node)",
		Primary:     "visit order so far",
		Cursors:     []string{"current", "from", "node"},
		Aux:         []string{"queue", "visited"},
	}
}

func (b *BFS) Validate(in trace.Input) error {
	if err := checkGraph(in); err != nil {
		return err
	}
	if in.Target < 0 || in.Target >= in.Nodes {
		return invalid("start node %d outside [0,%d)", in.Target, in.Nodes)
	}
	return nil
}

func (b *BFS) MaxSteps(in trace.Input) int {
	return 2*in.Nodes + 8
}

func (b *BFS) Run(in trace.Input, rec *trace.Recorder) {
	adj := adjacency(in.Nodes, in.Pairs, false)
	start := in.Target

	visited := make([]bool, in.Nodes)
	visited[start] = true
	queue := []int{start}
	order := []int{}

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("breadth-first search over %d nodes from node %d", in.Nodes, start),
		Primary: order,
		Cursors: map[string]int{"current": start},
		Aux:     map[string][]int{"queue": queue, "visited": trueIndices(visited)},
	})

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		rec.Record(trace.Snapshot{
			Kind:    trace.KindVisit,
			Message: fmt.Sprintf("dequeue and visit node %d", u),
			Primary: order,
			Cursors: map[string]int{"current": u},
			Aux:     map[string][]int{"queue": queue, "visited": trueIndices(visited)},
		})
		for _, w := range adj[u] {
			if visited[w] {
				continue
			}
			visited[w] = true
			queue = append(queue, w)
			rec.Record(trace.Snapshot{
				Kind:    trace.KindEnqueue,
				Message: fmt.Sprintf("discover node %d via node %d", w, u),
				Primary: order,
				Cursors: map[string]int{"current": u, "from": u, "node": w},
				Aux:     map[string][]int{"queue": queue, "visited": trueIndices(visited)},
			})
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("visited %d of %d nodes: %s", len(order), in.Nodes, joinInts(order)),
		Primary: order,
		Aux:     map[string][]int{"queue": {}, "visited": trueIndices(visited)},
	})
}
