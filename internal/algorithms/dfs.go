package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// DFS traverses an undirected graph with an explicit stack. Neighbors are
// pushed in descending order so the smallest is visited first; a node can
// sit on the stack more than once, so stale entries are skipped on pop.
type DFS struct{}

func NewDFS() *DFS {
	return &DFS{}
}

func (d *DFS) ID() string {
	return "dfs"
}

func (d *DFS) Contract() trace.Contract {
	return trace.Contract{
		Description: "depth-first traversal with an explicit stack",
		Input:       "nodes + pairs (undirected edges) + target (start node)",
		Primary:     "visit order so far",
		Cursors:     []string{"current", "node"},
		Aux:         []string{"stack", "visited"},
	}
}

func (d *DFS) Validate(in trace.Input) error {
	if err := checkGraph(in); err != nil {
		return err
	}
	if in.Target < 0 || in.Target >= in.Nodes {
		return invalid("start node %d outside [0,%d)", in.Target, in.Nodes)
	}
	return nil
}

func (d *DFS) MaxSteps(in trace.Input) int {
	return 4*len(in.Pairs) + 2*in.Nodes + 16
}

func (d *DFS) Run(in trace.Input, rec *trace.Recorder) {
	adj := adjacency(in.Nodes, in.Pairs, false)
	start := in.Target

	visited := make([]bool, in.Nodes)
	stack := []int{start}
	order := []int{}

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("depth-first search over %d nodes from node %d", in.Nodes, start),
		Primary: order,
		Cursors: map[string]int{"current": start},
		Aux:     map[string][]int{"stack": stack, "visited": trueIndices(visited)},
	})

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			rec.Record(trace.Snapshot{
				Kind:    trace.KindSkip,
				Message: fmt.Sprintf("pop node %d: already visited, skip", u),
				Primary: order,
				Cursors: map[string]int{"current": u},
				Aux:     map[string][]int{"stack": stack, "visited": trueIndices(visited)},
			})
			continue
		}
		visited[u] = true
		order = append(order, u)
		rec.Record(trace.Snapshot{
			Kind:    trace.KindVisit,
			Message: fmt.Sprintf("pop and visit node %d", u),
			Primary: order,
			Cursors: map[string]int{"current": u},
			Aux:     map[string][]int{"stack": stack, "visited": trueIndices(visited)},
		})
		for i := len(adj[u]) - 1; i >= 0; i-- {
			w := adj[u][i]
			if visited[w] {
				continue
			}
			stack = append(stack, w)
			rec.Record(trace.Snapshot{
				Kind:    trace.KindPush,
				Message: fmt.Sprintf("push node %d to explore after node %d", w, u),
				Primary: order,
				Cursors: map[string]int{"current": u, "node": w},
				Aux:     map[string][]int{"stack": stack, "visited": trueIndices(visited)},
			})
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("visited %d of %d nodes: %s", len(order), in.Nodes, joinInts(order)),
		Primary: order,
		Aux:     map[string][]int{"stack": {}, "visited": trueIndices(visited)},
	})
}
