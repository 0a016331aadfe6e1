package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// UnionFind applies a list of union operations to disjoint sets with union
// by rank and path compression. The primary structure is the parent table;
// compression shows up as parents snapping directly to roots.
type UnionFind struct{}

func NewUnionFind() *UnionFind {
	return &UnionFind{}
}

func (u *UnionFind) ID() string {
	return "union-find"
}

func (u *UnionFind) Contract() trace.Contract {
	return trace.Contract{
		Description: "merge disjoint sets with union by rank and path compression",
		Input:       "nodes + pairs (union operations)",
		Primary:     "parent table",
		Cursors:     []string{"node", "root", "components"},
		Aux:         []string{"rank"},
	}
}

func (u *UnionFind) Validate(in trace.Input) error {
	return checkGraph(in)
}

func (u *UnionFind) MaxSteps(in trace.Input) int {
	return 3*len(in.Pairs) + 16
}

func (u *UnionFind) Run(in trace.Input, rec *trace.Recorder) {
	n := in.Nodes
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	components := n

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("%d singleton sets, each node its own root", n),
		Primary: parent,
		Cursors: map[string]int{"components": components},
		Aux:     map[string][]int{"rank": rank},
	})

	for _, p := range in.Pairs {
		a, b := p[0], p[1]
		ra := u.find(parent, rank, a, components, rec)
		rb := u.find(parent, rank, b, components, rec)
		if ra == rb {
			rec.Record(trace.Snapshot{
				Kind:    trace.KindSkip,
				Message: fmt.Sprintf("%d and %d already share root %d", a, b, ra),
				Primary: parent,
				Cursors: map[string]int{"root": ra, "components": components},
				Aux:     map[string][]int{"rank": rank},
			})
			continue
		}
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
		components--
		rec.Record(trace.Snapshot{
			Kind:    trace.KindUnion,
			Message: fmt.Sprintf("union %d and %d: root %d adopts root %d", a, b, ra, rb),
			Primary: parent,
			Cursors: map[string]int{"root": ra, "components": components},
			Aux:     map[string][]int{"rank": rank},
		})
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("%d component(s) remain", components),
		Primary: parent,
		Cursors: map[string]int{"components": components},
		Aux:     map[string][]int{"rank": rank},
	})
}

// find resolves the root of x, compressing the whole path onto it, and
// records the resolution as a single step.
func (u *UnionFind) find(parent, rank []int, x, components int, rec *trace.Recorder) int {
	root := x
	for parent[root] != root {
		root = parent[root]
	}
	compressed := 0
	for node := x; node != root; {
		next := parent[node]
		if parent[node] != root {
			parent[node] = root
			compressed++
		}
		node = next
	}
	rec.Record(trace.Snapshot{
		Kind:    trace.KindFind,
		Message: fmt.Sprintf("find(%d) = root %d, %d parent link(s) compressed", x, root, compressed),
		Primary: parent,
		Cursors: map[string]int{"node": x, "root": root, "components": components},
		Aux:     map[string][]int{"rank": rank},
	})
	return root
}
