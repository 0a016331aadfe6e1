package algorithms

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/trace"
)

// Input bounds. Runs are meant to be watched step by step, so inputs stay
// small; the caps keep worst-case snapshot counts within the recorder
// ceiling.
const (
	maxValues  = 64
	maxNodes   = 64
	maxEdges   = 128
	maxSubset  = 10
	maxKSource = 16
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), trace.ErrInvalidInput)
}

func checkValues(in trace.Input, min int) error {
	if len(in.Values) < min {
		return invalid("need at least %d values, got %d", min, len(in.Values))
	}
	if len(in.Values) > maxValues {
		return invalid("too many values: %d exceeds %d", len(in.Values), maxValues)
	}
	return nil
}

func checkSorted(values []int) error {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return invalid("values not sorted ascending at index %d", i)
		}
	}
	return nil
}

func checkGraph(in trace.Input) error {
	if in.Nodes < 1 {
		return invalid("need at least one node, got %d", in.Nodes)
	}
	if in.Nodes > maxNodes {
		return invalid("too many nodes: %d exceeds %d", in.Nodes, maxNodes)
	}
	if len(in.Pairs) > maxEdges {
		return invalid("too many pairs: %d exceeds %d", len(in.Pairs), maxEdges)
	}
	for i, p := range in.Pairs {
		if p[0] < 0 || p[0] >= in.Nodes || p[1] < 0 || p[1] >= in.Nodes {
			return invalid("pair %d (%d,%d) references a node outside [0,%d)", i, p[0], p[1], in.Nodes)
		}
	}
	return nil
}

// adjacency builds sorted neighbor lists. Undirected graphs insert both
// directions; parallel edges collapse.
func adjacency(nodes int, pairs [][2]int, directed bool) [][]int {
	adj := make([][]int, nodes)
	seen := make(map[[2]int]bool, len(pairs))
	add := func(u, v int) {
		if u == v || seen[[2]int{u, v}] {
			return
		}
		seen[[2]int{u, v}] = true
		adj[u] = append(adj[u], v)
	}
	for _, p := range pairs {
		add(p[0], p[1])
		if !directed {
			add(p[1], p[0])
		}
	}
	for _, n := range adj {
		sort.Ints(n)
	}
	return adj
}

// sortedMultiset is the logical view heap contents are recorded under.
func sortedMultiset(values []int) []int {
	c := make([]int, len(values))
	copy(c, values)
	sort.Ints(c)
	return c
}

// trueIndices lists the set bits of a flag slice in ascending order, used
// for settled and visited views.
func trueIndices(flags []bool) []int {
	idx := []int{}
	for i, ok := range flags {
		if ok {
			idx = append(idx, i)
		}
	}
	return idx
}

func ceilLog2(n int) int {
	v, p := 0, 1
	for p < n {
		p <<= 1
		v++
	}
	return v
}

func joinInts(values []int) string {
	s := ""
	for i, v := range values {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", v)
	}
	return "[" + s + "]"
}
