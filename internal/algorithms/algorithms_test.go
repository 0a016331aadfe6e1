package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/trace"
)

func allFamilies() []trace.Algorithm {
	return []trace.Algorithm{
		NewCyclicSort(),
		NewMissingNumber(),
		NewBinarySearch(),
		NewTwoPointers(),
		NewFastSlow(),
		NewSlidingWindow(),
		NewQuickSort(),
		NewMergeSort(),
		NewHeapSort(),
		NewBFS(),
		NewDFS(),
		NewTopoSort(),
		NewKWayMerge(),
		NewSubsets(),
		NewUnionFind(),
		NewTwoHeaps(),
		NewTopK(),
	}
}

// runAlg validates, runs and closes a family over an input, checking the
// sequence invariants on the way out.
func runAlg(t *testing.T, alg trace.Algorithm, in trace.Input) trace.Sequence {
	t.Helper()
	require.NoError(t, alg.Validate(in), "input should be valid for %s", alg.ID())
	rec := trace.NewRecorder(alg.MaxSteps(in))
	alg.Run(in, rec)
	seq := rec.Sequence()
	require.NoError(t, seq.Validate(), "sequence invariants for %s", alg.ID())
	return seq
}

func terminal(seq trace.Sequence) trace.Snapshot {
	return seq[len(seq)-1]
}

func TestFamiliesDeclareContracts(t *testing.T) {
	seen := map[string]bool{}
	for _, alg := range allFamilies() {
		require.NotEmpty(t, alg.ID())
		assert.False(t, seen[alg.ID()], "duplicate id %s", alg.ID())
		seen[alg.ID()] = true

		c := alg.Contract()
		assert.NotEmpty(t, c.Description, "%s needs a description", alg.ID())
		assert.NotEmpty(t, c.Input, "%s must document its input", alg.ID())
		assert.NotEmpty(t, c.Primary, "%s must document its primary structure", alg.ID())
	}
	assert.Len(t, seen, 17)
}

func TestMaxStepsAlwaysPositive(t *testing.T) {
	for _, alg := range allFamilies() {
		assert.Greater(t, alg.MaxSteps(trace.Input{}), 0, "%s ceiling on empty input", alg.ID())
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	inputs := map[string]trace.Input{
		"cyclic-sort":    {Values: []int{3, 0, 2, 1}},
		"missing-number": {Values: []int{3, 0, 1}},
		"binary-search":  {Values: []int{-1, 0, 3, 5, 9, 12}, Target: 9},
		"two-pointers":   {Values: []int{1, 2, 4, 6, 10}, Target: 8},
		"fast-slow":      {Values: []int{1, 2, 3, 1}},
		"sliding-window": {Values: []int{2, 1, 5, 1, 3, 2}, K: 3},
		"quick-sort":     {Values: []int{8, 3, 1, 7, 0, 10, 2}},
		"merge-sort":     {Values: []int{5, 2, 9, 1}},
		"heap-sort":      {Values: []int{4, 10, 3, 5, 1}},
		"bfs":            {Nodes: 6, Pairs: [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}}},
		"dfs":            {Nodes: 6, Pairs: [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}}},
		"topo-sort":      {Nodes: 4, Pairs: [][2]int{{1, 0}, {2, 0}, {3, 1}, {3, 2}}},
		"k-way-merge":    {Lists: [][]int{{1, 4, 5}, {1, 3, 4}, {2, 6}}},
		"subsets":        {Values: []int{1, 2, 3}},
		"union-find":     {Nodes: 5, Pairs: [][2]int{{0, 1}, {1, 2}, {3, 4}, {0, 2}}},
		"two-heaps":      {Values: []int{3, 1, 4, 1, 5}},
		"top-k":          {Values: []int{3, 1, 5, 12, 2, 11}, K: 3},
	}

	for _, alg := range allFamilies() {
		in, ok := inputs[alg.ID()]
		require.True(t, ok, "no test input for %s", alg.ID())
		t.Run(alg.ID(), func(t *testing.T) {
			first := runAlg(t, alg, in)
			second := runAlg(t, alg, in)
			assert.True(t, first.Equal(second), "two runs over the same input diverged")
		})
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	in := trace.Input{Values: []int{3, 1, 2, 0}}
	alg := NewQuickSort()
	runAlg(t, alg, in)
	assert.Equal(t, []int{3, 1, 2, 0}, in.Values, "Run must work on its own copy")
}
