package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/trace"
)

func TestKWayMergeProducesSortedStream(t *testing.T) {
	in := trace.Input{Lists: [][]int{{1, 4, 5}, {1, 3, 4}, {2, 6}}}
	seq := runAlg(t, NewKWayMerge(), in)

	last := terminal(seq)
	assert.Equal(t, []int{1, 1, 2, 3, 4, 4, 5, 6}, last.Primary)
	assert.Contains(t, last.Message, "merged 8 values")
	assert.Empty(t, last.Aux["heap"], "heap drains completely")

	assert.Equal(t, 3, last.Cursors["list0"])
	assert.Equal(t, 3, last.Cursors["list1"])
	assert.Equal(t, 2, last.Cursors["list2"])

	// The merged prefix never shrinks and stays sorted at every step.
	prev := 0
	for _, s := range seq {
		assert.GreaterOrEqual(t, len(s.Primary), prev)
		prev = len(s.Primary)
		for i := 1; i < len(s.Primary); i++ {
			assert.LessOrEqual(t, s.Primary[i-1], s.Primary[i])
		}
	}
}

func TestKWayMergeRejectsUnsortedList(t *testing.T) {
	in := trace.Input{Lists: [][]int{{1, 2}, {5, 3}}}
	err := NewKWayMerge().Validate(in)
	assert.ErrorIs(t, err, trace.ErrInvalidInput)
}

func TestSubsetsGeneratesFullPowerSet(t *testing.T) {
	in := trace.Input{Values: []int{1, 2, 3}}
	seq := runAlg(t, NewSubsets(), in)

	last := terminal(seq)
	subsets := last.Groups["subsets"]
	require.Len(t, subsets, 8)
	assert.Equal(t, 8, last.Cursors["count"])

	assert.Empty(t, subsets[0], "the empty subset comes first")
	assert.Equal(t, []int{1, 2, 3}, subsets[7], "the full set is built last")

	seen := map[string]bool{}
	for _, ss := range subsets {
		key := joinInts(ss)
		assert.False(t, seen[key], "subset %s appears twice", key)
		seen[key] = true
	}
}

func TestSubsetsRejectsDuplicates(t *testing.T) {
	err := NewSubsets().Validate(trace.Input{Values: []int{1, 2, 1}})
	assert.ErrorIs(t, err, trace.ErrInvalidInput)
}

func TestTwoHeapsTracksRunningMedian(t *testing.T) {
	in := trace.Input{Values: []int{3, 1, 4, 1, 5}}
	seq := runAlg(t, NewTwoHeaps(), in)

	last := terminal(seq)
	assert.Equal(t, []int{1, 1}, last.Aux["low"])
	assert.Equal(t, []int{3, 4, 5}, last.Aux["high"])
	assert.Contains(t, last.Message, "final median is 3")

	for _, s := range seq {
		diff := s.Cursors["lowSize"] - s.Cursors["highSize"]
		if s.Kind == trace.KindEmit || s.Kind == trace.KindDone {
			assert.LessOrEqual(t, diff, 1, "halves stay balanced after each value")
			assert.GreaterOrEqual(t, diff, -1)
		}
	}
}

func TestTopKKeepsLargestCandidates(t *testing.T) {
	in := trace.Input{Values: []int{3, 1, 5, 12, 2, 11}, K: 3}
	seq := runAlg(t, NewTopK(), in)

	last := terminal(seq)
	assert.Equal(t, []int{5, 11, 12}, last.Aux["heap"])
	assert.Contains(t, last.Message, "the 3 largest values")

	for _, s := range seq {
		assert.LessOrEqual(t, len(s.Aux["heap"]), 3, "candidate set never exceeds k")
	}

	evictions := 0
	for _, s := range seq {
		if s.Kind == trace.KindEvict {
			evictions++
		}
	}
	assert.Equal(t, 2, evictions, "12 evicts 1, then 11 evicts 3")
}

func TestTopKRejectsBadK(t *testing.T) {
	tests := []struct {
		name string
		in   trace.Input
	}{
		{"zero k", trace.Input{Values: []int{1, 2}, K: 0}},
		{"k beyond length", trace.Input{Values: []int{1, 2}, K: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTopK().Validate(tt.in)
			assert.ErrorIs(t, err, trace.ErrInvalidInput)
		})
	}
}
