package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/trace"
)

func TestBinarySearchFindsTarget(t *testing.T) {
	in := trace.Input{Values: []int{-1, 0, 3, 5, 9, 12}, Target: 9}
	seq := runAlg(t, NewBinarySearch(), in)

	last := terminal(seq)
	assert.Equal(t, 4, last.Cursors["found"])
	assert.Contains(t, last.Message, "found target 9 at index 4")

	lastCompare := trace.Snapshot{}
	for _, s := range seq {
		if s.Kind == trace.KindCompare {
			lastCompare = s
		}
	}
	assert.Equal(t, 4, lastCompare.Cursors["mid"], "the hit must land on mid=4")
}

func TestBinarySearchMissesCleanly(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		target int
	}{
		{"between values", []int{1, 3, 5}, 2},
		{"below range", []int{1, 3, 5}, 0},
		{"above range", []int{1, 3, 5}, 9},
		{"empty", []int{}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := runAlg(t, NewBinarySearch(), trace.Input{Values: tt.values, Target: tt.target})
			last := terminal(seq)
			assert.Equal(t, -1, last.Cursors["found"])
			assert.Contains(t, last.Message, "not present")
		})
	}
}

func TestBinarySearchRequiresSortedInput(t *testing.T) {
	err := NewBinarySearch().Validate(trace.Input{Values: []int{3, 1, 2}})
	require.ErrorIs(t, err, trace.ErrInvalidInput)
}

func TestBinarySearchCursorsStayInOrder(t *testing.T) {
	seq := runAlg(t, NewBinarySearch(), trace.Input{Values: []int{1, 2, 3, 4, 5, 6, 7, 8}, Target: 6})
	for _, s := range seq {
		if s.Kind != trace.KindCompare {
			continue
		}
		low, mid, high := s.Cursors["low"], s.Cursors["mid"], s.Cursors["high"]
		assert.LessOrEqual(t, low, mid)
		assert.LessOrEqual(t, mid, high)
	}
}

func TestTwoPointersFindsPair(t *testing.T) {
	seq := runAlg(t, NewTwoPointers(), trace.Input{Values: []int{1, 2, 4, 6, 10}, Target: 8})
	last := terminal(seq)
	assert.Contains(t, last.Message, "pair found")
	l, r := last.Cursors["left"], last.Cursors["right"]
	assert.Equal(t, 8, seq[0].Primary[l]+seq[0].Primary[r])
}

func TestTwoPointersReportsNoPair(t *testing.T) {
	seq := runAlg(t, NewTwoPointers(), trace.Input{Values: []int{1, 2, 3}, Target: 100})
	assert.Contains(t, terminal(seq).Message, "no pair sums to 100")
}

func TestFastSlowDetectsCycle(t *testing.T) {
	tests := []struct {
		name  string
		links []int
		cycle bool
	}{
		{"straight line", []int{1, 2, 3, 4, 5, -1}, false},
		{"tail into loop", []int{1, 2, 3, 1}, true},
		{"self loop", []int{0}, true},
		{"single end", []int{-1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := runAlg(t, NewFastSlow(), trace.Input{Values: tt.links})
			msg := terminal(seq).Message
			if tt.cycle {
				assert.Contains(t, msg, "cycle")
				assert.NotContains(t, msg, "no cycle")
			} else {
				assert.Contains(t, msg, "no cycle")
			}
		})
	}
}

func TestFastSlowPointersNeverLeaveTheList(t *testing.T) {
	seq := runAlg(t, NewFastSlow(), trace.Input{Values: []int{1, 2, 0}})
	for _, s := range seq {
		assert.GreaterOrEqual(t, s.Cursors["slow"], 0)
		assert.Less(t, s.Cursors["fast"], len(s.Primary))
	}
}

func TestSlidingWindowFindsBestSum(t *testing.T) {
	seq := runAlg(t, NewSlidingWindow(), trace.Input{Values: []int{2, 1, 5, 1, 3, 2}, K: 3})
	last := terminal(seq)
	assert.Equal(t, 9, last.Cursors["best"])
	assert.Contains(t, last.Message, "maximum window sum is 9 at [2..4]")
}

func TestSlidingWindowWindowMatchesCursors(t *testing.T) {
	seq := runAlg(t, NewSlidingWindow(), trace.Input{Values: []int{4, -1, 2, 7}, K: 2})
	for _, s := range seq {
		w, ok := s.Aux["window"]
		if !ok || s.Kind == trace.KindInit {
			continue
		}
		start, end := s.Cursors["start"], s.Cursors["end"]
		require.Equal(t, end-start+1, len(w), "window slice must match cursors at step %d", s.Step)
		assert.Equal(t, s.Primary[start:end+1], w)
	}
}

func TestSlidingWindowRejectsBadK(t *testing.T) {
	for _, k := range []int{0, -1, 5} {
		err := NewSlidingWindow().Validate(trace.Input{Values: []int{1, 2, 3}, K: k})
		require.ErrorIs(t, err, trace.ErrInvalidInput, "k=%d", k)
	}
}
