package algorithms

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/trace"
)

// SlidingWindow finds the maximum sum of any k consecutive values by sliding
// a fixed-size window instead of re-summing each position.
type SlidingWindow struct{}

func NewSlidingWindow() *SlidingWindow {
	return &SlidingWindow{}
}

func (w *SlidingWindow) ID() string {
	return "sliding-window"
}

func (w *SlidingWindow) Contract() trace.Contract {
	return trace.Contract{
		Description: "maximum sum of k consecutive values",
		Input:       "values + k (window size)",
		Primary:     "the array (static)",
		Cursors:     []string{"start", "end", "sum", "best"},
		Aux:         []string{"window"},
	}
}

func (w *SlidingWindow) Validate(in trace.Input) error {
	if err := checkValues(in, 1); err != nil {
		return err
	}
	if in.K < 1 || in.K > len(in.Values) {
		return invalid("window size %d outside [1,%d]", in.K, len(in.Values))
	}
	return nil
}

func (w *SlidingWindow) MaxSteps(in trace.Input) int {
	return 3*len(in.Values) + 8
}

func (w *SlidingWindow) Run(in trace.Input, rec *trace.Recorder) {
	nums := in.Clone().Values
	k := in.K

	rec.Record(trace.Snapshot{
		Kind:    trace.KindInit,
		Message: fmt.Sprintf("slide a window of %d over %d values", k, len(nums)),
		Primary: nums,
		Cursors: map[string]int{"start": 0, "end": -1, "sum": 0},
	})

	sum := 0
	for end := 0; end < k; end++ {
		sum += nums[end]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindExpand,
			Message: fmt.Sprintf("add nums[%d]=%d, window sum %d", end, nums[end], sum),
			Primary: nums,
			Cursors: map[string]int{"start": 0, "end": end, "sum": sum},
			Aux:     map[string][]int{"window": nums[:end+1]},
		})
	}

	best, bestStart := sum, 0
	rec.Record(trace.Snapshot{
		Kind:    trace.KindEmit,
		Message: fmt.Sprintf("first full window [0..%d] sums to %d", k-1, best),
		Primary: nums,
		Cursors: map[string]int{"start": 0, "end": k - 1, "sum": sum, "best": best},
		Aux:     map[string][]int{"window": nums[:k]},
	})

	for end := k; end < len(nums); end++ {
		start := end - k + 1
		sum -= nums[start-1]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindContract,
			Message: fmt.Sprintf("drop nums[%d]=%d, window sum %d", start-1, nums[start-1], sum),
			Primary: nums,
			Cursors: map[string]int{"start": start, "end": end - 1, "sum": sum, "best": best},
			Aux:     map[string][]int{"window": nums[start:end]},
		})
		sum += nums[end]
		rec.Record(trace.Snapshot{
			Kind:    trace.KindExpand,
			Message: fmt.Sprintf("add nums[%d]=%d, window sum %d", end, nums[end], sum),
			Primary: nums,
			Cursors: map[string]int{"start": start, "end": end, "sum": sum, "best": best},
			Aux:     map[string][]int{"window": nums[start : end+1]},
		})
		if sum > best {
			best, bestStart = sum, start
			rec.Record(trace.Snapshot{
				Kind:    trace.KindEmit,
				Message: fmt.Sprintf("new best window [%d..%d] sums to %d", start, end, best),
				Primary: nums,
				Cursors: map[string]int{"start": start, "end": end, "sum": sum, "best": best},
				Aux:     map[string][]int{"window": nums[start : end+1]},
			})
		}
	}

	rec.Finish(trace.Snapshot{
		Kind:    trace.KindDone,
		Message: fmt.Sprintf("maximum window sum is %d at [%d..%d]", best, bestStart, bestStart+k-1),
		Primary: nums,
		Cursors: map[string]int{"start": bestStart, "end": bestStart + k - 1, "sum": best, "best": best},
		Aux:     map[string][]int{"window": nums[bestStart : bestStart+k]},
	})
}
