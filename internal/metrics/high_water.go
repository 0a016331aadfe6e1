package metrics

import "github.com/san-kum/algoviz/internal/trace"

// HighWater tracks the largest auxiliary structure seen in any snapshot,
// across all aux keys. Queues, heaps and stacks grow and shrink during a
// run; their peak size is what bounds a family's working memory.
type HighWater struct {
	max int
}

func NewHighWater() *HighWater {
	return &HighWater{}
}

func (h *HighWater) Name() string {
	return "aux_high_water"
}

func (h *HighWater) Observe(s trace.Snapshot) {
	for _, v := range s.Aux {
		if len(v) > h.max {
			h.max = len(v)
		}
	}
	for _, g := range s.Groups {
		if len(g) > h.max {
			h.max = len(g)
		}
	}
}

func (h *HighWater) Value() float64 {
	return float64(h.max)
}

func (h *HighWater) Reset() {
	h.max = 0
}
