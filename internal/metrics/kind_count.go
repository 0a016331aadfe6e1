package metrics

import "github.com/san-kum/algoviz/internal/trace"

// KindCount counts the snapshots carrying one action kind.
type KindCount struct {
	name  string
	kind  trace.Kind
	count int
}

func NewKindCount(name string, kind trace.Kind) *KindCount {
	return &KindCount{name: name, kind: kind}
}

func (k *KindCount) Name() string {
	return k.name
}

func (k *KindCount) Observe(s trace.Snapshot) {
	if s.Kind == k.kind {
		k.count++
	}
}

func (k *KindCount) Value() float64 {
	return float64(k.count)
}

func (k *KindCount) Reset() {
	k.count = 0
}

// StepCount counts every snapshot.
type StepCount struct {
	count int
}

func NewStepCount() *StepCount {
	return &StepCount{}
}

func (c *StepCount) Name() string {
	return "snapshots"
}

func (c *StepCount) Observe(trace.Snapshot) {
	c.count++
}

func (c *StepCount) Value() float64 {
	return float64(c.count)
}

func (c *StepCount) Reset() {
	c.count = 0
}
