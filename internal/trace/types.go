package trace

import "fmt"

// Kind classifies the single atomic action a snapshot captures.
type Kind string

const (
	KindInit     Kind = "init"
	KindCompare  Kind = "compare"
	KindSwap     Kind = "swap"
	KindAssign   Kind = "assign"
	KindMove     Kind = "move"
	KindExpand   Kind = "expand"
	KindContract Kind = "contract"
	KindEnqueue  Kind = "enqueue"
	KindDequeue  Kind = "dequeue"
	KindPush     Kind = "push"
	KindPop      Kind = "pop"
	KindEvict    Kind = "evict"
	KindEmit     Kind = "emit"
	KindSplit    Kind = "split"
	KindMerge    Kind = "merge"
	KindUnion    Kind = "union"
	KindFind     Kind = "find"
	KindVisit    Kind = "visit"
	KindSettle   Kind = "settle"
	KindSkip     Kind = "skip"
	KindDone     Kind = "done"
)

// Snapshot is one frame of algorithm state. All reference fields hold owned
// copies; a snapshot stays valid after the run that produced it moves on.
type Snapshot struct {
	Step     int                `json:"step"`
	Kind     Kind               `json:"kind"`
	Message  string             `json:"message"`
	Primary  []int              `json:"primary"`
	Cursors  map[string]int     `json:"cursors,omitempty"`
	Aux      map[string][]int   `json:"aux,omitempty"`
	Groups   map[string][][]int `json:"groups,omitempty"`
	Terminal bool               `json:"terminal"`
}

func (s Snapshot) Clone() Snapshot {
	c := s
	c.Primary = cloneInts(s.Primary)
	c.Cursors = cloneCursors(s.Cursors)
	c.Aux = cloneAux(s.Aux)
	c.Groups = cloneGroups(s.Groups)
	return c
}

// Equal reports whether two snapshots capture the same frame.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Step != o.Step || s.Kind != o.Kind || s.Message != o.Message || s.Terminal != o.Terminal {
		return false
	}
	if !equalInts(s.Primary, o.Primary) {
		return false
	}
	if len(s.Cursors) != len(o.Cursors) {
		return false
	}
	for k, v := range s.Cursors {
		ov, ok := o.Cursors[k]
		if !ok || ov != v {
			return false
		}
	}
	if len(s.Aux) != len(o.Aux) {
		return false
	}
	for k, v := range s.Aux {
		ov, ok := o.Aux[k]
		if !ok || !equalInts(v, ov) {
			return false
		}
	}
	if len(s.Groups) != len(o.Groups) {
		return false
	}
	for k, v := range s.Groups {
		ov, ok := o.Groups[k]
		if !ok || len(ov) != len(v) {
			return false
		}
		for i := range v {
			if !equalInts(v[i], ov[i]) {
				return false
			}
		}
	}
	return true
}

// Sequence is the complete ordered output of one simulation run.
type Sequence []Snapshot

func (q Sequence) Clone() Sequence {
	c := make(Sequence, len(q))
	for i, s := range q {
		c[i] = s.Clone()
	}
	return c
}

func (q Sequence) Equal(o Sequence) bool {
	if len(q) != len(o) {
		return false
	}
	for i := range q {
		if !q[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Validate checks the closing invariants of a finished sequence: at least
// one snapshot, contiguous steps, and exactly one terminal frame in last
// position.
func (q Sequence) Validate() error {
	if len(q) == 0 {
		return ErrEmptySequence
	}
	for i, s := range q {
		if s.Step != i {
			return fmt.Errorf("trace: snapshot at index %d carries step %d", i, s.Step)
		}
		if s.Terminal && i != len(q)-1 {
			return fmt.Errorf("trace: terminal snapshot at step %d before end", i)
		}
	}
	if !q[len(q)-1].Terminal {
		return fmt.Errorf("trace: sequence of %d snapshots has no terminal frame", len(q))
	}
	return nil
}

// Input is the generalized input an algorithm runs on. Each family documents
// in its Contract which fields it reads and validates them up front.
type Input struct {
	Values []int    `yaml:"values,omitempty" json:"values,omitempty"`
	Lists  [][]int  `yaml:"lists,omitempty" json:"lists,omitempty"`
	Pairs  [][2]int `yaml:"pairs,omitempty" json:"pairs,omitempty"`
	Nodes  int      `yaml:"nodes,omitempty" json:"nodes,omitempty"`
	Target int      `yaml:"target" json:"target"`
	K      int      `yaml:"k,omitempty" json:"k,omitempty"`
}

func (in Input) Clone() Input {
	c := in
	c.Values = cloneInts(in.Values)
	if in.Lists != nil {
		c.Lists = make([][]int, len(in.Lists))
		for i, l := range in.Lists {
			c.Lists[i] = cloneInts(l)
		}
	}
	if in.Pairs != nil {
		c.Pairs = make([][2]int, len(in.Pairs))
		copy(c.Pairs, in.Pairs)
	}
	return c
}

// Empty reports whether no input field is set.
func (in Input) Empty() bool {
	return len(in.Values) == 0 && len(in.Lists) == 0 && len(in.Pairs) == 0 &&
		in.Nodes == 0 && in.Target == 0 && in.K == 0
}

// Size is the total element count across all input fields, used by
// per-family snapshot ceilings.
func (in Input) Size() int {
	n := len(in.Values) + len(in.Pairs)*2 + in.Nodes
	for _, l := range in.Lists {
		n += len(l)
	}
	return n
}

// Contract documents what a family's snapshots look like, so renderers and
// other consumers know which keys to expect.
type Contract struct {
	Description string
	Input       string
	Primary     string
	Cursors     []string
	Aux         []string
	Groups      []string
}

// Algorithm is one instrumented reference implementation. Run must be a pure
// function of its input: no I/O, no randomness, no wall-clock reads.
type Algorithm interface {
	ID() string
	Contract() Contract
	Validate(in Input) error
	MaxSteps(in Input) int
	Run(in Input, rec *Recorder)
}

func cloneInts(v []int) []int {
	if v == nil {
		return nil
	}
	c := make([]int, len(v))
	copy(c, v)
	return c
}

func cloneCursors(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	c := make(map[string]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneAux(m map[string][]int) map[string][]int {
	if m == nil {
		return nil
	}
	c := make(map[string][]int, len(m))
	for k, v := range m {
		c[k] = cloneInts(v)
	}
	return c
}

func cloneGroups(m map[string][][]int) map[string][][]int {
	if m == nil {
		return nil
	}
	c := make(map[string][][]int, len(m))
	for k, v := range m {
		g := make([][]int, len(v))
		for i, l := range v {
			g[i] = cloneInts(l)
		}
		c[k] = g
	}
	return c
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
