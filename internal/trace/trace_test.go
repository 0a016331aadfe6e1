package trace

import (
	"errors"
	"testing"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Kind:    KindSwap,
		Message: "swap nums[0] and nums[2]",
		Primary: []int{3, 0, 1},
		Cursors: map[string]int{"i": 0},
		Aux:     map[string][]int{"result": {1}},
		Groups:  map[string][][]int{"subsets": {{}, {1}}},
	}
}

func TestSnapshotCloneIndependence(t *testing.T) {
	s := sampleSnapshot()
	c := s.Clone()

	s.Primary[0] = 99
	s.Cursors["i"] = 99
	s.Aux["result"][0] = 99
	s.Groups["subsets"][1][0] = 99

	if c.Primary[0] != 3 {
		t.Errorf("clone primary mutated: got %d", c.Primary[0])
	}
	if c.Cursors["i"] != 0 {
		t.Errorf("clone cursors mutated: got %d", c.Cursors["i"])
	}
	if c.Aux["result"][0] != 1 {
		t.Errorf("clone aux mutated: got %d", c.Aux["result"][0])
	}
	if c.Groups["subsets"][1][0] != 1 {
		t.Errorf("clone groups mutated: got %d", c.Groups["subsets"][1][0])
	}
}

func TestSnapshotEqual(t *testing.T) {
	base := sampleSnapshot()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   bool
	}{
		{"identical", func(s *Snapshot) {}, true},
		{"message differs", func(s *Snapshot) { s.Message = "other" }, false},
		{"kind differs", func(s *Snapshot) { s.Kind = KindCompare }, false},
		{"primary differs", func(s *Snapshot) { s.Primary[1] = 7 }, false},
		{"cursor differs", func(s *Snapshot) { s.Cursors["i"] = 2 }, false},
		{"cursor added", func(s *Snapshot) { s.Cursors["j"] = 1 }, false},
		{"aux differs", func(s *Snapshot) { s.Aux["result"] = []int{2} }, false},
		{"group differs", func(s *Snapshot) { s.Groups["subsets"][0] = []int{9} }, false},
		{"terminal differs", func(s *Snapshot) { s.Terminal = true }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base.Clone()
			tt.mutate(&other)
			if got := base.Equal(other); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecorderAssignsStepsAndTerminal(t *testing.T) {
	rec := NewRecorder(10)
	rec.Record(Snapshot{Kind: KindInit, Message: "start"})
	rec.Record(Snapshot{Kind: KindCompare, Message: "compare", Step: 42, Terminal: true})
	rec.Finish(Snapshot{Kind: KindDone, Message: "done"})

	seq := rec.Sequence()
	if len(seq) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(seq))
	}
	for i, s := range seq {
		if s.Step != i {
			t.Errorf("snapshot %d has step %d", i, s.Step)
		}
	}
	if seq[1].Terminal {
		t.Error("Record must ignore caller-set Terminal")
	}
	if !seq[2].Terminal {
		t.Error("Finish must mark the terminal snapshot")
	}
	if err := seq.Validate(); err != nil {
		t.Errorf("valid sequence rejected: %v", err)
	}
}

func TestRecorderCopiesOnRecord(t *testing.T) {
	rec := NewRecorder(10)
	working := []int{1, 2, 3}
	cursors := map[string]int{"i": 0}

	rec.Record(Snapshot{Kind: KindInit, Primary: working, Cursors: cursors})
	working[0] = 99
	cursors["i"] = 99
	rec.Finish(Snapshot{Kind: KindDone, Primary: working})

	seq := rec.Sequence()
	if seq[0].Primary[0] != 1 {
		t.Errorf("stored snapshot aliases working slice: got %d", seq[0].Primary[0])
	}
	if seq[0].Cursors["i"] != 0 {
		t.Errorf("stored snapshot aliases cursor map: got %d", seq[0].Cursors["i"])
	}
	if seq[1].Primary[0] != 99 {
		t.Errorf("later snapshot missed the update: got %d", seq[1].Primary[0])
	}
}

func TestRecorderOverrunPanics(t *testing.T) {
	rec := NewRecorder(2)
	rec.Record(Snapshot{Kind: KindInit})
	rec.Record(Snapshot{Kind: KindCompare})

	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected overrun panic")
		}
		err, ok := v.(error)
		if !ok {
			t.Fatalf("panic payload %T is not an error", v)
		}
		if !errors.Is(err, ErrOverrun) {
			t.Errorf("panic payload does not wrap ErrOverrun: %v", err)
		}
	}()
	rec.Record(Snapshot{Kind: KindCompare})
}

func TestRecorderRecordAfterFinishPanics(t *testing.T) {
	rec := NewRecorder(10)
	rec.Finish(Snapshot{Kind: KindDone})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on Record after Finish")
		}
	}()
	rec.Record(Snapshot{Kind: KindInit})
}

func TestSequenceValidate(t *testing.T) {
	tests := []struct {
		name    string
		seq     Sequence
		wantErr bool
	}{
		{"empty", Sequence{}, true},
		{"no terminal", Sequence{{Step: 0}, {Step: 1}}, true},
		{"terminal not last", Sequence{{Step: 0, Terminal: true}, {Step: 1}}, true},
		{"step gap", Sequence{{Step: 0}, {Step: 2, Terminal: true}}, true},
		{"single terminal", Sequence{{Step: 0, Terminal: true}}, false},
		{"well formed", Sequence{{Step: 0}, {Step: 1}, {Step: 2, Terminal: true}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seq.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSequenceCloneIndependence(t *testing.T) {
	rec := NewRecorder(4)
	rec.Record(Snapshot{Kind: KindInit, Primary: []int{1, 2}})
	rec.Finish(Snapshot{Kind: KindDone, Primary: []int{2, 1}})
	seq := rec.Sequence()

	c := seq.Clone()
	c[0].Primary[0] = 99
	if seq[0].Primary[0] != 1 {
		t.Errorf("clone shares backing array: got %d", seq[0].Primary[0])
	}
	if !seq.Equal(seq.Clone()) {
		t.Error("clone should compare equal to its source")
	}
}

func TestInputCloneAndSize(t *testing.T) {
	in := Input{
		Values: []int{1, 2, 3},
		Lists:  [][]int{{1, 4}, {2}},
		Pairs:  [][2]int{{1, 0}},
		Nodes:  4,
		Target: 9,
		K:      2,
	}
	if got := in.Size(); got != 12 {
		t.Errorf("Size = %d, want 12", got)
	}

	c := in.Clone()
	in.Values[0] = 99
	in.Lists[0][0] = 99
	in.Pairs[0][0] = 99
	if c.Values[0] != 1 || c.Lists[0][0] != 1 || c.Pairs[0][0] != 1 {
		t.Error("input clone shares backing storage")
	}
}
