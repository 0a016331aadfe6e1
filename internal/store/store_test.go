package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/trace"
)

func sampleSequence() trace.Sequence {
	rec := trace.NewRecorder(4)
	rec.Record(trace.Snapshot{Kind: trace.KindInit, Message: "start", Primary: []int{2, 0, 1},
		Cursors: map[string]int{"i": 0}})
	rec.Record(trace.Snapshot{Kind: trace.KindSwap, Message: "swap", Primary: []int{1, 0, 2},
		Cursors: map[string]int{"i": 0, "home": 2}})
	rec.Finish(trace.Snapshot{Kind: trace.KindDone, Message: "sorted", Primary: []int{0, 1, 2}})
	return rec.Sequence()
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	in := trace.Input{Values: []int{2, 0, 1}}
	seq := sampleSequence()
	runID, err := st.Save("cyclic-sort", in, seq, map[string]float64{"swaps": 1})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Algorithm != "cyclic-sort" {
		t.Errorf("expected algorithm cyclic-sort, got %s", meta.Algorithm)
	}
	if meta.Snapshots != 3 {
		t.Errorf("expected 3 snapshots, got %d", meta.Snapshots)
	}
	if meta.Metrics["swaps"] != 1 {
		t.Errorf("expected swaps 1, got %f", meta.Metrics["swaps"])
	}

	loaded, err := st.LoadSequence(runID)
	if err != nil {
		t.Fatalf("load sequence failed: %v", err)
	}
	if !loaded.Equal(seq) {
		t.Error("sequence did not survive the archive roundtrip")
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("subsets", trace.Input{Values: []int{1}}, sampleSequence(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("bfs", trace.Input{Nodes: 2, Pairs: [][2]int{{0, 1}}}, sampleSequence(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	for _, name := range []string{"metadata.json", "snapshots.json"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestLoadSequenceRejectsBrokenArchive(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, "broken_1")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		t.Fatal(err)
	}
	// Valid JSON, but no terminal frame.
	data := `[{"step":0,"kind":"init","message":"start","primary":[1],"terminal":false}]`
	if err := os.WriteFile(filepath.Join(runDir, "snapshots.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := st.LoadSequence("broken_1"); err == nil {
		t.Error("expected error for archive without terminal frame")
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, sampleSequence()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "step,kind,message") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[2], "home=2 i=0") {
		t.Errorf("cursors should be sorted name=value pairs: %s", lines[2])
	}
}

func TestSequenceToSVG(t *testing.T) {
	svg := SequenceToSVG(sampleSequence(), 16)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<rect") || !strings.Contains(svg, "<text") {
		t.Error("expected rect and text elements")
	}
	if SequenceToSVG(nil, 16) != "" {
		t.Error("empty sequence should render nothing")
	}
}
