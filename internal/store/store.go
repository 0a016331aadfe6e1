package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/algoviz/internal/trace"
)

// Store archives finished runs on disk, one directory per run holding
// metadata.json and snapshots.json. It is a CLI convenience around the
// engine: simulation itself never touches the filesystem.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Input     trace.Input        `json:"input"`
	Snapshots int                `json:"snapshots"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save archives one run and returns its id.
func (s *Store) Save(algorithm string, in trace.Input, seq trace.Sequence, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", algorithm, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: algorithm,
		Timestamp: time.Now(),
		Input:     in,
		Snapshots: len(seq),
		Metrics:   metrics,
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "snapshots.json"), seq); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns metadata for every archived run. Directories without
// readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSequence reads a run's snapshots back. Loaded sequences must satisfy
// the same closing invariants as freshly simulated ones.
func (s *Store) LoadSequence(runID string) (trace.Sequence, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "snapshots.json"))
	if err != nil {
		return nil, err
	}

	var seq trace.Sequence
	if err := json.Unmarshal(data, &seq); err != nil {
		return nil, err
	}
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return seq, nil
}
