// Package lesson runs scripted sequences of simulations from yaml files.
// A lesson bundles an ordered list of (algorithm, input) steps; running one
// simulates and archives each step in turn.
package lesson

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/sim"
	"github.com/san-kum/algoviz/internal/store"
	"github.com/san-kum/algoviz/internal/trace"
)

// Lesson is one scripted run list.
type Lesson struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one simulation within a lesson. Input, when set, wins over the
// named preset.
type Step struct {
	Algorithm string       `yaml:"algorithm"`
	Preset    string       `yaml:"preset,omitempty"`
	Input     *trace.Input `yaml:"input,omitempty"`
}

// Load reads a lesson from a yaml file.
func Load(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var l Lesson
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if len(l.Steps) == 0 {
		return nil, fmt.Errorf("lesson %s has no steps", path)
	}

	return &l, nil
}

// StepResult reports one archived lesson step.
type StepResult struct {
	Algorithm string
	RunID     string
	Snapshots int
}

func (s Step) resolveInput() (trace.Input, error) {
	cfg := config.Config{Algorithm: s.Algorithm, Preset: s.Preset}
	if s.Input != nil {
		cfg.Input = *s.Input
	}
	return cfg.ResolveInput()
}

// Run simulates and archives every step in order, failing on the first
// broken step.
func Run(l *Lesson, reg *sim.Registry, st *store.Store) ([]StepResult, error) {
	results := make([]StepResult, 0, len(l.Steps))

	for i, step := range l.Steps {
		fmt.Printf("step %d/%d: %s\n", i+1, len(l.Steps), step.Algorithm)

		in, err := step.resolveInput()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		seq, err := reg.Simulate(step.Algorithm, in)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		runID, err := st.Save(step.Algorithm, in, seq, metrics.Summarize(seq, metrics.Defaults()))
		if err != nil {
			return results, fmt.Errorf("step %d save: %w", i+1, err)
		}

		results = append(results, StepResult{
			Algorithm: step.Algorithm,
			RunID:     runID,
			Snapshots: len(seq),
		})
	}

	return results, nil
}
