package sim

import (
	"fmt"
	"sync"

	"github.com/san-kum/algoviz/internal/trace"
)

// Job is one (algorithm, input) pair for batch verification.
type Job struct {
	Name  string
	ID    string
	Input trace.Input
}

// JobResult reports the outcome of verifying one job.
type JobResult struct {
	Job       Job
	Snapshots int
	Err       error
}

// Batch runs independent simulations across a bounded worker pool. Each job
// is simulated twice and the two sequences compared frame by frame, which
// smoke-tests both determinism and the closing sequence invariants.
type Batch struct {
	reg     *Registry
	workers int
}

func NewBatch(reg *Registry, workers int) *Batch {
	if workers < 1 {
		workers = 1
	}
	return &Batch{reg: reg, workers: workers}
}

// Run verifies all jobs and returns results in job order.
func (b *Batch) Run(jobs []Job) []JobResult {
	results := make([]JobResult, len(jobs))
	idx := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				results[i] = b.verify(jobs[i])
			}
		}()
	}
	for i := range jobs {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return results
}

func (b *Batch) verify(job Job) JobResult {
	first, err := b.reg.Simulate(job.ID, job.Input)
	if err != nil {
		return JobResult{Job: job, Err: err}
	}
	second, err := b.reg.Simulate(job.ID, job.Input)
	if err != nil {
		return JobResult{Job: job, Err: err}
	}
	if !first.Equal(second) {
		return JobResult{Job: job, Snapshots: len(first),
			Err: fmt.Errorf("%s: two runs over identical input diverged", job.ID)}
	}
	return JobResult{Job: job, Snapshots: len(first)}
}
