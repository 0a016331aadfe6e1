package sim

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/trace"
)

// Registry maps algorithm ids to their instrumented implementations.
type Registry struct {
	algs map[string]trace.Algorithm
}

// NewRegistry returns a registry with every built-in family registered.
func NewRegistry() *Registry {
	r := &Registry{algs: make(map[string]trace.Algorithm)}

	r.register(algorithms.NewCyclicSort())
	r.register(algorithms.NewMissingNumber())
	r.register(algorithms.NewBinarySearch())
	r.register(algorithms.NewTwoPointers())
	r.register(algorithms.NewFastSlow())
	r.register(algorithms.NewSlidingWindow())
	r.register(algorithms.NewQuickSort())
	r.register(algorithms.NewMergeSort())
	r.register(algorithms.NewHeapSort())
	r.register(algorithms.NewBFS())
	r.register(algorithms.NewDFS())
	r.register(algorithms.NewTopoSort())
	r.register(algorithms.NewKWayMerge())
	r.register(algorithms.NewSubsets())
	r.register(algorithms.NewUnionFind())
	r.register(algorithms.NewTwoHeaps())
	r.register(algorithms.NewTopK())

	return r
}

func (r *Registry) register(alg trace.Algorithm) {
	r.algs[alg.ID()] = alg
}

// Get returns the family registered under id.
func (r *Registry) Get(id string) (trace.Algorithm, error) {
	alg, ok := r.algs[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, trace.ErrUnknownAlgorithm)
	}
	return alg, nil
}

// List returns all registered ids in ascending order.
func (r *Registry) List() []string {
	ids := make([]string, 0, len(r.algs))
	for id := range r.algs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Contract returns the renderer contract of the family registered under id.
func (r *Registry) Contract(id string) (trace.Contract, error) {
	alg, err := r.Get(id)
	if err != nil {
		return trace.Contract{}, err
	}
	return alg.Contract(), nil
}
