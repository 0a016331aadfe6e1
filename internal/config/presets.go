package config

import (
	"sort"

	"github.com/san-kum/algoviz/internal/trace"
)

// Presets are the built-in demonstration inputs, keyed by algorithm id then
// preset name. They stay small on purpose: runs are meant to be watched
// frame by frame.
var Presets = map[string]map[string]trace.Input{
	"cyclic-sort": {
		"shuffled": {Values: []int{3, 0, 2, 1}},
		"reversed": {Values: []int{5, 4, 3, 2, 1, 0}},
	},
	"missing-number": {
		"classic": {Values: []int{3, 0, 1}},
		"longer":  {Values: []int{8, 3, 5, 2, 4, 6, 0, 1}},
	},
	"binary-search": {
		"classic": {Values: []int{-1, 0, 3, 5, 9, 12}, Target: 9},
		"absent":  {Values: []int{-1, 0, 3, 5, 9, 12}, Target: 2},
	},
	"two-pointers": {
		"pair-sum": {Values: []int{1, 2, 4, 6, 10}, Target: 8},
		"no-pair":  {Values: []int{1, 2, 4, 6, 10}, Target: 20},
	},
	"fast-slow": {
		"cycle":    {Values: []int{1, 2, 3, 1}},
		"straight": {Values: []int{1, 2, 3, 4, -1}},
	},
	"sliding-window": {
		"best-of-three": {Values: []int{2, 1, 5, 1, 3, 2}, K: 3},
		"wide":          {Values: []int{4, 2, 1, 7, 8, 1, 2, 8, 1, 0}, K: 4},
	},
	"quick-sort": {
		"classic": {Values: []int{8, 3, 1, 7, 0, 10, 2}},
		"nearly":  {Values: []int{1, 2, 4, 3, 5, 7, 6}},
	},
	"merge-sort": {
		"classic": {Values: []int{5, 2, 9, 1, 6, 3}},
	},
	"heap-sort": {
		"classic": {Values: []int{4, 10, 3, 5, 1}},
	},
	"bfs": {
		"tree": {Nodes: 7, Pairs: [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}}},
	},
	"dfs": {
		"tree": {Nodes: 7, Pairs: [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}}},
	},
	"topo-sort": {
		"courses": {Nodes: 4, Pairs: [][2]int{{1, 0}, {2, 0}, {3, 1}, {3, 2}}},
		"chain":   {Nodes: 5, Pairs: [][2]int{{1, 0}, {2, 1}, {3, 2}, {4, 3}}},
	},
	"k-way-merge": {
		"classic": {Lists: [][]int{{1, 4, 5}, {1, 3, 4}, {2, 6}}},
	},
	"subsets": {
		"classic": {Values: []int{1, 2, 3}},
	},
	"union-find": {
		"islands": {Nodes: 5, Pairs: [][2]int{{0, 1}, {1, 2}, {3, 4}, {0, 2}}},
	},
	"two-heaps": {
		"median": {Values: []int{3, 1, 4, 1, 5, 9, 2, 6}},
	},
	"top-k": {
		"largest-three": {Values: []int{3, 1, 5, 12, 2, 11}, K: 3},
	},
}

// GetPreset returns the named preset input, or nil when the algorithm or
// the preset is unknown.
func GetPreset(algorithm, name string) *trace.Input {
	presets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	in, ok := presets[name]
	if !ok {
		return nil
	}
	c := in.Clone()
	return &c
}

// ListPresets returns the preset names of one algorithm, sorted.
func ListPresets(algorithm string) []string {
	presets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamedPreset is one preset with its full address, for batch verification.
type NamedPreset struct {
	Algorithm string
	Name      string
	Input     trace.Input
}

// AllPresets returns every preset in deterministic order.
func AllPresets() []NamedPreset {
	algs := make([]string, 0, len(Presets))
	for alg := range Presets {
		algs = append(algs, alg)
	}
	sort.Strings(algs)

	out := make([]NamedPreset, 0, 2*len(algs))
	for _, alg := range algs {
		for _, name := range ListPresets(alg) {
			out = append(out, NamedPreset{Algorithm: alg, Name: name, Input: *GetPreset(alg, name)})
		}
	}
	return out
}
