// Package algorithms provides the instrumented reference implementations the
// simulator runs.
//
// Each family implements the [trace.Algorithm] interface, emitting one
// snapshot per observable state change through a [trace.Recorder]:
//
//   - [CyclicSort], [MissingNumber]: index-as-home placement
//   - [QuickSort], [MergeSort], [HeapSort]: comparison sorts
//   - [BinarySearch], [TwoPointers], [FastSlow], [SlidingWindow]: scan patterns
//   - [BFS], [DFS], [TopoSort]: graph traversal and ordering
//   - [KWayMerge], [TwoHeaps], [TopK]: heap-backed selection and merging
//   - [Subsets]: power-set generation
//   - [UnionFind]: disjoint sets with path compression
//
// Implementations are pure: the same input always yields the identical
// snapshot sequence. Neighbor lists are kept sorted and no map iteration
// order ever reaches a snapshot.
package algorithms
