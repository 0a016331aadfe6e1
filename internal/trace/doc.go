// Package trace defines the snapshot data model for algorithm playback.
//
// The package provides the fundamental types shared by every instrumented
// algorithm and by the playback layers above them:
//
//   - [Snapshot]: one immutable frame of algorithm state
//   - [Sequence]: the ordered frames of a completed run
//   - [Input]: the generalized algorithm input
//   - [Algorithm]: interface implemented by every instrumented family
//   - [Recorder]: collects snapshots during a run, deep-copying at record time
//
// # Example
//
//	alg := algorithms.NewBinarySearch()
//	rec := trace.NewRecorder(alg.MaxSteps(in))
//	alg.Run(in, rec)
//	seq := rec.Sequence()
//
// # Immutability
//
// A Snapshot never aliases live algorithm state. The Recorder copies every
// slice and map on Record, and consumers that hand snapshots out (such as
// the player) clone them again, so mutating a returned snapshot cannot
// corrupt a stored sequence.
package trace
