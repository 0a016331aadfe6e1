// Package player implements the cursor state machine over a recorded
// snapshot sequence.
//
// A [Player] is bound to exactly one sequence for its whole life. Stepping
// is pure cursor arithmetic over immutable data, so scrubbing back and
// forth any number of times reproduces identical snapshots.
package player
