// Package sim ties names to instrumented algorithms and runs them.
//
// [Registry.Simulate] is the engine's front door: look the family up,
// validate the input, run to completion under the family's snapshot
// ceiling, and hand back the finished sequence. [Registry.CreatePlayback]
// wraps the result in a player for stepping.
package sim
