// Package viz is the terminal front end over recorded runs.
//
// It contains two bubbletea programs: [Playback], which steps a single run
// snapshot by snapshot, and [Browser], a menu over every registered
// algorithm and its presets. Rendering is read-only; all stepping goes
// through a [player.Player], never back into the simulator.
package viz
