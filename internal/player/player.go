package player

import "github.com/san-kum/algoviz/internal/trace"

// Player steps a cursor through one snapshot sequence. The sequence is
// cloned at construction and never re-simulated; every accessor hands out
// its own clone, so callers can mutate what they receive freely.
type Player struct {
	seq    trace.Sequence
	cursor int
}

// New binds a player to a finished sequence. The sequence must satisfy the
// closing invariants (non-empty, single trailing terminal frame).
func New(seq trace.Sequence) (*Player, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return &Player{seq: seq.Clone()}, nil
}

// Current returns the snapshot under the cursor without moving it.
func (p *Player) Current() trace.Snapshot {
	return p.seq[p.cursor].Clone()
}

// Advance moves one step forward and returns the snapshot now under the
// cursor. At the terminal frame it stays put and returns that frame again.
func (p *Player) Advance() trace.Snapshot {
	if p.cursor < len(p.seq)-1 {
		p.cursor++
	}
	return p.Current()
}

// Retreat moves one step back, clamped at the initial frame.
func (p *Player) Retreat() trace.Snapshot {
	if p.cursor > 0 {
		p.cursor--
	}
	return p.Current()
}

// Reset returns the cursor to the initial frame.
func (p *Player) Reset() trace.Snapshot {
	p.cursor = 0
	return p.Current()
}

// Seek jumps to position i, clamped into [0, Len()-1].
func (p *Player) Seek(i int) trace.Snapshot {
	switch {
	case i < 0:
		p.cursor = 0
	case i >= len(p.seq):
		p.cursor = len(p.seq) - 1
	default:
		p.cursor = i
	}
	return p.Current()
}

// Cursor is the current position.
func (p *Player) Cursor() int {
	return p.cursor
}

// Len is the number of snapshots in the bound sequence.
func (p *Player) Len() int {
	return len(p.seq)
}

// IsComplete reports whether the cursor sits on the terminal snapshot.
func (p *Player) IsComplete() bool {
	return p.seq[p.cursor].Terminal
}
