package trace

// Recorder collects the snapshots of one run. Record copies every reference
// field before storing, so families may keep mutating their working slices
// between calls. A recorder is single-use: one run, one Sequence.
type Recorder struct {
	limit int
	snaps Sequence
	done  bool
}

// NewRecorder returns a recorder that panics with [Overrun] once more than
// limit snapshots are recorded.
func NewRecorder(limit int) *Recorder {
	if limit < 1 {
		limit = 1
	}
	return &Recorder{limit: limit}
}

// Record appends one non-terminal snapshot. Step and Terminal are assigned
// here; any values the caller set for them are ignored.
func (r *Recorder) Record(s Snapshot) {
	r.append(s, false)
}

// Finish appends the terminal snapshot and closes the recorder.
func (r *Recorder) Finish(s Snapshot) {
	r.append(s, true)
	r.done = true
}

func (r *Recorder) append(s Snapshot, terminal bool) {
	if r.done {
		panic("trace: Record after Finish")
	}
	if len(r.snaps) >= r.limit {
		panic(Overrun{Limit: r.limit})
	}
	s = s.Clone()
	s.Step = len(r.snaps)
	s.Terminal = terminal
	r.snaps = append(r.snaps, s)
}

// Len is the number of snapshots recorded so far.
func (r *Recorder) Len() int {
	return len(r.snaps)
}

// Sequence hands over the recorded run. The recorder must not be used after.
func (r *Recorder) Sequence() Sequence {
	return r.snaps
}
