package scanner

import "sync/atomic"

// Stats counts how the URLs of a run were resolved.
type Stats struct {
	Succeeded int
	Dropped   int
	Exhausted int
	Failed    int
	Panicked  int
}

// Total is the number of URLs resolved.
func (s Stats) Total() int {
	return s.Succeeded + s.Dropped + s.Exhausted + s.Failed + s.Panicked
}

type tally struct {
	succeeded atomic.Int64
	dropped   atomic.Int64
	exhausted atomic.Int64
	failed    atomic.Int64
	panicked  atomic.Int64
}

func (t *tally) record(status Status) {
	switch status {
	case StatusSuccess:
		t.succeeded.Add(1)
	case StatusDropped:
		t.dropped.Add(1)
	case StatusExhausted:
		t.exhausted.Add(1)
	default:
		t.failed.Add(1)
	}
}

func (t *tally) snapshot() Stats {
	return Stats{
		Succeeded: int(t.succeeded.Load()),
		Dropped:   int(t.dropped.Load()),
		Exhausted: int(t.exhausted.Load()),
		Failed:    int(t.failed.Load()),
		Panicked:  int(t.panicked.Load()),
	}
}
