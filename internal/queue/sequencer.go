package queue

// sequencer issues per-shop join positions. Positions are monotonically
// increasing and never reused, even after entries leave the queue.
// Callers must hold the owning shopQueue lock.
type sequencer struct {
	last int64
}

func (s *sequencer) Next() int64 {
	s.last++
	return s.last
}
