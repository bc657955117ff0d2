package ringx

import "sync/atomic"

// Ring is a single-producer, single-consumer queue of raw ADC samples.
// It stands in for the peripheral's hardware FIFO: the capture side pushes
// at its own clocked rate, the drain side pops whatever is pending. A full
// ring never blocks the producer; the sample is counted as dropped instead,
// so queue overflow is observable rather than silent.
type Ring struct {
	buf  []uint16
	mask uint32

	rd      atomic.Uint32 // consumer index (monotonic)
	wr      atomic.Uint32 // producer index (monotonic)
	dropped atomic.Uint32
}

// New allocates a Ring of the given power-of-two size (>= 2).
func New(size int) *Ring {
	if size < 2 || (size&(size-1)) != 0 {
		panic("ringx: size must be power of two >= 2")
	}
	return &Ring{
		buf:  make([]uint16, size),
		mask: uint32(size - 1),
	}
}

// Len reports how many samples are pending. Safe from either side.
func (r *Ring) Len() int {
	return int(r.wr.Load() - r.rd.Load())
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.buf) }

// TryPush appends one sample. Producer side only.
// Returns false (and counts a drop) when the ring is full.
func (r *Ring) TryPush(s uint16) bool {
	wr := r.wr.Load()
	if wr-r.rd.Load() >= uint32(len(r.buf)) {
		r.dropped.Add(1)
		return false
	}
	r.buf[wr&r.mask] = s
	r.wr.Store(wr + 1)
	return true
}

// Pop removes and returns the oldest pending sample. Consumer side only.
func (r *Ring) Pop() (uint16, bool) {
	rd := r.rd.Load()
	if rd == r.wr.Load() {
		return 0, false
	}
	s := r.buf[rd&r.mask]
	r.rd.Store(rd + 1)
	return s, true
}

// Dropped returns the cumulative count of samples lost to overflow.
func (r *Ring) Dropped() uint32 {
	return r.dropped.Load()
}
