package platform

import (
	"context"
	"time"

	"ledsense-go/x/mathx"
	"ledsense-go/x/ringx"
)

// PolledSource adapts a non-blocking read function into a Source by
// sampling it at a fixed rate into an SPSC ring. It stands in for a
// hardware FIFO in free-running mode: the capture goroutine is the
// producer clocked at the configured rate, the drain loop the consumer.
type PolledSource struct {
	read     func() uint16
	ring     *ringx.Ring
	interval time.Duration
}

// NewPolledSource builds a source reading `read` at `hz` into a ring of
// at least `queue` entries (rounded up to a power of two).
func NewPolledSource(read func() uint16, hz uint32, queue int) *PolledSource {
	if hz == 0 {
		hz = 1000
	}
	if queue < 2 {
		queue = 8
	}
	size := 2
	for size < queue {
		size <<= 1
	}
	return &PolledSource{
		read:     read,
		ring:     ringx.New(size),
		interval: time.Duration(mathx.RoundDiv(uint64(time.Second), uint64(hz))),
	}
}

// Start launches the capture goroutine. It stops when ctx is cancelled;
// on MCU builds the context never is.
func (s *PolledSource) Start(ctx context.Context) {
	go func() {
		tick := time.NewTicker(s.interval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				s.ring.TryPush(s.read())
			}
		}
	}()
}

func (s *PolledSource) Len() int { return s.ring.Len() }

func (s *PolledSource) Read() uint16 {
	v, _ := s.ring.Pop()
	return v
}

func (s *PolledSource) Dropped() uint32 { return s.ring.Dropped() }
