//go:build !rp2040 && !rp2350

package platform

import (
	"sync"

	"tinygo.org/x/drivers"

	"ledsense-go/types"
	"ledsense-go/x/ringx"
)

// ----------------------------- ADC (host) ------------------------------------

// Host builds have no ADC; the "adc" source is a synthetic triangle wave
// sweeping the full 12-bit range, so the simulator visibly ramps the LED.
func newADCSource(p types.SourceParams) (Source, error) {
	var v uint16
	var down bool
	gen := func() uint16 {
		const step = 16
		if down {
			if v < step {
				down = false
			} else {
				v -= step
			}
		} else {
			if v >= types.SampleMax-step {
				down = true
			} else {
				v += step
			}
		}
		return v
	}
	return NewPolledSource(gen, p.SampleHz, p.Queue), nil
}

// ----------------------------- I²C (host) ------------------------------------

// FakeI2C implements tinygo drivers.I2C for host-side tests. Reads are
// answered with Raw as a big-endian 16-bit value, matching the BH1750
// data phase; writes are recorded.
type FakeI2C struct {
	mu     sync.Mutex
	Raw    uint16
	LastTx struct {
		Addr uint16
		W    []byte
		Rn   int
	}
}

func (h *FakeI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	if len(r) >= 2 {
		r[0] = byte(h.Raw >> 8)
		r[1] = byte(h.Raw)
	}
	return nil
}

func (h *FakeI2C) SetRaw(v uint16) {
	h.mu.Lock()
	h.Raw = v
	h.mu.Unlock()
}

var hostI2C = map[string]drivers.I2C{
	"i2c0": &FakeI2C{},
	"i2c1": &FakeI2C{},
}

func i2cByID(id string) (drivers.I2C, bool) {
	b, ok := hostI2C[id]
	return b, ok
}

// ----------------------------- PWM (host) ------------------------------------

// RecordingSink captures duty writes for tests and the simulator.
type RecordingSink struct {
	mu   sync.Mutex
	top  uint32
	last uint32
	sets int
}

func NewRecordingSink(top uint32) *RecordingSink { return &RecordingSink{top: top} }

func (s *RecordingSink) Top() uint32 { return s.top }

func (s *RecordingSink) Set(duty uint32) {
	s.mu.Lock()
	s.last = duty
	s.sets++
	s.mu.Unlock()
}

// Last returns the most recent duty and the total number of writes.
func (s *RecordingSink) Last() (uint32, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.sets
}

func newPWMSink(p types.SinkParams) (Sink, error) {
	return NewRecordingSink(p.Top), nil
}

// ----------------------------- Console (host) ---------------------------------

type hostConsole struct{}

func (hostConsole) WriteLine(s string) { println(s) }

// NewConsole returns the host diagnostic console (stdout).
func NewConsole() Console { return hostConsole{} }

// ----------------------------- Test source ------------------------------------

// FakeSource is a manually-fed Source for tests: the test is the producer.
type FakeSource struct {
	ring *ringx.Ring
}

// NewFakeSource allocates a fake pending queue of the given power-of-two depth.
func NewFakeSource(queue int) *FakeSource {
	return &FakeSource{ring: ringx.New(queue)}
}

// Push enqueues one pending sample, counting a drop when full.
func (f *FakeSource) Push(s uint16) bool { return f.ring.TryPush(s) }

func (f *FakeSource) Len() int { return f.ring.Len() }

func (f *FakeSource) Read() uint16 {
	v, _ := f.ring.Pop()
	return v
}

func (f *FakeSource) Dropped() uint32 { return f.ring.Dropped() }
