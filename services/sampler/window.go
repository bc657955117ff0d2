package sampler

import "ledsense-go/errcode"

// MaxWindow bounds the window length so the running sum cannot overflow
// uint32 even at full-scale 12-bit samples.
const MaxWindow = 4096

// Window is the fixed-length rolling window of samples. Storage is exactly
// the active length: the cursor advances modulo W, so a write can never
// land outside the averaged range. All W slots take part in the average
// from the start; the zero-initialised slots bias it low until W real
// samples have arrived, which is the accepted warm-up behaviour.
type Window struct {
	buf    []uint16
	cursor int
	sum    uint32
}

// NewWindow allocates a zeroed window of length w in [1, MaxWindow].
func NewWindow(w int) (*Window, error) {
	if w <= 0 || w > MaxWindow {
		return nil, errcode.InvalidParams
	}
	return &Window{buf: make([]uint16, w)}, nil
}

// Push overwrites the slot at the cursor and advances it, maintaining the
// running sum (add the newcomer, retire the overwritten sample).
func (w *Window) Push(s uint16) {
	w.sum -= uint32(w.buf[w.cursor])
	w.sum += uint32(s)
	w.buf[w.cursor] = s
	w.cursor = (w.cursor + 1) % len(w.buf)
}

// Average is the floor of sum over the full window length. W is always the
// divisor, warm-up included. Idempotent between pushes.
func (w *Window) Average() uint16 {
	return uint16(w.sum / uint32(len(w.buf)))
}

// Len returns the window length W.
func (w *Window) Len() int { return len(w.buf) }

// Cursor returns the next slot to be overwritten.
func (w *Window) Cursor() int { return w.cursor }

// Snapshot copies the window contents in storage order.
func (w *Window) Snapshot() []uint16 {
	out := make([]uint16, len(w.buf))
	copy(out, w.buf)
	return out
}
