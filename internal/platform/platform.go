// internal/platform/platform.go
//
// The platform package owns peripheral bring-up. Everything above it sees
// hardware through three narrow capabilities: a pending-sample queue, a
// duty-cycle output, and a line console. MCU implementations live behind
// the rp2040/rp2350 build tags; host builds get fakes and a synthetic
// signal so the same services run under `go test` and in the simulator.
package platform

import (
	"context"

	"ledsense-go/errcode"
	"ledsense-go/types"
	"ledsense-go/x/strx"
)

// Source is the sample-source capability: a bounded FIFO fed by the
// peripheral at its own clocked rate.
type Source interface {
	// Len reports how many samples are pending. Non-blocking.
	Len() int
	// Read returns the next pending sample, oldest first.
	// Defined only when Len() > 0 at the time of the last check.
	Read() uint16
	// Dropped is the cumulative count of samples lost to queue overflow.
	Dropped() uint32
}

// Starter is implemented by sources that run their own capture goroutine.
type Starter interface {
	Start(ctx context.Context)
}

// Sink is the duty-cycle output capability.
type Sink interface {
	// Top returns the configured duty ceiling.
	Top() uint32
	// Set applies a duty value in [0, Top]. Fire-and-forget.
	Set(duty uint32)
}

// Console is a line-oriented diagnostic output.
type Console interface {
	WriteLine(s string)
}

// NewSource builds the configured sample source. Kind defaults to "adc".
func NewSource(p types.SourceParams) (Source, error) {
	switch strx.Coalesce(p.Kind, "adc") {
	case "adc":
		return newADCSource(p)
	case "bh1750":
		bus, ok := i2cByID(strx.Coalesce(p.Bus, "i2c0"))
		if !ok {
			return nil, errcode.UnknownSource
		}
		return newBH1750Source(bus, p), nil
	default:
		return nil, errcode.UnknownSource
	}
}

// NewSink builds the PWM output for the given params.
func NewSink(p types.SinkParams) (Sink, error) {
	if p.Top == 0 {
		return nil, errcode.InvalidParams
	}
	return newPWMSink(p)
}
