package platform

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/bh1750"

	"ledsense-go/types"
	"ledsense-go/x/mathx"
)

// newBH1750Source polls a BH1750 ambient-light sensor over I²C and feeds
// its raw 16-bit counts, normalised to the 12-bit sample range, through
// the same pending-queue capability as the bare ADC.
func newBH1750Source(bus drivers.I2C, p types.SourceParams) *PolledSource {
	dev := bh1750.New(bus)
	if p.Addr != 0 {
		dev.Address = p.Addr
	}
	dev.Configure()
	return newRawSource(&dev, p)
}

// rawReader is the slice of the driver the source needs; tests script it.
type rawReader interface {
	RawSensorData() uint16
}

func newRawSource(r rawReader, p types.SourceParams) *PolledSource {
	// BH1750 high-res conversions take ~120ms; cap the poll rate.
	hz := mathx.Clamp(p.SampleHz, 1, 10)
	return NewPolledSource(func() uint16 { return r.RawSensorData() >> 4 }, hz, p.Queue)
}
