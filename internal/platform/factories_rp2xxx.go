//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"sync"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"

	"ledsense-go/errcode"
	"ledsense-go/types"
	"ledsense-go/x/mathx"
)

// ----------------------------- ADC (RP2) --------------------------------------

var adcInit sync.Once

// newADCSource configures the pin as an analog input and free-runs it at
// the configured rate. machine.ADC.Get is left-justified 16-bit; shift to
// the native 12 bits.
func newADCSource(p types.SourceParams) (Source, error) {
	if p.Pin < 26 || p.Pin > 29 {
		return nil, errcode.UnknownPin
	}
	adcInit.Do(machine.InitADC)
	a := machine.ADC{Pin: machine.Pin(p.Pin)}
	if err := a.Configure(machine.ADCConfig{}); err != nil {
		return nil, err
	}
	return NewPolledSource(func() uint16 { return a.Get() >> 4 }, p.SampleHz, p.Queue), nil
}

// ----------------------------- I²C (RP2) --------------------------------------

var (
	i2cOnce  sync.Once
	i2cBuses map[string]drivers.I2C
)

// i2cByID configures i2c0/i2c1 with board-default pins at 400 kHz on
// first use.
func i2cByID(id string) (drivers.I2C, bool) {
	i2cOnce.Do(func() {
		i2cBuses = map[string]drivers.I2C{}

		b0 := machine.I2C0
		if err := b0.Configure(machine.I2CConfig{
			Frequency: 400 * machine.KHz,
			SDA:       machine.I2C0_SDA_PIN,
			SCL:       machine.I2C0_SCL_PIN,
		}); err == nil {
			i2cBuses["i2c0"] = b0
		}

		b1 := machine.I2C1
		if err := b1.Configure(machine.I2CConfig{
			Frequency: 400 * machine.KHz,
			SDA:       machine.I2C1_SDA_PIN,
			SCL:       machine.I2C1_SCL_PIN,
		}); err == nil {
			i2cBuses["i2c1"] = b1
		}
	})
	b, ok := i2cBuses[id]
	return b, ok
}

// ----------------------------- PWM (RP2) --------------------------------------

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Controller handle for a pin's slice. On RP2 the slice is (pin/2)%8.
func pwmGroupForPin(pin int) pwmCtrl {
	switch (pin / 2) % 8 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// rp2Sink presents the configured logical top to callers and rescales to
// the controller's actual wrap value on write.
type rp2Sink struct {
	ctrl  pwmCtrl
	ch    uint8
	top   uint32 // logical ceiling (config)
	hwTop uint32 // controller.Top() after Configure
}

func newPWMSink(p types.SinkParams) (Sink, error) {
	freq := p.FreqHz
	if freq == 0 {
		freq = 500
	}
	ctrl := pwmGroupForPin(p.Pin)
	if err := ctrl.Configure(machine.PWMConfig{Period: mathx.RoundDiv(uint64(1e9), freq)}); err != nil {
		return nil, err
	}
	ch, err := ctrl.Channel(machine.Pin(p.Pin))
	if err != nil {
		return nil, err
	}
	return &rp2Sink{ctrl: ctrl, ch: ch, top: p.Top, hwTop: ctrl.Top()}, nil
}

func (s *rp2Sink) Top() uint32 { return s.top }

func (s *rp2Sink) Set(duty uint32) {
	if s.top == 0 || s.hwTop == 0 {
		return
	}
	duty = mathx.Min(duty, s.top)
	s.ctrl.Set(s.ch, uint32(uint64(duty)*uint64(s.hwTop)/uint64(s.top)))
}

// ----------------------------- Console (RP2) -----------------------------------

type uartConsole struct{ u *uartx.UART }

func (c uartConsole) WriteLine(s string) {
	_, _ = c.u.Write([]byte(s))
	_, _ = c.u.Write([]byte("\r\n"))
}

var (
	consoleOnce sync.Once
	console     Console
)

// NewConsole returns the UART0 diagnostic console (115200 8N1, default pins).
func NewConsole() Console {
	consoleOnce.Do(func() {
		hw := uartx.UART0
		_ = hw.Configure(uartx.UARTConfig{BaudRate: 115200})
		console = uartConsole{u: hw}
	})
	return console
}
