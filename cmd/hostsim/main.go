// cmd/hostsim runs the full service stack on the host: the "adc" source is
// a synthetic wave, so the printed duty sweeps up and down as the LED
// would. Useful for eyeballing the loop without a board attached.
package main

import (
	"context"
	"time"

	"ledsense-go/bus"
	"ledsense-go/services/config"
	"ledsense-go/services/sampler"
	"ledsense-go/services/telemetry"
	"ledsense-go/types"
)

func main() {
	ctx := context.Background()
	b := bus.NewBus(8)

	config.New("pico").Start(b.NewConnection("config"))
	go sampler.Run(ctx, b.NewConnection("sampler"))

	tele := &telemetry.Service{}
	_ = tele.Start(ctx, b.NewConnection("telemetry"))

	// Poke the control surface once the loop is warm.
	cli := b.NewConnection("cli")
	time.Sleep(2 * time.Second)

	rctx, cancel := context.WithTimeout(ctx, time.Second)
	reply, err := cli.RequestWait(rctx, cli.NewMessage(bus.T("sampler", "control", "read_now"), nil, false))
	cancel()
	if err != nil {
		println("read_now error:", err.Error())
	} else if r, ok := reply.Payload.(types.Reading); ok {
		println("read_now: average", r.Average, "duty", r.Duty)
	}

	select {}
}
