package main

import (
	"context"
	"time"

	"ledsense-go/bus"
	"ledsense-go/services/config"
	"ledsense-go/services/sampler"
	"ledsense-go/services/telemetry"
)

// deviceID selects the embedded config. "pico" senses a bare analog input
// on GP27; "pico-lux" uses a BH1750 on i2c0 instead.
const deviceID = "pico"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot:", deviceID)

	ctx := context.Background()
	b := bus.NewBus(8)

	// Config first: services block on their retained config documents.
	config.New(deviceID).Start(b.NewConnection("config"))

	go sampler.Run(ctx, b.NewConnection("sampler"))

	tele := &telemetry.Service{}
	_ = tele.Start(ctx, b.NewConnection("telemetry"))

	select {} // services own the work from here
}
