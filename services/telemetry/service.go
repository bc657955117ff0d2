package telemetry

import (
	"context"
	"time"

	"ledsense-go/bus"
	"ledsense-go/internal/platform"
	"ledsense-go/internal/util"
	"ledsense-go/types"
	"ledsense-go/x/strconvx"
)

var (
	topicConfig = bus.T("config", "telemetry")
	topicStats  = bus.T("sampler", "stats")
)

// Service prints a periodic one-line summary of the sampler's state on the
// diagnostic console.
type Service struct {
	Console platform.Console // nil => platform default
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfig)
	defer conn.Unsubscribe(cfgSub)
	statsSub := conn.Subscribe(topicStats)
	defer conn.Unsubscribe(statsSub)

	out := s.Console
	if out == nil {
		out = platform.NewConsole()
	}

	var last types.Stats
	have := false

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: telemetry service stopping")
			return
		case m := <-statsSub.Channel():
			if st, ok := m.Payload.(types.Stats); ok {
				last = st
				have = true
			}
		case <-tick.C:
			if !have {
				continue
			}
			out.WriteLine("avg=" + strconvx.Utoa(uint64(last.Average)) +
				" duty=" + strconvx.Utoa(uint64(last.Duty)) +
				" drained=" + strconvx.Utoa(uint64(last.Drained)) +
				" dropped=" + strconvx.Utoa(uint64(last.Dropped)))
		case m := <-cfgSub.Channel():
			var cfg types.TelemetryConfig
			if err := util.DecodeJSON(m.Payload, &cfg); err != nil {
				println("Error: telemetry: bad config:", err.Error())
				continue
			}
			if cfg.IntervalMs > 0 {
				tick.Reset(time.Duration(cfg.IntervalMs) * time.Millisecond)
			}
		}
	}
}

// Start launches the telemetry service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
