package sampler

import (
	"context"
	"time"

	"ledsense-go/bus"
	"ledsense-go/errcode"
	"ledsense-go/internal/platform"
	"ledsense-go/internal/util"
	"ledsense-go/types"
	"ledsense-go/x/mathx"
)

var (
	topicConfig  = bus.T("config", "sampler")
	topicStats   = bus.T("sampler", "stats")
	topicReadNow = bus.T("sampler", "control", "read_now")
	topicSetWin  = bus.T("sampler", "control", "set_window")
)

// Service drains the pending-sample queue into the rolling window and
// drives the duty output from the windowed average, one pass per Step.
type Service struct {
	cfg types.SamplerConfig
	src platform.Source
	snk platform.Sink
	win *Window

	drained uint32
	average uint16
	duty    uint32
}

// New validates cfg, applies defaults, and binds the collaborators.
func New(cfg types.SamplerConfig, src platform.Source, snk platform.Sink) (*Service, error) {
	if src == nil || snk == nil {
		return nil, errcode.InvalidParams
	}
	if cfg.Window == 0 {
		cfg.Window = 100
	}
	if cfg.PollIntervalMs == 0 {
		cfg.PollIntervalMs = 1
	}
	win, err := NewWindow(cfg.Window)
	if err != nil {
		return nil, err
	}
	return &Service{cfg: cfg, src: src, snk: snk, win: win}, nil
}

// Step runs one pass of the loop: drain everything currently pending into
// the window (oldest first), recompute the average, rescale, emit.
// Returns how many samples were consumed. Never blocks: only the count the
// queue reported at entry is read.
func (s *Service) Step() int {
	n := s.src.Len()
	for i := 0; i < n; i++ {
		s.win.Push(s.src.Read())
	}
	s.drained += uint32(n)

	s.average = s.win.Average()
	// Multiply-then-divide keeps the full input resolution; the average
	// never exceeds SampleMax, so the result never exceeds Top.
	s.duty = mathx.ScaleU32(uint32(s.average), types.SampleMax, s.snk.Top())
	s.snk.Set(s.duty)
	return n
}

// Reading returns the most recently computed average and duty.
func (s *Service) Reading() types.Reading {
	return types.Reading{Average: s.average, Duty: s.duty}
}

// Stats snapshots the loop counters.
func (s *Service) Stats() types.Stats {
	return types.Stats{
		Average: s.average,
		Duty:    s.duty,
		Drained: s.drained,
		Dropped: s.src.Dropped(),
		TS:      time.Now().UnixNano(),
	}
}

// setWindow replaces the window, restarting the warm-up transient.
func (s *Service) setWindow(n int) error {
	win, err := NewWindow(n)
	if err != nil {
		return err
	}
	s.win = win
	s.cfg.Window = n
	return nil
}

// Run is the service loop: poll-driven stepping plus bus housekeeping
// (periodic retained stats, control verbs, live config adjustments).
// The collaborators are owned by this goroutine; nothing else mutates them.
func (s *Service) Run(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfig)
	readSub := conn.Subscribe(topicReadNow)
	setSub := conn.Subscribe(topicSetWin)
	defer conn.Unsubscribe(cfgSub)
	defer conn.Unsubscribe(readSub)
	defer conn.Unsubscribe(setSub)

	poll := time.NewTicker(time.Duration(s.cfg.PollIntervalMs) * time.Millisecond)
	defer poll.Stop()

	statsEvery := time.Duration(s.cfg.StatsIntervalMs) * time.Millisecond
	stats := time.NewTimer(time.Hour)
	if statsEvery > 0 {
		util.ResetTimer(stats, statsEvery)
	}
	defer stats.Stop()

	// Retained from the start: late subscribers see the counters, and a
	// caller that observes any stats document knows the control topics
	// above are already subscribed.
	conn.Publish(&bus.Message{Topic: topicStats, Payload: s.Stats(), Retained: true})

	for {
		select {
		case <-ctx.Done():
			println("Info: sampler service stopping")
			return

		case <-poll.C:
			s.Step()

		case <-stats.C:
			conn.Publish(&bus.Message{Topic: topicStats, Payload: s.Stats(), Retained: true})
			if statsEvery > 0 {
				util.ResetTimer(stats, statsEvery)
			}

		case m := <-readSub.Channel():
			s.Step() // answer with a fresh value, not the last poll's
			conn.Respond(m, s.Reading())

		case m := <-setSub.Channel():
			var p types.SetWindow
			if err := util.DecodeJSON(m.Payload, &p); err != nil {
				conn.Respond(m, types.ErrorReply{Error: string(errcode.InvalidPayload)})
				continue
			}
			if err := s.setWindow(p.Window); err != nil {
				conn.Respond(m, types.ErrorReply{Error: string(errcode.Of(err))})
				continue
			}
			conn.Respond(m, types.OKReply{OK: true})

		case m := <-cfgSub.Channel():
			// Live adjustments: window and cadence only. Pins are fixed
			// at boot; changing them needs a power cycle.
			var cfg types.SamplerConfig
			if err := util.DecodeJSON(m.Payload, &cfg); err != nil {
				println("Error: sampler: bad config:", err.Error())
				continue
			}
			if cfg.Window > 0 && cfg.Window != s.cfg.Window {
				_ = s.setWindow(cfg.Window)
			}
			if cfg.PollIntervalMs > 0 && cfg.PollIntervalMs != s.cfg.PollIntervalMs {
				s.cfg.PollIntervalMs = cfg.PollIntervalMs
				poll.Reset(time.Duration(cfg.PollIntervalMs) * time.Millisecond)
			}
			if cfg.StatsIntervalMs != s.cfg.StatsIntervalMs {
				s.cfg.StatsIntervalMs = cfg.StatsIntervalMs
				statsEvery = time.Duration(cfg.StatsIntervalMs) * time.Millisecond
				if statsEvery > 0 {
					util.ResetTimer(stats, statsEvery)
				}
			}
		}
	}
}

// Run waits for the retained "config/sampler" document, brings up the
// platform collaborators, and runs the service loop. Bring-up failure is
// fatal: there is no recovering from a misconfigured peripheral.
func Run(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfig)

	var cfg types.SamplerConfig
	select {
	case <-ctx.Done():
		conn.Unsubscribe(cfgSub)
		return
	case m := <-cfgSub.Channel():
		if err := util.DecodeJSON(m.Payload, &cfg); err != nil {
			println("Fatal: sampler: bad config:", err.Error())
			conn.Unsubscribe(cfgSub)
			return
		}
	}
	conn.Unsubscribe(cfgSub)

	src, err := platform.NewSource(cfg.Source)
	if err != nil {
		println("Fatal: sampler: source:", err.Error())
		return
	}
	snk, err := platform.NewSink(cfg.Sink)
	if err != nil {
		println("Fatal: sampler: sink:", err.Error())
		return
	}
	svc, err := New(cfg, src, snk)
	if err != nil {
		println("Fatal: sampler:", err.Error())
		return
	}

	if st, ok := src.(platform.Starter); ok {
		st.Start(ctx)
	}
	svc.Run(ctx, conn)
}
