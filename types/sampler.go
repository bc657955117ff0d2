package types

// ------------------------
// Sampler configuration ("config/sampler" topic)
// ------------------------

type SamplerConfig struct {
	Window          int          `json:"window"`            // active window length W, > 0
	PollIntervalMs  uint32       `json:"poll_interval_ms"`  // delay between loop iterations
	StatsIntervalMs uint32       `json:"stats_interval_ms"` // 0 => no periodic stats
	Source          SourceParams `json:"source"`
	Sink            SinkParams   `json:"sink"`
}

// SourceParams selects and configures the pending-sample queue.
type SourceParams struct {
	Kind     string `json:"kind"`      // "adc" (default) or "bh1750"
	Pin      int    `json:"pin"`       // ADC input pin (adc kind)
	SampleHz uint32 `json:"sample_hz"` // free-running capture rate
	Queue    int    `json:"queue"`     // pending-queue depth, power of two

	// bh1750 kind only.
	Bus  string `json:"bus,omitempty"`  // e.g. "i2c0"
	Addr uint16 `json:"addr,omitempty"` // 0 => driver default
}

// SinkParams configures the PWM output.
type SinkParams struct {
	Pin    int    `json:"pin"`
	FreqHz uint64 `json:"freq_hz"`
	Top    uint32 `json:"top"` // duty ceiling (wrap value)
}

// ------------------------
// Sampler bus payloads
// ------------------------

// Stats is published retained on "sampler/stats".
type Stats struct {
	Average uint16 `json:"average"`
	Duty    uint32 `json:"duty"`
	Drained uint32 `json:"drained"` // samples consumed since start
	Dropped uint32 `json:"dropped"` // samples lost to queue overflow since start
	TS      int64  `json:"ts_ns"`
}

// Reading replies to "sampler/control/read_now".
type Reading struct {
	Average uint16 `json:"average"`
	Duty    uint32 `json:"duty"`
}

// SetWindow is the payload for "sampler/control/set_window".
// Applying it zeroes the window, restarting the warm-up transient.
type SetWindow struct {
	Window int `json:"window"`
}

// ------------------------
// Telemetry configuration ("config/telemetry" topic)
// ------------------------

type TelemetryConfig struct {
	IntervalMs uint32 `json:"interval_ms"`
}
