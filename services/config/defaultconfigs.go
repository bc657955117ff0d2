package config

// -----------------------------------------------------------------------------
// Embedded configuration, keyed by device ID.
// -----------------------------------------------------------------------------

// Pico with the sense input on GP27 (ADC1) and the onboard LED on GP25,
// free-running at 1 ksps into an 8-deep queue, 100-sample window.
const cfgPico = `{
  "sampler": {
    "window": 100,
    "poll_interval_ms": 1,
    "stats_interval_ms": 1000,
    "source": {
      "kind": "adc",
      "pin": 27,
      "sample_hz": 1000,
      "queue": 8
    },
    "sink": {
      "pin": 25,
      "freq_hz": 500,
      "top": 25000
    }
  },
  "telemetry": {
    "interval_ms": 1000
  }
}`

// Same board wired with a BH1750 ambient-light sensor on i2c0 instead of
// the bare analog input.
const cfgPicoLux = `{
  "sampler": {
    "window": 100,
    "poll_interval_ms": 1,
    "stats_interval_ms": 1000,
    "source": {
      "kind": "bh1750",
      "bus": "i2c0",
      "sample_hz": 10,
      "queue": 8
    },
    "sink": {
      "pin": 25,
      "freq_hz": 500,
      "top": 25000
    }
  },
  "telemetry": {
    "interval_ms": 1000
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico":     []byte(cfgPico),
	"pico-lux": []byte(cfgPicoLux),
}
