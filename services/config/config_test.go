package config

import (
	"testing"
	"time"

	"ledsense-go/bus"
)

func TestConfig_PublishEmbedded_RetainedPerSection(t *testing.T) {
	b := bus.NewBus(16)
	conn := b.NewConnection("test-config")

	svc := New("pico")
	svc.Configs = map[string][]byte{
		"pico": []byte(`{
			"sampler": {"window": 50},
			"telemetry": {"interval_ms": 500}
		}`),
	}
	svc.Start(conn)

	// Retained messages must arrive on late subscription.
	deadline := time.Now().Add(600 * time.Millisecond)
	var sampler, telemetry map[string]any
	for (sampler == nil || telemetry == nil) && time.Now().Before(deadline) {
		if sampler == nil {
			sampler = retainedMap(conn, bus.T("config", "sampler"))
		}
		if telemetry == nil {
			telemetry = retainedMap(conn, bus.T("config", "telemetry"))
		}
		time.Sleep(10 * time.Millisecond)
	}

	if sampler == nil {
		t.Fatal("missing retained config/sampler")
	}
	if w, ok := sampler["window"].(float64); !ok || w != 50 {
		t.Fatalf("sampler window = %#v, want 50", sampler["window"])
	}
	if telemetry == nil {
		t.Fatal("missing retained config/telemetry")
	}
	if iv, ok := telemetry["interval_ms"].(float64); !ok || iv != 500 {
		t.Fatalf("telemetry interval_ms = %#v, want 500", telemetry["interval_ms"])
	}
}

func TestConfig_EmbeddedDefaultsCoverBothProfiles(t *testing.T) {
	for _, device := range []string{"pico", "pico-lux"} {
		b := bus.NewBus(8)
		conn := b.NewConnection("test-config")
		New(device).Start(conn)

		deadline := time.Now().Add(600 * time.Millisecond)
		var sampler map[string]any
		for sampler == nil && time.Now().Before(deadline) {
			sampler = retainedMap(conn, bus.T("config", "sampler"))
			time.Sleep(10 * time.Millisecond)
		}
		if sampler == nil {
			t.Fatalf("%s: missing retained config/sampler", device)
		}
		if w, ok := sampler["window"].(float64); !ok || w != 100 {
			t.Fatalf("%s: window = %#v, want 100", device, sampler["window"])
		}
	}
}

func TestConfig_UnknownDevice(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-config")

	// Unknown device: nothing must be published.
	New("no-such-board").Start(conn)
	time.Sleep(50 * time.Millisecond)

	if m := retainedMap(conn, bus.T("config", "sampler")); m != nil {
		t.Fatalf("unexpected retained config: %#v", m)
	}
}

// retainedMap subscribes, grabs an immediately-delivered retained map if
// present, and unsubscribes.
func retainedMap(conn *bus.Connection, topic bus.Topic) map[string]any {
	sub := conn.Subscribe(topic)
	defer conn.Unsubscribe(sub)
	select {
	case m := <-sub.Channel():
		v, _ := m.Payload.(map[string]any)
		return v
	case <-time.After(20 * time.Millisecond):
		return nil
	}
}
