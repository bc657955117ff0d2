package platform

import (
	"context"
	"testing"
	"time"

	"ledsense-go/errcode"
	"ledsense-go/types"
)

// Compile-time checks.
var (
	_ Source  = (*PolledSource)(nil)
	_ Source  = (*FakeSource)(nil)
	_ Starter = (*PolledSource)(nil)
	_ Sink    = (*RecordingSink)(nil)
)

func TestPolledSourceCapturesInOrder(t *testing.T) {
	next := uint16(100)
	src := NewPolledSource(func() uint16 { next++; return next }, 1000, 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src.Start(ctx)

	deadline := time.Now().Add(time.Second)
	for src.Len() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if src.Len() < 3 {
		t.Fatalf("captured %d samples, want >= 3", src.Len())
	}

	prev := src.Read()
	got := src.Read()
	if got != prev+1 {
		t.Fatalf("samples out of order: %d then %d", prev, got)
	}
}

func TestPolledSourceOverflowIsCounted(t *testing.T) {
	src := NewPolledSource(func() uint16 { return 7 }, 1000, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src.Start(ctx)

	// Never drain: the 2-deep queue must overflow and count drops.
	deadline := time.Now().Add(time.Second)
	for src.Dropped() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if src.Dropped() == 0 {
		t.Fatal("no drops counted on an undrained queue")
	}
	if src.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (full queue)", src.Len())
	}
}

func TestNewSourceDispatch(t *testing.T) {
	if _, err := NewSource(types.SourceParams{Kind: "nope"}); err != errcode.UnknownSource {
		t.Fatalf("unknown kind error = %v, want %v", err, errcode.UnknownSource)
	}
	if _, err := NewSource(types.SourceParams{Kind: "bh1750", Bus: "i2c9"}); err != errcode.UnknownSource {
		t.Fatalf("unknown bus error = %v, want %v", err, errcode.UnknownSource)
	}
	if _, err := NewSource(types.SourceParams{}); err != nil {
		t.Fatalf("default kind error: %v", err)
	}
}

func TestHostADCSourceStaysInRange(t *testing.T) {
	src, err := NewSource(types.SourceParams{Kind: "adc", SampleHz: 2000, Queue: 64})
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	src.(Starter).Start(contextWithTestDeadline(t))

	deadline := time.Now().Add(time.Second)
	seen := 0
	for seen < 32 && time.Now().Before(deadline) {
		for src.Len() > 0 {
			v := src.Read()
			if v > types.SampleMax {
				t.Fatalf("sample %d above 12-bit range", v)
			}
			seen++
		}
		time.Sleep(time.Millisecond)
	}
	if seen < 32 {
		t.Fatalf("only %d samples captured", seen)
	}
}

func TestBH1750SourceNormalisesTo12Bit(t *testing.T) {
	fake := &FakeI2C{}
	fake.SetRaw(0xFFFF)

	src := newBH1750Source(fake, types.SourceParams{Bus: "i2c0", SampleHz: 10, Queue: 8})
	src.Start(contextWithTestDeadline(t))

	deadline := time.Now().Add(2 * time.Second)
	for src.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if src.Len() == 0 {
		t.Fatal("no sample captured from fake sensor")
	}
	if got := src.Read(); got != types.SampleMax {
		t.Fatalf("sample = %d, want %d", got, types.SampleMax)
	}
}

func TestNewSinkRejectsZeroTop(t *testing.T) {
	if _, err := NewSink(types.SinkParams{Top: 0}); err != errcode.InvalidParams {
		t.Fatalf("err = %v, want %v", err, errcode.InvalidParams)
	}
	s, err := NewSink(types.SinkParams{Pin: 25, Top: 25000})
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	if s.Top() != 25000 {
		t.Fatalf("Top = %d", s.Top())
	}
}

func contextWithTestDeadline(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
