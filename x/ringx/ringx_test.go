package ringx

import "testing"

func TestOrderAcrossWrap(t *testing.T) {
	r := New(8)

	// Push/pop an uneven cadence so the indices wrap several times.
	next := uint16(0)
	want := uint16(0)
	for step := 0; step < 500; step++ {
		n := 1 + step%5
		for i := 0; i < n; i++ {
			if !r.TryPush(next) {
				t.Fatalf("unexpected full ring at sample %d", next)
			}
			next++
		}
		for r.Len() > 1 { // leave one behind to keep indices offset
			got, ok := r.Pop()
			if !ok {
				t.Fatal("Pop reported empty with samples pending")
			}
			if got != want {
				t.Fatalf("out of order: got %d, want %d", got, want)
			}
			want++
		}
	}
}

func TestOverflowCountsDrops(t *testing.T) {
	r := New(4)
	for i := 0; i < 4; i++ {
		if !r.TryPush(uint16(i)) {
			t.Fatalf("push %d failed below capacity", i)
		}
	}
	if r.TryPush(99) {
		t.Fatal("push succeeded on a full ring")
	}
	if r.TryPush(100) {
		t.Fatal("push succeeded on a full ring")
	}
	if got := r.Dropped(); got != 2 {
		t.Fatalf("Dropped = %d, want 2", got)
	}
	// The queued samples are intact.
	for i := 0; i < 4; i++ {
		got, ok := r.Pop()
		if !ok || got != uint16(i) {
			t.Fatalf("Pop = %d,%v, want %d,true", got, ok, i)
		}
	}
	if _, ok := r.Pop(); ok {
		t.Fatal("Pop reported a sample on an empty ring")
	}
}

func TestLenTracksBothSides(t *testing.T) {
	r := New(16)
	if r.Len() != 0 {
		t.Fatalf("new ring Len = %d", r.Len())
	}
	for i := 0; i < 10; i++ {
		r.TryPush(uint16(i))
	}
	if r.Len() != 10 {
		t.Fatalf("Len = %d, want 10", r.Len())
	}
	r.Pop()
	r.Pop()
	if r.Len() != 8 {
		t.Fatalf("Len = %d, want 8", r.Len())
	}
	if r.Cap() != 16 {
		t.Fatalf("Cap = %d, want 16", r.Cap())
	}
}

func TestNewPanicsOnBadSize(t *testing.T) {
	for _, size := range []int{0, 1, 3, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", size)
				}
			}()
			New(size)
		}()
	}
}
