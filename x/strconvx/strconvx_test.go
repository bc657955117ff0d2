package strconvx

import "testing"

func TestItoa(t *testing.T) {
	for _, c := range []struct {
		v    int
		want string
	}{
		{0, "0"}, {1, "1"}, {-1, "-1"}, {42, "42"}, {-99999, "-99999"},
	} {
		if got := Itoa(c.v); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestUtoa(t *testing.T) {
	for _, c := range []struct {
		v    uint64
		want string
	}{
		{0, "0"}, {7, "7"}, {255, "255"}, {18446744073709551615, "18446744073709551615"},
	} {
		if got := Utoa(c.v); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}
