//go:build rp2040 || rp2350

package strconvx

// Minimal allocation-aware decimal formatting for MCU builds.

func Itoa(i int) string {
	if i < 0 {
		return "-" + Utoa(uint64(-i))
	}
	return Utoa(uint64(i))
}

func Utoa(u uint64) string {
	if u == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	return string(buf[i:])
}
