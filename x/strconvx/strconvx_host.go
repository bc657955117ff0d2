//go:build !rp2040 && !rp2350

package strconvx

import "strconv"

// Signature parity with strconv; delegate straight through on the host.

func Itoa(i int) string    { return strconv.Itoa(i) }
func Utoa(u uint64) string { return strconv.FormatUint(u, 10) }
