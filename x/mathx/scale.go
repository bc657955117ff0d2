package mathx

// ScaleU32 maps x in [0,inMax] to [0,outMax] with 64-bit intermediates,
// multiplying before dividing so no precision is thrown away up front.
// Inputs above inMax clamp to outMax.
func ScaleU32(x, inMax, outMax uint32) uint32 {
	if inMax == 0 {
		return 0
	}
	if x > inMax {
		return outMax
	}
	return uint32(uint64(x) * uint64(outMax) / uint64(inMax))
}
