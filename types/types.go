package types

// ------------------------
// Sample domain
// ------------------------

// Samples are 12-bit, matching the RP2040 ADC. The platform layer
// normalises whatever the hardware hands back into this range.
const (
	SampleBits = 12
	SampleMax  = (1 << SampleBits) - 1 // 4095
)

// ------------------------
// Generic replies
// ------------------------

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
