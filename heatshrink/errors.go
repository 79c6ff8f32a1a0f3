package heatshrink

import "errors"

// Sentinel errors returned by the codec constructors. Construction fails
// closed: on any of these, no Encoder or Decoder is returned.
var (
	// ErrWindowBits is returned when the window exponent is outside [MinWindowBits, MaxWindowBits].
	ErrWindowBits = errors.New("heatshrink: window bits out of range")
	// ErrLookaheadBits is returned when the lookahead exponent is outside [MinLookaheadBits, windowBits).
	ErrLookaheadBits = errors.New("heatshrink: lookahead bits out of range")
	// ErrInputBufferSize is returned when the decoder's input buffer capacity is zero.
	ErrInputBufferSize = errors.New("heatshrink: decoder input buffer size must be at least 1")
)
