package heatshrink

import (
	"errors"
	"testing"
)

func TestNewEncoder_InvalidParams(t *testing.T) {
	cases := []struct {
		name          string
		windowBits    uint8
		lookaheadBits uint8
		wantErr       error
	}{
		{"window too small", 3, 3, ErrWindowBits},
		{"window too large", 16, 3, ErrWindowBits},
		{"lookahead too small", 8, 2, ErrLookaheadBits},
		{"lookahead equals window", 8, 8, ErrLookaheadBits},
		{"lookahead exceeds window", 8, 9, ErrLookaheadBits},
		{"min legal pair", MinWindowBits, MinLookaheadBits, nil},
		{"max legal window", MaxWindowBits, 14, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enc, err := NewEncoder(c.windowBits, c.lookaheadBits)
			if c.wantErr == nil {
				if err != nil {
					t.Fatalf("NewEncoder(%d, %d): unexpected error %v", c.windowBits, c.lookaheadBits, err)
				}
				if enc == nil {
					t.Fatalf("NewEncoder(%d, %d): nil encoder with nil error", c.windowBits, c.lookaheadBits)
				}
				return
			}
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("NewEncoder(%d, %d): got err %v, want %v", c.windowBits, c.lookaheadBits, err, c.wantErr)
			}
			if enc != nil {
				t.Fatalf("NewEncoder(%d, %d): expected nil encoder on error", c.windowBits, c.lookaheadBits)
			}
		})
	}
}

func TestEncoder_SinkRejectsOnceFilled(t *testing.T) {
	enc, err := NewEncoder(MinWindowBits, MinLookaheadBits)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	windowSize := 1 << MinWindowBits
	filler := make([]byte, windowSize)
	status, n := enc.Sink(filler)
	if status != StatusOK || n != windowSize {
		t.Fatalf("Sink(fill): got (%v, %d), want (ok, %d)", status, n, windowSize)
	}

	status, n = enc.Sink([]byte{0x01})
	if status != StatusErrorMisuse || n != 0 {
		t.Fatalf("Sink(overflow): got (%v, %d), want (error-misuse, 0)", status, n)
	}
}

func TestEncoder_SinkRejectsAfterFinish(t *testing.T) {
	enc, err := NewEncoder(MinWindowBits, MinLookaheadBits)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	enc.Finish()

	status, n := enc.Sink([]byte{0x01})
	if status != StatusErrorMisuse || n != 0 {
		t.Fatalf("Sink(after finish): got (%v, %d), want (error-misuse, 0)", status, n)
	}
}

func TestEncoder_PollRejectsEmptyBuffer(t *testing.T) {
	enc, err := NewEncoder(MinWindowBits, MinLookaheadBits)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	status, n := enc.Poll(nil)
	if status != StatusErrorMisuse || n != 0 {
		t.Fatalf("Poll(nil): got (%v, %d), want (error-misuse, 0)", status, n)
	}
}

func TestEncoder_FinishEmptyInputDrainsToDoneWithNoOutput(t *testing.T) {
	enc, err := NewEncoder(8, 4)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	if status := enc.Finish(); status != StatusMore && status != StatusDone {
		t.Fatalf("Finish: unexpected status %v", status)
	}

	out := make([]byte, 64)
	total := 0
	for {
		status, n := enc.Poll(out)
		total += n
		if status != StatusMore {
			break
		}
	}
	if enc.Finish() != StatusDone {
		t.Fatalf("Finish after drain: expected done")
	}
	if total != 0 {
		t.Fatalf("compressing empty input produced %d bytes, want 0", total)
	}
}

func TestEncoder_LongRunCompressesSmaller(t *testing.T) {
	data := make([]byte, 1024)
	out, err := EncodeAll(9, 7, data)
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	if len(out) >= len(data) {
		t.Fatalf("compressed a 1024-byte zero run to %d bytes, expected smaller", len(out))
	}
}

func TestEncoder_ShortLiteralRunDoesNotShrink(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x13, 0x57}
	out, err := EncodeAll(8, 4, data)
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	// every byte must be coded as a tag bit plus a literal, so the stream
	// can only be as small as ceil(len(data) * 9 bits / 8).
	minBytes := (len(data)*9 + 7) / 8
	if len(out) < minBytes {
		t.Fatalf("literal-only stream too short: got %d bytes, want >= %d", len(out), minBytes)
	}
}
