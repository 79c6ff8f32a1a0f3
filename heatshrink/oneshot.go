package heatshrink

// EncodeAll compresses all of data in one call, driving the streaming
// Encoder API to completion. It adds no new algorithm over Sink/Poll/Finish
// — it exists so callers who don't need incremental control don't have to
// hand-write the pump loop themselves.
func EncodeAll(windowBits, lookaheadBits uint8, data []byte) ([]byte, error) {
	enc, err := NewEncoder(windowBits, lookaheadBits)
	if err != nil {
		return nil, err
	}

	scratch := make([]byte, 1<<windowBits)
	var out []byte

	drain := func() {
		for {
			status, n := enc.Poll(scratch)
			out = append(out, scratch[:n]...)
			if status != StatusMore {
				return
			}
		}
	}

	for len(data) > 0 {
		_, n := enc.Sink(data)
		data = data[n:]
		drain()
	}
	for enc.Finish() != StatusDone {
		drain()
	}
	return out, nil
}

// DecodeAll decompresses all of data in one call, driving the streaming
// Decoder API to completion. ibs sizes the decoder's internal input ring;
// windowBits/lookaheadBits must match the parameters used to encode.
func DecodeAll(ibs uint16, windowBits, lookaheadBits uint8, data []byte) ([]byte, error) {
	dec, err := NewDecoder(ibs, windowBits, lookaheadBits)
	if err != nil {
		return nil, err
	}

	scratch := make([]byte, 1<<windowBits)
	var out []byte

	drain := func() {
		for {
			status, n := dec.Poll(scratch)
			out = append(out, scratch[:n]...)
			if status != StatusMore {
				return
			}
		}
	}

	for len(data) > 0 {
		status, n := dec.Sink(data)
		data = data[n:]
		if status == StatusFull {
			drain()
		}
	}
	for dec.Finish() != StatusDone {
		drain()
	}
	return out, nil
}
