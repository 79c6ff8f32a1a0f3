/*
Package heatshrink implements a streaming, embedded-friendly LZSS-style
byte compressor and decompressor with a bit-packed wire format and tunable
window/lookahead sizes.

The codec is driven by a poll-based contract instead of io.Reader/io.Writer:
the caller owns all buffers and pumps Sink, Poll, and Finish to completion.
This keeps the codec allocation-free after construction, which is the point
of the design — it is meant to run on memory-constrained targets as
comfortably as on a server.

# Streaming

	enc, err := heatshrink.NewEncoder(8, 4)
	if err != nil {
		// invalid (window, lookahead) pair
	}
	out := make([]byte, 256)
	for len(input) > 0 {
		_, n := enc.Sink(input)
		input = input[n:]
		for {
			status, n := enc.Poll(out)
			compressed = append(compressed, out[:n]...)
			if status != heatshrink.StatusMore {
				break
			}
		}
	}
	for {
		if enc.Finish() == heatshrink.StatusDone {
			break
		}
		// drain remaining output with Poll, as above
	}

Decoding follows the same sink/poll/finish shape with [Decoder]. A stream
encoded with window/lookahead parameters (W, L) can only be decoded with
the same (W, L); the format carries no header, so the parameters are the
caller's responsibility to transport out of band.

# One-shot and io helpers

[EncodeAll] and [DecodeAll] drive the streaming API over an in-memory byte
slice for callers who don't need incremental control. [NewReader] and
[NewWriter] adapt the codec to io.Reader/io.Writer for callers who do want
to stream but prefer the standard library's I/O interfaces over the raw
poll contract.
*/
package heatshrink
