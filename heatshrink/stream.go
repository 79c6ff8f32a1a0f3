package heatshrink

import "io"

// reader adapts a Decoder to io.Reader, pulling from an underlying
// io.Reader as needed. It is a thin wrapper: all decoding logic lives in
// Decoder, this just shuttles bytes between io.Reader/io.Writer shapes and
// the Sink/Poll/Finish contract.
type reader struct {
	src io.Reader
	dec *Decoder

	in       []byte
	eof      bool
	finished bool
}

// NewReader returns an io.Reader that decompresses data read from src.
// windowBits/lookaheadBits must match the parameters the stream was
// encoded with. ibs sizes the decoder's internal input ring.
func NewReader(src io.Reader, ibs uint16, windowBits, lookaheadBits uint8) (io.Reader, error) {
	dec, err := NewDecoder(ibs, windowBits, lookaheadBits)
	if err != nil {
		return nil, err
	}
	return &reader{src: src, dec: dec, in: make([]byte, ibs)}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		_, n := r.dec.Poll(p)
		if n > 0 {
			return n, nil
		}
		// n == 0 means StatusEmpty: no output without more input.
		if r.finished {
			return 0, io.EOF
		}
		if err := r.fill(); err != nil {
			return 0, err
		}
	}
}

func (r *reader) fill() error {
	if !r.eof {
		// Read only ever runs fill after Poll reports StatusEmpty, which
		// (per Decoder.getBits) only happens once the input ring has been
		// fully drained to empty, so a single Sink always fits.
		n, err := r.src.Read(r.in)
		if n > 0 {
			r.dec.Sink(r.in[:n])
		}
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return err
		}
	}
	if r.eof {
		if r.dec.Finish() == StatusDone {
			r.finished = true
		}
	}
	return nil
}

// writer adapts an Encoder to io.WriteCloser, pushing compressed bytes to
// an underlying io.Writer. Close must be called to flush the final,
// possibly partial, output byte.
type writer struct {
	dst io.Writer
	enc *Encoder
	out []byte
}

// NewWriter returns an io.WriteCloser that compresses bytes written to it
// and forwards the compressed stream to dst.
func NewWriter(dst io.Writer, windowBits, lookaheadBits uint8) (io.WriteCloser, error) {
	enc, err := NewEncoder(windowBits, lookaheadBits)
	if err != nil {
		return nil, err
	}
	return &writer{dst: dst, enc: enc, out: make([]byte, 1<<windowBits)}, nil
}

func (w *writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		_, n := w.enc.Sink(p)
		written += n
		p = p[n:]
		if err := w.drain(); err != nil {
			return written, err
		}
	}
	return written, nil
}

func (w *writer) drain() error {
	for {
		status, n := w.enc.Poll(w.out)
		if n > 0 {
			if _, err := w.dst.Write(w.out[:n]); err != nil {
				return err
			}
		}
		if status != StatusMore {
			return nil
		}
	}
}

func (w *writer) Close() error {
	for w.enc.Finish() != StatusDone {
		if err := w.drain(); err != nil {
			return err
		}
	}
	return w.drain()
}
