package heatshrink

// Decoder is a streaming LZSS-style decompressor. It owns a fixed input
// ring and expansion window sized at construction and never allocates
// again afterward. The zero value is not usable; construct with
// NewDecoder.
type Decoder struct {
	windowBits    uint8
	lookaheadBits uint8
	inputBufSize  int // IBS
	windowMask    uint16

	// buf holds the input ring in buf[:inputBufSize] followed by the
	// expansion window in buf[inputBufSize:].
	buf []byte

	inputSize  uint16 // bytes pending in the input ring
	inputIndex uint16 // read cursor in the input ring

	outputIndex uint16 // pending back-reference distance (1-based)
	outputCount uint16 // pending back-reference byte count

	headIndex uint16 // next-write position in the window, mod 2^windowBits

	state decState

	currentByte byte
	bitIndex    byte
}

type decState uint8

const (
	decTagBit decState = iota
	decYieldLiteral
	decBackrefIndexMSB
	decBackrefIndexLSB
	decBackrefCountMSB
	decBackrefCountLSB
	decYieldBackref
)

const noBits = 0xFFFF

// NewDecoder constructs a Decoder with an input ring of ibs bytes and the
// given window/lookahead exponents. It fails closed: on invalid
// parameters, no Decoder is returned. ibs bounds how many bytes Sink accepts
// before the ring must be drained by Poll; it does not need to match the encoder's
// internal buffer sizing, only (windowBits, lookaheadBits) must match the
// encoder that produced the stream.
func NewDecoder(ibs uint16, windowBits, lookaheadBits uint8) (*Decoder, error) {
	if ibs == 0 {
		return nil, ErrInputBufferSize
	}
	if err := validateWindowLookahead(windowBits, lookaheadBits); err != nil {
		return nil, err
	}

	windowSize := 1 << windowBits
	d := &Decoder{
		windowBits:    windowBits,
		lookaheadBits: lookaheadBits,
		inputBufSize:  int(ibs),
		windowMask:    uint16(windowSize - 1),
		buf:           make([]byte, int(ibs)+windowSize),
		state:         decTagBit,
	}
	return d, nil
}

// Sink copies up to the input ring's free capacity from in. It returns
// StatusErrorNull on an empty in, and StatusFull when the ring is
// saturated — poll before sinking more in that case.
func (d *Decoder) Sink(in []byte) (Status, int) {
	if len(in) == 0 {
		return StatusErrorNull, 0
	}

	rem := d.inputBufSize - int(d.inputSize)
	if rem == 0 {
		return StatusFull, 0
	}

	size := rem
	if len(in) < size {
		size = len(in)
	}
	copy(d.buf[d.inputSize:], in[:size])
	d.inputSize += uint16(size)
	return StatusOK, size
}

// Poll drives the state machine, writing decoded bytes into out. It
// returns StatusMore when out is full, or StatusEmpty when no further
// progress is possible without more input. An empty out is rejected with
// StatusErrorNull.
func (d *Decoder) Poll(out []byte) (Status, int) {
	if len(out) == 0 {
		return StatusErrorNull, 0
	}
	oc := outCursor{buf: out}

	for {
		inState := d.state
		switch inState {
		case decTagBit:
			d.state = d.tagBit()
		case decYieldLiteral:
			d.state = d.yieldLiteral(&oc)
		case decBackrefIndexMSB:
			d.state = d.backrefIndexMSB()
		case decBackrefIndexLSB:
			d.state = d.backrefIndexLSB()
		case decBackrefCountMSB:
			d.state = d.backrefCountMSB()
		case decBackrefCountLSB:
			d.state = d.backrefCountLSB()
		case decYieldBackref:
			d.state = d.yieldBackref(&oc)
		default:
			return StatusErrorUnknown, oc.n
		}

		if d.state == inState {
			if oc.full() {
				return StatusMore, oc.n
			}
			return StatusEmpty, oc.n
		}
	}
}

// Finish reports whether decoding is complete. It is Done only when the
// input ring is empty and the state machine sits in TagBit, YieldLiteral,
// or one of the MSB/LSB back-reference field states (so a token cut short
// by the end of input still reports Done); it is never Done mid-YieldBackref
// even with no input left,
// since there is still buffered output owed to the caller.
func (d *Decoder) Finish() Status {
	switch d.state {
	case decTagBit,
		decBackrefIndexMSB, decBackrefIndexLSB,
		decBackrefCountMSB, decBackrefCountLSB,
		decYieldLiteral:
		if d.inputSize == 0 {
			return StatusDone
		}
	}
	return StatusMore
}

func (d *Decoder) window() []byte {
	return d.buf[d.inputBufSize:]
}

func (d *Decoder) tagBit() decState {
	bits := d.getBits(1)
	switch {
	case bits == noBits:
		return decTagBit
	case bits > 0:
		return decYieldLiteral
	case d.windowBits > 8:
		return decBackrefIndexMSB
	default:
		d.outputIndex = 0
		return decBackrefIndexLSB
	}
}

func (d *Decoder) yieldLiteral(oc *outCursor) decState {
	if oc.full() {
		return decYieldLiteral
	}
	bits := d.getBits(8)
	if bits == noBits {
		return decYieldLiteral
	}
	c := byte(bits & 0xFF)
	d.window()[d.headIndex&d.windowMask] = c
	d.headIndex++
	oc.push(c)
	return decTagBit
}

func (d *Decoder) backrefIndexMSB() decState {
	bits := d.getBits(d.windowBits - 8)
	if bits == noBits {
		return decBackrefIndexMSB
	}
	d.outputIndex = bits << 8
	return decBackrefIndexLSB
}

func (d *Decoder) backrefIndexLSB() decState {
	bitCt := d.windowBits
	if bitCt > 8 {
		bitCt = 8
	}
	bits := d.getBits(bitCt)
	if bits == noBits {
		return decBackrefIndexLSB
	}
	d.outputIndex |= bits
	d.outputIndex++
	d.outputCount = 0
	if d.lookaheadBits > 8 {
		return decBackrefCountMSB
	}
	return decBackrefCountLSB
}

func (d *Decoder) backrefCountMSB() decState {
	bits := d.getBits(d.lookaheadBits - 8)
	if bits == noBits {
		return decBackrefCountMSB
	}
	d.outputCount = bits << 8
	return decBackrefCountLSB
}

func (d *Decoder) backrefCountLSB() decState {
	bitCt := d.lookaheadBits
	if bitCt > 8 {
		bitCt = 8
	}
	bits := d.getBits(bitCt)
	if bits == noBits {
		return decBackrefCountLSB
	}
	d.outputCount |= bits
	d.outputCount++
	return decYieldBackref
}

func (d *Decoder) yieldBackref(oc *outCursor) decState {
	window := d.window()
	negOffset := d.outputIndex

	for d.outputCount > 0 {
		if oc.full() {
			return decYieldBackref
		}
		c := window[(d.headIndex-negOffset)&d.windowMask]
		oc.push(c)
		window[d.headIndex&d.windowMask] = c
		d.headIndex++
		d.outputCount--
	}
	return decTagBit
}

// getBits returns the next count bits (count in [1,15]) MSB-first, or
// noBits if the input ring runs dry before count bits are available. For
// count <= 8, which every caller uses, a partially consumed field is never
// lost: the up-front check returns noBits before any bit is taken, and
// currentByte and bitIndex persist across calls, so the next Poll resumes
// exactly where this one left off. A larger count can need two fresh bytes
// and may return noBits after consuming some bits.
func (d *Decoder) getBits(count uint8) uint16 {
	if count > 15 {
		return noBits
	}

	if d.inputSize == 0 && d.bitIndex < (1<<(count-1)) {
		return noBits
	}

	var accumulator uint16
	for i := uint8(0); i < count; i++ {
		if d.bitIndex == 0x00 {
			if d.inputSize == 0 {
				return noBits
			}
			d.currentByte = d.buf[d.inputIndex]
			d.inputIndex++
			if d.inputIndex == d.inputSize {
				d.inputIndex = 0
				d.inputSize = 0
			}
			d.bitIndex = 0x80
		}
		accumulator <<= 1
		if d.currentByte&d.bitIndex > 0 {
			accumulator |= 0x01
		}
		d.bitIndex >>= 1
	}
	return accumulator
}
