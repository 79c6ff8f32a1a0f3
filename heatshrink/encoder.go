package heatshrink

// Encoder is a streaming LZSS-style compressor. It owns a fixed buffer
// pair (current + previous window) and a match index sized at
// construction; it never allocates again afterward. The zero value is not
// usable; construct with NewEncoder.
type Encoder struct {
	windowBits    uint8
	lookaheadBits uint8
	inputBufSize  int // 1 << windowBits
	lookaheadSize int // 1 << lookaheadBits

	buffer      []byte  // 2 * inputBufSize: previous window, then current window
	searchIndex []int32 // same length as buffer; -1 marks end of chain

	inputSize      int
	matchScanIndex int
	matchLength    int
	matchPos       int

	outgoingBits      uint16
	outgoingBitsCount uint8

	finishing bool
	state     encState

	currentByte byte
	bitIndex    byte
}

type encState uint8

const (
	encNotFull encState = iota
	encFilled
	encSearch
	encYieldTagBit
	encYieldLiteral
	encYieldBrIndex
	encYieldBrLength
	encSaveBacklog
	encFlushBits
	encDone
)

const matchNotFound = -1

// NewEncoder constructs an Encoder for the given window and lookahead
// exponents. It fails closed: on an invalid pair, no Encoder is returned.
func NewEncoder(windowBits, lookaheadBits uint8) (*Encoder, error) {
	if err := validateWindowLookahead(windowBits, lookaheadBits); err != nil {
		return nil, err
	}

	inputBufSize := 1 << windowBits
	bufSize := 2 * inputBufSize

	e := &Encoder{
		windowBits:    windowBits,
		lookaheadBits: lookaheadBits,
		inputBufSize:  inputBufSize,
		lookaheadSize: 1 << lookaheadBits,
		buffer:        make([]byte, bufSize),
		searchIndex:   make([]int32, bufSize),
		bitIndex:      0x80,
	}
	return e, nil
}

// Sink copies up to min(remaining room, len(in)) bytes into the current
// window. It returns StatusErrorMisuse if called after Finish, or while the
// state machine is still draining a previously filled window.
func (e *Encoder) Sink(in []byte) (Status, int) {
	if e.finishing || e.state != encNotFull {
		return StatusErrorMisuse, 0
	}

	writeOffset := e.inputOffset() + e.inputSize
	rem := e.inputBufSize - e.inputSize
	cpSz := rem
	if len(in) < cpSz {
		cpSz = len(in)
	}

	copy(e.buffer[writeOffset:], in[:cpSz])
	e.inputSize += cpSz

	if cpSz == rem {
		e.state = encFilled
	}
	return StatusOK, cpSz
}

// Poll drives the state machine, writing compressed bytes into out. It
// returns StatusMore when out is full (call again with a fresh buffer) or
// StatusEmpty when no further output can be produced without more input.
// An empty out is rejected with StatusErrorMisuse.
func (e *Encoder) Poll(out []byte) (Status, int) {
	if len(out) == 0 {
		return StatusErrorMisuse, 0
	}
	oc := outCursor{buf: out}

	for {
		inState := e.state
		switch inState {
		case encNotFull, encDone:
			return StatusEmpty, oc.n
		case encFilled:
			e.doIndexing()
			e.state = encSearch
		case encSearch:
			e.state = e.stepSearch()
		case encYieldTagBit:
			e.state = e.yieldTagBit(&oc)
		case encYieldLiteral:
			e.state = e.yieldLiteral(&oc)
		case encYieldBrIndex:
			e.state = e.yieldBrIndex(&oc)
		case encYieldBrLength:
			e.state = e.yieldBrLength(&oc)
		case encSaveBacklog:
			e.state = e.saveBacklog()
		case encFlushBits:
			e.state = e.flushBitBuffer(&oc)
		}

		// A stalled state only means stop if out is full: a multi-byte
		// field (e.g. W > 8 bits of back-reference distance) can stay in
		// the same state across several loop passes while it drains one
		// byte at a time, with room left in out the whole time.
		if e.state == inState && oc.full() {
			return StatusMore, oc.n
		}
	}
}

// Finish signals end of input. If currently idle (NotFull), it promotes the
// state machine so the residual window is indexed and drained. Callers
// should keep calling Poll until Finish reports StatusDone.
func (e *Encoder) Finish() Status {
	e.finishing = true
	if e.state == encNotFull {
		e.state = encFilled
	}
	if e.state == encDone {
		return StatusDone
	}
	return StatusMore
}

func (e *Encoder) inputOffset() int {
	return e.inputBufSize
}

func (e *Encoder) stepSearch() encState {
	msi := e.matchScanIndex

	bias := e.lookaheadSize
	if e.finishing {
		bias = 1
	}
	if msi > e.inputSize-bias {
		if e.finishing {
			return encFlushBits
		}
		return encSaveBacklog
	}

	inputOffset := e.inputOffset()
	end := inputOffset + msi
	start := end - e.inputBufSize

	maxPossible := e.lookaheadSize
	if e.inputSize-msi < maxPossible {
		maxPossible = e.inputSize - msi
	}

	pos, length := e.findLongestMatch(start, end, maxPossible)
	if pos == matchNotFound {
		e.matchScanIndex++
		e.matchLength = 0
	} else {
		e.matchPos = pos
		e.matchLength = length
	}
	return encYieldTagBit
}

func (e *Encoder) canTakeByte(oc *outCursor) bool {
	return !oc.full()
}

func (e *Encoder) yieldTagBit(oc *outCursor) encState {
	if !e.canTakeByte(oc) {
		return encYieldTagBit
	}
	if e.matchLength == 0 {
		e.pushBits(oc, 1, literalMarker)
		return encYieldLiteral
	}
	e.pushBits(oc, 1, backrefMarker)
	e.outgoingBits = uint16(e.matchPos - 1)
	e.outgoingBitsCount = e.windowBits
	return encYieldBrIndex
}

func (e *Encoder) yieldLiteral(oc *outCursor) encState {
	if !e.canTakeByte(oc) {
		return encYieldLiteral
	}
	e.pushLiteralByte(oc)
	return encSearch
}

func (e *Encoder) yieldBrIndex(oc *outCursor) encState {
	if !e.canTakeByte(oc) {
		return encYieldBrIndex
	}
	if e.pushOutgoingBits(oc) > 0 {
		return encYieldBrIndex
	}
	e.outgoingBits = uint16(e.matchLength - 1)
	e.outgoingBitsCount = e.lookaheadBits
	return encYieldBrLength
}

func (e *Encoder) yieldBrLength(oc *outCursor) encState {
	if !e.canTakeByte(oc) {
		return encYieldBrLength
	}
	if e.pushOutgoingBits(oc) > 0 {
		return encYieldBrLength
	}
	e.matchScanIndex += e.matchLength
	e.matchLength = 0
	return encSearch
}

func (e *Encoder) saveBacklog() encState {
	msi := e.matchScanIndex
	rem := e.inputBufSize - msi // unprocessed bytes

	copy(e.buffer, e.buffer[e.inputBufSize-rem:])

	e.matchScanIndex = 0
	e.inputSize -= e.inputBufSize - rem
	return encNotFull
}

func (e *Encoder) flushBitBuffer(oc *outCursor) encState {
	if e.bitIndex == 0x80 {
		return encDone
	}
	if !e.canTakeByte(oc) {
		return encFlushBits
	}
	oc.push(e.currentByte)
	return encDone
}

func (e *Encoder) pushOutgoingBits(oc *outCursor) uint8 {
	var count uint8
	var bits uint8
	if e.outgoingBitsCount > 8 {
		count = 8
		bits = uint8(e.outgoingBits >> (e.outgoingBitsCount - 8))
	} else {
		count = e.outgoingBitsCount
		bits = uint8(e.outgoingBits)
	}
	if count > 0 {
		e.pushBits(oc, count, bits)
		e.outgoingBitsCount -= count
	}
	return count
}

// pushBits pushes up to 8 bits, MSB-first, into the output. The caller must
// have already confirmed oc has room for at least one more byte: this
// writes at most one byte, since at most one bit-index wraparound can occur
// per call.
func (e *Encoder) pushBits(oc *outCursor, count uint8, bits uint8) {
	if count == 8 && e.bitIndex == 0x80 {
		oc.push(bits)
		return
	}
	for i := int(count) - 1; i >= 0; i-- {
		if bits&(1<<uint(i)) != 0 {
			e.currentByte |= e.bitIndex
		}
		e.bitIndex >>= 1
		if e.bitIndex == 0x00 {
			e.bitIndex = 0x80
			oc.push(e.currentByte)
			e.currentByte = 0x00
		}
	}
}

func (e *Encoder) pushLiteralByte(oc *outCursor) {
	processedOffset := e.matchScanIndex - 1
	c := e.buffer[e.inputOffset()+processedOffset]
	e.pushBits(oc, 8, c)
}

// outCursor tracks how much of a caller-supplied output slice has been
// filled during one Poll call.
type outCursor struct {
	buf []byte
	n   int
}

func (c *outCursor) full() bool { return c.n == len(c.buf) }

func (c *outCursor) push(b byte) {
	c.buf[c.n] = b
	c.n++
}
