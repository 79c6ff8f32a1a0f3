package heatshrink

// doIndexing builds a per-byte-value backward linked list over the full
// buffer (previous window + current window): for every offset i holding
// byte b, searchIndex[i] is the nearest earlier offset < i holding the same
// byte, or -1 if there is none. This runs once per filled window and is
// what makes match search amortized rather than brute-force.
func (e *Encoder) doIndexing() {
	var last [256]int32
	for i := range last {
		last[i] = -1
	}

	end := e.inputOffset() + e.inputSize
	for i := 0; i < end; i++ {
		v := e.buffer[i]
		e.searchIndex[i] = last[v]
		last[v] = int32(i)
	}
}

// findLongestMatch returns the longest match for buffer[end:end+maxlen]
// among occurrences in buffer[start:end), and its distance back from end.
// It returns (matchNotFound, 0) if nothing beats the break-even point.
//
// searchIndex is int32 rather than the C/Rust int16 specifically so that
// offsets up to the largest legal buffer (2 * 2^15 = 65536) never wrap
// through a negative value: at windowBits == 15 a 16-bit signed offset
// overflows and the start-of-chain comparison below would misfire.
func (e *Encoder) findLongestMatch(start, end, maxlen int) (matchPos, matchLength int) {
	matchMaxLen := 0
	matchIndex := matchNotFound

	needle := e.buffer[end:]
	pos := e.searchIndex[end]

	for int(pos) >= start {
		candidate := e.buffer[pos:]

		if candidate[matchMaxLen] != needle[matchMaxLen] {
			pos = e.searchIndex[pos]
			continue
		}

		length := 1
		for length < maxlen {
			if candidate[length] != needle[length] {
				break
			}
			length++
		}

		if length > matchMaxLen {
			matchMaxLen = length
			matchIndex = int(pos)
			if length == maxlen {
				break
			}
		}
		pos = e.searchIndex[pos]
	}

	if matchMaxLen > breakEven(e.windowBits, e.lookaheadBits) {
		return end - matchIndex, matchMaxLen
	}
	return matchNotFound, 0
}
