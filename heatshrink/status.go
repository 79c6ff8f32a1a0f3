package heatshrink

// Status is the discriminated result of a Sink, Poll, or Finish call. It is
// shared across Encoder and Decoder because both sit behind the same
// poll-driven streaming contract; not every value is reachable from every
// method, see each method's doc comment for which ones it returns.
type Status int

const (
	// StatusOK means Sink accepted bytes (possibly fewer than offered).
	StatusOK Status = iota
	// StatusFull means the decoder's input ring is saturated; poll before sinking more.
	StatusFull
	// StatusEmpty means Poll drained all the output it can produce without more input.
	StatusEmpty
	// StatusMore means Poll filled the output buffer; call Poll again with a fresh one.
	StatusMore
	// StatusDone means Finish has flushed all residual state; the stream is complete.
	StatusDone
	// StatusErrorMisuse means the call violated the API's ordering or buffer-size contract.
	StatusErrorMisuse
	// StatusErrorNull means an empty buffer was passed where one with room was required.
	StatusErrorNull
	// StatusErrorUnknown is a reserved sentinel for internal consistency failures.
	// A conformant codec never returns it for well-formed usage.
	StatusErrorUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFull:
		return "full"
	case StatusEmpty:
		return "empty"
	case StatusMore:
		return "more"
	case StatusDone:
		return "done"
	case StatusErrorMisuse:
		return "error-misuse"
	case StatusErrorNull:
		return "error-null"
	case StatusErrorUnknown:
		return "error-unknown"
	default:
		return "unknown-status"
	}
}
