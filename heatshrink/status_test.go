package heatshrink

import "testing"

func TestStatus_String(t *testing.T) {
	cases := map[Status]string{
		StatusOK:           "ok",
		StatusFull:         "full",
		StatusEmpty:        "empty",
		StatusMore:         "more",
		StatusDone:         "done",
		StatusErrorMisuse:  "error-misuse",
		StatusErrorNull:    "error-null",
		StatusErrorUnknown: "error-unknown",
		Status(99):         "unknown-status",
	}

	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(status), got, want)
		}
	}
}
