package heatshrink

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func TestStream_WriterReaderRoundTrip(t *testing.T) {
	inputs := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte("stream roundtrip")},
		{"run", bytes.Repeat([]byte{0x7F}, 4096)},
		{"mixed", append(bytes.Repeat([]byte("AAAA"), 500), []byte("tail")...)},
	}

	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			var compressed bytes.Buffer
			w, err := NewWriter(&compressed, 9, 7)
			if err != nil {
				t.Fatalf("NewWriter: %v", err)
			}
			if _, err := w.Write(in.data); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			r, err := NewReader(&compressed, 512, 9, 7)
			if err != nil {
				t.Fatalf("NewReader: %v", err)
			}
			out, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			}
		})
	}
}

func TestStream_ReaderSmallPollBuffer(t *testing.T) {
	data := bytes.Repeat([]byte("the reader must cope with one-byte reads"), 50)

	var compressed bytes.Buffer
	w, err := NewWriter(&compressed, 9, 7)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewReader(&compressed, 16, 9, 7)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	var out bytes.Buffer
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		out.Write(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if !bytes.Equal(out.Bytes(), data) {
		t.Fatalf("round-trip mismatch: got=%d want=%d", out.Len(), len(data))
	}
}

func TestStream_WriterManySmallWrites(t *testing.T) {
	data := make([]byte, 10000)
	rand.New(rand.NewSource(3)).Read(data)

	var compressed bytes.Buffer
	w, err := NewWriter(&compressed, 10, 6)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	for i := 0; i < len(data); i += 7 {
		end := i + 7
		if end > len(data) {
			end = len(data)
		}
		if _, err := w.Write(data[i:end]); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewReader(&compressed, 1024, 10, 6)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
	}
}
