package ips

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestU24RoundTrip(t *testing.T) {
	tests := []struct {
		v    uint32
		want [3]byte
	}{
		{0, [3]byte{0x00, 0x00, 0x00}},
		{258, [3]byte{0x00, 0x01, 0x02}},
		{0xFFFFFF, [3]byte{0xFF, 0xFF, 0xFF}},
		{0x454F46, [3]byte{'E', 'O', 'F'}},
	}
	for _, tt := range tests {
		got := putU24(tt.v)
		if got != tt.want {
			t.Errorf("putU24(%d) = %v, want %v", tt.v, got, tt.want)
		}
		if back := u24(got[:]); back != tt.v {
			t.Errorf("u24(putU24(%d)) = %d", tt.v, back)
		}
	}
}

// Values wider than 24 bits are truncated on encode, not rejected.
func TestPutU24Masks(t *testing.T) {
	if got, want := putU24(0x01BBCCDD), [3]byte{0xBB, 0xCC, 0xDD}; got != want {
		t.Errorf("putU24(0x01BBCCDD) = %v, want %v", got, want)
	}
}

func TestReadFullWrapsCause(t *testing.T) {
	buf := make([]byte, 4)
	err := readFull(bytes.NewReader([]byte{1, 2}), buf, "Unable to read payload.")
	if err == nil {
		t.Fatal("readFull() succeeded, want error")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("readFull() error = %T, want *Error", err)
	}
	if perr.Kind != ParsingError {
		t.Errorf("Kind = %v, want ParsingError", perr.Kind)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("underlying cause lost: %v", err)
	}
}

func TestExpect(t *testing.T) {
	if err := expect(bytes.NewReader([]byte("PATCHx")), Header, "short", "bad"); err != nil {
		t.Errorf("expect() on matching input: %v", err)
	}
	err := expect(bytes.NewReader([]byte("PATTH")), Header, "short", "bad")
	if err == nil || err.Error() != "ParsingError: bad" {
		t.Errorf("expect() on mismatch = %v, want ParsingError: bad", err)
	}
	err = expect(bytes.NewReader([]byte("PA")), Header, "short", "bad")
	if err == nil || err.Error() != "ParsingError: short" {
		t.Errorf("expect() on short input = %v, want ParsingError: short", err)
	}
}
