package ips

import (
	"bytes"
	"encoding/binary"
	"io"
)

// putU24 encodes v as a 3-byte big-endian integer. Values wider than 24
// bits are silently truncated, matching the wire format's field width.
func putU24(v uint32) [3]byte {
	return [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// u24 decodes a 3-byte big-endian integer.
func u24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// readFull reads exactly len(buf) bytes from r. Any short read or I/O
// failure becomes a ParsingError carrying msg, with the underlying error
// preserved as the cause.
func readFull(r io.Reader, buf []byte, msg string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return parseErr(msg, err)
	}
	return nil
}

func readU24(r io.Reader, msg string) (uint32, error) {
	var buf [3]byte
	if err := readFull(r, buf[:], msg); err != nil {
		return 0, err
	}
	return u24(buf[:]), nil
}

func readU16(r io.Reader, msg string) (uint16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:], msg); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func readU8(r io.Reader, msg string) (byte, error) {
	var buf [1]byte
	if err := readFull(r, buf[:], msg); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// expect reads len(want) bytes and compares them against want. A short
// read reports readMsg, a mismatch reports badMsg; both are ParsingErrors.
func expect(r io.Reader, want []byte, readMsg, badMsg string) error {
	got := make([]byte, len(want))
	if _, err := io.ReadFull(r, got); err != nil {
		return parseErr(readMsg, err)
	}
	if !bytes.Equal(got, want) {
		return parseErr(badMsg, nil)
	}
	return nil
}
