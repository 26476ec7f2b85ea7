package ips

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// HunkType discriminates the two hunk variants the format defines.
type HunkType int

const (
	// HunkRegular is a literal byte-range overwrite.
	HunkRegular HunkType = iota
	// HunkRLE is a run-length-encoded single-byte fill, signaled on the
	// wire by a zero-valued length field.
	HunkRLE
)

func (t HunkType) String() string {
	switch t {
	case HunkRegular:
		return "Regular"
	case HunkRLE:
		return "RLE"
	default:
		return "Unknown"
	}
}

// Hunk is one edit record of an IPS patch. Type selects the variant;
// only the fields of that variant are meaningful.
type Hunk struct {
	Type HunkType

	// Offset is where the edit is applied, from the start of the target.
	// Only the low 24 bits are representable on the wire.
	Offset uint32

	// Payload holds the bytes of a regular hunk. Its on-wire length field
	// is 16 bits wide and must not be zero: a zero length field is the
	// RLE marker.
	Payload []byte

	// RunLength and Value describe an RLE hunk: Value written RunLength
	// times at Offset.
	RunLength uint16
	Value     byte
}

// Regular returns a literal hunk writing payload at offset. The payload
// must be non-empty and at most 65535 bytes, or the hunk cannot be
// represented on the wire.
func Regular(offset uint32, payload []byte) Hunk {
	return Hunk{Type: HunkRegular, Offset: offset, Payload: payload}
}

// RLE returns a run-length hunk writing value runLength times at offset.
func RLE(offset uint32, runLength uint16, value byte) Hunk {
	return Hunk{Type: HunkRLE, Offset: offset, RunLength: runLength, Value: value}
}

// Span returns the number of target bytes the hunk covers.
func (h *Hunk) Span() uint32 {
	if h.Type == HunkRLE {
		return uint32(h.RunLength)
	}
	return uint32(len(h.Payload))
}

func (h *Hunk) String() string {
	if h.Type == HunkRLE {
		return fmt.Sprintf("RLE hunk: byte 0x%02x written %d times at 0x%06x", h.Value, h.RunLength, h.Offset)
	}
	return fmt.Sprintf("regular hunk: %d bytes at 0x%06x", len(h.Payload), h.Offset)
}

// readHunk decodes the remainder of a hunk record whose offset field has
// already been consumed. It reads the 16-bit length-or-marker field once
// and branches on it: zero decodes an RLE hunk, anything else a regular
// hunk with that many payload bytes.
func readHunk(r io.Reader, offset uint32) (Hunk, error) {
	length, err := readU16(r, "Unable to read length.")
	if err != nil {
		return Hunk{}, err
	}
	if length == 0 {
		runLength, err := readU16(r, "Unable to read RLE run length.")
		if err != nil {
			return Hunk{}, err
		}
		value, err := readU8(r, "Unable to read RLE payload.")
		if err != nil {
			return Hunk{}, err
		}
		return RLE(offset, runLength, value), nil
	}
	payload := make([]byte, length)
	if err := readFull(r, payload, "Unable to read payload."); err != nil {
		return Hunk{}, err
	}
	return Regular(offset, payload), nil
}

// Write encodes the hunk record to w. I/O errors are returned as-is.
func (h *Hunk) Write(w io.Writer) error {
	off := putU24(h.Offset)
	if _, err := w.Write(off[:]); err != nil {
		return err
	}
	var field [2]byte
	if h.Type == HunkRLE {
		// The zero length field marks the variant; the run length and
		// repeated byte follow.
		if _, err := w.Write(field[:]); err != nil {
			return err
		}
		binary.BigEndian.PutUint16(field[:], h.RunLength)
		if _, err := w.Write(field[:]); err != nil {
			return err
		}
		_, err := w.Write([]byte{h.Value})
		return err
	}
	binary.BigEndian.PutUint16(field[:], uint16(len(h.Payload)))
	if _, err := w.Write(field[:]); err != nil {
		return err
	}
	_, err := w.Write(h.Payload)
	return err
}

// Apply seeks the target to the hunk's offset and writes its expansion.
// Writing past the current end of the target behaves however the target's
// own write contract says; Apply adds no truncation, growth, or zero-fill
// of its own.
func (h *Hunk) Apply(target Target) error {
	if h.Type == HunkRLE {
		if _, err := target.Seek(int64(h.Offset), io.SeekStart); err != nil {
			return patchErr("Unable to apply ips RLE hunk.", err)
		}
		run := bytes.Repeat([]byte{h.Value}, int(h.RunLength))
		if _, err := target.Write(run); err != nil {
			return patchErr("Unable to apply ips RLE hunk.", err)
		}
		return nil
	}
	if _, err := target.Seek(int64(h.Offset), io.SeekStart); err != nil {
		return patchErr("Unable to apply ips regular hunk.", err)
	}
	if _, err := target.Write(h.Payload); err != nil {
		return patchErr("Unable to apply ips regular hunk.", err)
	}
	return nil
}
