package ips

import "io"

// Header is the 5-byte signature opening every IPS patch.
var Header = []byte("PATCH")

// EOFMarker is the reserved 3-byte value that terminates the hunk stream.
// It can never legitimately appear as a hunk offset.
var EOFMarker = []byte("EOF")

// eofOffset is EOFMarker read as a 24-bit offset field.
var eofOffset = u24(EOFMarker)

// Patch is an IPS patch: an ordered sequence of hunks plus an optional
// trailing truncate length. Hunk order is apply order; later hunks may
// overwrite bytes written by earlier ones.
type Patch struct {
	Hunks []Hunk

	// Truncate, when non-nil, is the size the patched target is clamped
	// to after all hunks are applied.
	Truncate *uint32
}

// New constructs an empty patch.
func New() *Patch {
	return &Patch{}
}

// AddHunk appends h to the patch's apply sequence.
func (p *Patch) AddHunk(h Hunk) {
	p.Hunks = append(p.Hunks, h)
}

// WithHunk appends h and returns the patch, for builder-style chaining.
func (p *Patch) WithHunk(h Hunk) *Patch {
	p.AddHunk(h)
	return p
}

// WithTruncate sets the trailing truncate length and returns the patch.
func (p *Patch) WithTruncate(n uint32) *Patch {
	p.Truncate = &n
	return p
}

// readHeader consumes and checks the patch signature. A short read and a
// signature mismatch are reported distinctly, so callers can tell "not an
// IPS patch" from truncated input.
func readHeader(r io.Reader) error {
	return expect(r, Header, "Unable to parse header.", "Invalid header.")
}

// readBody runs the hunk loop shared by Read and ApplyStream: it decodes
// hunk records one at a time, handing each to sink, until the reserved EOF
// offset is read, then returns the optional truncate length.
func readBody(r io.Reader, sink func(Hunk) error) (*uint32, error) {
	for {
		offset, err := readU24(r, "Unable to parse offset.")
		if err != nil {
			return nil, err
		}
		if offset == eofOffset {
			return readTruncate(r)
		}
		h, err := readHunk(r, offset)
		if err != nil {
			return nil, err
		}
		if err := sink(h); err != nil {
			return nil, err
		}
	}
}

// readTruncate reads the optional 3-byte truncate length after the EOF
// marker. Clean end of input means no truncate; one or two trailing bytes
// is a parse error.
func readTruncate(r io.Reader) (*uint32, error) {
	var buf [3]byte
	switch _, err := io.ReadFull(r, buf[:]); err {
	case nil:
		n := u24(buf[:])
		return &n, nil
	case io.EOF:
		return nil, nil
	default:
		return nil, parseErr("Unable to read truncate.", err)
	}
}

// Read parses an IPS patch from r in a single linear pass.
func Read(r io.Reader) (*Patch, error) {
	if err := readHeader(r); err != nil {
		return nil, err
	}
	p := New()
	trunc, err := readBody(r, func(h Hunk) error {
		p.AddHunk(h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.Truncate = trunc
	return p, nil
}

// Write serializes the patch to w: header, hunk records in sequence order,
// the EOF marker, then the truncate length if present. I/O errors are
// returned as-is.
func (p *Patch) Write(w io.Writer) error {
	if _, err := w.Write(Header); err != nil {
		return err
	}
	for i := range p.Hunks {
		if err := p.Hunks[i].Write(w); err != nil {
			return err
		}
	}
	if _, err := w.Write(EOFMarker); err != nil {
		return err
	}
	if p.Truncate != nil {
		trunc := putU24(*p.Truncate)
		if _, err := w.Write(trunc[:]); err != nil {
			return err
		}
	}
	return nil
}

// Apply applies every hunk in sequence order to target, then clamps the
// target to the truncate length if one is present. A failed hunk stops the
// apply immediately; hunks already applied are not undone, so a failed
// apply can leave the target partially patched.
func (p *Patch) Apply(target Target) error {
	for i := range p.Hunks {
		if err := p.Hunks[i].Apply(target); err != nil {
			return err
		}
	}
	if p.Truncate != nil {
		return truncateTarget(target, *p.Truncate)
	}
	return nil
}
