package ips

import (
	"errors"
	"io"
)

// Target is what a patch is applied to: anything writable and randomly
// seekable. *os.File satisfies it, as does *Buffer for in-memory use.
type Target interface {
	io.Writer
	io.Seeker
}

// Truncator is the optional target capability used by a patch's trailing
// truncate length. Truncate(n) may cut the target down to n bytes; the
// apply path only ever calls it with n smaller than the current size, so
// a Truncate that can also extend (like *os.File's) is never asked to.
type Truncator interface {
	Truncate(size int64) error
}

// truncateTarget clamps the target's size to at most n bytes. Targets
// already at or below n are left alone.
func truncateTarget(target Target, n uint32) error {
	tr, ok := target.(Truncator)
	if !ok {
		return patchErr("Unable to truncate target.", errors.New("target does not support truncation"))
	}
	size, err := target.Seek(0, io.SeekEnd)
	if err != nil {
		return patchErr("Unable to truncate target.", err)
	}
	if int64(n) >= size {
		return nil
	}
	if err := tr.Truncate(int64(n)); err != nil {
		return patchErr("Unable to truncate target.", err)
	}
	return nil
}

// Buffer is an in-memory patch target: a growable byte slice with a seek
// position. Writing past the end extends the buffer, zero-filling any gap,
// the same way a file target behaves.
type Buffer struct {
	data []byte
	pos  int64
}

// NewBuffer creates a Buffer over data. The Buffer takes ownership of the
// slice; use Bytes to observe the patched result.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Write writes p at the current position, extending the buffer as needed.
func (b *Buffer) Write(p []byte) (int, error) {
	if end := b.pos + int64(len(p)); end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:], p)
	b.pos += int64(len(p))
	return len(p), nil
}

// Seek sets the position for the next Write. Seeking past the end is
// legal; the gap is zero-filled if a write follows.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, errors.New("ips: invalid seek whence")
	}
	if pos < 0 {
		return 0, errors.New("ips: negative seek position")
	}
	b.pos = pos
	return pos, nil
}

// Truncate cuts the buffer down to size bytes. A size at or beyond the
// current length is a no-op; Truncate never grows the buffer.
func (b *Buffer) Truncate(size int64) error {
	if size < 0 {
		return errors.New("ips: negative truncate size")
	}
	if size < int64(len(b.data)) {
		b.data = b.data[:size]
		if b.pos > size {
			b.pos = size
		}
	}
	return nil
}

// Bytes returns the buffer's current contents. The slice is only valid
// until the next Write or Truncate.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the buffer's current length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}
