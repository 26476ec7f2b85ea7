package ips

import "io"

// ApplyStream reads an IPS patch from patch and applies each hunk to
// target as it is decoded, without materializing the hunk sequence. Its
// effect on the target is byte-for-byte identical to Read followed by
// Apply; the trade is memory for the ability to inspect or re-serialize
// the patch afterwards.
func ApplyStream(patch io.Reader, target Target) error {
	if err := readHeader(patch); err != nil {
		return err
	}
	trunc, err := readBody(patch, func(h Hunk) error {
		return h.Apply(target)
	})
	if err != nil {
		return err
	}
	if trunc != nil {
		return truncateTarget(target, *trunc)
	}
	return nil
}
