// Package ips implements the IPS binary patch format: parsing a patch
// from a byte stream, serializing it back, and applying it to a writable,
// seekable target.
//
// An IPS patch is the 5-byte signature "PATCH", zero or more hunk records,
// the 3-byte terminator "EOF", and an optional 3-byte truncate length.
// Each hunk is either a literal byte-range overwrite or a run-length
// single-byte fill; a zero-valued length field marks the RLE variant.
// All integers are big-endian.
//
// # Example: Applying a patch
//
//	patchFile, _ := os.Open("fix.ips")
//	target, _ := os.OpenFile("game.bin", os.O_RDWR, 0)
//	if err := ips.ApplyStream(patchFile, target); err != nil {
//	    return err
//	}
//
// ApplyStream applies hunks as they are decoded and never materializes
// the patch. To inspect or re-serialize a patch, parse it first:
//
//	patch, err := ips.Read(patchFile)
//	if err != nil {
//	    return err
//	}
//	err = patch.Apply(target)
//
// Both paths produce byte-for-byte identical targets.
//
// # Example: Building a patch
//
//	patch := ips.New().
//	    WithHunk(ips.Regular(0x1000, []byte{0xde, 0xad})).
//	    WithHunk(ips.RLE(0x2000, 512, 0xff)).
//	    WithTruncate(0x8000)
//	err := patch.Write(out)
//
// # Targets
//
// A patch is applied to any Target (io.Writer + io.Seeker). *os.File
// qualifies; Buffer provides an in-memory equivalent. A patch carrying a
// truncate length additionally needs the target to implement Truncator.
// Truncation only ever shrinks: a truncate length at or beyond the
// target's current size leaves it untouched.
//
// # Errors
//
// Failures are *Error values with two kinds: ParsingError for malformed
// or truncated patch bytes and PatchingError for target I/O failures
// during apply. The underlying I/O error, when there is one, is available
// through errors.Unwrap. A failed apply is not rolled back; the target
// may be left partially patched.
package ips
