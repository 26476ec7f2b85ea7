package ips

import "fmt"

// Merge returns a single patch whose application is equivalent to applying
// patches one after another in argument order. Hunk sequences concatenate,
// which already preserves last-write-wins across inputs.
//
// A truncate length only composes when it sits on the final patch: an
// earlier one clamps the target mid-sequence, before later hunks apply,
// and a single patch (whose truncate runs once, after all hunks) cannot
// express that. Merge rejects such inputs rather than silently changing
// their meaning.
func Merge(patches ...*Patch) (*Patch, error) {
	merged := New()
	for i, p := range patches {
		merged.Hunks = append(merged.Hunks, p.Hunks...)
		if p.Truncate == nil {
			continue
		}
		if i != len(patches)-1 {
			return nil, fmt.Errorf("ips: patch %d carries a truncate length but is not last; a merged patch truncates only once, after all hunks", i)
		}
		n := *p.Truncate
		merged.Truncate = &n
	}
	return merged, nil
}
