package ips

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// applySequentially applies each patch in turn, the behavior Merge must
// reproduce with a single patch.
func applySequentially(t *testing.T, target *Buffer, patches ...*Patch) {
	t.Helper()
	for _, p := range patches {
		if err := p.Apply(target); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
	}
}

func TestMergeEqualsSequentialApply(t *testing.T) {
	tests := []struct {
		name    string
		patches []*Patch
	}{
		{
			name:    "no patches",
			patches: nil,
		},
		{
			name:    "single patch",
			patches: []*Patch{multiHunkPatch()},
		},
		{
			name: "hunk-only patches with overlap",
			patches: []*Patch{
				New().WithHunk(Regular(1, []byte{0x11, 0x22, 0x33})),
				New().WithHunk(RLE(2, 3, 0x0a)),
				New().WithHunk(Regular(8, []byte{0x44})),
			},
		},
		{
			name: "truncate on the final patch only",
			patches: []*Patch{
				New().WithHunk(Regular(1, []byte{0x11, 0x22})),
				New().WithHunk(RLE(4, 2, 0x0a)).WithTruncate(8),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := Merge(tt.patches...)
			if err != nil {
				t.Fatalf("Merge() error = %v", err)
			}

			sequential := NewBuffer(seq(16))
			applySequentially(t, sequential, tt.patches...)

			composed := NewBuffer(seq(16))
			if err := merged.Apply(composed); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}

			if diff := cmp.Diff(sequential.Bytes(), composed.Bytes()); diff != "" {
				t.Errorf("merged apply diverged from sequential (-sequential +merged):\n%s", diff)
			}
		})
	}
}

// A truncate anywhere but the last input cannot be composed: sequential
// application clamps mid-sequence (and truncate never grows, so a later,
// larger truncate does not undo it), while a merged patch truncates only
// once at the end. Merge must reject these rather than change behavior.
func TestMergeRejectsNonFinalTruncate(t *testing.T) {
	tests := []struct {
		name    string
		patches []*Patch
	}{
		{
			name: "two truncates",
			patches: []*Patch{
				New().WithTruncate(4),
				New().WithTruncate(10),
			},
		},
		{
			name: "truncate followed by hunk-only patch",
			patches: []*Patch{
				New().WithHunk(Regular(1, []byte{0x11})).WithTruncate(4),
				New().WithHunk(Regular(8, []byte{0x22})),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Merge(tt.patches...); err == nil {
				t.Fatal("Merge() succeeded, want error")
			}
		})
	}
}

// Merge copies the final truncate value; mutating an input afterwards
// must not change the merged patch.
func TestMergeCopiesTruncate(t *testing.T) {
	last := New().WithTruncate(8)
	merged, err := Merge(New(), last)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	*last.Truncate = 99
	if merged.Truncate == nil || *merged.Truncate != 8 {
		t.Errorf("merged.Truncate = %v, want 8", merged.Truncate)
	}
}
