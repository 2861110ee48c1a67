// Package pool provides the decoder's one allocation escape hatch: a
// pluggable allocator used only to coalesce the segments of an
// indefinite-length string into a single contiguous buffer (spec §4.H).
// Everything else in the codec runs with zero heap allocation.
package pool

import "github.com/scigolib/qcbor/internal/utils"

// Allocator is consumed by the decoder when it meets an
// indefinite-length byte or text string. Allocate with a null old view
// is a fresh allocation; with a non-null old view it must be the most
// recent allocation returned by this same Allocator, and the pool may
// grow it in place or move it. Free backs out the most recent
// allocation only. Destroy is invoked once at decoder finish.
type Allocator interface {
	Allocate(old utils.View, newSize int) (utils.View, bool)
	Free(ptr utils.View)
	Destroy()
}
