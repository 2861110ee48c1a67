// Package testutil provides small test doubles shared by the codec's
// own test suites.
package testutil

import "github.com/scigolib/qcbor/internal/utils"

// FailingAllocator is a pool.Allocator that fails after a configurable
// number of successful allocations, used to exercise the decoder's
// StringAllocatorFailed path deterministically.
type FailingAllocator struct {
	arena       []byte
	used        int
	succeedUpTo int
	calls       int
}

// NewFailingAllocator returns an allocator backed by arena that
// succeeds for the first succeedUpTo Allocate calls and fails every
// call after that.
func NewFailingAllocator(arena []byte, succeedUpTo int) *FailingAllocator {
	return &FailingAllocator{arena: arena, succeedUpTo: succeedUpTo}
}

func (f *FailingAllocator) Allocate(old utils.View, newSize int) (utils.View, bool) {
	f.calls++
	if f.calls > f.succeedUpTo {
		return utils.NullView, false
	}
	if f.used+newSize > len(f.arena) {
		return utils.NullView, false
	}
	start := f.used
	f.used += newSize
	return utils.NewView(f.arena[start : start+newSize]), true
}

func (f *FailingAllocator) Free(ptr utils.View) {}

func (f *FailingAllocator) Destroy() {}
