package pool

import "github.com/scigolib/qcbor/internal/utils"

// MemPool is the default string-pool implementation: a bump-pointer
// allocator over a single caller-supplied arena, adapted from the same
// end-of-buffer allocation strategy as a file-space allocator (track
// the next free offset, never reclaim except the most recent block).
//
// Unlike a C arena, MemPool keeps its bookkeeping in ordinary Go fields
// rather than in the first bytes of the arena itself, since a Go slice
// already carries its own length and capacity; the arena is spent
// entirely on string data.
type MemPool struct {
	arena      []byte
	used       int
	lastOffset int
	lastSize   int
	hasLast    bool
}

// NewMemPool wraps arena in a fresh bump-pointer allocator.
func NewMemPool(arena []byte) *MemPool {
	return &MemPool{arena: arena}
}

// Allocate implements Allocator. A fresh allocation (old is null) bumps
// the pointer forward. Resizing the most recent allocation only ever
// grows or shrinks in place: since nothing else has been carved from
// the arena after it, "moving" the block would land at the same
// address anyway.
func (p *MemPool) Allocate(old utils.View, newSize int) (utils.View, bool) {
	if newSize < 0 {
		return utils.NullView, false
	}
	if old.IsNull() {
		if p.used+newSize > len(p.arena) {
			return utils.NullView, false
		}
		start := p.used
		p.lastOffset, p.lastSize, p.hasLast = start, newSize, true
		p.used += newSize
		return utils.NewView(p.arena[start : start+newSize]), true
	}

	if !p.isLast(old) {
		return utils.NullView, false // not the most recent allocation
	}
	if p.lastOffset+newSize > len(p.arena) {
		return utils.NullView, false
	}
	p.lastSize = newSize
	p.used = p.lastOffset + newSize
	return utils.NewView(p.arena[p.lastOffset : p.lastOffset+newSize]), true
}

// Free backs out the most recent allocation. It is a programmer error
// to call it on anything else; MemPool simply ignores that case rather
// than panicking, since the decoder never does so.
func (p *MemPool) Free(ptr utils.View) {
	if p.isLast(ptr) {
		p.used = p.lastOffset
		p.hasLast = false
	}
}

// isLast reports whether v is the block most recently carved from the
// arena: same length and, when non-empty, the same starting address.
func (p *MemPool) isLast(v utils.View) bool {
	if !p.hasLast || v.Len() != p.lastSize {
		return false
	}
	return p.lastSize == 0 || &v.Data[0] == &p.arena[p.lastOffset]
}

// Destroy is a no-op: the arena is owned by the caller, not the pool.
func (p *MemPool) Destroy() {}
