package pool

import "github.com/scigolib/qcbor/internal/utils"

// MallocPool is the optional heap-backed string-pool implementation: it
// defers to the Go runtime's allocator instead of a fixed arena, at the
// cost of the zero-allocation guarantee the rest of the codec holds to.
// Useful when the caller doesn't want to size an arena up front.
type MallocPool struct {
	last utils.View
}

// NewMallocPool returns a heap-backed Allocator.
func NewMallocPool() *MallocPool {
	return &MallocPool{}
}

func (p *MallocPool) Allocate(old utils.View, newSize int) (utils.View, bool) {
	if newSize < 0 {
		return utils.NullView, false
	}
	buf := make([]byte, newSize)
	if !old.IsNull() {
		copy(buf, old.Data)
	}
	v := utils.NewView(buf)
	p.last = v
	return v, true
}

// Free is a no-op: the garbage collector reclaims unreferenced buffers.
func (p *MallocPool) Free(ptr utils.View) {
	p.last = utils.NullView
}

func (p *MallocPool) Destroy() {}
