package core

import "github.com/scigolib/qcbor/internal/utils"

// EncodeNestingLevel tracks one open array, map, or byte-string wrap on
// the encoder side (spec §3 "NestingLevel (encoder side)").
type EncodeNestingLevel struct {
	ByteOffsetOfHead uint64
	ItemCount        uint64
	MajorType        MajorType
}

// EncodeNestingStack is a fixed-capacity stack of open containers
// (spec §4.E). Level 0 is the outermost; Depth reports how many levels
// are currently open.
type EncodeNestingStack struct {
	levels []EncodeNestingLevel
	depth  int // number of currently-open levels
	max    int
}

// NewEncodeNestingStack returns a stack with the given maximum depth;
// zero or less selects utils.DefaultNestingDepth, and larger values are
// capped at utils.MaxNestingDepthHardLimit.
func NewEncodeNestingStack(maxDepth int) *EncodeNestingStack {
	if maxDepth <= 0 {
		maxDepth = utils.DefaultNestingDepth
	}
	if maxDepth > utils.MaxNestingDepthHardLimit {
		maxDepth = utils.MaxNestingDepthHardLimit
	}
	return &EncodeNestingStack{
		levels: make([]EncodeNestingLevel, maxDepth),
		max:    maxDepth,
	}
}

// Depth returns the number of currently open levels.
func (s *EncodeNestingStack) Depth() int {
	return s.depth
}

// AtTop reports whether no level is currently open.
func (s *EncodeNestingStack) AtTop() bool {
	return s.depth == 0
}

// Current returns a pointer to the innermost open level, or nil if
// nothing is open.
func (s *EncodeNestingStack) Current() *EncodeNestingLevel {
	if s.depth == 0 {
		return nil
	}
	return &s.levels[s.depth-1]
}

// Open pushes a new level snapshotting byteOffset as the position of
// the head to be patched on Close. Returns false if the stack is
// already at its maximum depth.
func (s *EncodeNestingStack) Open(major MajorType, byteOffset uint64) bool {
	if s.depth >= s.max {
		return false
	}
	s.levels[s.depth] = EncodeNestingLevel{ByteOffsetOfHead: byteOffset, MajorType: major}
	s.depth++
	return true
}

// AddItem increments the current level's item count, for use by every
// non-container Add. Maps add once per label and once per value, i.e.
// two calls per pair.
func (s *EncodeNestingStack) AddItem() {
	if s.depth == 0 {
		return
	}
	s.levels[s.depth-1].ItemCount++
}

// CloseStatus distinguishes the two ways Close can fail, since each
// maps to a distinct decoder-visible error code.
type CloseStatus int

const (
	CloseOK CloseStatus = iota
	CloseTooManyCloses
	CloseMismatch
)

// CloseResult is what Close needs from the popped level to patch the
// output stream.
type CloseResult struct {
	ByteOffsetOfHead uint64
	ItemCount        uint64 // halved already for maps
	Status           CloseStatus
}

// Close pops the current level, verifying it matches expectedMajor
// (spec §4.E "close").
func (s *EncodeNestingStack) Close(expectedMajor MajorType) CloseResult {
	if s.depth == 0 {
		return CloseResult{Status: CloseTooManyCloses}
	}
	level := s.levels[s.depth-1]
	if level.MajorType != expectedMajor {
		return CloseResult{Status: CloseMismatch}
	}
	s.depth--
	itemCount := level.ItemCount
	if expectedMajor == MajorMap {
		itemCount /= 2
	}
	if s.depth > 0 {
		s.levels[s.depth-1].ItemCount++
	}
	return CloseResult{ByteOffsetOfHead: level.ByteOffsetOfHead, ItemCount: itemCount, Status: CloseOK}
}
