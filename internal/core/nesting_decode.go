package core

import "github.com/scigolib/qcbor/internal/utils"

// IndefiniteRemaining is the DecodeNestingLevel.Remaining sentinel for
// an indefinite-length container, whose end is a break code rather
// than a count (spec §3 "NestingLevel (decoder side)").
const IndefiniteRemaining = ^uint64(0)

// MaxMapPairCount is the largest map pair count whose doubled raw item
// count fits in a uint64 without overflow.
const MaxMapPairCount = IndefiniteRemaining / 2

// DecodeNestingLevel tracks one open array or map on the decoder side.
type DecodeNestingLevel struct {
	Remaining uint64 // item count left, or IndefiniteRemaining
	MajorType MajorType
}

// DecodeNestingStack is the decoder's counterpart to
// EncodeNestingStack: instead of patching head bytes, it counts down
// remaining items and pops automatically when a level completes.
type DecodeNestingStack struct {
	levels []DecodeNestingLevel
	depth  int
	max    int
}

// NewDecodeNestingStack returns a stack with the given maximum depth;
// zero or less selects utils.DefaultNestingDepth, and larger values are
// capped at utils.MaxNestingDepthHardLimit. Level 0 (the implicit
// top-level sequence of items) starts already present, so Depth()
// begins at 1 as soon as anything has been pushed.
func NewDecodeNestingStack(maxDepth int) *DecodeNestingStack {
	if maxDepth <= 0 {
		maxDepth = utils.DefaultNestingDepth
	}
	if maxDepth > utils.MaxNestingDepthHardLimit {
		maxDepth = utils.MaxNestingDepthHardLimit
	}
	return &DecodeNestingStack{
		levels: make([]DecodeNestingLevel, maxDepth),
		max:    maxDepth,
	}
}

// Depth reports how many container levels are currently open.
func (s *DecodeNestingStack) Depth() int {
	return s.depth
}

// Current returns a pointer to the innermost open level, or nil at the
// top level.
func (s *DecodeNestingStack) Current() *DecodeNestingLevel {
	if s.depth == 0 {
		return nil
	}
	return &s.levels[s.depth-1]
}

// Push opens a new container level. remaining is IndefiniteRemaining
// for an indefinite-length container, else the item count (pair count
// already doubled for maps, per spec §4.G step 3). Returns false if the
// stack is already at its maximum depth.
func (s *DecodeNestingStack) Push(major MajorType, remaining uint64) bool {
	if s.depth >= s.max {
		return false
	}
	s.levels[s.depth] = DecodeNestingLevel{Remaining: remaining, MajorType: major}
	s.depth++
	return true
}

// consumeCascade decrements the top level's remaining count by cur. If
// that empties the level, it pops and the cascade continues upward
// with a carry of exactly 1 — completing a child container is itself
// exactly one consumed item of its parent, whether that child was a
// plain value or, several calls earlier, a container whose own opening
// was deferred (see ConsumeOne's doc comment). A level whose Remaining
// is the indefinite sentinel stops the cascade: it only ever closes
// via an explicit break, handled by PopIfBreak.
func (s *DecodeNestingStack) consumeCascade(cur uint64) int {
	for s.depth > 0 {
		level := &s.levels[s.depth-1]
		if level.Remaining == IndefiniteRemaining {
			break
		}
		if level.Remaining > cur {
			level.Remaining -= cur
			break
		}
		s.depth--
		cur = 1
	}
	return s.depth
}

// ConsumeOne charges one item (or, via n, more than one — e.g. two for
// a map label+value pair read in one call) against the currently open
// level, cascading completions upward (spec §4.G step 8).
//
// Callers must NOT call this for an item that itself just opened a
// non-empty container: that push left the new, empty-of-consumption
// child on top, and charging "current top" would wrongly charge the
// child's own remaining instead of its parent's. Such an item's charge
// against its parent is deferred entirely — it lands automatically,
// via this same cascade, at the moment that child container itself
// later empties out (pops) or, for an indefinite child, via
// PopIfBreak. A charge is only ever applied directly when the level
// topmost right now is unchanged from before this item was read (a
// leaf item, or a container that turned out to have zero elements and
// so was never pushed at all).
func (s *DecodeNestingStack) ConsumeOne(n uint64) int {
	return s.consumeCascade(n)
}

// PopIfBreak pops the current level if it is indefinite-length, then
// carries a charge of 1 into the newly exposed parent — the same
// "completing a child charges its parent by exactly one" accounting
// ConsumeOne's cascade performs for definite-length children, since an
// indefinite child's own opening never charged its parent up front
// either. It is the caller's job to have already consumed the break
// byte itself.
func (s *DecodeNestingStack) PopIfBreak() {
	if s.depth == 0 {
		return
	}
	if s.levels[s.depth-1].Remaining == IndefiniteRemaining {
		s.depth--
		s.consumeCascade(1)
	}
}

// IsIndefiniteOpen reports whether the current level is open and
// indefinite-length.
func (s *DecodeNestingStack) IsIndefiniteOpen() bool {
	return s.depth > 0 && s.levels[s.depth-1].Remaining == IndefiniteRemaining
}
