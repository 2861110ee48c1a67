package core

// LabelValue is the canonical, comparable form of a map label, kept
// independent of the public Label sum type so this package isn't made
// to import its own importer.
type LabelValue struct {
	Kind   byte
	Int64  int64
	Uint64 uint64
	Text   string
	Bytes  string
}

// DuplicateLabelChecker is an opt-in helper an application can drive
// alongside Decoder.GetNext to flag a map with two pairs sharing the
// same label. The decoder itself never enforces label uniqueness (spec
// §4.F leaves that to the caller), mirroring the teacher's
// Allocator.ValidateNoOverlaps: additive, and it never runs unless a
// caller calls it.
type DuplicateLabelChecker struct {
	seen map[LabelValue]struct{}
}

// NewDuplicateLabelChecker returns a checker pre-sized for a map of
// pairCount pairs, with the size hint capped at 64.
func NewDuplicateLabelChecker(pairCount uint64) *DuplicateLabelChecker {
	n := pairCount
	if n > 64 {
		n = 64
	}
	return &DuplicateLabelChecker{seen: make(map[LabelValue]struct{}, n)}
}

// Check records lv and reports whether it had already been seen by
// this checker.
func (c *DuplicateLabelChecker) Check(lv LabelValue) bool {
	if _, dup := c.seen[lv]; dup {
		return true
	}
	c.seen[lv] = struct{}{}
	return false
}
