package qcbor

import "github.com/scigolib/qcbor/internal/core"

// DuplicateLabelChecker flags a map whose pairs share a label value.
// It is opt-in: CBOR itself leaves label uniqueness to the application
// (spec §4.F), so GetNext never consults one. Construct a checker when
// a Map item comes back from GetNext, sized to its pair count, and
// call Check with each subsequent pair's label.
type DuplicateLabelChecker struct {
	inner *core.DuplicateLabelChecker
}

// NewDuplicateLabelChecker returns a checker sized for a map with
// pairCount pairs.
func NewDuplicateLabelChecker(pairCount uint64) *DuplicateLabelChecker {
	return &DuplicateLabelChecker{inner: core.NewDuplicateLabelChecker(pairCount)}
}

// Check reports whether label has already been seen by this checker.
func (c *DuplicateLabelChecker) Check(label Label) bool {
	return c.inner.Check(core.LabelValue{
		Kind:   byte(label.Kind),
		Int64:  label.Int64,
		Uint64: label.Uint64,
		Text:   string(label.Text.Data),
		Bytes:  string(label.Bytes.Data),
	})
}
