// Package core provides the low-level CBOR codec engineering: the
// output/input byte streams, the nesting tracker shared by the encoder
// and decoder, the IEEE-754 minimizer, and the sticky-error taxonomy
// they all report through.
package core

import "fmt"

// ErrorCode identifies one of the codec's distinct, caller-visible error
// conditions (spec §7's taxonomy). It is the sum type backing
// CodecError.Code.
type ErrorCode uint8

// Error codes, one per spec §7 taxonomy entry.
const (
	CodeNone ErrorCode = iota
	CodeBufferTooSmall
	CodeNestingTooDeep
	CodeTooManyCloses
	CodeCloseOpenMismatch
	CodeInvalidSimpleValue
	CodeUninitializedContext
	CodeHitEnd
	CodeUnsupportedConstruct
	CodeContainerTooLong
	CodeIntegerOverflow
	CodeBadMapLabelType
	CodeOpenContainerAtFinish
	CodeDateOverflow
	CodeInvalidCborStructure
	CodeBadOptionalTag
	CodeExtraTrailingBytes
	CodeIndefiniteStringSegmentMismatch
	CodeNoStringAllocator
	CodeStringAllocatorFailed
	CodeBadBreak
)

// CodecError is the sticky error value stored on OutputStream,
// InputStream and the nesting stacks. Context names the operation that
// first observed the fault; Code identifies the taxonomy entry so
// callers can use errors.Is against the package-level sentinels below
// regardless of how much context has accumulated.
type CodecError struct {
	Code    ErrorCode
	Context string
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Context == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Code.String())
}

// Is reports whether target is a *CodecError with the same Code,
// letting errors.Is(err, core.ErrBufferTooSmall) succeed even after the
// error has been wrapped with additional context elsewhere.
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithContext returns a copy of the sentinel with Context set, used when
// an operation first sets the sticky error and wants to record where.
func (e *CodecError) WithContext(context string) *CodecError {
	return &CodecError{Code: e.Code, Context: context}
}

// Sentinel errors, one per ErrorCode, usable directly with errors.Is.
var (
	ErrBufferTooSmall                    = &CodecError{Code: CodeBufferTooSmall}
	ErrNestingTooDeep                    = &CodecError{Code: CodeNestingTooDeep}
	ErrTooManyCloses                     = &CodecError{Code: CodeTooManyCloses}
	ErrCloseOpenMismatch                 = &CodecError{Code: CodeCloseOpenMismatch}
	ErrInvalidSimpleValue                = &CodecError{Code: CodeInvalidSimpleValue}
	ErrUninitializedContext              = &CodecError{Code: CodeUninitializedContext}
	ErrHitEnd                            = &CodecError{Code: CodeHitEnd}
	ErrUnsupportedConstruct              = &CodecError{Code: CodeUnsupportedConstruct}
	ErrContainerTooLong                  = &CodecError{Code: CodeContainerTooLong}
	ErrIntegerOverflow                   = &CodecError{Code: CodeIntegerOverflow}
	ErrBadMapLabelType                   = &CodecError{Code: CodeBadMapLabelType}
	ErrOpenContainerAtFinish             = &CodecError{Code: CodeOpenContainerAtFinish}
	ErrDateOverflow                      = &CodecError{Code: CodeDateOverflow}
	ErrInvalidCborStructure              = &CodecError{Code: CodeInvalidCborStructure}
	ErrBadOptionalTag                    = &CodecError{Code: CodeBadOptionalTag}
	ErrExtraTrailingBytes                = &CodecError{Code: CodeExtraTrailingBytes}
	ErrIndefiniteStringSegmentMismatch   = &CodecError{Code: CodeIndefiniteStringSegmentMismatch}
	ErrNoStringAllocator                 = &CodecError{Code: CodeNoStringAllocator}
	ErrStringAllocatorFailed             = &CodecError{Code: CodeStringAllocatorFailed}
	ErrBadBreak                          = &CodecError{Code: CodeBadBreak}
)
