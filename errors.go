package qcbor

import "github.com/scigolib/qcbor/internal/core"

// ErrorCode identifies one of the codec's distinct, caller-visible
// error conditions. It is re-exported from internal/core so callers
// never need to import that package directly.
type ErrorCode = core.ErrorCode

// Sentinel errors, usable directly with errors.Is against whatever
// Encoder.Finish or Decoder.Finish/GetNext returns.
var (
	ErrBufferTooSmall                  = core.ErrBufferTooSmall
	ErrNestingTooDeep                  = core.ErrNestingTooDeep
	ErrTooManyCloses                   = core.ErrTooManyCloses
	ErrCloseOpenMismatch               = core.ErrCloseOpenMismatch
	ErrInvalidSimpleValue              = core.ErrInvalidSimpleValue
	ErrUninitializedContext            = core.ErrUninitializedContext
	ErrHitEnd                          = core.ErrHitEnd
	ErrUnsupportedConstruct            = core.ErrUnsupportedConstruct
	ErrContainerTooLong                = core.ErrContainerTooLong
	ErrIntegerOverflow                 = core.ErrIntegerOverflow
	ErrBadMapLabelType                 = core.ErrBadMapLabelType
	ErrOpenContainerAtFinish           = core.ErrOpenContainerAtFinish
	ErrDateOverflow                    = core.ErrDateOverflow
	ErrInvalidCborStructure            = core.ErrInvalidCborStructure
	ErrBadOptionalTag                  = core.ErrBadOptionalTag
	ErrExtraTrailingBytes              = core.ErrExtraTrailingBytes
	ErrIndefiniteStringSegmentMismatch = core.ErrIndefiniteStringSegmentMismatch
	ErrNoStringAllocator               = core.ErrNoStringAllocator
	ErrStringAllocatorFailed           = core.ErrStringAllocatorFailed
	ErrBadBreak                        = core.ErrBadBreak
)
