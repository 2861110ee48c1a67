package qcbor

import (
	"github.com/scigolib/qcbor/internal/core"
	"github.com/scigolib/qcbor/internal/utils"
)

// EncoderOption configures a new Encoder.
type EncoderOption func(*Encoder)

// WithMaxNestingDepth overrides the default nesting depth (10),
// clamped to core's hard limit of 255.
func WithMaxNestingDepth(depth int) EncoderOption {
	return func(e *Encoder) {
		e.maxDepth = depth
	}
}

// Encoder builds one CBOR data item via a sequence of Add/Open/Close
// calls (spec §4.F). No method returns an error: failures are sticky
// on the underlying stream and only surface at Finish, so callers never
// check after every call.
type Encoder struct {
	out      *core.OutputStream
	nest     *core.EncodeNestingStack
	maxDepth int
}

// NewEncoder returns an Encoder that writes into storage.
func NewEncoder(storage []byte, opts ...EncoderOption) *Encoder {
	e := &Encoder{out: core.InitOutputStream(utils.NewView(storage))}
	for _, opt := range opts {
		opt(e)
	}
	e.nest = core.NewEncodeNestingStack(e.maxDepth)
	return e
}

// NewSizeCalculateEncoder returns an Encoder that performs every bounds
// check but never actually writes bytes, for computing the length a
// real encode would produce (spec §4.F "Size-only mode").
func NewSizeCalculateEncoder(capacity uint64, opts ...EncoderOption) *Encoder {
	e := &Encoder{out: core.NewSizeCalculateStream(capacity)}
	for _, opt := range opts {
		opt(e)
	}
	e.nest = core.NewEncodeNestingStack(e.maxDepth)
	return e
}

func (e *Encoder) countItem() {
	e.nest.AddItem()
}

// AddUint64 emits a non-negative integer at its minimal width.
func (e *Encoder) AddUint64(v uint64) {
	if e.out.Err() != nil {
		return
	}
	core.EncodeHead(e.out, core.MajorUnsignedInt, v)
	e.countItem()
}

// AddInt64 emits a signed integer, choosing major type 0 or 1 and the
// minimal width per CBOR §3.
func (e *Encoder) AddInt64(v int64) {
	if e.out.Err() != nil {
		return
	}
	if v >= 0 {
		core.EncodeHead(e.out, core.MajorUnsignedInt, uint64(v))
	} else {
		// ^v == -1-v in two's complement, computed without overflow
		// even when v is math.MinInt64.
		core.EncodeHead(e.out, core.MajorNegativeInt, uint64(^v))
	}
	e.countItem()
}

// AddBytes emits a definite-length byte string.
func (e *Encoder) AddBytes(b []byte) {
	if e.out.Err() != nil {
		return
	}
	core.EncodeHead(e.out, core.MajorByteString, uint64(len(b)))
	e.out.Append(b)
	e.countItem()
}

// AddText emits a definite-length UTF-8 text string. UTF-8 validity is
// the caller's concern, not the encoder's.
func (e *Encoder) AddText(s string) {
	if e.out.Err() != nil {
		return
	}
	core.EncodeHead(e.out, core.MajorTextString, uint64(len(s)))
	e.out.Append([]byte(s))
	e.countItem()
}

// AddDoubleAsSmallest emits v at the narrowest of {half, single,
// double} precision that reproduces it exactly (spec §4.D/§4.F).
func (e *Encoder) AddDoubleAsSmallest(v float64) {
	if e.out.Err() != nil {
		return
	}
	width, bits := core.SmallestFloatBits(utils.Float64ToBits(v))
	switch width {
	case core.WidthHalf:
		core.EncodeFixedWidthHead(e.out, core.MajorSimple, core.AITwoByte)
		e.out.AppendU16(uint16(bits))
	case core.WidthSingle:
		core.EncodeFixedWidthHead(e.out, core.MajorSimple, core.AIFourByte)
		e.out.AppendU32(uint32(bits))
	default:
		core.EncodeFixedWidthHead(e.out, core.MajorSimple, core.AIEightByte)
		e.out.AppendU64(bits)
	}
	e.countItem()
}

// AddFloat emits v at full single-precision width.
func (e *Encoder) AddFloat(v float32) {
	if e.out.Err() != nil {
		return
	}
	core.EncodeFixedWidthHead(e.out, core.MajorSimple, core.AIFourByte)
	e.out.AppendFloat(v)
	e.countItem()
}

// AddDouble emits v at full double-precision width.
func (e *Encoder) AddDouble(v float64) {
	if e.out.Err() != nil {
		return
	}
	core.EncodeFixedWidthHead(e.out, core.MajorSimple, core.AIEightByte)
	e.out.AppendDouble(v)
	e.countItem()
}

// AddTag emits an optional-tagging head for n. Tags accumulate in the
// wire bytes themselves (each is its own head immediately preceding the
// tagged value); they are not counted as items by the nesting tracker,
// so a label tagged with one tag still contributes exactly one item to
// its enclosing map or array.
func (e *Encoder) AddTag(n uint64) {
	if e.out.Err() != nil {
		return
	}
	core.EncodeHead(e.out, core.MajorTag, n)
}

// AddSimple emits a major-type-7 simple value. Permitted values are
// {20 false, 21 true, 22 null, 23 undefined} and 32-255; everything
// else is invalid (spec §4.F).
func (e *Encoder) AddSimple(v byte) {
	if e.out.Err() != nil {
		return
	}
	if !(v == core.AIFalse || v == core.AITrue || v == core.AINull || v == core.AIUndefined || v >= 32) {
		e.out.Fail(core.ErrInvalidSimpleValue, "add_simple")
		return
	}
	if v < core.AIOneByte {
		e.out.Append([]byte{byte(core.MajorSimple)<<5 | v})
	} else {
		e.out.Append([]byte{byte(core.MajorSimple)<<5 | core.AIOneByte})
		e.out.Append([]byte{v})
	}
	e.countItem()
}

// AddBool, AddNull and AddUndefined are convenience wrappers over
// AddSimple for the three fixed-value simple types.
func (e *Encoder) AddBool(b bool) {
	if b {
		e.AddSimple(core.AITrue)
	} else {
		e.AddSimple(core.AIFalse)
	}
}

func (e *Encoder) AddNull()      { e.AddSimple(core.AINull) }
func (e *Encoder) AddUndefined() { e.AddSimple(core.AIUndefined) }

func (e *Encoder) open(major core.MajorType) {
	if e.out.Err() != nil {
		return
	}
	offset := e.out.GetEndPosition()
	if !e.nest.Open(major, offset) {
		e.out.Fail(core.ErrNestingTooDeep, "open")
	}
}

// OpenArray begins a new array; matching items must be added before
// CloseArray.
func (e *Encoder) OpenArray() { e.open(core.MajorArray) }

// OpenMap begins a new map; contents must be added as label/value pairs
// (spec §4.F map label policy).
func (e *Encoder) OpenMap() { e.open(core.MajorMap) }

// OpenBstrWrap begins a byte string whose content is itself CBOR-
// encoded data written via further Add/Open calls.
func (e *Encoder) OpenBstrWrap() { e.open(core.MajorByteString) }

// headBytes renders the minimal CBOR head for (major, value) into a
// standalone buffer, for insertion at a nesting level's recorded
// offset once its final item count is known.
func headBytes(major core.MajorType, value uint64) []byte {
	tmp := core.InitOutputStream(utils.NewView(make([]byte, 9)))
	core.EncodeHead(tmp, major, value)
	return tmp.Out().Data
}

func (e *Encoder) close(major core.MajorType) {
	if e.out.Err() != nil {
		return
	}
	res := e.nest.Close(major)
	switch res.Status {
	case core.CloseTooManyCloses:
		e.out.Fail(core.ErrTooManyCloses, "close")
		return
	case core.CloseMismatch:
		e.out.Fail(core.ErrCloseOpenMismatch, "close")
		return
	}
	e.out.Insert(headBytes(major, res.ItemCount), res.ByteOffsetOfHead)
}

// CloseArray closes the innermost open array, patching its head with
// the final, minimally-encoded element count.
func (e *Encoder) CloseArray() { e.close(core.MajorArray) }

// CloseMap closes the innermost open map, patching its head with the
// final pair count (half the raw item count).
func (e *Encoder) CloseMap() { e.close(core.MajorMap) }

// CloseBstrWrap closes the innermost open byte-string wrap, patching
// its head with the wrapped content's length, and returns an immutable
// view of the wrapped bytes (not including the head). The view is only
// valid until the next mutating call on this Encoder.
func (e *Encoder) CloseBstrWrap() utils.View {
	if e.out.Err() != nil {
		return utils.NullView
	}
	res := e.nest.Close(core.MajorByteString)
	switch res.Status {
	case core.CloseTooManyCloses:
		e.out.Fail(core.ErrTooManyCloses, "close_bstr_wrap")
		return utils.NullView
	case core.CloseMismatch:
		e.out.Fail(core.ErrCloseOpenMismatch, "close_bstr_wrap")
		return utils.NullView
	}
	// A bstr-wrap's head carries the wrapped byte length, not an item
	// count, so res.ItemCount (meaningful for array/map) goes unused.
	wrappedLen := e.out.GetEndPosition() - res.ByteOffsetOfHead
	head := headBytes(core.MajorByteString, wrappedLen)
	e.out.Insert(head, res.ByteOffsetOfHead)
	full := e.out.Out()
	if full.IsNull() {
		return utils.NullView
	}
	start := res.ByteOffsetOfHead + uint64(len(head))
	return full.Tail(int(start)).Head(int(wrappedLen))
}

// AddEncoded copies raw, already-encoded CBOR verbatim, treated as
// exactly one data item at the current level (e.g. for pre-rendered
// COSE structures assembled out-of-band).
func (e *Encoder) AddEncoded(b []byte) {
	if e.out.Err() != nil {
		return
	}
	e.out.Append(b)
	e.countItem()
}

// Finish returns the encoded bytes. It is an error to call Finish while
// any array/map/bstr-wrap is still open.
func (e *Encoder) Finish() (utils.View, error) {
	if err := e.out.Err(); err != nil {
		return utils.NullView, err
	}
	if !e.nest.AtTop() {
		e.out.Fail(core.ErrOpenContainerAtFinish, "finish")
		return utils.NullView, e.out.Err()
	}
	if v := e.out.Out(); !v.IsNull() {
		return v, nil
	}
	// A size-calculate Encoder never holds real bytes; report only the
	// length a real encode would have produced (spec §4.F).
	return utils.NewView(make([]byte, e.out.GetEndPosition())), nil
}
