package core

import "github.com/scigolib/qcbor/internal/utils"

const inputStreamMagic = 0x51434252

// InputStream is a cursor over an immutable byte view with typed
// big-endian reads and sticky-error semantics (spec §3/§4.C). The
// decoder never reads the underlying buffer directly; it always goes
// through one of these typed accessors, so bounds checking lives in
// exactly one place.
type InputStream struct {
	magic  uint32
	view   utils.View
	cursor uint64
	err    *CodecError
}

// InitInputStream associates view with a fresh InputStream.
func InitInputStream(view utils.View) *InputStream {
	return &InputStream{
		magic: inputStreamMagic,
		view:  view,
	}
}

func (in *InputStream) checkMagic() {
	if in.magic != inputStreamMagic {
		in.setError(ErrUninitializedContext, "input stream")
	}
}

func (in *InputStream) setError(e *CodecError, context string) {
	if in.err == nil {
		in.err = e.WithContext(context)
	}
}

// Err returns the sticky error, or nil.
func (in *InputStream) Err() error {
	if in.err == nil {
		return nil
	}
	return in.err
}

// Fail sets the sticky error from outside the package, for the
// higher-level decoder errors (bad map label type, date overflow, and
// so on) that only the decoder can detect.
func (in *InputStream) Fail(e *CodecError, context string) {
	in.setError(e, context)
}

// Tell returns the current cursor position.
func (in *InputStream) Tell() uint64 {
	return in.cursor
}

// Seek moves the cursor to an arbitrary offset. It is an error to seek
// past the end of the view. Seeking to a valid offset does not clear a
// previously-set sticky error (spec §4.C).
func (in *InputStream) Seek(pos uint64) {
	in.checkMagic()
	if pos > uint64(in.view.Len()) {
		in.setError(ErrHitEnd, "seek past end")
		return
	}
	in.cursor = pos
}

// BytesUnconsumed returns the number of bytes between the cursor and
// the end of the view, or 0 if the stream's magic is corrupted or the
// cursor is somehow past the end.
func (in *InputStream) BytesUnconsumed() uint64 {
	if in.magic != inputStreamMagic {
		return 0
	}
	total := uint64(in.view.Len())
	if in.cursor > total {
		return 0
	}
	return total - in.cursor
}

// BytesAvailable reports whether n more bytes remain to be read.
func (in *InputStream) BytesAvailable(n uint64) bool {
	return in.BytesUnconsumed() >= n
}

// GetBytes returns the next n bytes and advances the cursor, or sets
// the sticky error and returns a null view.
func (in *InputStream) GetBytes(n uint64) utils.View {
	in.checkMagic()
	if in.err != nil {
		return utils.NullView
	}
	if !in.BytesAvailable(n) {
		in.setError(ErrHitEnd, "get_bytes")
		return utils.NullView
	}
	start := in.cursor
	in.cursor += n
	return in.view.Tail(int(start)).Head(int(n))
}

// GetByte reads a single byte.
func (in *InputStream) GetByte() byte {
	v := in.GetBytes(1)
	if v.IsNull() {
		return 0
	}
	return v.Data[0]
}

// GetU16/GetU32/GetU64 read big-endian unsigned integers. On error they
// return 0, matching spec §4.C's "subsequent reads return zeroed
// primitives" rule so callers may defer error checks.
func (in *InputStream) GetU16() uint16 {
	v := in.GetBytes(2)
	if v.IsNull() {
		return 0
	}
	return uint16(v.Data[0])<<8 | uint16(v.Data[1])
}

func (in *InputStream) GetU32() uint32 {
	v := in.GetBytes(4)
	if v.IsNull() {
		return 0
	}
	var r uint32
	for i := 0; i < 4; i++ {
		r = r<<8 | uint32(v.Data[i])
	}
	return r
}

func (in *InputStream) GetU64() uint64 {
	v := in.GetBytes(8)
	if v.IsNull() {
		return 0
	}
	var r uint64
	for i := 0; i < 8; i++ {
		r = r<<8 | uint64(v.Data[i])
	}
	return r
}

// GetFloat and GetDouble read full-width big-endian IEEE-754 values,
// sharing GetU32/GetU64 for the same reason AppendFloat/AppendDouble do
// on the encoder side.
func (in *InputStream) GetFloat() float32 {
	return utils.BitsToFloat32(in.GetU32())
}

func (in *InputStream) GetDouble() float64 {
	return utils.BitsToFloat64(in.GetU64())
}
