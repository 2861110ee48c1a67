package core

import (
	"github.com/scigolib/qcbor/internal/utils"
)

const outputStreamMagic = 0x51434252 // "QCBR"

// OutputStream owns a growing "valid region" inside a fixed mutable
// buffer (spec §3/§4.B). All Add operations on the encoder ultimately
// go through Append/Insert here; this is the only place in the codec
// that does pointer/length arithmetic on the output buffer.
//
// When storage is NullView, the stream runs in size-only mode: every
// write is bounds-checked and counted but never actually copied. This
// lets Encoder.Finish report the byte count a real encode would have
// produced (spec §4.F "Size-only mode").
type OutputStream struct {
	magic            uint32
	storage          utils.View // mutable backing buffer; NullView => size-only mode
	dataLen          uint64
	sizeOnlyCapacity uint64 // nominal capacity while storage is a NullView
	err              *CodecError
}

// InitOutputStream associates storage with a fresh OutputStream.
func InitOutputStream(storage utils.View) *OutputStream {
	return &OutputStream{
		magic:   outputStreamMagic,
		storage: storage,
	}
}

// NewSizeCalculateStream creates an OutputStream in size-only mode with
// the given nominal capacity (spec §4.F).
func NewSizeCalculateStream(capacity uint64) *OutputStream {
	return &OutputStream{
		magic:            outputStreamMagic,
		storage:          utils.NullView,
		sizeOnlyCapacity: capacity,
	}
}

func (o *OutputStream) isSizeOnly() bool {
	return !o.storage.Present
}

func (o *OutputStream) capacity() uint64 {
	if o.isSizeOnly() {
		return o.sizeOnlyCapacity
	}
	return uint64(len(o.storage.Data))
}

// Reset clears the valid-data length and error, keeping the same
// storage.
func (o *OutputStream) Reset() {
	o.checkMagic()
	o.dataLen = 0
	o.err = nil
}

func (o *OutputStream) checkMagic() {
	if o.magic != outputStreamMagic {
		o.setError(ErrUninitializedContext, "output stream")
	}
}

func (o *OutputStream) setError(e *CodecError, context string) {
	if o.err == nil {
		o.err = e.WithContext(context)
	}
}

// Err returns the sticky error, or nil.
func (o *OutputStream) Err() error {
	if o.err == nil {
		return nil
	}
	return o.err
}

// Fail sets the sticky error from outside the package, for the
// higher-level encoder errors (nesting too deep, close/open mismatch,
// invalid simple value) that only it can detect.
func (o *OutputStream) Fail(e *CodecError, context string) {
	o.setError(e, context)
}

// Append copies bytes onto the end of the valid region.
func (o *OutputStream) Append(b []byte) {
	o.Insert(b, o.dataLen)
}

// Insert copies bytes into the stream at pos, shifting any existing tail
// bytes right by len(b) first. pos must be in [0, dataLen]; overlapping
// source (e.g. inserting bytes that live inside this same stream) is
// handled correctly via copy()'s overlap-safe semantics.
func (o *OutputStream) Insert(b []byte, pos uint64) {
	o.checkMagic()
	if o.err != nil {
		return
	}
	if pos > o.dataLen {
		o.setError(ErrBufferTooSmall, "insert position past valid data")
		return
	}
	n := uint64(len(b))
	if err := utils.ValidateCapacity(o.dataLen, n, o.capacity()); err != nil {
		o.setError(ErrBufferTooSmall, "insert")
		return
	}

	if !o.isSizeOnly() {
		// Shift the tail right within storage (capacity was checked
		// above), then copy in; the logical length grows afterwards.
		buf := o.storage.Data
		copy(buf[pos+n:o.dataLen+n], buf[pos:o.dataLen])
		copy(buf[pos:pos+n], b)
	}
	o.dataLen += n
}

// AppendU16/AppendU32/AppendU64 emit big-endian unsigned integers.
func (o *OutputStream) AppendU16(v uint16) {
	var b [2]byte
	b[0] = byte(v >> 8)
	b[1] = byte(v)
	o.Append(b[:])
}

func (o *OutputStream) AppendU32(v uint32) {
	var b [4]byte
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
	o.Append(b[:])
}

func (o *OutputStream) AppendU64(v uint64) {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> uint(8*(7-i)))
	}
	o.Append(b[:])
}

// AppendFloat and AppendDouble emit full-width big-endian IEEE-754
// values, sharing AppendU32/AppendU64 so no platform endianness or
// strict-aliasing concern ever touches the float bit pattern directly.
func (o *OutputStream) AppendFloat(v float32) {
	o.AppendU32(utils.Float32ToBits(v))
}

func (o *OutputStream) AppendDouble(v float64) {
	o.AppendU64(utils.Float64ToBits(v))
}

// RoomLeft returns the number of bytes still free in the buffer.
func (o *OutputStream) RoomLeft() uint64 {
	capacity := o.capacity()
	if o.dataLen >= capacity {
		return 0
	}
	return capacity - o.dataLen
}

// WillFit reports whether n more bytes would fit without overflowing
// capacity.
func (o *OutputStream) WillFit(n uint64) bool {
	return utils.ValidateCapacity(o.dataLen, n, o.capacity()) == nil
}

// AtStart reports whether nothing has been written yet.
func (o *OutputStream) AtStart() bool {
	return o.dataLen == 0
}

// GetEndPosition returns the current valid-data length, i.e. the byte
// offset one past the last written byte. Nesting levels snapshot this
// when they open, so Close can find the head to patch.
func (o *OutputStream) GetEndPosition() uint64 {
	return o.dataLen
}

// Out returns an immutable view of the valid region, or a null view if
// the stream has a sticky error.
func (o *OutputStream) Out() utils.View {
	if o.err != nil || o.isSizeOnly() {
		return utils.NullView
	}
	return utils.NewView(o.storage.Data[:o.dataLen])
}

// CopyOut copies the valid region into dest, returning the number of
// bytes copied.
func (o *OutputStream) CopyOut(dest []byte) int {
	if o.err != nil {
		return 0
	}
	return copy(dest, o.storage.Data[:o.dataLen])
}
