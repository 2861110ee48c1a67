package qcbor

import "github.com/scigolib/qcbor/internal/utils"

// ItemType classifies a decoded Item (spec §3 Item table).
type ItemType int

const (
	TypeInt64 ItemType = iota
	TypeUint64
	TypeByteString
	TypeTextString
	TypeArray
	TypeMap
	TypeFloat
	TypeDouble
	TypePosBigNum
	TypeNegBigNum
	TypeDateString
	TypeDateEpoch
	TypeUnknownSimple
	TypeFalse
	TypeTrue
	TypeNull
	TypeUndef
)

// LabelKind discriminates the sum-type Label field of an Item that sits
// inside a map.
type LabelKind int

const (
	LabelNone LabelKind = iota
	LabelInt64
	LabelUint64
	LabelText
	LabelBytes
)

// Label is the key half of a map entry (spec §3 "label"). It is a
// proper sum type, not the source's QCBOR_NO_INT_LABEL sentinel value
// trick (see DESIGN.md's open-question notes).
type Label struct {
	Kind   LabelKind
	Int64  int64
	Uint64 uint64
	Text   utils.View
	Bytes  utils.View
}

// DateEpoch is the value of a TypeDateEpoch item: seconds since the
// Unix epoch, plus a fractional part when the payload was a float.
type DateEpoch struct {
	Seconds  int64
	Fraction float64
}

// IndefiniteCount is Item.Count's value for an indefinite-length array
// or map, i.e. one still waiting on a break code.
const IndefiniteCount = ^uint64(0)

// Item is the value returned from Decoder.GetNext (spec §3). Exactly
// the fields relevant to Type are meaningful; the rest are zero.
type Item struct {
	Type ItemType

	Int64  int64
	Uint64 uint64

	Bytes utils.View // ByteString, PosBigNum, NegBigNum payload
	Text  utils.View // TextString, DateString payload

	Count uint64 // Array/Map element count, or IndefiniteCount

	// Double carries the float payload for both TypeFloat and
	// TypeDouble: Type itself records whether the wire encoding was
	// half/single precision (Float) or full double (Double); Go has no
	// narrower lossless float type worth threading through here.
	Double float64

	DateEpoch DateEpoch

	Simple byte // TypeUnknownSimple payload (32-255, or 0-19 unassigned)

	Label Label

	NestingLevel     int
	NextNestingLevel int

	TagBits      uint16
	LastLargeTag uint64

	// SelfDescribe reports whether the CBOR self-describe tag (55799)
	// preceded this item. It is its own field rather than a TagBits bit
	// or a LastLargeTag overwrite: the self-describe tag carries no
	// payload interpretation of its own (spec §6), so folding it into
	// either of those would either cost a bit for a tag nobody queries
	// via TagBits, or silently clobber whatever real large tag preceded
	// it.
	SelfDescribe bool

	AllocatedData  bool
	AllocatedLabel bool
}
