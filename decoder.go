package qcbor

import (
	"github.com/scigolib/qcbor/internal/core"
	"github.com/scigolib/qcbor/internal/pool"
	"github.com/scigolib/qcbor/internal/utils"
)

// DecoderMode selects how map labels are handled (spec §4.G step 7).
type DecoderMode int

const (
	// ModeNormal accepts Uint64, Int64, TextString, or ByteString map
	// labels.
	ModeNormal DecoderMode = iota
	// ModeMapStringsOnly requires every map label to be a TextString.
	ModeMapStringsOnly
	// ModeMapAsArray treats every map's open level as an array of
	// double the count; labels are returned as ordinary items rather
	// than populating Item.Label.
	ModeMapAsArray
)

// DecoderOption configures a new Decoder.
type DecoderOption func(*Decoder)

// WithMode selects the map-label handling mode (default ModeNormal).
func WithMode(mode DecoderMode) DecoderOption {
	return func(d *Decoder) { d.mode = mode }
}

// WithDecoderMaxNestingDepth overrides the default nesting depth (10).
func WithDecoderMaxNestingDepth(depth int) DecoderOption {
	return func(d *Decoder) { d.maxDepth = depth }
}

// WithStringPool registers the allocator used to reassemble
// indefinite-length strings. Without one, such strings fail to decode
// with ErrNoStringAllocator.
func WithStringPool(p pool.Allocator) DecoderOption {
	return func(d *Decoder) { d.pool = p }
}

// Decoder performs a single preorder traversal of one CBOR input
// buffer via repeated calls to GetNext (spec §4.G).
type Decoder struct {
	in       *core.InputStream
	nest     *core.DecodeNestingStack
	mode     DecoderMode
	maxDepth int
	pool     pool.Allocator
}

// NewDecoder returns a Decoder reading from data.
func NewDecoder(data []byte, opts ...DecoderOption) *Decoder {
	d := &Decoder{in: core.InitInputStream(utils.NewView(data))}
	for _, opt := range opts {
		opt(d)
	}
	d.nest = core.NewDecodeNestingStack(d.maxDepth)
	return d
}

func (d *Decoder) fail(e *core.CodecError, context string) {
	d.in.Fail(e, context)
}

// NestingLevel reports the current traversal depth (0 at the top).
func (d *Decoder) NestingLevel() int {
	return d.nest.Depth()
}

// consumeTags reads consecutive major-type-6 heads, folding each into a
// TagState (spec §4.G step 1).
func (d *Decoder) consumeTags() core.TagState {
	ts := core.NewTagState()
	for {
		if d.in.Err() != nil {
			return ts
		}
		b := d.peekByte()
		if core.MajorType(b>>5) != core.MajorTag {
			return ts
		}
		h := core.DecodeHead(d.in)
		if d.in.Err() != nil {
			return ts
		}
		ts.Record(h.Value)
	}
}

// peekByte reads the next byte without consuming it, or returns 0 at
// end of input (callers that care check BytesAvailable first).
func (d *Decoder) peekByte() byte {
	pos := d.in.Tell()
	if !d.in.BytesAvailable(1) {
		return 0
	}
	b := d.in.GetByte()
	d.in.Seek(pos)
	return b
}

// readValueHead decodes one non-tag head and populates everything about
// item that step 2/3 of spec §4.G determine, except tag interpretation,
// map labels, and container accounting.
func (d *Decoder) readValueHead(item *Item, ts core.TagState) {
	h := core.DecodeHead(d.in)
	if d.in.Err() != nil {
		return
	}
	item.TagBits = ts.Bits
	item.LastLargeTag = ts.LastLargeTag
	item.SelfDescribe = ts.SawSelfDescribe

	switch h.Major {
	case core.MajorUnsignedInt:
		item.Type = TypeUint64
		item.Uint64 = h.Value
	case core.MajorNegativeInt:
		if h.Value > 1<<63-1 {
			d.fail(core.ErrIntegerOverflow, "negative int")
			return
		}
		item.Type = TypeInt64
		item.Int64 = -1 - int64(h.Value)
	case core.MajorByteString:
		d.readStringBody(item, h, TypeByteString, core.MajorByteString)
	case core.MajorTextString:
		d.readStringBody(item, h, TypeTextString, core.MajorTextString)
	case core.MajorArray:
		item.Type = TypeArray
		d.readContainerHead(item, h, core.MajorArray, false)
	case core.MajorMap:
		item.Type = TypeMap
		d.readContainerHead(item, h, core.MajorMap, true)
	case core.MajorSimple:
		d.readSimple(item, h)
	default:
		d.fail(core.ErrUnsupportedConstruct, "unexpected major type")
	}

	d.applyTagInterpretation(item, ts)
}

func (d *Decoder) readStringBody(item *Item, h core.DecodedHead, typ ItemType, major core.MajorType) {
	if h.IsIndefinite {
		d.readIndefiniteString(item, typ, major)
		return
	}
	v := d.in.GetBytes(h.Value)
	if d.in.Err() != nil {
		return
	}
	item.Type = typ
	if typ == TypeByteString {
		item.Bytes = v
	} else {
		item.Text = v
	}
}

// readIndefiniteString reads chunks until a break, concatenating them
// through the registered pool (spec §4.G step 5).
func (d *Decoder) readIndefiniteString(item *Item, typ ItemType, major core.MajorType) {
	if d.pool == nil {
		d.fail(core.ErrNoStringAllocator, "indefinite string")
		return
	}
	var acc utils.View
	for {
		b := d.peekByte()
		if b == byte(core.MajorSimple)<<5|core.AIIndefinite {
			d.in.GetByte() // consume the break
			break
		}
		segHead := core.DecodeHead(d.in)
		if d.in.Err() != nil {
			return
		}
		if segHead.IsIndefinite || segHead.Major != major {
			d.fail(core.ErrIndefiniteStringSegmentMismatch, "string segment")
			return
		}
		seg := d.in.GetBytes(segHead.Value)
		if d.in.Err() != nil {
			return
		}
		newSize := acc.Len() + seg.Len()
		grown, ok := d.pool.Allocate(acc, newSize)
		if !ok {
			d.fail(core.ErrStringAllocatorFailed, "indefinite string")
			return
		}
		copy(grown.Data[acc.Len():], seg.Data)
		acc = grown
	}
	item.Type = typ
	if typ == TypeByteString {
		item.Bytes = acc
		item.AllocatedData = true
	} else {
		item.Text = acc
		item.AllocatedData = true
	}
}

func (d *Decoder) readContainerHead(item *Item, h core.DecodedHead, major core.MajorType, isMap bool) {
	if h.IsIndefinite {
		item.Count = IndefiniteCount
		if !d.nest.Push(major, core.IndefiniteRemaining) {
			d.fail(core.ErrNestingTooDeep, "open container")
		}
		return
	}
	count := h.Value
	item.Count = count

	var remaining uint64
	if isMap {
		// A map's raw item count is the pair count doubled. Reject a
		// count that would overflow uint64 on doubling instead of
		// silently wrapping: an overflowed remaining could land on 0
		// (Push never called, decoder treats a huge map as already
		// closed while item.Count still reports it as open) or on any
		// other value disagreeing with the count just reported to the
		// caller (spec §4.G step 3, §7 ContainerTooLong).
		if count > core.MaxMapPairCount {
			d.fail(core.ErrContainerTooLong, "map pair count")
			return
		}
		remaining = count * 2
	} else {
		// A definite-length array whose count is exactly
		// IndefiniteRemaining would otherwise collide with that
		// sentinel and be mistaken for an indefinite-length container
		// still awaiting a break (spec §9's "sentinel-bearing null"
		// warning, applied here to the decode-side nesting counter).
		if count == core.IndefiniteRemaining {
			d.fail(core.ErrContainerTooLong, "array item count")
			return
		}
		remaining = count
	}
	if remaining > 0 {
		if !d.nest.Push(major, remaining) {
			d.fail(core.ErrNestingTooDeep, "open container")
		}
	}
}

func (d *Decoder) readSimple(item *Item, h core.DecodedHead) {
	if h.IsIndefinite {
		d.fail(core.ErrBadBreak, "break outside indefinite context")
		return
	}
	switch h.AI {
	case core.AIFalse:
		item.Type = TypeFalse
	case core.AITrue:
		item.Type = TypeTrue
	case core.AINull:
		item.Type = TypeNull
	case core.AIUndefined:
		item.Type = TypeUndef
	case core.AIOneByte:
		if h.Value <= 31 {
			d.fail(core.ErrInvalidSimpleValue, "one-byte simple")
			return
		}
		item.Type = TypeUnknownSimple
		item.Simple = byte(h.Value)
	case core.AITwoByte:
		item.Type = TypeFloat
		item.Double = utils.BitsToFloat64(core.HalfBitsToDoubleBits(uint16(h.Value)))
	case core.AIFourByte:
		item.Type = TypeFloat
		item.Double = float64(utils.BitsToFloat32(uint32(h.Value)))
	case core.AIEightByte:
		item.Type = TypeDouble
		item.Double = utils.BitsToFloat64(h.Value)
	default:
		item.Type = TypeUnknownSimple
		item.Simple = byte(h.AI)
	}
}

func (d *Decoder) applyTagInterpretation(item *Item, ts core.TagState) {
	switch {
	case ts.Has(core.TagEpochDate):
		switch item.Type {
		case TypeUint64:
			item.Type, item.DateEpoch = TypeDateEpoch, DateEpoch{Seconds: int64(item.Uint64)}
			item.Uint64 = 0
		case TypeInt64:
			item.Type, item.DateEpoch = TypeDateEpoch, DateEpoch{Seconds: item.Int64}
			item.Int64 = 0
		case TypeFloat, TypeDouble:
			if item.Double > 1<<63 || item.Double < -(1<<63) {
				d.fail(core.ErrDateOverflow, "epoch date")
				return
			}
			sec, frac := splitEpoch(item.Double)
			item.Type, item.DateEpoch = TypeDateEpoch, DateEpoch{Seconds: sec, Fraction: frac}
			item.Double = 0
		}
	case ts.Has(core.TagDateString) && item.Type == TypeTextString:
		item.Type = TypeDateString
	case ts.Has(core.TagPosBignum) && item.Type == TypeByteString:
		item.Type = TypePosBigNum
	case ts.Has(core.TagNegBignum) && item.Type == TypeByteString:
		item.Type = TypeNegBigNum
	}
}

// splitEpoch separates an epoch-date float into whole seconds and a
// fractional remainder.
func splitEpoch(v float64) (int64, float64) {
	whole := int64(v)
	return whole, v - float64(whole)
}

// resolveLabel validates and wraps a just-decoded label item per the
// decoder's mode (spec §4.G step 7).
func (d *Decoder) resolveLabel(li Item) Label {
	switch d.mode {
	case ModeMapStringsOnly:
		if li.Type != TypeTextString {
			d.fail(core.ErrBadMapLabelType, "map label")
			return Label{}
		}
		return Label{Kind: LabelText, Text: li.Text}
	default:
		switch li.Type {
		case TypeUint64:
			return Label{Kind: LabelUint64, Uint64: li.Uint64}
		case TypeInt64:
			return Label{Kind: LabelInt64, Int64: li.Int64}
		case TypeTextString:
			return Label{Kind: LabelText, Text: li.Text}
		case TypeByteString:
			return Label{Kind: LabelBytes, Bytes: li.Bytes}
		default:
			d.fail(core.ErrBadMapLabelType, "map label")
			return Label{}
		}
	}
}

// GetNext decodes and returns the next item in preorder (spec §4.G).
func (d *Decoder) GetNext() (Item, error) {
	if err := d.in.Err(); err != nil {
		return Item{}, err
	}

	item := Item{NestingLevel: d.nest.Depth()}

	// A break at the current position closes an indefinite container
	// without producing an item of its own; callers only see this by
	// GetNext returning an error-free item whose NextNestingLevel has
	// dropped, so peel off one or more breaks up front.
	for d.nest.IsIndefiniteOpen() && d.peekIsBreak() {
		d.in.GetByte()
		d.nest.PopIfBreak()
		item.NestingLevel = d.nest.Depth()
	}

	inMap := false
	if cur := d.nest.Current(); cur != nil && cur.MajorType == core.MajorMap && d.mode != ModeMapAsArray {
		inMap = true
	}

	if inMap {
		ts := d.consumeTags()
		if d.in.Err() != nil {
			return Item{}, d.in.Err()
		}
		var label Item
		d.readValueHead(&label, ts)
		if d.in.Err() != nil {
			return Item{}, d.in.Err()
		}
		item.Label = d.resolveLabel(label)
		item.AllocatedLabel = label.AllocatedData
		if d.in.Err() != nil {
			return Item{}, d.in.Err()
		}
		// A label is never itself a container, so it always closes one
		// of the map's raw item slots right away.
		d.nest.ConsumeOne(1)

		depthBeforeValue := d.nest.Depth()
		ts = d.consumeTags()
		if d.in.Err() != nil {
			return Item{}, d.in.Err()
		}
		d.readValueHead(&item, ts)
		if d.in.Err() != nil {
			return Item{}, d.in.Err()
		}
		// If the value just opened a non-empty container, its slot is
		// credited to this map lazily, once that container itself
		// later empties, rather than charged against it right now
		// (see DecodeNestingStack.ConsumeOne).
		if d.nest.Depth() == depthBeforeValue {
			d.nest.ConsumeOne(1)
		}
	} else {
		ts := d.consumeTags()
		if d.in.Err() != nil {
			return Item{}, d.in.Err()
		}
		depthBefore := d.nest.Depth()
		d.readValueHead(&item, ts)
		if d.in.Err() != nil {
			return Item{}, d.in.Err()
		}
		if d.nest.Depth() == depthBefore {
			d.nest.ConsumeOne(1)
		}
	}
	if err := d.in.Err(); err != nil {
		return Item{}, err
	}

	depth := d.nest.Depth()
	for d.nest.IsIndefiniteOpen() && d.peekIsBreak() {
		d.in.GetByte()
		d.nest.PopIfBreak()
		depth = d.nest.Depth()
	}
	item.NextNestingLevel = depth

	return item, nil
}

func (d *Decoder) peekIsBreak() bool {
	if !d.in.BytesAvailable(1) {
		return false
	}
	return d.peekByte() == byte(core.MajorSimple)<<5|core.AIIndefinite
}

// Finish succeeds iff all input bytes have been consumed, no container
// is left open, and no sticky error is set (spec §4.G "Finish
// operation"). It also invokes the
// registered string pool's Destroy, if any.
func (d *Decoder) Finish() error {
	defer func() {
		if d.pool != nil {
			d.pool.Destroy()
		}
	}()
	if err := d.in.Err(); err != nil {
		return err
	}
	if d.nest.Depth() != 0 {
		d.fail(core.ErrOpenContainerAtFinish, "finish")
		return d.in.Err()
	}
	if d.in.BytesUnconsumed() != 0 {
		d.fail(core.ErrExtraTrailingBytes, "finish")
		return d.in.Err()
	}
	return nil
}
