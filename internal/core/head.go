package core

// EncodeHead writes the initial byte of major (3 bits) merged with the
// minimal additional-info field for value, followed by 0/1/2/4/8
// big-endian bytes as needed (spec §4.F, §6). Every Add operation in
// the encoder funnels its head through here so the {1,2,3,5,9}-byte
// minimal-encoding rule lives in exactly one place.
func EncodeHead(out *OutputStream, major MajorType, value uint64) {
	switch {
	case value < AIOneByte:
		out.Append([]byte{byte(major)<<5 | byte(value)})
	case value <= 0xFF:
		out.Append([]byte{byte(major)<<5 | AIOneByte})
		out.Append([]byte{byte(value)})
	case value <= 0xFFFF:
		out.Append([]byte{byte(major)<<5 | AITwoByte})
		out.AppendU16(uint16(value))
	case value <= 0xFFFFFFFF:
		out.Append([]byte{byte(major)<<5 | AIFourByte})
		out.AppendU32(uint32(value))
	default:
		out.Append([]byte{byte(major)<<5 | AIEightByte})
		out.AppendU64(value)
	}
}

// EncodeFixedWidthHead writes an initial byte for major merged with an
// explicit additional-info value, with no implicit minimal-width
// selection. Used for major type 7 floats, where the width is decided
// by the IEEE-754 minimizer rather than by the numeric value itself.
func EncodeFixedWidthHead(out *OutputStream, major MajorType, ai byte) {
	out.Append([]byte{byte(major)<<5 | ai})
}

// EncodeIndefiniteHead writes an initial byte for major with
// additional-info 31 (indefinite length) and no trailing bytes.
func EncodeIndefiniteHead(out *OutputStream, major MajorType) {
	out.Append([]byte{byte(major)<<5 | AIIndefinite})
}

// EncodeBreak writes the 0xFF break code that terminates an
// indefinite-length container or string.
func EncodeBreak(out *OutputStream) {
	out.Append([]byte{byte(MajorSimple)<<5 | AIIndefinite})
}

// headSize returns the number of bytes EncodeHead would emit for value.
// Nothing in the codec calls it: the encoder writes no placeholder head,
// it inserts the final head at the recorded offset on Close.
func headSize(value uint64) uint64 {
	switch {
	case value < AIOneByte:
		return 1
	case value <= 0xFF:
		return 2
	case value <= 0xFFFF:
		return 3
	case value <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// DecodedHead is the result of decoding one CBOR initial byte plus any
// trailing length/value bytes.
type DecodedHead struct {
	Major        MajorType
	AI           byte
	Value        uint64
	IsIndefinite bool
}

// DecodeHead reads one CBOR head from in (spec §4.G step 2).
func DecodeHead(in *InputStream) DecodedHead {
	b := in.GetByte()
	major := MajorType(b >> 5)
	ai := b & 0x1F

	switch {
	case ai < AIOneByte:
		return DecodedHead{Major: major, AI: ai, Value: uint64(ai)}
	case ai == AIOneByte:
		return DecodedHead{Major: major, AI: ai, Value: uint64(in.GetByte())}
	case ai == AITwoByte:
		return DecodedHead{Major: major, AI: ai, Value: uint64(in.GetU16())}
	case ai == AIFourByte:
		return DecodedHead{Major: major, AI: ai, Value: uint64(in.GetU32())}
	case ai == AIEightByte:
		return DecodedHead{Major: major, AI: ai, Value: in.GetU64()}
	case ai == AIIndefinite:
		return DecodedHead{Major: major, AI: ai, IsIndefinite: true}
	default:
		in.setError(ErrUnsupportedConstruct, "reserved additional info")
		return DecodedHead{Major: major, AI: ai}
	}
}
