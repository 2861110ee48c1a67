package qcbor

func _() {
	// An "invalid array index" compile error here signals that the
	// const declaration has changed and this stringer needs updating.
	var x [1]struct{}
	_ = x[TypeInt64-0]
	_ = x[TypeUint64-1]
	_ = x[TypeByteString-2]
	_ = x[TypeTextString-3]
	_ = x[TypeArray-4]
	_ = x[TypeMap-5]
	_ = x[TypeFloat-6]
	_ = x[TypeDouble-7]
	_ = x[TypePosBigNum-8]
	_ = x[TypeNegBigNum-9]
	_ = x[TypeDateString-10]
	_ = x[TypeDateEpoch-11]
	_ = x[TypeUnknownSimple-12]
	_ = x[TypeFalse-13]
	_ = x[TypeTrue-14]
	_ = x[TypeNull-15]
	_ = x[TypeUndef-16]
}

const _ItemType_name = "Int64Uint64ByteStringTextStringArrayMapFloatDoublePosBigNumNegBigNumDateStringDateEpochUnknownSimpleFalseTrueNullUndef"

var _ItemType_index = [...]uint8{0, 5, 11, 21, 31, 36, 39, 44, 50, 59, 68, 78, 87, 100, 105, 109, 113, 118}

func (i ItemType) String() string {
	if i < 0 || int(i) >= len(_ItemType_index)-1 {
		return "ItemType(unknown)"
	}
	return _ItemType_name[_ItemType_index[i]:_ItemType_index[i+1]]
}
