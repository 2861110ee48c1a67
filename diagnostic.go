package qcbor

import (
	"fmt"
	"io"

	"github.com/scigolib/qcbor/internal/core"
)

// Diagnostic walks d's get_next stream to completion and writes one
// line per item: indentation by nesting level, the item's type name,
// its label when inside a map, and its tag bits when tagged. It is an
// example consumer of the decoder, not part of the core streaming API
// (spec §1 keeps a structure-dump CLI out of the codec itself).
func Diagnostic(w io.Writer, d *Decoder) error {
	for {
		item, err := d.GetNext()
		if err != nil {
			return err
		}
		indent := item.NestingLevel
		for i := 0; i < indent; i++ {
			if _, err := io.WriteString(w, "  "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", labelPrefix(item.Label), describeItem(item)); err != nil {
			return err
		}
		if item.NextNestingLevel == 0 {
			break
		}
	}
	return d.Finish()
}

func labelPrefix(l Label) string {
	switch l.Kind {
	case LabelText:
		return fmt.Sprintf("%q: ", string(l.Text.Data))
	case LabelInt64:
		return fmt.Sprintf("%d: ", l.Int64)
	case LabelUint64:
		return fmt.Sprintf("%d: ", l.Uint64)
	case LabelBytes:
		return fmt.Sprintf("h'%x': ", l.Bytes.Data)
	default:
		return ""
	}
}

func describeItem(item Item) string {
	switch item.Type {
	case TypeInt64:
		return fmt.Sprintf("int64(%d)", item.Int64)
	case TypeUint64:
		return fmt.Sprintf("uint64(%d)", item.Uint64)
	case TypeByteString:
		return fmt.Sprintf("bstr(%d bytes)", item.Bytes.Len())
	case TypeTextString:
		return fmt.Sprintf("tstr(%q)", string(item.Text.Data))
	case TypeArray:
		return fmt.Sprintf("array(%d)%s", item.Count, tagSuffix(item))
	case TypeMap:
		return fmt.Sprintf("map(%d)%s", item.Count, tagSuffix(item))
	case TypeFloat:
		return fmt.Sprintf("float(%v)", item.Double)
	case TypeDouble:
		return fmt.Sprintf("double(%v)", item.Double)
	case TypePosBigNum:
		return fmt.Sprintf("bignum+(%d bytes)", item.Bytes.Len())
	case TypeNegBigNum:
		return fmt.Sprintf("bignum-(%d bytes)", item.Bytes.Len())
	case TypeDateString:
		return fmt.Sprintf("date(%q)", string(item.Text.Data))
	case TypeDateEpoch:
		return fmt.Sprintf("epoch-date(%d.%g)", item.DateEpoch.Seconds, item.DateEpoch.Fraction)
	case TypeUnknownSimple:
		return fmt.Sprintf("simple(%d)", item.Simple)
	case TypeFalse:
		return "false"
	case TypeTrue:
		return "true"
	case TypeNull:
		return "null"
	case TypeUndef:
		return "undefined"
	default:
		return item.Type.String()
	}
}

func tagSuffix(item Item) string {
	if item.TagBits == 0 && item.LastLargeTag == core.NoLargeTag && !item.SelfDescribe {
		return ""
	}
	suffix := fmt.Sprintf(" tags=0x%x last=%d", item.TagBits, item.LastLargeTag)
	if item.SelfDescribe {
		suffix += " self-describe"
	}
	return suffix
}
