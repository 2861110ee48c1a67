package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/qcbor/internal/utils"
)

func TestInputStream_GetBytesAdvancesCursor(t *testing.T) {
	in := InitInputStream(utils.NewView([]byte{1, 2, 3, 4, 5}))
	v := in.GetBytes(2)
	require.Equal(t, []byte{1, 2}, v.Data)
	require.Equal(t, uint64(2), in.Tell())

	v2 := in.GetBytes(3)
	require.Equal(t, []byte{3, 4, 5}, v2.Data)
	require.Equal(t, uint64(0), in.BytesUnconsumed())
}

func TestInputStream_GetBytesPastEndErrors(t *testing.T) {
	in := InitInputStream(utils.NewView([]byte{1, 2}))
	v := in.GetBytes(5)
	require.True(t, v.IsNull())
	require.Error(t, in.Err())
}

func TestInputStream_SeekDoesNotClearError(t *testing.T) {
	in := InitInputStream(utils.NewView([]byte{1, 2, 3}))
	_ = in.GetBytes(10) // sets error
	require.Error(t, in.Err())
	in.Seek(1)
	require.Error(t, in.Err(), "seek must not clear a sticky error")
}

func TestInputStream_SeekPastEndErrors(t *testing.T) {
	in := InitInputStream(utils.NewView([]byte{1, 2, 3}))
	in.Seek(10)
	require.Error(t, in.Err())
}

func TestInputStream_BigEndianIntegers(t *testing.T) {
	data := []byte{
		0x12, 0x34,
		0x89, 0xAB, 0xCD, 0xEF,
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
	}
	in := InitInputStream(utils.NewView(data))
	require.Equal(t, uint16(0x1234), in.GetU16())
	require.Equal(t, uint32(0x89ABCDEF), in.GetU32())
	require.Equal(t, uint64(0x0011223344556677), in.GetU64())
	require.NoError(t, in.Err())
}

func TestInputStream_ErrorReadsReturnZero(t *testing.T) {
	in := InitInputStream(utils.NewView([]byte{1}))
	_ = in.GetU64() // not enough bytes -> error
	require.Error(t, in.Err())
	require.Equal(t, uint16(0), in.GetU16())
	require.Equal(t, byte(0), in.GetByte())
}

func TestInputStream_FloatDoubleRoundTrip(t *testing.T) {
	out, _ := newStream(16)
	out.AppendFloat(1.5)
	out.AppendDouble(3.1415926535)
	in := InitInputStream(out.Out())
	require.Equal(t, float32(1.5), in.GetFloat())
	require.Equal(t, 3.1415926535, in.GetDouble())
}

func TestInputStream_UninitializedContext(t *testing.T) {
	var in InputStream
	_ = in.GetByte()
	require.Error(t, in.Err())
}

func TestInputStream_BytesAvailable(t *testing.T) {
	in := InitInputStream(utils.NewView([]byte{1, 2, 3}))
	require.True(t, in.BytesAvailable(3))
	require.False(t, in.BytesAvailable(4))
}
