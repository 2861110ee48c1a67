package qcbor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDuplicateLabelChecker_FlagsRepeatedTextLabel(t *testing.T) {
	// {"a": 1, "a": 2}
	data := []byte{0xA2, 0x61, 0x61, 0x01, 0x61, 0x61, 0x02}
	d := NewDecoder(data)

	m, err := d.GetNext()
	require.NoError(t, err)
	c := NewDuplicateLabelChecker(m.Count)

	item1, err := d.GetNext()
	require.NoError(t, err)
	require.False(t, c.Check(item1.Label))

	item2, err := d.GetNext()
	require.NoError(t, err)
	require.True(t, c.Check(item2.Label))
}

func TestDuplicateLabelChecker_DistinctLabelsPass(t *testing.T) {
	// {"a": 1, "b": 2}
	data := []byte{0xA2, 0x61, 0x61, 0x01, 0x61, 0x62, 0x02}
	d := NewDecoder(data)

	m, err := d.GetNext()
	require.NoError(t, err)
	c := NewDuplicateLabelChecker(m.Count)

	item1, err := d.GetNext()
	require.NoError(t, err)
	require.False(t, c.Check(item1.Label))

	item2, err := d.GetNext()
	require.NoError(t, err)
	require.False(t, c.Check(item2.Label))
}
