package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeNestingStack_OpenCloseRoundTrip(t *testing.T) {
	s := NewEncodeNestingStack(10)
	require.True(t, s.AtTop())
	require.True(t, s.Open(MajorArray, 0))
	require.Equal(t, 1, s.Depth())
	s.AddItem()
	s.AddItem()
	res := s.Close(MajorArray)
	require.Equal(t, CloseOK, res.Status)
	require.Equal(t, uint64(2), res.ItemCount)
	require.True(t, s.AtTop())
}

func TestEncodeNestingStack_MapItemCountHalved(t *testing.T) {
	s := NewEncodeNestingStack(10)
	s.Open(MajorMap, 5)
	s.AddItem() // label
	s.AddItem() // value
	s.AddItem() // label
	s.AddItem() // value
	res := s.Close(MajorMap)
	require.Equal(t, CloseOK, res.Status)
	require.Equal(t, uint64(2), res.ItemCount)
}

func TestEncodeNestingStack_TooManyCloses(t *testing.T) {
	s := NewEncodeNestingStack(10)
	res := s.Close(MajorArray)
	require.Equal(t, CloseTooManyCloses, res.Status)
}

func TestEncodeNestingStack_CloseOpenMismatch(t *testing.T) {
	s := NewEncodeNestingStack(10)
	s.Open(MajorArray, 0)
	res := s.Close(MajorMap)
	require.Equal(t, CloseMismatch, res.Status)
}

func TestEncodeNestingStack_OverflowAtMaxDepth(t *testing.T) {
	s := NewEncodeNestingStack(2)
	require.True(t, s.Open(MajorArray, 0))
	require.True(t, s.Open(MajorArray, 1))
	require.False(t, s.Open(MajorArray, 2))
	require.Equal(t, 2, s.Depth())
}

func TestEncodeNestingStack_ParentCountsNestedContainerAsOneItem(t *testing.T) {
	s := NewEncodeNestingStack(10)
	s.Open(MajorArray, 0)
	s.Open(MajorArray, 1)
	s.Close(MajorArray)
	require.Equal(t, uint64(1), s.Current().ItemCount)
}
