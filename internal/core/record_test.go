package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, uint64(0), AlignUp(0))
	require.Equal(t, uint64(4096), AlignUp(1))
	require.Equal(t, uint64(4096), AlignUp(4096))
	require.Equal(t, uint64(8192), AlignUp(4097))
}

func TestDiskHeaderSize(t *testing.T) {
	require.Equal(t, int64(8), DiskHeaderSize(0))
	require.Equal(t, int64(32), DiskHeaderSize(1))
	require.Equal(t, int64(56), DiskHeaderSize(2))
}

func TestRecordsMatch(t *testing.T) {
	a := Record{Machine: 62, OSABI: 3, OSABIVersion: 0, WordSize: WordSize64, ByteOrder: ByteOrderLittle}
	b := a
	require.True(t, RecordsMatch(&a, &b))

	b.OSABIVersion = 1
	require.False(t, RecordsMatch(&a, &b), "osabi_version must be part of the match tuple")

	b = a
	b.Machine = 21
	require.False(t, RecordsMatch(&a, &b))
}

func TestFurthestEnd(t *testing.T) {
	records := []Record{
		{Offset: 4096, Size: 100},
		{Offset: 8192, Size: 4096},
	}
	require.Equal(t, uint64(12288), FurthestEnd(records))
	require.Equal(t, uint64(0), FurthestEnd(nil))
}
