package fatelf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatelf/fatelf/internal/core"
)

func testHeader() *core.Header {
	h := core.NewHeader()
	h.Records = []core.Record{
		{Machine: 62, OSABI: 3, OSABIVersion: 0, WordSize: core.WordSize64, ByteOrder: core.ByteOrderLittle, Offset: 4096, Size: 100},
		{Machine: 3, OSABI: 3, OSABIVersion: 0, WordSize: core.WordSize32, ByteOrder: core.ByteOrderLittle, Offset: 8192, Size: 100},
		{Machine: 21, OSABI: 3, OSABIVersion: 0, WordSize: core.WordSize64, ByteOrder: core.ByteOrderBig, Offset: 12288, Size: 100},
	}
	return h
}

func TestSelectByMachine(t *testing.T) {
	idx, rec, err := Select(testHeader(), "x86_64")
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.Equal(t, uint16(62), rec.Machine)
}

func TestSelectByWordSizeAndByteOrder(t *testing.T) {
	idx, _, err := Select(testHeader(), "64bit:be")
	require.NoError(t, err)
	require.Equal(t, 2, idx)
}

func TestSelectByRecordIndex(t *testing.T) {
	idx, rec, err := Select(testHeader(), "record1")
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Equal(t, uint16(3), rec.Machine)
}

func TestSelectRecordIndexOutOfRange(t *testing.T) {
	_, _, err := Select(testHeader(), "record3")
	require.ErrorIs(t, err, core.ErrNoMatch)
}

func TestSelectNoMatch(t *testing.T) {
	_, _, err := Select(testHeader(), "sparc")
	require.ErrorIs(t, err, core.ErrNoMatch)
}

func TestSelectAmbiguous(t *testing.T) {
	_, _, err := Select(testHeader(), "64bit")
	require.ErrorIs(t, err, core.ErrAmbiguous)
}

func TestSelectEmptyTokensAreNoOps(t *testing.T) {
	idx, _, err := Select(testHeader(), "be::64bit")
	require.NoError(t, err)
	require.Equal(t, 2, idx)
}

func TestSelectUnrecognizedToken(t *testing.T) {
	_, _, err := Select(testHeader(), "not-a-real-token")
	require.Error(t, err)
}
