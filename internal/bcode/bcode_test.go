package bcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	buf := make([]byte, 15)
	pos := 0
	pos = PutUint8(buf, pos, 0xAB)
	pos = PutUint16(buf, pos, 0x1234)
	pos = PutUint32(buf, pos, 0xDEADBEEF)
	pos = PutUint64(buf, pos, 0x0123456789ABCDEF)
	require.Equal(t, len(buf), pos)

	var u8 uint8
	var u16 uint16
	var u32 uint32
	var u64 uint64

	pos = 0
	u8, pos = GetUint8(buf, pos)
	u16, pos = GetUint16(buf, pos)
	u32, pos = GetUint32(buf, pos)
	u64, pos = GetUint64(buf, pos)

	require.Equal(t, len(buf), pos)
	require.Equal(t, uint8(0xAB), u8)
	require.Equal(t, uint16(0x1234), u16)
	require.Equal(t, uint32(0xDEADBEEF), u32)
	require.Equal(t, uint64(0x0123456789ABCDEF), u64)
}

func TestLittleEndianByteOrder(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32(buf, 0, 0x1F0E70FA)
	require.Equal(t, []byte{0xFA, 0x70, 0x0E, 0x1F}, buf)
}
