// Package bcode provides fixed-width little-endian integer encoding and
// decoding over a caller-supplied byte buffer with an explicit cursor.
//
// Every Put/Get function returns the cursor position following the value it
// just wrote or read, so calls chain naturally:
//
//	pos := 0
//	pos = PutUint32(buf, pos, header.Magic)
//	pos = PutUint16(buf, pos, header.Version)
package bcode

import "encoding/binary"

// PutUint8 writes a single byte at pos and returns pos+1.
func PutUint8(buf []byte, pos int, v uint8) int {
	buf[pos] = v
	return pos + 1
}

// PutUint16 writes v as little-endian at pos and returns pos+2.
func PutUint16(buf []byte, pos int, v uint16) int {
	binary.LittleEndian.PutUint16(buf[pos:pos+2], v)
	return pos + 2
}

// PutUint32 writes v as little-endian at pos and returns pos+4.
func PutUint32(buf []byte, pos int, v uint32) int {
	binary.LittleEndian.PutUint32(buf[pos:pos+4], v)
	return pos + 4
}

// PutUint64 writes v as little-endian at pos and returns pos+8.
func PutUint64(buf []byte, pos int, v uint64) int {
	binary.LittleEndian.PutUint64(buf[pos:pos+8], v)
	return pos + 8
}

// GetUint8 reads a single byte at pos, returning the value and pos+1.
func GetUint8(buf []byte, pos int) (uint8, int) {
	return buf[pos], pos + 1
}

// GetUint16 reads a little-endian uint16 at pos, returning the value and pos+2.
func GetUint16(buf []byte, pos int) (uint16, int) {
	return binary.LittleEndian.Uint16(buf[pos : pos+2]), pos + 2
}

// GetUint32 reads a little-endian uint32 at pos, returning the value and pos+4.
func GetUint32(buf []byte, pos int) (uint32, int) {
	return binary.LittleEndian.Uint32(buf[pos : pos+4]), pos + 4
}

// GetUint64 reads a little-endian uint64 at pos, returning the value and pos+8.
func GetUint64(buf []byte, pos int) (uint64, int) {
	return binary.LittleEndian.Uint64(buf[pos : pos+8]), pos + 8
}
