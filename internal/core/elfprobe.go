package core

import (
	"fmt"
	"io"
)

// elfIdentLen is the number of leading ELF header bytes the probe inspects.
// FatELF never looks past the identification block and the two-byte
// e_machine field; interpreting ELF contents any further is out of scope.
const elfIdentLen = 20

var elfMagic = [4]byte{0x7F, 0x45, 0x4C, 0x46}

// ProbeELF reads the first 20 bytes of the purported ELF at offset within r
// and extracts the target attributes FatELF cares about: word size, byte
// order, OSABI, OSABI version, and machine. Offset and Size are left zero;
// the caller (the layout engine) fills those in.
func ProbeELF(r io.ReaderAt, offset int64) (*Record, error) {
	buf := make([]byte, elfIdentLen)
	n, err := r.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return nil, WrapError("ELF probe read failed", err)
	}
	if n != elfIdentLen {
		return nil, fmt.Errorf("short read probing ELF header: got %d of %d bytes", n, elfIdentLen)
	}

	if buf[0] != elfMagic[0] || buf[1] != elfMagic[1] || buf[2] != elfMagic[2] || buf[3] != elfMagic[3] {
		return nil, ErrNotELF
	}

	wordSize := buf[4]
	if wordSize != WordSize32 && wordSize != WordSize64 {
		return nil, fmt.Errorf("unrecognized ELF word size byte: %d", wordSize)
	}

	byteOrder := buf[5]
	if byteOrder != ByteOrderBig && byteOrder != ByteOrderLittle {
		return nil, fmt.Errorf("unrecognized ELF data encoding byte: %d", byteOrder)
	}

	rec := &Record{
		WordSize:     wordSize,
		ByteOrder:    byteOrder,
		OSABI:        buf[7],
		OSABIVersion: buf[8],
	}

	// e_machine occupies bytes 18-19 of the ELF header and is itself encoded
	// per the probed binary's own endianness, not the host's.
	if byteOrder == ByteOrderBig {
		rec.Machine = (uint16(buf[18]) << 8) | uint16(buf[19])
	} else {
		rec.Machine = (uint16(buf[19]) << 8) | uint16(buf[18])
	}

	return rec, nil
}
