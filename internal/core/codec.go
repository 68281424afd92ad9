package core

import (
	"fmt"
	"io"

	"github.com/fatelf/fatelf/internal/bcode"
)

// ReadHeader reads and parses a FatELF header from r, starting at offset 0.
// It validates the magic and version before attempting to parse the record
// array, per §4.E.
func ReadHeader(r io.ReaderAt) (*Header, error) {
	fixed := make([]byte, HeaderFixedDiskSize)
	if _, err := readFull(r, fixed, 0); err != nil {
		return nil, WrapError("header read failed", err)
	}

	pos := 0
	var magic uint32
	var version uint16
	var numRecords uint8
	var reserved0 uint8
	magic, pos = bcode.GetUint32(fixed, pos)
	version, pos = bcode.GetUint16(fixed, pos)
	numRecords, pos = bcode.GetUint8(fixed, pos)
	reserved0, _ = bcode.GetUint8(fixed, pos)

	if magic != Magic {
		return nil, ErrBadMagic
	}
	if version != FormatVersion {
		return nil, ErrBadVersion
	}

	h := &Header{Magic: magic, Version: version, Reserved0: reserved0}

	recordBytesLen := DiskHeaderSize(int(numRecords)) - HeaderFixedDiskSize
	recordBytes := make([]byte, recordBytesLen)
	if recordBytesLen > 0 {
		if _, err := readFull(r, recordBytes, HeaderFixedDiskSize); err != nil {
			return nil, WrapError("record array read failed", err)
		}
	}

	h.Records = make([]Record, numRecords)
	pos = 0
	for i := range h.Records {
		rec := &h.Records[i]
		rec.Machine, pos = bcode.GetUint16(recordBytes, pos)
		rec.OSABI, pos = bcode.GetUint8(recordBytes, pos)
		rec.OSABIVersion, pos = bcode.GetUint8(recordBytes, pos)
		rec.WordSize, pos = bcode.GetUint8(recordBytes, pos)
		rec.ByteOrder, pos = bcode.GetUint8(recordBytes, pos)
		rec.Reserved0, pos = bcode.GetUint8(recordBytes, pos)
		rec.Reserved1, pos = bcode.GetUint8(recordBytes, pos)
		rec.Offset, pos = bcode.GetUint64(recordBytes, pos)
		rec.Size, pos = bcode.GetUint64(recordBytes, pos)
	}

	return h, nil
}

// WriteHeader serializes h to w at offset 0, in the exact field order of
// §4.E: magic, version, num_records, reserved0, then each record's nine
// fields in order.
func WriteHeader(w io.WriterAt, h *Header) error {
	if len(h.Records) > 255 {
		return fmt.Errorf("too many records: %d (max 255)", len(h.Records))
	}

	buf := make([]byte, h.Size())
	pos := 0
	pos = bcode.PutUint32(buf, pos, Magic)
	pos = bcode.PutUint16(buf, pos, FormatVersion)
	pos = bcode.PutUint8(buf, pos, uint8(len(h.Records)))
	pos = bcode.PutUint8(buf, pos, h.Reserved0)

	for i := range h.Records {
		rec := &h.Records[i]
		pos = bcode.PutUint16(buf, pos, rec.Machine)
		pos = bcode.PutUint8(buf, pos, rec.OSABI)
		pos = bcode.PutUint8(buf, pos, rec.OSABIVersion)
		pos = bcode.PutUint8(buf, pos, rec.WordSize)
		pos = bcode.PutUint8(buf, pos, rec.ByteOrder)
		pos = bcode.PutUint8(buf, pos, rec.Reserved0)
		pos = bcode.PutUint8(buf, pos, rec.Reserved1)
		pos = bcode.PutUint64(buf, pos, rec.Offset)
		pos = bcode.PutUint64(buf, pos, rec.Size)
	}

	if int64(pos) != h.Size() {
		return fmt.Errorf("internal error: wrote %d bytes, expected %d", pos, h.Size())
	}

	n, err := w.WriteAt(buf, 0)
	if err != nil {
		return WrapError("header write failed", err)
	}
	if n != len(buf) {
		return fmt.Errorf("incomplete header write: wrote %d of %d bytes", n, len(buf))
	}
	return nil
}

// readFull reads exactly len(buf) bytes at off, treating a short read as an
// error (ReaderAt's documented semantics already guarantee this for regular
// files, but we surface it explicitly for malformed/truncated containers).
func readFull(r io.ReaderAt, buf []byte, off int64) (int, error) {
	n, err := r.ReadAt(buf, off)
	if err != nil && err != io.EOF {
		return n, err
	}
	if n != len(buf) {
		return n, fmt.Errorf("short read: got %d of %d bytes", n, len(buf))
	}
	return n, nil
}
