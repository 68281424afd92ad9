// Package core implements the FatELF container's binary format: the header
// and record model, its on-disk codec, the ELF identification probe, and the
// static machine/OS-ABI lookup tables. It has no notion of CLI operations or
// target selectors — those live one layer up, in the top-level fatelf
// package, which orchestrates these pieces.
package core

// WordSize32 and WordSize64 are the valid values of Record.WordSize.
const (
	WordSize32 = 1
	WordSize64 = 2
)

// ByteOrderBig and ByteOrderLittle are the valid values of Record.ByteOrder.
const (
	ByteOrderBig    = 0
	ByteOrderLittle = 1
)

// Magic is the FatELF container magic number, stored little-endian on disk
// (bytes FA 70 0E 1F).
const Magic = 0x1F0E70FA

// FormatVersion is the only FatELF header version this implementation reads
// or writes.
const FormatVersion = 1

// PageSize is the format's fixed alignment unit. It is a constant of the
// on-disk format, not a property of the host, and must never be queried from
// the runtime.
const PageSize = 4096

// RecordDiskSize is the size in bytes of one Record when serialized.
const RecordDiskSize = 24

// HeaderFixedDiskSize is the size of the fixed portion of the header (magic,
// version, num_records, reserved0), before any records.
const HeaderFixedDiskSize = 8

// Record describes one embedded ELF binary's target attributes and its byte
// range within the container.
type Record struct {
	Machine       uint16
	OSABI         uint8
	OSABIVersion  uint8
	WordSize      uint8
	ByteOrder     uint8
	Reserved0     uint8
	Reserved1     uint8
	Offset        uint64
	Size          uint64
}

// Header is the in-memory FatELF index: the fixed fields plus its records.
type Header struct {
	Magic      uint32
	Version    uint16
	Reserved0  uint8
	Records    []Record
}

// NewHeader returns an empty, well-formed header ready to accumulate records.
func NewHeader() *Header {
	return &Header{Magic: Magic, Version: FormatVersion}
}

// DiskHeaderSize returns the number of bytes a header with n records
// occupies on disk, not counting trailing padding to page alignment.
func DiskHeaderSize(n int) int64 {
	return HeaderFixedDiskSize + RecordDiskSize*int64(n)
}

// Size returns the on-disk size of h given its current record count.
func (h *Header) Size() int64 {
	return DiskHeaderSize(len(h.Records))
}

// AlignUp rounds offset up to the next multiple of PageSize.
func AlignUp(offset uint64) uint64 {
	const mask = PageSize - 1
	return (offset + mask) &^ mask
}

// RecordsMatch reports whether a and b name the same target: the five-tuple
// of (machine, osabi, osabi_version, word_size, byte_order). This is the
// canonical definition (§4.D); earlier iterations of the reference tool
// omitted osabi_version from the comparison, which this implementation does
// not replicate.
func RecordsMatch(a, b *Record) bool {
	return a.Machine == b.Machine &&
		a.OSABI == b.OSABI &&
		a.OSABIVersion == b.OSABIVersion &&
		a.WordSize == b.WordSize &&
		a.ByteOrder == b.ByteOrder
}

// End returns the offset one past the last byte this record occupies.
func (r *Record) End() uint64 {
	return r.Offset + r.Size
}

// FurthestEnd returns the maximum End() across all records, or 0 if there
// are none. Used to locate the start of any trailing junk.
func FurthestEnd(records []Record) uint64 {
	var max uint64
	for i := range records {
		if e := records[i].End(); e > max {
			max = e
		}
	}
	return max
}
