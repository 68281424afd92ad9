package fatelf

import (
	"fmt"

	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// Validate checks that a container's header enforces every invariant in §3:
// reserved bytes are zero, every offset page-aligned and in-file, 32-bit
// records do not exceed the 32-bit address space, every machine/osabi/
// byte_order/word_size value is recognized, no duplicate records by the
// canonical 5-tuple, and no two byte ranges overlap. It does not inspect the
// embedded binaries themselves; see Verify for that.
func Validate(containerPath string) error {
	src, err := streamio.OpenReadOnly(containerPath)
	if err != nil {
		return err
	}
	defer src.Close()

	header, err := core.ReadHeader(src)
	if err != nil {
		return err
	}

	if header.Reserved0 != 0 {
		return fmt.Errorf("Reserved0 field is not zero in header")
	}

	fileSize, err := src.Size()
	if err != nil {
		return err
	}

	for i := range header.Records {
		r := header.Records[i]
		if r.Reserved0 != 0 {
			return fmt.Errorf("Reserved0 field is not zero in record #%d", i)
		}
		if r.Reserved1 != 0 {
			return fmt.Errorf("Reserved1 field is not zero in record #%d", i)
		}
		if r.WordSize != core.WordSize32 && r.WordSize != core.WordSize64 {
			return fmt.Errorf("record %d: unrecognized word_size value %d", i, r.WordSize)
		}
		if r.ByteOrder != core.ByteOrderBig && r.ByteOrder != core.ByteOrderLittle {
			return fmt.Errorf("record %d: unrecognized byte_order value %d", i, r.ByteOrder)
		}
		if core.MachineByID(r.Machine) == nil {
			return fmt.Errorf("record %d: unrecognized machine value %d", i, r.Machine)
		}
		if core.OSABIByID(r.OSABI) == nil {
			return fmt.Errorf("record %d: unrecognized osabi value %d", i, r.OSABI)
		}
		if r.WordSize == core.WordSize32 && r.End() > 1<<32 {
			return fmt.Errorf("record %d: 32-bit record range [%d, %d) exceeds the 32-bit address space", i, r.Offset, r.End())
		}
		if r.Offset%core.PageSize != 0 {
			return fmt.Errorf("record %d: offset %d is not page-aligned", i, r.Offset)
		}
		if r.End() > uint64(fileSize) {
			return fmt.Errorf("record %d: range [%d, %d) extends past end of file (%d bytes)", i, r.Offset, r.End(), fileSize)
		}
		for j := i + 1; j < len(header.Records); j++ {
			if core.RecordsMatch(&r, &header.Records[j]) {
				return fmt.Errorf("record %d and %d: duplicate target", i, j)
			}
			if rangesOverlap(r, header.Records[j]) {
				return fmt.Errorf("record %d and %d: overlapping byte ranges", i, j)
			}
		}
	}
	return nil
}

func rangesOverlap(a, b core.Record) bool {
	return a.Offset < b.End() && b.Offset < a.End()
}
