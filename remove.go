package fatelf

import (
	"io"

	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// Remove writes a copy of the container at containerPath to outputPath with
// the single record identified by selector dropped. The remaining records
// are re-laid page-aligned, back-to-back from the start, closing the hole
// left by the removed record; any trailing junk past the original
// container's last record is preserved.
func Remove(containerPath, outputPath, selector string) error {
	src, err := streamio.OpenReadOnly(containerPath)
	if err != nil {
		return err
	}
	defer src.Close()

	header, err := core.ReadHeader(src)
	if err != nil {
		return err
	}

	idx, _, err := Select(header, selector)
	if err != nil {
		return err
	}

	origRecords := make([]core.Record, len(header.Records))
	copy(origRecords, header.Records)

	newHeader := core.NewHeader()
	newHeader.Records = make([]core.Record, 0, len(header.Records)-1)
	newHeader.Records = append(newHeader.Records, header.Records[:idx]...)
	newHeader.Records = append(newHeader.Records, header.Records[idx+1:]...)

	srcOffsets := make([]uint64, len(newHeader.Records))
	offset := core.AlignUp(uint64(core.DiskHeaderSize(len(newHeader.Records))))
	for i := range newHeader.Records {
		srcOffsets[i] = newHeader.Records[i].Offset
		newHeader.Records[i].Offset = offset
		offset = core.AlignUp(offset + newHeader.Records[i].Size)
	}

	pending := streamio.NewPendingOutput(outputPath)
	defer pending.Cleanup()

	out, err := streamio.Create(outputPath, 0o755)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := core.WriteHeader(out, newHeader); err != nil {
		return err
	}

	for i, rec := range newHeader.Records {
		if _, err := out.Seek(int64(rec.Offset), io.SeekStart); err != nil {
			return err
		}
		if _, err := streamio.CopyRange(out, src, int64(srcOffsets[i]), rec.Size); err != nil {
			return err
		}
	}

	if _, err := out.Seek(int64(core.FurthestEnd(newHeader.Records)), io.SeekStart); err != nil {
		return err
	}
	if err := streamio.AppendJunk(out, src, origRecords); err != nil {
		return err
	}

	pending.Commit()
	return nil
}
