package fatelf

import (
	"fmt"
	"io"

	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// Replace writes a copy of the container at containerPath to outputPath
// with the record identified by selector swapped out for the ELF binary at
// newBinaryPath. Because the replacement binary's size may differ from the
// one it replaces, every record is re-laid-out from scratch, the same way
// Glue does. Any trailing junk past the original container's last record is
// preserved.
func Replace(containerPath, outputPath, selector, newBinaryPath string) error {
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

	newFile, err := streamio.OpenReadOnly(newBinaryPath)
	if err != nil {
		return err
	}
	defer newFile.Close()

	newRec, err := core.ProbeELF(newFile, 0)
	if err != nil {
		return fmt.Errorf("%s: %w", newBinaryPath, err)
	}
	size, err := newFile.Size()
	if err != nil {
		return err
	}
	newRec.Size = uint64(size)

	for i := range header.Records {
		if i == idx {
			continue
		}
		if core.RecordsMatch(&header.Records[i], newRec) {
			return fmt.Errorf("%s: duplicate target of existing record %d", newBinaryPath, i)
		}
	}

	oldOffsets := make([]uint64, len(header.Records))
	records := make([]core.Record, len(header.Records))
	for i := range header.Records {
		records[i] = header.Records[i]
		oldOffsets[i] = header.Records[i].Offset
	}
	records[idx] = *newRec

	offset := core.AlignUp(uint64(core.DiskHeaderSize(len(records))))
	for i := range records {
		records[i].Offset = offset
		offset = core.AlignUp(offset + records[i].Size)
	}

	newHeader := core.NewHeader()
	newHeader.Records = records

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

	for i := range records {
		if _, err := out.Seek(int64(records[i].Offset), io.SeekStart); err != nil {
			return err
		}
		if i == idx {
			if _, err := streamio.CopyFile(out, newFile); err != nil {
				return err
			}
			continue
		}
		if _, err := streamio.CopyRange(out, src, int64(oldOffsets[i]), records[i].Size); err != nil {
			return err
		}
	}

	if _, err := out.Seek(int64(core.FurthestEnd(records)), io.SeekStart); err != nil {
		return err
	}
	if err := streamio.AppendJunk(out, src, header.Records); err != nil {
		return err
	}

	pending.Commit()
	return nil
}
