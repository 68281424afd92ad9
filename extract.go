package fatelf

import (
	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// Extract pulls the single binary identified by selector out of the
// container at containerPath and writes it as a standalone ELF file at
// outputPath, followed by any trailing junk found past the container's last
// record.
func Extract(containerPath, outputPath, selector string) error {
	src, err := streamio.OpenReadOnly(containerPath)
	if err != nil {
		return err
	}
	defer src.Close()

	header, err := core.ReadHeader(src)
	if err != nil {
		return err
	}

	_, rec, err := Select(header, selector)
	if err != nil {
		return err
	}

	pending := streamio.NewPendingOutput(outputPath)
	defer pending.Cleanup()

	out, err := streamio.Create(outputPath, 0o755)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := streamio.CopyRange(out, src, int64(rec.Offset), rec.Size); err != nil {
		return err
	}
	if err := streamio.AppendJunk(out, src, header.Records); err != nil {
		return err
	}

	pending.Commit()
	return nil
}
