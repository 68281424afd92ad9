package fatelf

import (
	"fmt"

	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// Verify runs Validate and then additionally confirms each record's
// declared metadata matches the ELF identification block actually embedded
// at that offset, catching a container whose header was hand-edited or
// corrupted independently of its binaries.
func Verify(containerPath string) error {
	if err := Validate(containerPath); err != nil {
		return err
	}

	src, err := streamio.OpenReadOnly(containerPath)
	if err != nil {
		return err
	}
	defer src.Close()

	header, err := core.ReadHeader(src)
	if err != nil {
		return err
	}

	for i := range header.Records {
		rec := header.Records[i]
		probed, err := core.ProbeELF(src, int64(rec.Offset))
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		probed.Offset = rec.Offset
		probed.Size = rec.Size
		if !core.RecordsMatch(&rec, probed) {
			return fmt.Errorf("record %d: header metadata does not match embedded ELF identification", i)
		}
	}
	return nil
}
