package fatelf

import (
	"fmt"
	"io"

	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// Glue combines the ELF binaries at inputPaths into a single FatELF
// container written to outputPath. Each input is identified by probing its
// own ELF identification block; two inputs that probe to the same
// (machine, osabi, osabi_version, word_size, byte_order) tuple are rejected
// as duplicate targets.
func Glue(outputPath string, inputPaths []string) error {
	if len(inputPaths) == 0 {
		return fmt.Errorf("glue requires at least one input binary")
	}
	if len(inputPaths) > 255 {
		return fmt.Errorf("glue supports at most 255 binaries, got %d", len(inputPaths))
	}

	type input struct {
		path string
		file *streamio.File
		rec  core.Record
	}

	inputs := make([]input, 0, len(inputPaths))
	defer func() {
		for _, in := range inputs {
			in.file.Close()
		}
	}()

	for _, p := range inputPaths {
		f, err := streamio.OpenReadOnly(p)
		if err != nil {
			return err
		}
		rec, err := core.ProbeELF(f, 0)
		if err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", p, err)
		}
		size, err := f.Size()
		if err != nil {
			f.Close()
			return err
		}
		rec.Size = uint64(size)

		for _, existing := range inputs {
			if core.RecordsMatch(&existing.rec, rec) {
				f.Close()
				return fmt.Errorf("%s: duplicate target of %s", p, existing.path)
			}
		}
		inputs = append(inputs, input{path: p, file: f, rec: *rec})
	}

	header := core.NewHeader()
	header.Records = make([]core.Record, len(inputs))
	for i := range inputs {
		header.Records[i] = inputs[i].rec
	}

	// Each record starts where the previous one ends, rounded up to the
	// next page boundary; never an accumulating += of unrelated offsets.
	offset := core.AlignUp(uint64(core.DiskHeaderSize(len(inputs))))
	for i := range header.Records {
		header.Records[i].Offset = offset
		offset = core.AlignUp(offset + header.Records[i].Size)
	}

	pending := streamio.NewPendingOutput(outputPath)
	defer pending.Cleanup()

	out, err := streamio.Create(outputPath, 0o755)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := core.WriteHeader(out, header); err != nil {
		return err
	}

	for i, in := range inputs {
		if _, err := out.Seek(int64(header.Records[i].Offset), io.SeekStart); err != nil {
			return err
		}
		if _, err := streamio.CopyFile(out, in.file); err != nil {
			return fmt.Errorf("%s: %w", in.path, err)
		}
	}

	pending.Commit()
	return nil
}
