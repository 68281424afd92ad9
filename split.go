package fatelf

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// Split extracts every binary in the container at containerPath into
// outputDir, each under the shortest name that uniquely distinguishes it
// from its siblings. Records are processed in a stable, deterministic order
// (machine, word size, byte order, osabi, osabi_version) rather than the
// original tool's bubble sort. Every file written also receives any trailing
// junk found past the container's last record. It returns the paths written,
// in that order.
func Split(containerPath, outputDir string) (paths []string, err error) {
	src, err := streamio.OpenReadOnly(containerPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	header, err := core.ReadHeader(src)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(header.Records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := header.Records[order[a]], header.Records[order[b]]
		if ra.Machine != rb.Machine {
			return ra.Machine < rb.Machine
		}
		if ra.WordSize != rb.WordSize {
			return ra.WordSize < rb.WordSize
		}
		if ra.ByteOrder != rb.ByteOrder {
			return ra.ByteOrder < rb.ByteOrder
		}
		if ra.OSABI != rb.OSABI {
			return ra.OSABI < rb.OSABI
		}
		return ra.OSABIVersion < rb.OSABIVersion
	})

	sorted := make([]core.Record, len(order))
	for i, idx := range order {
		sorted[i] = header.Records[idx]
	}
	names := MinimalUniqueNames(sorted)

	written := make([]string, len(order))
	for i, idx := range order {
		rec := header.Records[idx]
		outPath := filepath.Join(outputDir, names[i])

		pending := streamio.NewPendingOutput(outPath)
		out, err := streamio.Create(outPath, 0o755)
		if err != nil {
			pending.Cleanup()
			return nil, err
		}

		_, copyErr := streamio.CopyRange(out, src, int64(rec.Offset), rec.Size)
		if copyErr == nil {
			copyErr = streamio.AppendJunk(out, src, header.Records)
		}
		closeErr := out.Close()
		if copyErr != nil {
			pending.Cleanup()
			return nil, fmt.Errorf("record %d: %w", idx, copyErr)
		}
		if closeErr != nil {
			pending.Cleanup()
			return nil, fmt.Errorf("record %d: %w", idx, closeErr)
		}
		pending.Commit()
		written[i] = outPath
	}
	return written, nil
}
