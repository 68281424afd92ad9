package fatelf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatelf/fatelf/internal/core"
)

// writeFakeELF writes a syntactically valid 20-byte ELF identification
// block, padded out to totalSize, so the layout engine has something to
// probe, copy, and size without needing a real toolchain-built binary.
func writeFakeELF(t *testing.T, dir, name string, wordSize, byteOrder, osabi, osabiVersion uint8, machine uint16, totalSize int) string {
	t.Helper()
	buf := make([]byte, totalSize)
	buf[0], buf[1], buf[2], buf[3] = 0x7F, 0x45, 0x4C, 0x46
	buf[4] = wordSize
	buf[5] = byteOrder
	buf[6] = 1
	buf[7] = osabi
	buf[8] = osabiVersion
	if byteOrder == core.ByteOrderBig {
		buf[18] = byte(machine >> 8)
		buf[19] = byte(machine)
	} else {
		buf[19] = byte(machine >> 8)
		buf[18] = byte(machine)
	}
	for i := 20; i < totalSize; i++ {
		buf[i] = byte(i)
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf, 0o755))
	return path
}
