package fatelf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatelf/fatelf/internal/core"
)

func buildTwoWayContainer(t *testing.T, dir string) (string, string, string) {
	t.Helper()
	a := writeFakeELF(t, dir, "a.elf", core.WordSize64, core.ByteOrderLittle, 3, 0, 62, 300)
	b := writeFakeELF(t, dir, "b.elf", core.WordSize32, core.ByteOrderBig, 9, 1, 2, 400)
	out := filepath.Join(dir, "fat.elf")
	require.NoError(t, Glue(out, []string{a, b}))
	return out, a, b
}

func TestExtractBySelector(t *testing.T) {
	dir := t.TempDir()
	fat, _, b := buildTwoWayContainer(t, dir)

	outPath := filepath.Join(dir, "sparc.elf")
	require.NoError(t, Extract(fat, outPath, "sparc"))

	want, err := os.ReadFile(b)
	require.NoError(t, err)
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestExtractNoMatchLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	fat, _, _ := buildTwoWayContainer(t, dir)

	outPath := filepath.Join(dir, "missing.elf")
	err := Extract(fat, outPath, "ia_64")
	require.ErrorIs(t, err, core.ErrNoMatch)

	_, statErr := os.Stat(outPath)
	require.True(t, os.IsNotExist(statErr))
}
