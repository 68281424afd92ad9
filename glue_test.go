package fatelf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatelf/fatelf/internal/core"
)

func TestGlueTwoBinaries(t *testing.T) {
	dir := t.TempDir()
	a := writeFakeELF(t, dir, "a.elf", core.WordSize64, core.ByteOrderLittle, 3, 0, 62, 500)
	b := writeFakeELF(t, dir, "b.elf", core.WordSize64, core.ByteOrderLittle, 3, 0, 21, 700)

	out := filepath.Join(dir, "fat.elf")
	require.NoError(t, Glue(out, []string{a, b}))

	container, err := OpenContainer(out)
	require.NoError(t, err)
	defer container.Close()

	require.Equal(t, 2, container.NumRecords())
	for _, rec := range container.Header.Records {
		require.Zero(t, rec.Offset%core.PageSize)
	}
	require.NoError(t, Validate(out))
	require.NoError(t, Verify(out))
}

func TestGlueRejectsDuplicateTargets(t *testing.T) {
	dir := t.TempDir()
	a := writeFakeELF(t, dir, "a.elf", core.WordSize64, core.ByteOrderLittle, 3, 0, 62, 500)
	b := writeFakeELF(t, dir, "b.elf", core.WordSize64, core.ByteOrderLittle, 3, 0, 62, 700)

	out := filepath.Join(dir, "fat.elf")
	err := Glue(out, []string{a, b})
	require.Error(t, err)

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr), "failed glue must not leave a partial output file")
}

func TestGlueRejectsEmptyInput(t *testing.T) {
	dir := t.TempDir()
	err := Glue(filepath.Join(dir, "fat.elf"), nil)
	require.Error(t, err)
}

func TestGluePreservesBinaryContent(t *testing.T) {
	dir := t.TempDir()
	a := writeFakeELF(t, dir, "a.elf", core.WordSize32, core.ByteOrderLittle, 0, 0, 3, 123)
	out := filepath.Join(dir, "fat.elf")
	require.NoError(t, Glue(out, []string{a}))

	extracted := filepath.Join(dir, "out.elf")
	require.NoError(t, Extract(out, extracted, "386"))

	want, err := os.ReadFile(a)
	require.NoError(t, err)
	got, err := os.ReadFile(extracted)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
