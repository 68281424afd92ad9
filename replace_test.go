package fatelf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatelf/fatelf/internal/core"
)

func TestReplaceSwapsBinaryAndRelayouts(t *testing.T) {
	dir := t.TempDir()
	fat, _, _ := buildTwoWayContainer(t, dir)

	bigger := writeFakeELF(t, dir, "bigger.elf", core.WordSize64, core.ByteOrderLittle, 3, 0, 62, 10000)

	out := filepath.Join(dir, "replaced.elf")
	require.NoError(t, Replace(fat, out, "x86_64", bigger))

	container, err := OpenContainer(out)
	require.NoError(t, err)
	defer container.Close()

	require.Equal(t, 2, container.NumRecords())
	require.NoError(t, Validate(out))
	require.NoError(t, Verify(out))

	extracted := filepath.Join(dir, "extracted.elf")
	require.NoError(t, Extract(out, extracted, "x86_64"))
	want, err := os.ReadFile(bigger)
	require.NoError(t, err)
	got, err := os.ReadFile(extracted)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReplaceRejectsDuplicateOfAnotherRecord(t *testing.T) {
	dir := t.TempDir()
	fat, _, _ := buildTwoWayContainer(t, dir)

	dup := writeFakeELF(t, dir, "dup.elf", core.WordSize32, core.ByteOrderBig, 9, 1, 2, 50)

	out := filepath.Join(dir, "replaced.elf")
	err := Replace(fat, out, "x86_64", dup)
	require.Error(t, err)
}
