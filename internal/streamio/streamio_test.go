package streamio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatelf/fatelf/internal/core"
)

func writeTempFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOpenReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeTempFile(t, dir, "src.bin", []byte("hello fatelf"))

	f, err := OpenReadOnly(src)
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 5)
	n, err := f.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf))

	size, err := f.Size()
	require.NoError(t, err)
	require.Equal(t, int64(12), size)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	payload := make([]byte, CopyBufferSize+1000)
	for i := range payload {
		payload[i] = byte(i)
	}
	src := writeTempFile(t, dir, "src.bin", payload)

	srcF, err := OpenReadOnly(src)
	require.NoError(t, err)
	defer srcF.Close()

	dstPath := filepath.Join(dir, "dst.bin")
	dstF, err := Create(dstPath, 0o644)
	require.NoError(t, err)

	n, err := CopyFile(dstF, srcF)
	require.NoError(t, err)
	require.Equal(t, uint64(len(payload)), n)
	require.NoError(t, dstF.Close())

	got, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestCopyRange(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("0123456789abcdefghij")
	src := writeTempFile(t, dir, "src.bin", payload)

	srcF, err := OpenReadOnly(src)
	require.NoError(t, err)
	defer srcF.Close()

	dstPath := filepath.Join(dir, "dst.bin")
	dstF, err := Create(dstPath, 0o644)
	require.NoError(t, err)

	n, err := CopyRange(dstF, srcF, 5, 10)
	require.NoError(t, err)
	require.Equal(t, uint64(10), n)
	require.NoError(t, dstF.Close())

	got, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	require.Equal(t, "56789abcde", string(got))
}

func TestCopyRangeShort(t *testing.T) {
	dir := t.TempDir()
	src := writeTempFile(t, dir, "src.bin", []byte("short"))

	srcF, err := OpenReadOnly(src)
	require.NoError(t, err)
	defer srcF.Close()

	dstPath := filepath.Join(dir, "dst.bin")
	dstF, err := Create(dstPath, 0o644)
	require.NoError(t, err)
	defer dstF.Close()

	_, err = CopyRange(dstF, srcF, 0, 100)
	require.Error(t, err)
}

func TestWriteZeros(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zeros.bin")
	f, err := Create(path, 0o644)
	require.NoError(t, err)

	require.NoError(t, WriteZeros(f, 10))
	require.NoError(t, f.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 10), got)
}

func TestFindJunkAndAppendJunk(t *testing.T) {
	dir := t.TempDir()
	payload := make([]byte, 5000)
	copy(payload[4096:], []byte("junk-bytes"))
	src := writeTempFile(t, dir, "src.bin", payload)

	srcF, err := OpenReadOnly(src)
	require.NoError(t, err)
	defer srcF.Close()

	records := []core.Record{{Offset: 0, Size: 10}}
	offset, size, found, err := FindJunk(srcF, records)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(10), offset)
	require.Equal(t, uint64(4990), size)

	dstPath := filepath.Join(dir, "dst.bin")
	dstF, err := Create(dstPath, 0o644)
	require.NoError(t, err)
	require.NoError(t, AppendJunk(dstF, srcF, records))
	require.NoError(t, dstF.Close())

	got, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	require.Equal(t, payload[10:], got)
}

func TestFindJunkNoneWhenRecordsCoverFile(t *testing.T) {
	dir := t.TempDir()
	src := writeTempFile(t, dir, "src.bin", make([]byte, 100))

	srcF, err := OpenReadOnly(src)
	require.NoError(t, err)
	defer srcF.Close()

	records := []core.Record{{Offset: 0, Size: 100}}
	_, _, found, err := FindJunk(srcF, records)
	require.NoError(t, err)
	require.False(t, found)
}
