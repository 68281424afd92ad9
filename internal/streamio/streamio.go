// Package streamio provides the byte-stream abstraction the FatELF layout
// engine is built on: open/read/write/seek/size over a file descriptor, with
// the interruptible-syscall contract §5 requires (EINTR-style retries are
// transparent to the caller). It uses golang.org/x/sys/unix directly rather
// than os.File so that the retry loop is explicit, mirroring the pattern the
// retrieval corpus uses for its own interruptible-read loop (an inotify fd
// drained with a manual unix.Read/EINTR/EAGAIN loop).
package streamio

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"github.com/fatelf/fatelf/internal/core"
)

// CopyBufferSize is the fixed buffer size used for all stream copies
// (~256 KiB, per §4.G).
const CopyBufferSize = 256 * 1024

// File is a thin, retrying wrapper around a raw file descriptor.
type File struct {
	fd   int
	name string
}

// Open opens name with the given flags/perm, retrying on EINTR.
func Open(name string, flags int, perm uint32) (*File, error) {
	for {
		fd, err := unix.Open(name, flags, perm)
		if err == nil {
			return &File{fd: fd, name: name}, nil
		}
		if err == unix.EINTR {
			continue
		}
		return nil, core.WrapError(fmt.Sprintf("open %q failed", name), err)
	}
}

// OpenReadOnly opens an existing file for reading.
func OpenReadOnly(name string) (*File, error) {
	return Open(name, unix.O_RDONLY, 0)
}

// Create opens name for writing, creating it (and truncating it) if it
// already exists, matching the reference tools' O_WRONLY|O_CREAT|O_TRUNC.
func Create(name string, perm uint32) (*File, error) {
	return Open(name, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, perm)
}

// Read fills p, retrying the underlying syscall on EINTR. A short read
// (including EOF) is returned to the caller as usual; only the EINTR case is
// retried transparently.
func (f *File) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(f.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return n, core.WrapError(fmt.Sprintf("read %q failed", f.name), err)
		}
		return n, nil
	}
}

// Write writes all of p, looping on partial writes and retrying on EINTR.
func (f *File) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := unix.Write(f.fd, p[total:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return total, core.WrapError(fmt.Sprintf("write %q failed", f.name), err)
		}
		total += n
	}
	return total, nil
}

// Seek repositions the file's read/write offset.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	off, err := unix.Seek(f.fd, offset, whence)
	if err != nil {
		return 0, core.WrapError(fmt.Sprintf("seek %q failed", f.name), err)
	}
	return off, nil
}

// Size returns the current size of the file in bytes.
func (f *File) Size() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(f.fd, &st); err != nil {
		return 0, core.WrapError(fmt.Sprintf("stat %q failed", f.name), err)
	}
	return st.Size, nil
}

// Close closes the file, retrying on EINTR.
func (f *File) Close() error {
	for {
		err := unix.Close(f.fd)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return core.WrapError(fmt.Sprintf("close %q failed", f.name), err)
		}
		return nil
	}
}

// ReadAt reads len(p) bytes at the given absolute offset, seeking first.
// Callers needing random access (the ELF probe, the header codec) use this
// rather than interleaving Seek+Read by hand.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	total := 0
	for total < len(p) {
		n, err := f.Read(p[total:])
		if n > 0 {
			total += n
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

// WriteAt writes p at the given absolute offset, seeking first.
func (f *File) WriteAt(p []byte, off int64) (int, error) {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	return f.Write(p)
}

// WriteZeros writes n zero bytes at the current position, in fixed-size
// chunks, per §4.G's placeholder-header and padding steps.
func WriteZeros(f *File, n uint64) error {
	if n == 0 {
		return nil
	}
	buf := make([]byte, CopyBufferSize)
	for n > 0 {
		chunk := uint64(len(buf))
		if n < chunk {
			chunk = n
		}
		if _, err := f.Write(buf[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// CopyFile streams all of src (rewound to its start, through EOF) to dst at
// dst's current position, returning the number of bytes copied. This is the
// glue-time "copy a whole input ELF" primitive.
func CopyFile(dst, src *File) (uint64, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return copyLoop(dst, src)
}

// CopyRange streams exactly size bytes from src starting at offset to dst at
// dst's current position.
func CopyRange(dst, src *File, offset int64, size uint64) (uint64, error) {
	if _, err := src.Seek(offset, io.SeekStart); err != nil {
		return 0, err
	}
	return copyLoopN(dst, src, size)
}

func copyLoop(dst, src *File) (uint64, error) {
	buf := make([]byte, CopyBufferSize)
	var total uint64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += uint64(n)
		}
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, err
		}
		if n == 0 {
			return total, nil
		}
	}
}

func copyLoopN(dst, src *File, size uint64) (uint64, error) {
	buf := make([]byte, CopyBufferSize)
	var total uint64
	for total < size {
		want := uint64(len(buf))
		if remaining := size - total; remaining < want {
			want = remaining
		}
		n, err := src.Read(buf[:want])
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += uint64(n)
		}
		if err != nil && err != io.EOF {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	if total != size {
		return total, fmt.Errorf("short copy: got %d of %d bytes", total, size)
	}
	return total, nil
}

// FindJunk reports the trailing bytes of src beyond the furthest record's
// end, if any. It returns found=false when there is nothing beyond the last
// record (the common case for a freshly-glued container).
func FindJunk(src *File, records []core.Record) (offset uint64, size uint64, found bool, err error) {
	edge := core.FurthestEnd(records)
	fileSize, err := src.Size()
	if err != nil {
		return 0, 0, false, err
	}
	if uint64(fileSize) <= edge {
		return 0, 0, false, nil
	}
	return edge, uint64(fileSize) - edge, true, nil
}

// AppendJunk copies any trailing junk in src to dst's current position, so
// every rewrite (remove, replace, extract, split) preserves it verbatim.
func AppendJunk(dst, src *File, records []core.Record) error {
	offset, size, found, err := FindJunk(src, records)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	_, err = CopyRange(dst, src, int64(offset), size)
	return err
}
