// Package fatelf implements the FatELF universal-binary container format:
// reading and writing the page-aligned header/record layout, selecting a
// target binary out of a container, and the glue/extract/remove/replace/
// split/info/validate/verify operations the cmd/fatelf-* tools expose.
package fatelf

import (
	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// Container is an opened FatELF file together with its decoded header.
type Container struct {
	File   *streamio.File
	Header *core.Header
	Path   string
}

// OpenContainer opens path and reads its FatELF header, failing with
// core.ErrBadMagic/ErrBadVersion if it isn't one.
func OpenContainer(path string) (*Container, error) {
	f, err := streamio.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	h, err := core.ReadHeader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Container{File: f, Header: h, Path: path}, nil
}

// Close releases the underlying file descriptor.
func (c *Container) Close() error {
	return c.File.Close()
}

// NumRecords reports how many binaries the container holds.
func (c *Container) NumRecords() int {
	return len(c.Header.Records)
}
