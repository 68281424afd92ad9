package fatelf

import (
	"fmt"
	"strings"

	"github.com/fatelf/fatelf/internal/core"
	"github.com/fatelf/fatelf/internal/streamio"
)

// RecordInfo is a human-readable view of one container record.
type RecordInfo struct {
	Index        int
	MachineID    uint16
	Machine      string
	MachineDesc  string
	OSABIID      uint8
	OSABI        string
	OSABIDesc    string
	OSABIVersion uint8
	WordSize     int
	ByteOrder    string
	Offset       uint64
	Size         uint64
	TargetName   string
	IndexAlias   string
}

// ContainerInfo is a human-readable view of an entire container, the data
// fatelf-info prints.
type ContainerInfo struct {
	Version    uint16
	Records    []RecordInfo
	JunkFound  bool
	JunkOffset uint64
	JunkSize   uint64
}

// Info reads a container's header and describes every record it holds, in
// on-disk order, including whether any junk was appended past the last
// record.
func Info(containerPath string) (*ContainerInfo, error) {
	src, err := streamio.OpenReadOnly(containerPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	header, err := core.ReadHeader(src)
	if err != nil {
		return nil, err
	}

	info := &ContainerInfo{Version: header.Version}
	info.JunkOffset, info.JunkSize, info.JunkFound, err = streamio.FindJunk(src, header.Records)
	if err != nil {
		return nil, err
	}

	info.Records = make([]RecordInfo, len(header.Records))
	for i := range header.Records {
		rec := &header.Records[i]
		info.Records[i] = RecordInfo{
			Index:        i,
			MachineID:    rec.Machine,
			Machine:      machineName(rec.Machine),
			MachineDesc:  machineDesc(rec.Machine),
			OSABIID:      rec.OSABI,
			OSABI:        osabiName(rec.OSABI),
			OSABIDesc:    osabiDesc(rec.OSABI),
			OSABIVersion: rec.OSABIVersion,
			WordSize:     wordSizeBits(rec.WordSize),
			ByteOrder:    byteOrderName(rec.ByteOrder),
			Offset:       rec.Offset,
			Size:         rec.Size,
			TargetName:   FullTargetName(rec),
			IndexAlias:   fmt.Sprintf("record%d", i),
		}
	}
	return info, nil
}

func machineName(id uint16) string {
	if m := core.MachineByID(id); m != nil {
		return m.Name
	}
	return "???"
}

func machineDesc(id uint16) string {
	if m := core.MachineByID(id); m != nil {
		return m.Desc
	}
	return ""
}

func osabiName(id uint8) string {
	if o := core.OSABIByID(id); o != nil {
		return o.Name
	}
	return "???"
}

func osabiDesc(id uint8) string {
	if o := core.OSABIByID(id); o != nil {
		return o.Desc
	}
	return ""
}

func wordSizeBits(w uint8) int {
	if w == core.WordSize64 {
		return 64
	}
	return 32
}

func descSuffix(desc string) string {
	if desc == "" {
		return ""
	}
	return ": " + desc
}

func byteOrderName(b uint8) string {
	if b == core.ByteOrderBig {
		return "Bigendian"
	}
	return "Littleendian"
}

// FormatInfo renders info the way the fatelf-info tool prints a container's
// contents to stdout: format version and record count, a note about any
// detected trailing junk, then each record's decoded attributes, its
// canonical (FATELF_WANT_EVERYTHING) target name, and its record<N> alias.
func FormatInfo(containerPath string, info *ContainerInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: FatELF format version %d\n", containerPath, info.Version)
	fmt.Fprintf(&b, "%d records.\n", len(info.Records))

	if info.JunkFound {
		fmt.Fprintf(&b, "%d bytes of junk appended, starting at offset %d.\n", info.JunkSize, info.JunkOffset)
	}

	for _, ri := range info.Records {
		fmt.Fprintf(&b, "Binary at index #%d:\n", ri.Index)
		fmt.Fprintf(&b, "  OSABI %d (%s%s) version %d,\n", ri.OSABIID, ri.OSABI, descSuffix(ri.OSABIDesc), ri.OSABIVersion)
		fmt.Fprintf(&b, "  %d bits\n", ri.WordSize)
		fmt.Fprintf(&b, "  %s byteorder\n", ri.ByteOrder)
		fmt.Fprintf(&b, "  Machine %d (%s%s)\n", ri.MachineID, ri.Machine, descSuffix(ri.MachineDesc))
		fmt.Fprintf(&b, "  Offset %d\n", ri.Offset)
		fmt.Fprintf(&b, "  Size %d\n", ri.Size)
		fmt.Fprintf(&b, "  Target name: '%s' or '%s'\n", ri.TargetName, ri.IndexAlias)
	}
	return b.String()
}
