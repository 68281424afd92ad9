package fatelf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatelf/fatelf/internal/core"
)

// targetField is one of the five attributes that make up a target, in the
// precedence order fixed by §4.F: machine, word size, byte order, osabi,
// osabi_version.
type targetField int

const (
	fieldMachine targetField = iota
	fieldWordSize
	fieldByteOrder
	fieldOSABI
	fieldOSABIVersion
)

var targetFieldPrecedence = []targetField{
	fieldMachine, fieldWordSize, fieldByteOrder, fieldOSABI, fieldOSABIVersion,
}

func fieldToken(rec *core.Record, f targetField) string {
	switch f {
	case fieldMachine:
		if m := core.MachineByID(rec.Machine); m != nil {
			return m.Name
		}
		return fmt.Sprintf("machine%d", rec.Machine)
	case fieldWordSize:
		if rec.WordSize == core.WordSize64 {
			return "64bit"
		}
		return "32bit"
	case fieldByteOrder:
		if rec.ByteOrder == core.ByteOrderBig {
			return "be"
		}
		return "le"
	case fieldOSABI:
		if o := core.OSABIByID(rec.OSABI); o != nil {
			return o.Name
		}
		return fmt.Sprintf("osabi%d", rec.OSABI)
	default: // fieldOSABIVersion
		return fmt.Sprintf("osabiver%d", rec.OSABIVersion)
	}
}

func fieldEqual(a, b *core.Record, f targetField) bool {
	switch f {
	case fieldMachine:
		return a.Machine == b.Machine
	case fieldWordSize:
		return a.WordSize == b.WordSize
	case fieldByteOrder:
		return a.ByteOrder == b.ByteOrder
	case fieldOSABI:
		return a.OSABI == b.OSABI
	default: // fieldOSABIVersion
		return a.OSABIVersion == b.OSABIVersion
	}
}

func recordLess(a, b *core.Record) bool {
	for _, f := range targetFieldPrecedence {
		if fieldEqual(a, b, f) {
			continue
		}
		switch f {
		case fieldMachine:
			return a.Machine < b.Machine
		case fieldWordSize:
			return a.WordSize < b.WordSize
		case fieldByteOrder:
			return a.ByteOrder < b.ByteOrder
		case fieldOSABI:
			return a.OSABI < b.OSABI
		default:
			return a.OSABIVersion < b.OSABIVersion
		}
	}
	return false
}

// FullTargetName renders rec's complete five-tuple as a colon-separated
// name (machine:word_size:byte_order:osabi:osabi_version) — the
// FATELF_WANT_EVERYTHING form fatelf-info prints alongside each record's
// record<N> index alias, unambiguous regardless of what else is in the
// container.
func FullTargetName(rec *core.Record) string {
	parts := make([]string, len(targetFieldPrecedence))
	for i, f := range targetFieldPrecedence {
		parts[i] = fieldToken(rec, f)
	}
	return strings.Join(parts, ":")
}

// MinimalUniqueNames generates the shortest colon-separated name for each
// record, in the order given, per the split operation's naming convention
// (§4.F):
//
//  1. Sort records by (machine, word_size, byte_order, osabi,
//     osabi_version).
//  2. For each record in sorted order, inspect only its immediate
//     neighbors. The first attribute (machine) is always included. Each
//     subsequent attribute, in precedence order, is added only if it
//     diverges the record from at least one neighbor still considered a
//     potential collision; once every neighbor has diverged, the record is
//     unique and no further attributes are added.
//
// True duplicates (identical five-tuples) fall back to appending the
// record's position as a last resort.
func MinimalUniqueNames(records []core.Record) []string {
	n := len(records)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []string{fieldToken(&records[0], fieldMachine)}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return recordLess(&records[order[i]], &records[order[j]])
	})

	sortedNames := make([]string, n)
	for pos, idx := range order {
		rec := &records[idx]
		var prev, next *core.Record
		if pos > 0 {
			prev = &records[order[pos-1]]
		}
		if pos < n-1 {
			next = &records[order[pos+1]]
		}

		var parts []string
		for i, f := range targetFieldPrecedence {
			if prev == nil && next == nil {
				break
			}
			diverged := false
			if prev != nil && !fieldEqual(rec, prev, f) {
				prev = nil
				diverged = true
			}
			if next != nil && !fieldEqual(rec, next, f) {
				next = nil
				diverged = true
			}
			if diverged || i == 0 {
				parts = append(parts, fieldToken(rec, f))
			}
		}
		sortedNames[pos] = strings.Join(parts, ":")
	}

	counts := make(map[string]int, n)
	for _, name := range sortedNames {
		counts[name]++
	}
	for pos := range sortedNames {
		if counts[sortedNames[pos]] > 1 {
			sortedNames[pos] = fmt.Sprintf("%s:record%d", sortedNames[pos], order[pos])
		}
	}

	names := make([]string, n)
	for pos, idx := range order {
		names[idx] = sortedNames[pos]
	}
	return names
}
