package fatelf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatelf/fatelf/internal/core"
)

// Selector is a parsed target-selection expression: a colon-separated list
// of constraints (byte order, word size, machine name, osabi name,
// osabi_version, or a literal record index) used to pick exactly one record
// out of a container. An empty token is a no-op, so "be::64bit" parses the
// same as "be:64bit".
type Selector struct {
	WordSize     *uint8
	ByteOrder    *uint8
	Machine      *uint16
	OSABI        *uint8
	OSABIVersion *uint8
	RecordIndex  *int
}

// ParseSelector parses a selector expression. An empty string selects
// everything (useful only when the caller expects exactly one record to
// begin with).
func ParseSelector(expr string) (*Selector, error) {
	sel := &Selector{}
	for _, tok := range strings.Split(expr, ":") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if err := sel.applyToken(tok); err != nil {
			return nil, err
		}
	}
	return sel, nil
}

func (s *Selector) applyToken(tok string) error {
	switch {
	case tok == "be" || tok == "bigendian":
		v := uint8(core.ByteOrderBig)
		s.ByteOrder = &v
	case tok == "le" || tok == "littleendian":
		v := uint8(core.ByteOrderLittle)
		s.ByteOrder = &v
	case tok == "32bit":
		v := uint8(core.WordSize32)
		s.WordSize = &v
	case tok == "64bit":
		v := uint8(core.WordSize64)
		s.WordSize = &v
	case strings.HasPrefix(tok, "osabiver"):
		n, err := strconv.Atoi(strings.TrimPrefix(tok, "osabiver"))
		if err != nil || n < 0 || n > 255 {
			return fmt.Errorf("invalid selector token %q", tok)
		}
		v := uint8(n)
		s.OSABIVersion = &v
	case strings.HasPrefix(tok, "record"):
		n, err := strconv.Atoi(strings.TrimPrefix(tok, "record"))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid selector token %q", tok)
		}
		s.RecordIndex = &n
	default:
		if m := core.MachineByName(tok); m != nil {
			v := m.ID
			s.Machine = &v
			return nil
		}
		if o := core.OSABIByName(tok); o != nil {
			v := o.ID
			s.OSABI = &v
			return nil
		}
		return fmt.Errorf("unrecognized selector token %q", tok)
	}
	return nil
}

// Matches reports whether rec, found at the given index, satisfies every
// constraint in s.
func (s *Selector) Matches(rec *core.Record, index int) bool {
	if s.RecordIndex != nil {
		return *s.RecordIndex == index
	}
	if s.WordSize != nil && rec.WordSize != *s.WordSize {
		return false
	}
	if s.ByteOrder != nil && rec.ByteOrder != *s.ByteOrder {
		return false
	}
	if s.Machine != nil && rec.Machine != *s.Machine {
		return false
	}
	if s.OSABI != nil && rec.OSABI != *s.OSABI {
		return false
	}
	if s.OSABIVersion != nil && rec.OSABIVersion != *s.OSABIVersion {
		return false
	}
	return true
}

// Select parses expr and returns the single record of h it identifies.
// It returns core.ErrNoMatch if nothing matches and core.ErrAmbiguous if
// more than one record does. A "recordN" token is bounds-checked against
// len(h.Records); unlike the original tools, N == len(h.Records) is rejected
// rather than silently accepted.
func Select(h *core.Header, expr string) (int, *core.Record, error) {
	sel, err := ParseSelector(expr)
	if err != nil {
		return -1, nil, err
	}

	if sel.RecordIndex != nil {
		n := *sel.RecordIndex
		if n < 0 || n >= len(h.Records) {
			return -1, nil, fmt.Errorf("%w: record index %d out of range (container has %d records)", core.ErrNoMatch, n, len(h.Records))
		}
		return n, &h.Records[n], nil
	}

	matchIdx := -1
	for i := range h.Records {
		if sel.Matches(&h.Records[i], i) {
			if matchIdx != -1 {
				return -1, nil, core.ErrAmbiguous
			}
			matchIdx = i
		}
	}
	if matchIdx == -1 {
		return -1, nil, core.ErrNoMatch
	}
	return matchIdx, &h.Records[matchIdx], nil
}
