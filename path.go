package sirisx

import (
	"strconv"
	"strings"
)

// Step is one key or index hop in a Path.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key returns a Step addressing an object member.
func Key(name string) Step { return Step{Key: name} }

// Index returns a Step addressing an array element.
func Index(i int) Step { return Step{Index: i, IsIndex: true} }

// Path is the sequence of steps from the document root to a value.
// Paths are treated as immutable: Field/At always copy.
type Path []Step

// Root is the empty path.
var Root = Path(nil)

// PathOf builds a Path from keys (string) and indexes (int).
func PathOf(parts ...any) Path {
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			p = append(p, Key(v))
		case int:
			p = append(p, Index(v))
		}
	}
	return p
}

// Field returns p extended by an object key.
func (p Path) Field(name string) Path { return p.with(Key(name)) }

// At returns p extended by an array index.
func (p Path) At(i int) Path { return p.with(Index(i)) }

func (p Path) with(s Step) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// Join returns p followed by q.
func (p Path) Join(q Path) Path {
	out := make(Path, 0, len(p)+len(q))
	out = append(out, p...)
	return append(out, q...)
}

// HasPrefix reports whether prefix is a leading subsequence of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// String renders the dotted form, e.g. Situations.PtSituationElement[3].ValidityPeriod[0].EndTime.
// The root renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	b := &strings.Builder{}
	for i, s := range p {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Key)
	}
	return b.String()
}

// Pointer renders the path as an RFC 6901 JSON Pointer.
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.IsIndex {
			b.WriteString(strconv.Itoa(s.Index))
			continue
		}
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.Key, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// MarshalText renders the dotted form so Issues serialize readably.
func (p Path) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
