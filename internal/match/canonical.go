package match

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// fallbackName replaces names that normalize to nothing.
const fallbackName = "var"

// reservedNames maps reserved canonical names (lower-cased) to their alias.
// "index" is the row-index marker of the dataframe host that writes SAV files.
var reservedNames = map[string]string{
	"index": "v_index",
}

// Canonical maps a raw column or variable name to its canonical name:
//
//  1. NFC-normalize and trim the name.
//  2. Split on the group path separator "/" and keep the last non-empty
//     segment (grupo/pregunta -> pregunta).
//  3. Replace remaining separators (whitespace - . : \ | [) with "_" and drop
//     closing brackets (Q1[SQ001] -> Q1_SQ001).
//  4. Remap reserved names to their alias.
//
// Canonical is pure and idempotent.
func Canonical(raw string) string {
	leaf := leafName(raw)

	var sb strings.Builder

	sb.Grow(len(leaf))

	for _, r := range leaf {
		switch {
		case r == ']':
		case isNameSeparator(r):
			sb.WriteByte('_')
		default:
			sb.WriteRune(r)
		}
	}

	name := sb.String()
	if name == "" {
		return fallbackName
	}

	if alias, ok := reservedNames[strings.ToLower(name)]; ok {
		return alias
	}

	return name
}

// IsReserved reports whether name is reserved by the host environment.
func IsReserved(name string) bool {
	_, ok := reservedNames[strings.ToLower(name)]
	return ok
}

// leafName is the NFC-normalized last path segment of a raw name.
func leafName(raw string) string {
	return lastSegment(norm.NFC.String(strings.TrimSpace(raw)))
}

// lastSegment returns the last non-empty "/"-separated segment of s.
func lastSegment(s string) string {
	segments := strings.Split(s, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if seg := strings.TrimSpace(segments[i]); seg != "" {
			return seg
		}
	}

	return ""
}

func isNameSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}

	switch r {
	case '-', '.', ':', '\\', '|', '[':
		return true
	default:
		return false
	}
}

// Namer assigns unique canonical names in order of first appearance. The
// first column to claim a name keeps it; later ones get "_2", "_3", ...
// Uniqueness is case-insensitive because SAV variable names are.
//
// A Namer holds the state of one naming pass and must not be shared between
// passes.
type Namer struct {
	taken map[string]struct{}
}

// NewNamer creates a Namer with no names taken.
func NewNamer() *Namer {
	return &Namer{taken: map[string]struct{}{}}
}

// Assign returns the unique canonical name for a raw column name.
func (n *Namer) Assign(raw string) string {
	return n.claim(Canonical(raw))
}

// AssignAs claims a pinned name instead of the canonical form of the raw
// column name. The pinned name is normalized and deduplicated like any other.
func (n *Namer) AssignAs(pinned string) string {
	return n.claim(Canonical(pinned))
}

// Taken reports whether a name has been assigned.
func (n *Namer) Taken(name string) bool {
	_, ok := n.taken[strings.ToLower(name)]
	return ok
}

func (n *Namer) claim(name string) string {
	if n.take(name) {
		return name
	}

	for i := 2; ; i++ {
		candidate := name + "_" + strconv.Itoa(i)
		if n.take(candidate) {
			return candidate
		}
	}
}

func (n *Namer) take(name string) bool {
	key := strings.ToLower(name)
	if _, ok := n.taken[key]; ok {
		return false
	}

	n.taken[key] = struct{}{}

	return true
}

// CanonicalColumns names every raw column with a fresh Namer.
func CanonicalColumns(raws []string) []string {
	namer := NewNamer()

	names := make([]string, len(raws))
	for i, raw := range raws {
		names[i] = namer.Assign(raw)
	}

	return names
}
