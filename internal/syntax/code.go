package syntax

import (
	"regexp"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=CodeKind -trimprefix=Code -output=codekind_string.go

// CodeKind tells whether a value-label code is numeric or a string.
type CodeKind int

const (
	_ CodeKind = iota // zero value is an invalid kind

	CodeNumeric
	CodeString
)

var numericCodeRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Code is one coded value of a variable.
type Code struct {
	Kind CodeKind
	// Num holds the value of a numeric code.
	Num float64
	// Raw is the token text as written in the syntax file.
	Raw string
}

// ParseCode coerces a code token to a numeric code when it is an integer or
// decimal literal and to a string code otherwise.
func ParseCode(token string) Code {
	trimmed := strings.TrimSpace(token)
	if numericCodeRe.MatchString(trimmed) {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Code{Kind: CodeNumeric, Num: f, Raw: token}
		}
	}

	return Code{Kind: CodeString, Raw: token}
}

// NumericCode builds a numeric code.
func NumericCode(f float64) Code {
	return Code{Kind: CodeNumeric, Num: f, Raw: FormatNumber(f)}
}

// StringCode builds a string code.
func StringCode(s string) Code {
	return Code{Kind: CodeString, Raw: s}
}

// IsNumeric reports whether the code is numeric.
func (c Code) IsNumeric() bool {
	return c.Kind == CodeNumeric
}

// String returns the canonical text of the code: the shortest number
// representation for numeric codes and the raw token otherwise.
func (c Code) String() string {
	if c.IsNumeric() {
		return FormatNumber(c.Num)
	}

	return c.Raw
}

// key identifies a code for uniqueness. Numeric codes compare by value.
func (c Code) key() codeKey {
	if c.IsNumeric() {
		return codeKey{kind: CodeNumeric, num: c.Num}
	}

	return codeKey{kind: CodeString, str: c.Raw}
}

type codeKey struct {
	kind CodeKind
	num  float64
	str  string
}

// FormatNumber formats a numeric code without a trailing ".0".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
