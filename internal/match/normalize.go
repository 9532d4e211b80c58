package match

import (
	"strings"
	"unicode"
)

// responseSuffixes are trailing tokens survey tools append to the variables of
// a response set (p3_other, p3comment, p4_otro). Longer suffixes come first so
// that a shorter one never cuts a longer one in half.
var responseSuffixes = []string{"comment", "other", "otro", "text"}

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The normalization pipeline:
// 1. Reduce to the leaf of a group path.
// 2. Tokenize CamelCase.
// 3. Case-fold to lower.
// 4. Strip separators (_, -, spaces).
func NormalizeIdent(s string) string {
	tokens := tokenizeCamelCase(leafName(s))

	joined := strings.Join(tokens, "")
	joined = strings.ToLower(joined)
	joined = stripSeparators(joined)

	return joined
}

// NormalizeIdentWithSuffixStrip normalizes and strips a response-set suffix.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	for _, suffix := range responseSuffixes {
		if strings.HasSuffix(normalized, suffix) && len(normalized) > len(suffix) {
			normalized = strings.TrimSuffix(normalized, suffix)

			break
		}
	}

	return normalized
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "EdadActual" -> ["Edad", "Actual"]
//   - "nivelEducativo" -> ["nivel", "Educativo"]
//   - "NSERegion" -> ["NSE", "Region"]
//   - "p3_other" -> ["p3", "other"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if shouldStartNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || isNameSeparator(r) || r == ']'
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// lower to upper: "edadActual" splits before 'A'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// end of acronym: "NSERegion" splits before 'R'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
