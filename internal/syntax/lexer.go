package syntax

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// collapseWhitespace turns every run of spaces, tabs and line breaks into a
// single space. The grammar is terminator sensitive, not line sensitive.
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// splitStatements splits collapsed text on statement terminators: a period
// outside quotes followed by a space or the end of input. A period right
// after a closing quote also ends the statement when a label statement
// follows without a space ('x'.VALUE LABELS ...). Comment statements
// are scanned without quote tracking so that an apostrophe in free text does
// not swallow the rest of the file.
func splitStatements(text string) []string {
	var (
		stmts   []string
		start   int
		quote   byte
		atStart = true
		comment bool
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if atStart {
			if c == ' ' {
				start = i + 1
				continue
			}

			atStart = false
			comment = isComment(text[i:])
		}

		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			if !comment {
				quote = c
			}
		case c == '.':
			ends := i+1 == len(text) || text[i+1] == ' ' ||
				!comment && closesQuote(text, i) && startsLabelStatement(text[i+1:])

			if ends {
				if stmt := strings.TrimSpace(text[start:i]); stmt != "" {
					stmts = append(stmts, stmt)
				}

				start = i + 1
				atStart = true
				comment = false
			}
		}
	}

	if rest := strings.TrimSpace(text[start:]); rest != "" {
		stmts = append(stmts, rest)
	}

	return stmts
}

func closesQuote(text string, i int) bool {
	return i > 0 && (text[i-1] == '\'' || text[i-1] == '"')
}

func startsLabelStatement(s string) bool {
	_, _, ok := classifyStatement(s)
	return ok
}

func isComment(s string) bool {
	if strings.HasPrefix(s, "*") {
		return true
	}

	if len(s) >= len("COMMENT") && strings.EqualFold(s[:len("COMMENT")], "COMMENT") {
		return len(s) == len("COMMENT") || s[len("COMMENT")] == ' '
	}

	return false
}

type tokenKind int

const (
	tokenWord tokenKind = iota + 1
	tokenSlash
	tokenQuoted
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits a statement body into words, slashes and quoted strings.
// A slash inside a word (grupo/p1) is kept as part of the word.
// Quoted strings may use either quote character; a doubled quote inside a
// string stands for the quote itself. An unterminated string runs to the end
// of the body.
func tokenize(body string) []token {
	var tokens []token

	for i := 0; i < len(body); {
		c := body[i]

		switch {
		case c == ' ':
			i++
		case c == '/':
			tokens = append(tokens, token{kind: tokenSlash, text: "/"})
			i++
		case c == '\'' || c == '"':
			text, next := readQuoted(body, i)
			tokens = append(tokens, token{kind: tokenQuoted, text: text})
			i = next
		default:
			j := i
			for j < len(body) && !endsWord(body, j) {
				j++
			}

			tokens = append(tokens, token{kind: tokenWord, text: body[i:j]})
			i = j
		}
	}

	return tokens
}

// endsWord reports whether body[j] terminates a word. A slash between two
// name characters is a group path separator and stays part of the word.
func endsWord(body string, j int) bool {
	switch body[j] {
	case ' ', '\'', '"':
		return true
	case '/':
		return j+1 >= len(body) || body[j+1] == ' ' || body[j+1] == '/' ||
			body[j+1] == '\'' || body[j+1] == '"'
	default:
		return false
	}
}

// readQuoted reads the quoted string starting at body[start] and returns its
// unescaped content and the index just past the closing quote.
func readQuoted(body string, start int) (string, int) {
	quote := body[start]

	var sb strings.Builder

	for i := start + 1; i < len(body); i++ {
		if body[i] != quote {
			sb.WriteByte(body[i])
			continue
		}

		if i+1 < len(body) && body[i+1] == quote {
			sb.WriteByte(quote)
			i++

			continue
		}

		return sb.String(), i + 1
	}

	return sb.String(), len(body)
}

// unescapeQuoted removes the doubled-quote escapes of a string quoted with q.
func unescapeQuoted(s string, q byte) string {
	doubled := string([]byte{q, q})
	return strings.ReplaceAll(s, doubled, string(q))
}
