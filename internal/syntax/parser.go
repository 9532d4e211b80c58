package syntax

import (
	"fmt"
	"regexp"
	"strings"
)

type statementKind int

const (
	statementVariableLabels statementKind = iota + 1
	statementValueLabels
	statementAddValueLabels
)

func (k statementKind) keyword() string {
	switch k {
	case statementVariableLabels:
		return "VARIABLE LABELS"
	case statementValueLabels:
		return "VALUE LABELS"
	case statementAddValueLabels:
		return "ADD VALUE LABELS"
	default:
		return ""
	}
}

var (
	keywordRe = regexp.MustCompile(`^(?i)(?:(ADD)\s+)?([A-Z]+)\s+([A-Z]+)\b\s*(.*)$`)

	// /name 'label' or name "label"; doubled quotes are escapes. A slash inside
	// a name is a group path separator (grupo/pregunta).
	variableLabelRe = regexp.MustCompile(`/?\s*([^\s/'"][^\s'"]*)\s*(?:'((?:[^']|'')*)'|"((?:[^"]|"")*)")`)
)

// Parse extracts variable and value labels from syntax text. It never fails:
// statements it cannot read contribute nothing and are reported as warnings.
func Parse(text string) *Document {
	doc := newDocument()

	for _, stmt := range splitStatements(collapseWhitespace(text)) {
		kind, body, ok := classifyStatement(stmt)
		if !ok {
			continue
		}

		switch kind {
		case statementVariableLabels:
			parseVariableLabels(doc, body)
		case statementValueLabels, statementAddValueLabels:
			parseValueLabels(doc, kind, body)
		}
	}

	return doc
}

// classifyStatement recognises label statements, accepting the keyword
// abbreviations down to three letters (VAR LAB, VAL LABELS, ...).
func classifyStatement(stmt string) (statementKind, string, bool) {
	m := keywordRe.FindStringSubmatch(stmt)
	if m == nil {
		return 0, "", false
	}

	add := m[1] != ""
	first, second, body := strings.ToUpper(m[2]), strings.ToUpper(m[3]), m[4]

	if !isAbbreviation(second, "LABELS") {
		return 0, "", false
	}

	switch {
	case !add && isAbbreviation(first, "VARIABLE"):
		return statementVariableLabels, body, true
	case isAbbreviation(first, "VALUE"):
		if add {
			return statementAddValueLabels, body, true
		}

		return statementValueLabels, body, true
	default:
		return 0, "", false
	}
}

func isAbbreviation(word, keyword string) bool {
	return len(word) >= 3 && strings.HasPrefix(keyword, word)
}

func parseVariableLabels(doc *Document, body string) {
	const stmt = "VARIABLE LABELS"

	matches := variableLabelRe.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		doc.Diagnostics.AddWarning("empty_variable_labels",
			fmt.Sprintf("no name/label pairs found in %q", truncate(body)), stmt, "")

		return
	}

	prev := 0

	for _, m := range matches {
		reportUnparsed(doc, stmt, body[prev:m[0]])
		prev = m[1]

		name := body[m[2]:m[3]]

		var label string
		if m[4] >= 0 {
			label = unescapeQuoted(body[m[4]:m[5]], '\'')
		} else {
			label = unescapeQuoted(body[m[6]:m[7]], '"')
		}

		doc.setVariableLabel(name, strings.TrimSpace(label))
	}

	reportUnparsed(doc, stmt, body[prev:])
}

// reportUnparsed warns about text between label pairs that did not match,
// typically a name whose label is missing.
func reportUnparsed(doc *Document, stmt, gap string) {
	gap = strings.Trim(gap, " /")
	if gap == "" {
		return
	}

	doc.Diagnostics.AddWarning("unparsed_text",
		fmt.Sprintf("skipped %q: expected a name followed by a quoted label", truncate(gap)), stmt, "")
}

// valueGroup is a set of variables sharing one code dictionary.
type valueGroup struct {
	names  []string
	labels *ValueLabels

	pending *Code
}

func parseValueLabels(doc *Document, kind statementKind, body string) {
	stmt := kind.keyword()
	merge := kind == statementAddValueLabels

	group := &valueGroup{labels: NewValueLabels()}

	flush := func() {
		commitGroup(doc, stmt, group, merge)
		group = &valueGroup{labels: NewValueLabels()}
	}

	tokens := tokenize(body)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.kind {
		case tokenSlash:
			if group.labels.Len() > 0 || group.pending != nil {
				flush()
			}

		case tokenQuoted:
			switch {
			case group.pending != nil:
				group.labels.Set(*group.pending, strings.TrimSpace(tok.text))
				group.pending = nil
			case len(group.names) == 0:
				doc.Diagnostics.AddWarning("malformed_value_labels",
					fmt.Sprintf("code %q appears before any variable name", tok.text), stmt, "")
			default:
				code := ParseCode(tok.text)
				group.pending = &code
			}

		case tokenWord:
			switch {
			case group.pending != nil:
				doc.Diagnostics.AddWarning("unquoted_label",
					fmt.Sprintf("label %q for code %s is not quoted", tok.text, group.pending.Raw),
					stmt, strings.Join(group.names, " "))
				group.pending = nil
			case looksNumeric(tok.text) && len(group.names) > 0:
				code := ParseCode(tok.text)
				group.pending = &code
			case group.labels.Len() > 0:
				flush()
				group.names = append(group.names, tok.text)
			case strings.EqualFold(tok.text, "TO") && len(group.names) > 0 && i+1 < len(tokens):
				doc.Diagnostics.AddWarning("variable_range",
					fmt.Sprintf("range %s TO %s is not expanded; only its end points are labeled",
						group.names[len(group.names)-1], tokens[i+1].text), stmt, "")
			default:
				group.names = append(group.names, tok.text)
			}
		}
	}

	commitGroup(doc, stmt, group, merge)
}

func commitGroup(doc *Document, stmt string, group *valueGroup, merge bool) {
	names := strings.Join(group.names, " ")

	if group.pending != nil {
		doc.Diagnostics.AddWarning("dangling_code",
			fmt.Sprintf("code %s has no label", group.pending.Raw), stmt, names)
	}

	switch {
	case len(group.names) == 0:
		return
	case group.labels.Len() == 0:
		doc.Diagnostics.AddWarning("malformed_value_labels",
			"no code/label pairs follow the variable names", stmt, names)

		return
	}

	for _, name := range group.names {
		doc.setValueLabels(name, group.labels, merge)
	}
}

func looksNumeric(s string) bool {
	return numericCodeRe.MatchString(s)
}

func truncate(s string) string {
	const maxLen = 60
	if len(s) <= maxLen {
		return s
	}

	return s[:maxLen] + "..."
}
