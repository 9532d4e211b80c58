package syntax

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Header is the comment line that opens generated syntax.
const Header = "* Generated by survey-labeler."

// Write emits a syntax file defining the given labels. Variables are written
// in the order of vars; when vars is empty every labeled variable is written
// in name order. Variables without a label or dictionary are skipped.
func Write(w io.Writer, vars []string, labels VariableLabels, values ValueLabelMap) error {
	if len(vars) == 0 {
		vars = labeledNames(labels, values)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, Header)

	var wroteLabels bool

	for _, name := range vars {
		label, ok := labels[name]
		if !ok {
			continue
		}

		if !wroteLabels {
			fmt.Fprintln(bw, "VARIABLE LABELS")

			wroteLabels = true
		}

		fmt.Fprintf(bw, "  /%s %s\n", name, quote(label))
	}

	if wroteLabels {
		fmt.Fprintln(bw, ".")
	}

	var wroteValues bool

	for _, name := range vars {
		set := values[name]
		if set.Len() == 0 {
			continue
		}

		if !wroteValues {
			fmt.Fprintln(bw, "VALUE LABELS")

			wroteValues = true
		}

		fmt.Fprintf(bw, "  /%s", name)

		for _, e := range set.Entries() {
			fmt.Fprintf(bw, " %s %s", formatCode(e.Code), quote(e.Label))
		}

		fmt.Fprintln(bw)
	}

	if wroteValues {
		fmt.Fprintln(bw, ".")
	}

	fmt.Fprintln(bw, "EXECUTE.")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write syntax: %w", err)
	}

	return nil
}

// WriteString renders Write to a string.
func WriteString(vars []string, labels VariableLabels, values ValueLabelMap) string {
	var sb strings.Builder

	// strings.Builder never fails to write
	_ = Write(&sb, vars, labels, values)

	return sb.String()
}

func labeledNames(labels VariableLabels, values ValueLabelMap) []string {
	seen := make(map[string]struct{}, len(labels)+len(values))

	var names []string

	for name := range labels {
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for name := range values {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

func formatCode(c Code) string {
	if c.IsNumeric() {
		return FormatNumber(c.Num)
	}

	return quote(c.Raw)
}

// quote wraps s in single quotes, doubling embedded ones. Line breaks are
// flattened since the reader collapses whitespace anyway.
func quote(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
