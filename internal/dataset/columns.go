package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"survey-labeler/internal/charset"
)

// ErrNoColumns is returned when an input holds no column names.
var ErrNoColumns = errors.New("no column names found")

// delimiters are the candidate field delimiters, in order of preference on
// a tie.
var delimiters = []rune{',', ';', '\t', '|'}

// ReadColumns returns the header record of a delimited export. Duplicate
// names are kept in place.
func ReadColumns(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	text, err := charset.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	return readHeader(text, DetectDelimiter(firstLine(text)))
}

// ReadColumnsWith returns the header record using a fixed delimiter.
func ReadColumnsWith(r io.Reader, delim rune) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	text, err := charset.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	return readHeader(text, delim)
}

func readHeader(text string, delim rune) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoColumns
		}

		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	if len(columns) == 1 && columns[0] == "" {
		return nil, ErrNoColumns
	}

	return columns, nil
}

// DetectDelimiter picks the candidate delimiter occurring most often
// outside quotes in a header line. Comma wins when none occurs.
func DetectDelimiter(line string) rune {
	counts := make(map[rune]int, len(delimiters))
	inQuote := false

	for _, r := range line {
		if r == '"' {
			inQuote = !inQuote
			continue
		}

		if !inQuote {
			counts[r]++
		}
	}

	best := delimiters[0]
	for _, d := range delimiters[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}

	return best
}

// firstLine returns the header line, skipping line breaks inside quotes.
func firstLine(text string) string {
	inQuote := false

	for i, r := range text {
		switch {
		case r == '"':
			inQuote = !inQuote
		case (r == '\n' || r == '\r') && !inQuote:
			return text[:i]
		}
	}

	return text
}

// ReadColumnList reads one column name per line. Blank lines and lines
// starting with "#" are skipped.
func ReadColumnList(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read column list: %w", err)
	}

	text, err := charset.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode column list: %w", err)
	}

	var columns []string

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		columns = append(columns, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan column list: %w", err)
	}

	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	return columns, nil
}

// LoadFile reads column names from a file: the header of a .csv or .tsv
// export, otherwise a plain list with one name per line.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadColumns(f)
	case ".tsv", ".tab":
		return ReadColumnsWith(f, '\t')
	default:
		return ReadColumnList(f)
	}
}
