package syntax

import (
	"fmt"

	"survey-labeler/internal/charset"
	"survey-labeler/internal/diagnostic"
)

// Document holds the labels recovered from one syntax file. Names are the
// variable names exactly as written in the file.
type Document struct {
	VariableLabels VariableLabels         `json:"variable_labels"`
	ValueLabels    ValueLabelMap          `json:"value_labels"`
	Variables      []string               `json:"variables"`
	Encoding       charset.Encoding       `json:"encoding,omitempty"`
	Diagnostics    diagnostic.Diagnostics `json:"diagnostics"`

	seen map[string]struct{}
}

func newDocument() *Document {
	return &Document{
		VariableLabels: VariableLabels{},
		ValueLabels:    ValueLabelMap{},
		seen:           map[string]struct{}{},
	}
}

// ParseBytes decodes raw syntax file bytes and parses them. The only error is
// an input that is not decodable text.
func ParseBytes(data []byte) (*Document, error) {
	text, err := charset.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode syntax: %w", err)
	}

	doc := Parse(text.Content)
	doc.Encoding = text.Encoding

	return doc, nil
}

// Label returns the variable label of name.
func (d *Document) Label(name string) (string, bool) {
	label, ok := d.VariableLabels[name]
	return label, ok
}

// Values returns the code dictionary of name, or nil.
func (d *Document) Values(name string) *ValueLabels {
	return d.ValueLabels[name]
}

// HasLabels reports whether the document defines any label at all.
func (d *Document) HasLabels() bool {
	return len(d.VariableLabels) > 0 || len(d.ValueLabels) > 0
}

func (d *Document) addVariable(name string) {
	if d.seen == nil {
		d.seen = map[string]struct{}{}
	}

	if _, ok := d.seen[name]; ok {
		return
	}

	d.seen[name] = struct{}{}
	d.Variables = append(d.Variables, name)
}

func (d *Document) setVariableLabel(name, label string) {
	d.addVariable(name)
	d.VariableLabels[name] = label
}

func (d *Document) setValueLabels(name string, labels *ValueLabels, merge bool) {
	d.addVariable(name)

	if existing, ok := d.ValueLabels[name]; ok && merge {
		existing.Merge(labels)
		return
	}

	d.ValueLabels[name] = labels.Clone()
}
