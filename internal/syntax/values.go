package syntax

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// VariableLabels maps a variable name to its label.
type VariableLabels map[string]string

// ValueLabelMap maps a variable name to its code dictionary.
type ValueLabelMap map[string]*ValueLabels

// ValueLabel is one code and its label.
type ValueLabel struct {
	Code  Code
	Label string
}

// ValueLabels is the code dictionary of one variable. Codes are unique and
// keep the order in which they were first defined. A nil *ValueLabels is an
// empty dictionary.
type ValueLabels struct {
	entries []ValueLabel
	index   map[codeKey]int
}

// NewValueLabels creates an empty dictionary.
func NewValueLabels() *ValueLabels {
	return &ValueLabels{index: map[codeKey]int{}}
}

// Set assigns a label to a code. Redefining a code replaces its label in place.
func (v *ValueLabels) Set(code Code, label string) {
	if v.index == nil {
		v.index = map[codeKey]int{}
	}

	k := code.key()
	if i, ok := v.index[k]; ok {
		v.entries[i].Label = label
		return
	}

	v.index[k] = len(v.entries)
	v.entries = append(v.entries, ValueLabel{Code: code, Label: label})
}

// Get returns the label of a code.
func (v *ValueLabels) Get(code Code) (string, bool) {
	if v == nil {
		return "", false
	}

	i, ok := v.index[code.key()]
	if !ok {
		return "", false
	}

	return v.entries[i].Label, true
}

// Lookup returns the label of a code given as text, e.g. "1" or "1.0" for a
// numeric code or "NS" for a string code.
func (v *ValueLabels) Lookup(token string) (string, bool) {
	if label, ok := v.Get(ParseCode(token)); ok {
		return label, true
	}

	return v.Get(StringCode(token))
}

// Len returns the number of codes.
func (v *ValueLabels) Len() int {
	if v == nil {
		return 0
	}

	return len(v.entries)
}

// Entries returns a copy of the codes and labels in definition order.
func (v *ValueLabels) Entries() []ValueLabel {
	if v == nil {
		return nil
	}

	out := make([]ValueLabel, len(v.entries))
	copy(out, v.entries)

	return out
}

// AllNumeric reports whether every code is numeric.
func (v *ValueLabels) AllNumeric() bool {
	for _, e := range v.Entries() {
		if !e.Code.IsNumeric() {
			return false
		}
	}

	return true
}

// Numeric returns the numeric codes keyed by value.
func (v *ValueLabels) Numeric() map[float64]string {
	out := make(map[float64]string, v.Len())

	for _, e := range v.Entries() {
		if e.Code.IsNumeric() {
			out[e.Code.Num] = e.Label
		}
	}

	return out
}

// Strings returns every code keyed by its text form.
func (v *ValueLabels) Strings() map[string]string {
	out := make(map[string]string, v.Len())

	for _, e := range v.Entries() {
		out[e.Code.String()] = e.Label
	}

	return out
}

// Clone returns an independent copy.
func (v *ValueLabels) Clone() *ValueLabels {
	c := NewValueLabels()
	for _, e := range v.Entries() {
		c.Set(e.Code, e.Label)
	}

	return c
}

// Merge sets every code of other on v.
func (v *ValueLabels) Merge(other *ValueLabels) {
	for _, e := range other.Entries() {
		v.Set(e.Code, e.Label)
	}
}

// Equal reports whether both dictionaries hold the same codes and labels.
func (v *ValueLabels) Equal(other *ValueLabels) bool {
	if v.Len() != other.Len() {
		return false
	}

	for _, e := range v.Entries() {
		label, ok := other.Get(e.Code)
		if !ok || label != e.Label {
			return false
		}
	}

	return true
}

// MarshalJSON encodes the dictionary as an object keyed by code text, in
// definition order.
func (v *ValueLabels) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range v.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Code.String())
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by code text, keeping the key order.
func (v *ValueLabels) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode value labels: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("value labels must be a JSON object")
	}

	*v = ValueLabels{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode value labels: %w", err)
		}

		var label string
		if err := dec.Decode(&label); err != nil {
			return fmt.Errorf("failed to decode label of code %v: %w", tok, err)
		}

		v.Set(ParseCode(tok.(string)), label)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode value labels: %w", err)
	}

	return nil
}
