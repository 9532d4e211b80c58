package export

import (
	"encoding/json"
	"fmt"
	"io"

	"survey-labeler/internal/reconcile"
	"survey-labeler/internal/syntax"
)

// Metadata is shaped like the metadata arguments of a SAV writer: column
// labels for every column and value labels for the coded ones, all keyed by
// the canonical names the dataset is renamed to.
type Metadata struct {
	ColumnNames         []string                       `json:"column_names"`
	ColumnLabels        map[string]string              `json:"column_labels"`
	VariableValueLabels map[string]*syntax.ValueLabels `json:"variable_value_labels"`
	Renames             map[string]string              `json:"renames"`
}

// NewMetadata collects the metadata of a result.
func NewMetadata(res *reconcile.Result) Metadata {
	values := make(map[string]*syntax.ValueLabels, len(res.ValueLabels))
	for name, v := range res.ValueLabels {
		values[name] = v
	}

	renames := res.Renames
	if renames == nil {
		renames = map[string]string{}
	}

	return Metadata{
		ColumnNames:         res.Names(),
		ColumnLabels:        res.ColumnLabels(),
		VariableValueLabels: values,
		Renames:             renames,
	}
}

// WriteMetadata writes the metadata of a result as indented JSON.
func WriteMetadata(w io.Writer, res *reconcile.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(NewMetadata(res)); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	return nil
}
