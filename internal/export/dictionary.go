package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"survey-labeler/internal/reconcile"
)

// DictionaryHeader is the header record of WriteDictionary.
var DictionaryHeader = []string{"variable", "code", "label"}

// WriteDictionary writes one CSV record per labeled code, columns in
// dataset order and codes in definition order.
func WriteDictionary(w io.Writer, res *reconcile.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(DictionaryHeader); err != nil {
		return fmt.Errorf("failed to write dictionary header: %w", err)
	}

	for _, name := range res.Names() {
		for _, e := range res.ValueLabels[name].Entries() {
			if err := cw.Write([]string{name, e.Code.String(), e.Label}); err != nil {
				return fmt.Errorf("failed to write dictionary record: %w", err)
			}
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush dictionary: %w", err)
	}

	return nil
}
