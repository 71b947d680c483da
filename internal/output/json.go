package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pillarscan/pillarscan/internal/analysis"
)

// JSONWriter outputs the report artifact: a JSON object keyed by file name,
// each value keyed by pillar, each pillar holding the ordered per-chunk
// outcome list.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report analysis.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
