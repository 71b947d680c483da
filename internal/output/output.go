package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pillarscan/pillarscan/internal/analysis"
)

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report analysis.Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "json":
		return &JSONWriter{}, nil
	case "text":
		return &TextWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// TimestampedPath returns the default artifact path for a run that ended at
// now: results_YYYYMMDD_HHMMSS.json under dir.
func TimestampedPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("results_%s.json", now.Format("20060102_150405")))
}

// WriteReport writes the report to outPath in the given format, or to stdout
// when outPath is empty. File writes go through a temp file and rename so
// the artifact appears atomically.
func WriteReport(report analysis.Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writer.Write(os.Stdout, report)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".pillarscan-*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := writer.Write(tmp, report); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
