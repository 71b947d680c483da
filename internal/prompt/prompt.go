package prompt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder is the marker in a template that is replaced with the subject
// text.
const Placeholder = "{code}"

// ErrNotFound indicates that no template file exists for a pillar. Callers
// match it with errors.Is; it is a configuration problem, not a code defect.
var ErrNotFound = errors.New("prompt template not found")

// Store resolves pillar names to prompt templates on disk.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is not required to
// exist until a template is loaded.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the template directory.
func (s *Store) Dir() string {
	return s.dir
}

// TemplateName normalizes a pillar name to its template file name:
// lowercase, spaces replaced with underscores, ".txt" suffix.
func TemplateName(pillar string) string {
	return strings.ReplaceAll(strings.ToLower(pillar), " ", "_") + ".txt"
}

// Build loads the template for pillar and substitutes code for every
// occurrence of the placeholder. A missing template file is reported as
// ErrNotFound wrapped with the pillar name.
func (s *Store) Build(pillar, code string) (string, error) {
	path := filepath.Join(s.dir, TemplateName(pillar))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w for pillar %q (looked for %s)", ErrNotFound, pillar, path)
		}
		return "", fmt.Errorf("reading template for pillar %q: %w", pillar, err)
	}
	return strings.ReplaceAll(string(data), Placeholder, code), nil
}

// WriteDefaults writes the built-in starter template for each named pillar
// into the store's directory, creating it if needed. Existing files are left
// alone so local edits survive re-runs.
func (s *Store) WriteDefaults(pillars []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating prompts directory: %w", err)
	}
	for _, pillar := range pillars {
		path := filepath.Join(s.dir, TemplateName(pillar))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(DefaultTemplate(pillar)), 0o644); err != nil {
			return fmt.Errorf("writing template for pillar %q: %w", pillar, err)
		}
	}
	return nil
}
