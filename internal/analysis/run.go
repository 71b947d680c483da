package analysis

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// RunConfig controls one analysis run.
type RunConfig struct {
	// Dir is the target directory, walked recursively.
	Dir string
	// Extension filters files, e.g. ".tf".
	Extension string
	// Pillars is the review set; empty means DefaultPillars.
	Pillars []Pillar
	// ChunkSize is the chunking threshold and window; zero means
	// DefaultChunkSize.
	ChunkSize int
	// Logf receives progress and per-file diagnostics. Nil discards them.
	Logf func(format string, args ...any)
}

// Run walks the target directory and analyzes every matching file against
// every pillar, sequentially. Files that cannot be read are skipped with a
// diagnostic. Per-unit failures become error outcomes inside the report;
// only a missing target directory fails the run itself.
func Run(ctx context.Context, analyzer *Analyzer, cfg RunConfig) (Report, error) {
	if info, err := os.Stat(cfg.Dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("target directory not found: %s", cfg.Dir)
	}

	pillars := cfg.Pillars
	if len(pillars) == 0 {
		pillars = DefaultPillars()
	}
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	report := make(Report)

	err := filepath.WalkDir(cfg.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), cfg.Extension) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logf("error reading file %s: %v", d.Name(), err)
			return nil
		}

		name := reportKey(cfg.Dir, path)
		logf("analyzing file: %s", name)
		report[name] = analyzeFile(ctx, analyzer, string(data), pillars, chunkSize, logf)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", cfg.Dir, err)
	}

	return report, nil
}

// analyzeFile produces the per-pillar outcome lists for one file's content.
// Every pillar gets an entry, even when every unit failed.
func analyzeFile(ctx context.Context, analyzer *Analyzer, content string, pillars []Pillar, chunkSize int, logf func(string, ...any)) FileReport {
	fr := make(FileReport, len(pillars))
	for _, pillar := range pillars {
		logf("  analyzing %s...", pillar)
		if !NeedsChunking(content, chunkSize) {
			fr[string(pillar)] = []Outcome{analyzer.AnalyzeUnit(ctx, content, pillar)}
			continue
		}

		chunks := Split(content, chunkSize)
		outcomes := make([]Outcome, 0, len(chunks))
		for i, chunk := range chunks {
			o := analyzer.AnalyzeUnit(ctx, chunk, pillar)
			if o.IsError() {
				logf("    error analyzing chunk %d for %s: %s", i+1, pillar, o.Err)
			}
			outcomes = append(outcomes, o)
		}
		fr[string(pillar)] = outcomes
	}
	return fr
}

// reportKey names a file in the report by its path relative to the target
// directory, so files with equal base names in different subdirectories
// keep distinct entries.
func reportKey(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}
