package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pillarscan/pillarscan/internal/analysis"
	"github.com/pillarscan/pillarscan/internal/cache"
	"github.com/pillarscan/pillarscan/internal/config"
	"github.com/pillarscan/pillarscan/internal/output"
	"github.com/pillarscan/pillarscan/internal/prompt"
	"github.com/pillarscan/pillarscan/internal/providers"
	"github.com/pillarscan/pillarscan/internal/repo"
)

var (
	flagRepo       string
	flagCloneDir   string
	flagSubdir     string
	flagForceClone bool
	flagProvider   string
	flagModel      string
	flagRegion     string
	flagProfile    string
	flagPrompts    string
	flagExtension  string
	flagChunkSize  int
	flagMaxTokens  int
	flagFormat     string
	flagOut        string
	flagNoRedact   bool
	flagNoCache    bool
	flagVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Analyze IaC files against the Well-Architected pillars",
	Long: "Analyze every matching file under a directory (or a freshly cloned " +
		"repository) against each configured pillar, one model call per file " +
		"or chunk, and write the aggregated report.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		if flagNoRedact {
			cfg.Privacy.RedactSecrets = false
			fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
		}
		if flagNoCache {
			cfg.Cache.Enabled = false
		}

		dir, err := resolveTarget(args, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		runAnalyze(dir, cfg)
		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagRegion != "" {
		m["region"] = flagRegion
	}
	if flagProfile != "" {
		m["profile"] = flagProfile
	}
	if flagPrompts != "" {
		m["promptsDir"] = flagPrompts
	}
	if flagExtension != "" {
		m["extension"] = flagExtension
	}
	if flagChunkSize > 0 {
		m["chunkSize"] = fmt.Sprintf("%d", flagChunkSize)
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = fmt.Sprintf("%d", flagMaxTokens)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagRepo != "" {
		m["repoUrl"] = flagRepo
	}
	if flagCloneDir != "" {
		m["cloneDir"] = flagCloneDir
	}
	return m
}

// resolveTarget picks the directory to analyze: an explicit positional
// argument wins; otherwise a configured repository URL is cloned or updated
// and its (optional) subdirectory is used.
func resolveTarget(args []string, cfg config.Config) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.RepoURL == "" {
		return "", fmt.Errorf("no target: pass a directory or set --repo")
	}

	logf := func(format string, a ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", a...)
	}
	if err := repo.Setup(cfg.RepoURL, cfg.CloneDir, flagForceClone, logf); err != nil {
		return "", err
	}
	return filepath.Join(cfg.CloneDir, flagSubdir), nil
}

func runAnalyze(dir string, cfg config.Config) {
	ctx := context.Background()

	provider, err := providers.New(ctx, cfg.Provider, providers.Options{
		Model:   cfg.Model,
		Region:  cfg.Region,
		Profile: cfg.Profile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	analyzer := analysis.NewAnalyzer(provider, prompt.NewStore(cfg.PromptsDir), analysis.AnalyzerOptions{
		Cache:         c,
		RedactSecrets: cfg.Privacy.RedactSecrets,
		MaxTokens:     cfg.MaxTokens,
	})

	pillars := make([]analysis.Pillar, 0, len(cfg.Pillars))
	for _, p := range cfg.Pillars {
		pillars = append(pillars, analysis.Pillar(p))
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " analyzing..."
	if !flagVerbose {
		s.Start()
	}

	logf := func(format string, args ...any) {
		if flagVerbose {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
			return
		}
		s.Suffix = " " + fmt.Sprintf(format, args...)
	}

	report, err := analysis.Run(ctx, analyzer, analysis.RunConfig{
		Dir:       dir,
		Extension: cfg.Extension,
		Pillars:   pillars,
		ChunkSize: cfg.ChunkSize,
		Logf:      logf,
	})
	if !flagVerbose {
		s.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	outPath := flagOut
	if outPath == "" && cfg.Format == "json" {
		outPath = output.TimestampedPath(cfg.OutputDir, time.Now())
	}

	if err := output.WriteReport(report, cfg.Format, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	summary := analysis.Summarize(report)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	green.Fprintf(os.Stderr, "Analysis complete: %d files, %d issues", summary.Files, summary.Issues)
	if summary.Errors > 0 {
		yellow.Fprintf(os.Stderr, " (%d failed units)", summary.Errors)
	}
	fmt.Fprintln(os.Stderr)
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "Results saved to %s\n", outPath)
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&flagRepo, "repo", "", "Repository URL to clone and analyze")
	analyzeCmd.Flags().StringVar(&flagCloneDir, "clone-dir", "", "Directory for the repository working copy")
	analyzeCmd.Flags().StringVar(&flagSubdir, "subdir", "", "Subdirectory of the repository to analyze")
	analyzeCmd.Flags().BoolVar(&flagForceClone, "force-clone", false, "Force a fresh clone even if the repo exists")
	analyzeCmd.Flags().StringVar(&flagProvider, "provider", "", "Model provider (bedrock, anthropic, openai)")
	analyzeCmd.Flags().StringVar(&flagModel, "model", "", "Model ID or inference profile ARN")
	analyzeCmd.Flags().StringVar(&flagRegion, "region", "", "AWS region (bedrock)")
	analyzeCmd.Flags().StringVar(&flagProfile, "profile", "", "AWS credential profile (bedrock)")
	analyzeCmd.Flags().StringVar(&flagPrompts, "prompts", "", "Prompt template directory")
	analyzeCmd.Flags().StringVar(&flagExtension, "extension", "", "File extension to analyze (default .tf)")
	analyzeCmd.Flags().IntVar(&flagChunkSize, "chunk-size", 0, "Chunking threshold and window in characters")
	analyzeCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Max output tokens per model call")
	analyzeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (json, text, markdown)")
	analyzeCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: timestamped results file)")
	analyzeCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	analyzeCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the response cache")
	analyzeCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Print per-file progress instead of a spinner")
}
