package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pillarscan/pillarscan/internal/config"
	"github.com/pillarscan/pillarscan/internal/prompt"
	"github.com/spf13/cobra"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage prompt templates",
}

var promptsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write starter templates for the configured pillars",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		store := prompt.NewStore(cfg.PromptsDir)
		if err := store.WriteDefaults(cfg.Pillars); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Templates written to %s\n", cfg.PromptsDir)
		return nil
	},
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List template files resolved for the configured pillars",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		for _, pillar := range cfg.Pillars {
			path := filepath.Join(cfg.PromptsDir, prompt.TemplateName(pillar))
			status := "ok"
			if _, err := os.Stat(path); err != nil {
				status = "MISSING"
			}
			fmt.Fprintf(os.Stdout, "%-25s %-35s %s\n", pillar, path, status)
		}
		return nil
	},
}

func init() {
	promptsCmd.AddCommand(promptsInitCmd)
	promptsCmd.AddCommand(promptsListCmd)
	promptsInitCmd.Flags().StringVar(&flagPrompts, "prompts", "", "Prompt template directory")
	promptsListCmd.Flags().StringVar(&flagPrompts, "prompts", "", "Prompt template directory")
}
