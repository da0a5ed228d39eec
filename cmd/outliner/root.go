package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/outliner/internal/api"
	"github.com/jackzampolin/outliner/internal/config"
	"github.com/jackzampolin/outliner/internal/home"
	"github.com/jackzampolin/outliner/internal/providers"
	"github.com/jackzampolin/outliner/internal/svcctx"
	"github.com/jackzampolin/outliner/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Table-of-contents extraction and outline writing for scanned PDFs",
	Long: `Outliner extracts a table of contents from a scanned PDF's front
matter and writes it back into the document as a bookmark outline.

Extraction degrades gracefully: image-assisted LLM analysis where the
model supports it, text-only prompts otherwise, and a regex scan of the
page text when no model is reachable at all.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.outliner/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "outliner home directory (default: ~/.outliner)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}

		manager, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		registry := providers.NewRegistryFromConfig(manager.Get().ToProviderRegistryConfig())
		registry.SetLogger(logger)
		manager.OnChange(func(c *config.Config) {
			registry.Reload(c.ToProviderRegistryConfig())
		})
		manager.WatchConfig()

		cmd.SetContext(svcctx.WithServices(cmd.Context(), &svcctx.Services{
			Config:   manager,
			Registry: registry,
			Logger:   logger,
			Home:     h,
			Output:   api.NewFormatter(outputFormat),
		}))
		return nil
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(configCmd)
}
