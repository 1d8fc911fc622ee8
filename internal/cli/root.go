package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"cuegen/internal/config"
	"cuegen/internal/logging"
)

var (
	verbose     bool
	cfgPath     string
	sessionPath string

	logger *logging.Logger
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cuegen",
	Short: "AI-assisted script and caption generator for narration videos",
	Long: `Cuegen is a CLI tool for producing narration-driven videos.

It suggests topics, generates and iteratively refines scripts with an
AI producer-style review, writes image prompts and titles, and converts
narration text into timed SRT captions. Work in progress persists in a
local session file between invocations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load()

		logger = logging.NewLogger(verbose)

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&cfgPath, "config", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().
		StringVar(&sessionPath, "session", "", "Path to session file (default: user config dir)")
	rootCmd.PersistentFlags().
		StringP("provider", "p", "", "Generation provider (gemini, openai, anthropic)")
	rootCmd.PersistentFlags().
		String("model", "", "Model to use (provider-specific, uses sensible defaults)")
	rootCmd.PersistentFlags().
		StringP("api-key", "k", "", "API key (or set the provider's env var)")
}
