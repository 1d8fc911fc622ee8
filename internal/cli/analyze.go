package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cuegen/internal/content"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [narration_file]",
	Short: "Score a script the way a producer would",
	Long: `Score a narration script on hook, retention, clarity, and emotion,
with actionable feedback.

Without an argument the session script is analyzed; with a file argument
the file's text is analyzed as plain narration. The analysis is stored
in the session.

Examples:
  cuegen analyze
  cuegen analyze narration.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, path, err := loadSession()
	if err != nil {
		return err
	}

	var script *content.Script
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read narration file: %w", err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return fmt.Errorf("narration file is empty")
		}
		script = &content.Script{
			Scenes: []content.Scene{{Narration: text}},
		}
	} else {
		if s.Script == nil {
			return fmt.Errorf(
				"no narration file given and the session has no script: run 'cuegen script' first",
			)
		}
		script = s.Script
	}

	svc, err := newContentService(ctx, cmd)
	if err != nil {
		return err
	}

	logger.Infow("Analyzing script")

	analysis, err := svc.AnalyzeScript(ctx, script)
	if err != nil {
		return err
	}

	fmt.Printf("Hook:      %3d\n", analysis.Hook)
	fmt.Printf("Retention: %3d\n", analysis.Retention)
	fmt.Printf("Clarity:   %3d\n", analysis.Clarity)
	fmt.Printf("Emotion:   %3d\n", analysis.Emotion)
	fmt.Printf("Overall:   %.1f\n", analysis.Overall)
	if len(analysis.Feedback) > 0 {
		fmt.Println("\nFeedback:")
		for _, note := range analysis.Feedback {
			fmt.Printf("  - %s\n", note)
		}
	}

	s.Analysis = &analysis
	return s.Save(path)
}
