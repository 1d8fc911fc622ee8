package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cuegen/internal/content"
	"cuegen/internal/refine"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Generate a narration script for a topic",
	Long: `Generate a narration script for the given topic, or for the topic
stored in the session.

With --refine, the script is scored by a producer-style analysis pass
and rewritten until it meets the target score or the attempt cap is
reached. The final script and its analysis are stored in the session.

Examples:
  cuegen script --topic "Why we sleep less after 60"
  cuegen script --refine --target-score 85
  cuegen script --topic "..." --audience "seniors 60+" --tone calm`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)

	scriptCmd.Flags().
		StringP("topic", "t", "", "Topic to script (default: session topic)")
	scriptCmd.Flags().
		String("audience", "", "Target audience")
	scriptCmd.Flags().
		String("tone", "", "Tone of the narration")
	scriptCmd.Flags().
		Int("sections", 0, "Number of body sections")
	scriptCmd.Flags().
		Bool("refine", false, "Iteratively analyze and rewrite the script")
	scriptCmd.Flags().
		Float64("target-score", 0, "Overall score that stops refinement")
	scriptCmd.Flags().
		Int("max-attempts", 0, "Cap on refinement rounds")
}

func runScript(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, path, err := loadSession()
	if err != nil {
		return err
	}

	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" && s.Topic != nil {
		topic = s.Topic.Title
	}
	if topic == "" {
		return fmt.Errorf(
			"topic is required: use --topic or pick one with 'cuegen topics --pick'",
		)
	}

	audience, _ := cmd.Flags().GetString("audience")
	tone, _ := cmd.Flags().GetString("tone")
	sections, _ := cmd.Flags().GetInt("sections")

	svc, err := newContentService(ctx, cmd)
	if err != nil {
		return err
	}

	logger.Infow("Generating script",
		"topic", topic,
	)

	script, err := svc.GenerateScript(ctx, content.Brief{
		Topic:    topic,
		Audience: audience,
		Tone:     tone,
		Sections: sections,
	})
	if err != nil {
		return err
	}

	var analysis *content.Analysis

	if doRefine, _ := cmd.Flags().GetBool("refine"); doRefine {
		opts := cfg.RefineOptions()
		if cmd.Flags().Changed("target-score") {
			opts.TargetScore, _ = cmd.Flags().GetFloat64("target-score")
		}
		if cmd.Flags().Changed("max-attempts") {
			opts.MaxAttempts, _ = cmd.Flags().GetInt("max-attempts")
		}

		logger.Infow("Refining script",
			"target_score", opts.TargetScore,
			"max_attempts", opts.MaxAttempts,
		)

		result, err := refine.Refine(ctx, script, opts, svc, svc)
		if err != nil {
			return err
		}

		for _, attempt := range result.History {
			logger.Infow("Refinement round",
				"round", attempt.Round,
				"overall", attempt.Analysis.Overall,
			)
		}

		script = result.Script
		analysis = &result.Analysis

		if result.MetTarget {
			fmt.Printf("Score %.1f reached after %d rewrite(s)\n",
				result.Analysis.Overall, result.Attempts)
		} else {
			fmt.Printf("Stopped at score %.1f after %d rewrite(s) (target %.1f)\n",
				result.Analysis.Overall, result.Attempts, opts.TargetScore)
		}
	}

	printScript(script)

	s.Script = script
	s.Analysis = analysis
	return s.Save(path)
}

func printScript(script *content.Script) {
	fmt.Printf("\n# %s\n\n", script.Title)
	if script.Hook != "" {
		fmt.Printf("%s\n\n", script.Hook)
	}
	for i, scene := range script.Scenes {
		fmt.Printf("[Scene %d - %s]\n%s\n\n", i+1, scene.Mood, scene.Narration)
	}
}
