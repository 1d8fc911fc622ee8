package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Suggest video topics for a channel niche",
	Long: `Ask the configured provider for video topic suggestions.

The chosen niche is stored in the session so later commands can pick a
topic by number.

Examples:
  cuegen topics --niche "senior health"
  cuegen topics --niche "true crime" -n 10 --provider openai`,
	Args: cobra.NoArgs,
	RunE: runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)

	topicsCmd.Flags().
		String("niche", "", "Channel niche to suggest topics for (required)")
	topicsCmd.Flags().
		IntP("count", "n", 5, "Number of topics to suggest")
	topicsCmd.Flags().
		Int("pick", 0, "Store the given suggestion (1-based) as the session topic")

	_ = topicsCmd.MarkFlagRequired("niche")
}

func runTopics(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	niche, _ := cmd.Flags().GetString("niche")
	count, _ := cmd.Flags().GetInt("count")
	pick, _ := cmd.Flags().GetInt("pick")

	svc, err := newContentService(ctx, cmd)
	if err != nil {
		return err
	}

	logger.Infow("Suggesting topics",
		"niche", niche,
		"count", count,
	)

	topics, err := svc.SuggestTopics(ctx, niche, count)
	if err != nil {
		return err
	}

	for i, topic := range topics {
		fmt.Printf("%d. %s\n", i+1, topic.Title)
		if topic.Angle != "" {
			fmt.Printf("   Angle: %s\n", topic.Angle)
		}
		if topic.Rationale != "" {
			fmt.Printf("   Why: %s\n", topic.Rationale)
		}
	}

	s, path, err := loadSession()
	if err != nil {
		return err
	}
	s.Niche = niche
	if pick > 0 {
		if pick > len(topics) {
			return fmt.Errorf("--pick %d is out of range (1-%d)", pick, len(topics))
		}
		chosen := topics[pick-1]
		s.Topic = &chosen
		fmt.Printf("\nSession topic set: %s\n", chosen.Title)
	}
	return s.Save(path)
}
