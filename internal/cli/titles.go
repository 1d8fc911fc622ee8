package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Suggest video titles for the session script",
	Args:  cobra.NoArgs,
	RunE:  runTitles,
}

func init() {
	rootCmd.AddCommand(titlesCmd)

	titlesCmd.Flags().
		IntP("count", "n", 10, "Number of titles to suggest")
}

func runTitles(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, path, err := loadSession()
	if err != nil {
		return err
	}
	if s.Script == nil {
		return fmt.Errorf("the session has no script: run 'cuegen script' first")
	}

	count, _ := cmd.Flags().GetInt("count")

	svc, err := newContentService(ctx, cmd)
	if err != nil {
		return err
	}

	logger.Infow("Generating titles",
		"count", count,
	)

	titles, err := svc.Titles(ctx, s.Script, count)
	if err != nil {
		return err
	}

	for i, title := range titles {
		fmt.Printf("%d. %s\n", i+1, title)
	}

	s.Titles = titles
	return s.Save(path)
}
