package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Generate an image prompt for each scene of the session script",
	Args:  cobra.NoArgs,
	RunE:  runImages,
}

func init() {
	rootCmd.AddCommand(imagesCmd)
}

func runImages(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, path, err := loadSession()
	if err != nil {
		return err
	}
	if s.Script == nil {
		return fmt.Errorf("the session has no script: run 'cuegen script' first")
	}

	svc, err := newContentService(ctx, cmd)
	if err != nil {
		return err
	}

	logger.Infow("Generating image prompts",
		"scenes", len(s.Script.Scenes),
	)

	prompts, err := svc.ImagePrompts(ctx, s.Script)
	if err != nil {
		return err
	}

	for _, p := range prompts {
		fmt.Printf("Scene %d: %s\n", p.Scene, p.Prompt)
	}

	s.ImagePrompts = prompts
	return s.Save(path)
}
