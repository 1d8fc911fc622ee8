package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"cuegen/internal/caption"
)

var captionsCmd = &cobra.Command{
	Use:   "captions [narration_file]",
	Short: "Convert narration text into timed SRT captions",
	Long: `Convert narration text into timed captions.

Text is split into sentence-sized fragments; overlong sentences are
further split on commas. Each fragment's duration is estimated from its
length at the configured narration rate, clamped between the minimum and
maximum duration, with a silent gap between entries.

Input comes from the file argument, from stdin when the argument is "-",
or from the current session's script when no argument is given.

Examples:
  cuegen captions narration.txt
  cuegen captions narration.txt -o narration.srt --gap 0.5
  cuegen captions - < narration.txt
  cuegen captions --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCaptions,
}

func init() {
	rootCmd.AddCommand(captionsCmd)

	captionsCmd.Flags().
		StringP("output", "o", "", "Output file path")
	captionsCmd.Flags().
		StringP("format", "f", "srt", "Output caption format (srt, vtt)")
	captionsCmd.Flags().
		Float64("chars-per-second", 0, "Narration speed in characters per second")
	captionsCmd.Flags().
		Float64("min-duration", 0, "Minimum entry duration in seconds")
	captionsCmd.Flags().
		Float64("max-duration", 0, "Maximum entry duration in seconds")
	captionsCmd.Flags().
		Float64("gap", -1, "Silent gap between entries in seconds")
	captionsCmd.Flags().
		Int("max-fragment-len", 0, "Fragment length above which sentences split on commas")
	captionsCmd.Flags().
		Bool("copy", false, "Copy the serialized captions to the clipboard")
}

func runCaptions(cmd *cobra.Command, args []string) error {
	text, source, err := captionInput(cmd, args)
	if err != nil {
		return err
	}

	timing := captionTiming(cmd)

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := caption.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	logger.Infow("Generating captions",
		"source", source,
		"format", string(format),
		"chars_per_second", timing.CharsPerSecond,
	)

	entries, err := caption.Entries(text, timing)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("input contains no caption-worthy text")
	}

	serialized, err := caption.Render(entries, format)
	if err != nil {
		return err
	}

	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := clipboard.WriteAll(serialized); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Printf("Captions copied to clipboard (%d entries)\n", len(entries))
		return nil
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultCaptionOutput(args, format)
	}

	if err := caption.Export(serialized, outputPath); err != nil {
		return fmt.Errorf("failed to write captions: %w", err)
	}

	if s, path, err := loadSession(); err == nil {
		s.CaptionsPath = outputPath
		if err := s.Save(path); err != nil {
			logger.Warnw("Failed to update session", "error", err)
		}
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions generated successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(entries))
	fmt.Printf("  Duration: %s\n", entries[len(entries)-1].EndTime.Round(time.Millisecond))

	return nil
}

// resolves the narration text and a label describing where it came from
func captionInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 1 {
		if args[0] == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return "", "", fmt.Errorf("failed to read stdin: %w", err)
			}
			return string(data), "stdin", nil
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read narration file: %w", err)
		}
		return string(data), args[0], nil
	}

	s, _, err := loadSession()
	if err != nil {
		return "", "", err
	}
	if s.Script == nil {
		return "", "", fmt.Errorf(
			"no narration file given and the session has no script: run 'cuegen script' first",
		)
	}
	return s.Script.Narration(), "session script", nil
}

// session/config timing with explicit flag overrides on top
func captionTiming(cmd *cobra.Command) caption.Config {
	timing := cfg.CaptionConfig()

	if cmd.Flags().Changed("chars-per-second") {
		timing.CharsPerSecond, _ = cmd.Flags().GetFloat64("chars-per-second")
	}
	if cmd.Flags().Changed("min-duration") {
		v, _ := cmd.Flags().GetFloat64("min-duration")
		timing.MinDuration = time.Duration(v * float64(time.Second))
	}
	if cmd.Flags().Changed("max-duration") {
		v, _ := cmd.Flags().GetFloat64("max-duration")
		timing.MaxDuration = time.Duration(v * float64(time.Second))
	}
	if cmd.Flags().Changed("gap") {
		v, _ := cmd.Flags().GetFloat64("gap")
		timing.Gap = time.Duration(v * float64(time.Second))
	}
	if cmd.Flags().Changed("max-fragment-len") {
		timing.MaxFragmentLen, _ = cmd.Flags().GetInt("max-fragment-len")
	}
	return timing
}

func defaultCaptionOutput(args []string, format caption.Format) string {
	if len(args) == 1 && args[0] != "-" {
		baseName := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		return baseName + caption.GetExtensionForFormat(format)
	}
	return "captions" + caption.GetExtensionForFormat(format)
}
