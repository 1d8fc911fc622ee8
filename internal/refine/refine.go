package refine

import (
	"context"
	"fmt"

	"cuegen/internal/content"
)

// scores a script
type Analyzer interface {
	AnalyzeScript(ctx context.Context, script *content.Script) (content.Analysis, error)
}

// rewrites a script guided by analysis feedback
type Improver interface {
	ImproveScript(
		ctx context.Context,
		script *content.Script,
		analysis content.Analysis,
	) (*content.Script, error)
}

type Options struct {
	TargetScore float64 // overall score that stops the loop
	MaxAttempts int     // cap on improvement rounds
}

func DefaultOptions() Options {
	return Options{
		TargetScore: 80,
		MaxAttempts: 5,
	}
}

// one analyze/improve round
type Attempt struct {
	Round    int
	Analysis content.Analysis
}

// outcome of a refinement run
type Result struct {
	Script    *content.Script
	Analysis  content.Analysis
	Attempts  int // improvement rounds performed
	MetTarget bool
	History   []Attempt
}

// Refine scores the script and, while it stays under the target, asks the
// improver for a rewrite and scores again, up to MaxAttempts rounds. The
// loop itself performs no I/O beyond the analyzer and improver calls;
// callers decide how to surface intermediate progress from History.
func Refine(
	ctx context.Context,
	script *content.Script,
	opts Options,
	analyzer Analyzer,
	improver Improver,
) (*Result, error) {
	if script == nil {
		return nil, fmt.Errorf("script is required")
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultOptions().MaxAttempts
	}

	analysis, err := analyzer.AnalyzeScript(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("initial analysis failed: %w", err)
	}

	result := &Result{
		Script:   script,
		Analysis: analysis,
		History:  []Attempt{{Round: 0, Analysis: analysis}},
	}

	for result.Analysis.Overall < opts.TargetScore &&
		result.Attempts < opts.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		improved, err := improver.ImproveScript(ctx, result.Script, result.Analysis)
		if err != nil {
			return nil, fmt.Errorf(
				"improvement round %d failed: %w",
				result.Attempts+1,
				err,
			)
		}

		analysis, err = analyzer.AnalyzeScript(ctx, improved)
		if err != nil {
			return nil, fmt.Errorf(
				"analysis after round %d failed: %w",
				result.Attempts+1,
				err,
			)
		}

		result.Attempts++
		result.Script = improved
		result.Analysis = analysis
		result.History = append(result.History, Attempt{
			Round:    result.Attempts,
			Analysis: analysis,
		})
	}

	result.MetTarget = result.Analysis.Overall >= opts.TargetScore
	return result, nil
}
