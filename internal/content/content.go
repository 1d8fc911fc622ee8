package content

import (
	"context"
	"fmt"
	"strings"

	"cuegen/internal/generate"
	"cuegen/internal/logging"
	"cuegen/internal/pacing"
)

// suggested video topic
type Topic struct {
	Title     string `json:"title"`
	Angle     string `json:"angle"`
	Rationale string `json:"rationale"`
}

// one scene of a generated script
type Scene struct {
	Narration   string `json:"narration"`
	Mood        string `json:"mood"`
	ImagePrompt string `json:"image_prompt,omitempty"`
}

// generated narration script
type Script struct {
	Title  string  `json:"title"`
	Hook   string  `json:"hook"`
	Scenes []Scene `json:"scenes"`
}

// Narration returns the full spoken text of the script, hook first.
func (s *Script) Narration() string {
	parts := make([]string, 0, len(s.Scenes)+1)
	if s.Hook != "" {
		parts = append(parts, s.Hook)
	}
	for _, scene := range s.Scenes {
		if scene.Narration != "" {
			parts = append(parts, scene.Narration)
		}
	}
	return strings.Join(parts, " ")
}

// producer-style quality scores for a script, each 0-100
type Analysis struct {
	Hook      int      `json:"hook"`
	Retention int      `json:"retention"`
	Clarity   int      `json:"clarity"`
	Emotion   int      `json:"emotion"`
	Overall   float64  `json:"overall"`
	Feedback  []string `json:"feedback"`
}

// image generation prompt for one scene
type ImagePrompt struct {
	Scene  int    `json:"scene"`
	Prompt string `json:"prompt"`
}

// parameters for script generation
type Brief struct {
	Topic    string
	Audience string
	Tone     string
	Sections int
}

// Service runs content operations against a generative model, pacing
// and retrying each call.
type Service struct {
	gen     generate.Generator
	limiter *pacing.Limiter
	policy  pacing.Policy
	log     *logging.Logger
}

func NewService(
	gen generate.Generator,
	limiter *pacing.Limiter,
	policy pacing.Policy,
	log *logging.Logger,
) *Service {
	if log == nil {
		log = logging.NewNop()
	}
	return &Service{
		gen:     gen,
		limiter: limiter,
		policy:  policy,
		log:     log,
	}
}

func (s *Service) call(
	ctx context.Context,
	req generate.Request,
) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var out string
	err := pacing.Retry(ctx, s.policy, func() error {
		text, err := s.gen.Generate(ctx, req)
		if err != nil {
			s.log.Warnw("Generation attempt failed", "error", err)
			return err
		}
		out = text
		return nil
	})
	return out, err
}

func (s *Service) callJSON(
	ctx context.Context,
	req generate.Request,
	out any,
) error {
	text, err := s.call(ctx, req)
	if err != nil {
		return err
	}
	return generate.UnmarshalResponse(text, out)
}

// SuggestTopics asks the model for n video topic ideas within a niche.
func (s *Service) SuggestTopics(
	ctx context.Context,
	niche string,
	n int,
) ([]Topic, error) {
	if n <= 0 {
		n = 5
	}

	var topics []Topic
	err := s.callJSON(ctx, generate.Request{
		System: topicsSystem,
		Prompt: topicsPrompt(niche, n),
	}, &topics)
	if err != nil {
		return nil, fmt.Errorf("topic suggestion failed: %w", err)
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("model returned no topics")
	}
	return topics, nil
}

// GenerateScript produces a narration script for the brief.
func (s *Service) GenerateScript(
	ctx context.Context,
	brief Brief,
) (*Script, error) {
	if brief.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	var script Script
	err := s.callJSON(ctx, generate.Request{
		System: scriptSystem,
		Prompt: scriptPrompt(brief),
	}, &script)
	if err != nil {
		return nil, fmt.Errorf("script generation failed: %w", err)
	}
	if len(script.Scenes) == 0 {
		return nil, fmt.Errorf("model returned a script with no scenes")
	}
	return &script, nil
}

// AnalyzeScript scores a script the way a broadcast producer would.
func (s *Service) AnalyzeScript(
	ctx context.Context,
	script *Script,
) (Analysis, error) {
	var analysis Analysis
	err := s.callJSON(ctx, generate.Request{
		System: analysisSystem,
		Prompt: analysisPrompt(script),
	}, &analysis)
	if err != nil {
		return Analysis{}, fmt.Errorf("script analysis failed: %w", err)
	}
	if analysis.Overall == 0 {
		analysis.Overall = float64(
			analysis.Hook+analysis.Retention+analysis.Clarity+analysis.Emotion,
		) / 4
	}
	return analysis, nil
}

// ImproveScript rewrites a script guided by analysis feedback.
func (s *Service) ImproveScript(
	ctx context.Context,
	script *Script,
	analysis Analysis,
) (*Script, error) {
	var improved Script
	err := s.callJSON(ctx, generate.Request{
		System: scriptSystem,
		Prompt: improvePrompt(script, analysis),
	}, &improved)
	if err != nil {
		return nil, fmt.Errorf("script improvement failed: %w", err)
	}
	if len(improved.Scenes) == 0 {
		return nil, fmt.Errorf("model returned an improved script with no scenes")
	}
	return &improved, nil
}

// ImagePrompts produces an image generation prompt for each scene.
func (s *Service) ImagePrompts(
	ctx context.Context,
	script *Script,
) ([]ImagePrompt, error) {
	var prompts []ImagePrompt
	err := s.callJSON(ctx, generate.Request{
		System: imagesSystem,
		Prompt: imagesPrompt(script),
	}, &prompts)
	if err != nil {
		return nil, fmt.Errorf("image prompt generation failed: %w", err)
	}
	return prompts, nil
}

// Titles suggests n candidate video titles for a script.
func (s *Service) Titles(
	ctx context.Context,
	script *Script,
	n int,
) ([]string, error) {
	if n <= 0 {
		n = 10
	}

	var titles []string
	err := s.callJSON(ctx, generate.Request{
		System: titlesSystem,
		Prompt: titlesPrompt(script, n),
	}, &titles)
	if err != nil {
		return nil, fmt.Errorf("title generation failed: %w", err)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("model returned no titles")
	}
	return titles, nil
}
