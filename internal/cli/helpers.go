package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cuegen/internal/content"
	"cuegen/internal/generate"
	"cuegen/internal/pacing"
	"cuegen/internal/session"
)

func resolveProvider(cmd *cobra.Command) (generate.Provider, error) {
	providerStr, _ := cmd.Flags().GetString("provider")
	if providerStr == "" {
		providerStr = cfg.Provider
	}

	switch provider := generate.Provider(strings.ToLower(providerStr)); provider {
	case generate.ProviderGemini, generate.ProviderOpenAI, generate.ProviderAnthropic:
		return provider, nil
	default:
		return "", fmt.Errorf(
			"unsupported provider %q: use gemini, openai, or anthropic",
			providerStr,
		)
	}
}

func resolveAPIKey(cmd *cobra.Command, provider generate.Provider) (string, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv(generate.EnvVarForProvider(provider))
	}
	if apiKey == "" {
		return "", fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			generate.EnvVarForProvider(provider),
		)
	}
	return apiKey, nil
}

// builds the content service shared by all generation commands
func newContentService(
	ctx context.Context,
	cmd *cobra.Command,
) (*content.Service, error) {
	provider, err := resolveProvider(cmd)
	if err != nil {
		return nil, err
	}

	apiKey, err := resolveAPIKey(cmd, provider)
	if err != nil {
		return nil, err
	}

	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = cfg.Model
	}

	gen, err := generate.Factory(ctx, provider, apiKey, generate.Options{
		Model: model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	limiter := pacing.NewLimiter(cfg.MinInterval())
	return content.NewService(gen, limiter, cfg.RetryPolicy(), logger), nil
}

func sessionFile() (string, error) {
	if sessionPath != "" {
		return sessionPath, nil
	}
	return session.DefaultPath()
}

func loadSession() (*session.Session, string, error) {
	path, err := sessionFile()
	if err != nil {
		return nil, "", err
	}
	s, err := session.Load(path)
	if err != nil {
		return nil, "", err
	}
	return s, path, nil
}
