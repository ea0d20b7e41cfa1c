package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-decal-kit/pkg/domain"
	"github.com/shouni/go-decal-kit/pkg/prompts"

	"golang.org/x/time/rate"
)

// GeminiTitleAdapter は Gemini のテキストモデルで作品タイトルを生成します。
type GeminiTitleAdapter struct {
	text          TextGenerator
	promptBuilder prompts.PromptBuilder
	model         string
	limiter       *rate.Limiter
}

// NewGeminiTitleAdapter は依存関係を注入して GeminiTitleAdapter を初期化します。
func NewGeminiTitleAdapter(text TextGenerator, pb prompts.PromptBuilder, model string, limiter *rate.Limiter) *GeminiTitleAdapter {
	return &GeminiTitleAdapter{
		text:          text,
		promptBuilder: pb,
		model:         model,
		limiter:       limiter,
	}
}

// GenerateTitle はタイトルを生成します。タイトルが読み取れなかった場合は空の結果を返します。
func (a *GeminiTitleAdapter) GenerateTitle(ctx context.Context, prompt string) (*domain.TitleResult, error) {
	titlePrompt, err := a.promptBuilder.Build(prompts.ModeTitle, prompts.TemplateData{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	if err := waitLimiter(ctx, a.limiter); err != nil {
		return nil, err
	}

	slog.Debug("Calling Gemini API for title", "model", a.model)
	raw, err := a.text.GenerateText(ctx, titlePrompt, a.model)
	if err != nil {
		return nil, fmt.Errorf("タイトルの生成に失敗しました (model: %s): %w", a.model, err)
	}

	title := parseTitle(raw)
	if title == "" {
		slog.Warn("Could not read a title from the AI response", "response", truncateString(raw, 200))
	}
	return &domain.TitleResult{Title: title}, nil
}
