package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-decal-kit/pkg/domain"
	"github.com/shouni/go-decal-kit/pkg/media"
	"github.com/shouni/go-decal-kit/pkg/prompts"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiImageAdapter は Gemini の画像出力モデルを使ってデカール画像を生成します。
type GeminiImageAdapter struct {
	models        ContentGenerator
	promptBuilder prompts.PromptBuilder
	model         string
	limiter       *rate.Limiter
}

// NewGeminiImageAdapter は依存関係を注入して GeminiImageAdapter を初期化します。
func NewGeminiImageAdapter(models ContentGenerator, pb prompts.PromptBuilder, model string, limiter *rate.Limiter) *GeminiImageAdapter {
	return &GeminiImageAdapter{
		models:        models,
		promptBuilder: pb,
		model:         model,
		limiter:       limiter,
	}
}

// GenerateImage は画像を生成し、セーフティによるブロックがあれば Blocked として返します。
// API 呼び出し自体の失敗はエラーとして返します。
func (a *GeminiImageAdapter) GenerateImage(ctx context.Context, prompt string) (*domain.ImageResult, error) {
	imagePrompt, err := a.promptBuilder.Build(prompts.ModeImage, prompts.TemplateData{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	if err := waitLimiter(ctx, a.limiter); err != nil {
		return nil, err
	}

	slog.Info("Calling Gemini image model", "model", a.model)
	startTime := time.Now()

	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(imagePrompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("画像の生成に失敗しました (model: %s): %w", a.model, err)
	}

	result := imageResultFromResponse(resp)
	slog.Info("Gemini image model responded",
		"blocked", result.Blocked,
		"has_media", result.HasMedia(),
		"duration", time.Since(startTime).Round(time.Millisecond))
	return result, nil
}

// imageResultFromResponse は genai の応答を ImageResult に変換します。
func imageResultFromResponse(resp *genai.GenerateContentResponse) *domain.ImageResult {
	if reason, blocked := blockReason(resp); blocked {
		return &domain.ImageResult{Blocked: true, Reason: reason}
	}

	blob := firstInlineData(resp, "image/")
	if blob == nil {
		// 画像もブロック理由もない場合は、呼び出し側のフォールバックに任せるのだ
		return &domain.ImageResult{}
	}
	return &domain.ImageResult{Media: media.EncodeDataURI(blob.MIMEType, blob.Data)}
}
