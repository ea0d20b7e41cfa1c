package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-decal-kit/pkg/adapters"
	"github.com/shouni/go-decal-kit/pkg/config"
	"github.com/shouni/go-decal-kit/pkg/prompts"

	"golang.org/x/time/rate"
)

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
type Manager struct {
	cfg           config.Config
	text          adapters.TextGenerator
	models        adapters.ContentGenerator
	promptBuilder prompts.PromptBuilder
	limiter       *rate.Limiter
}

// New は、設定を基に新しい Manager を初期化します。
func New(ctx context.Context, args Args) (*Manager, error) {
	cfg := args.Config.WithDefaults()
	if cfg.GeminiAPIKey == "" && (args.TextClient == nil || args.Models == nil) {
		return nil, fmt.Errorf("GeminiAPIKey は必須です")
	}

	text, err := initializeTextClient(ctx, args.TextClient, cfg)
	if err != nil {
		return nil, err
	}

	models, err := initializeModels(ctx, args.Models, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	pb, err := initializePromptBuilder(args.PromptBuilder)
	if err != nil {
		return nil, err
	}

	slog.Debug("Workflow manager initialized",
		"text_model", cfg.GeminiModel,
		"image_model", cfg.ImageModel,
		"speech_model", cfg.SpeechModel,
		"rate_interval", cfg.RateInterval,
		"rate_burst", cfg.RateBurst,
	)

	return &Manager{
		cfg:           cfg,
		text:          text,
		models:        models,
		promptBuilder: pb,
		// 画像・タイトル・ストーリーの3アダプターで共有する
		limiter: rate.NewLimiter(rate.Every(cfg.RateInterval), cfg.RateBurst),
	}, nil
}

// initializeTextClient は gemini のテキストクライアントを初期化します。
func initializeTextClient(ctx context.Context, text adapters.TextGenerator, cfg config.Config) (adapters.TextGenerator, error) {
	if text != nil {
		return text, nil
	}
	client, err := adapters.NewGeminiTextClient(ctx, cfg.GeminiAPIKey, cfg.Temperature)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// initializeModels は画像・音声生成用の genai Models を初期化します。
func initializeModels(ctx context.Context, models adapters.ContentGenerator, apiKey string) (adapters.ContentGenerator, error) {
	if models != nil {
		return models, nil
	}

	client, err := adapters.NewGenAIClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

// initializePromptBuilder はプロンプトビルダーを初期化します。
// 引数として既存のビルダーが渡された場合はそれを返し、nil の場合は新規作成します。
func initializePromptBuilder(pb prompts.PromptBuilder) (prompts.PromptBuilder, error) {
	if pb != nil {
		return pb, nil
	}

	builder, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("TextPromptBuilder の新規作成に失敗しました: %w", err)
	}
	return builder, nil
}
