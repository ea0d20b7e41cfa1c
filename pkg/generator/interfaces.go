package generator

import (
	"context"

	"github.com/shouni/go-decal-kit/pkg/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ImageGenerator は、プロンプトから画像を生成し、セーフティ判定の結果も返す責務を持ちます。
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*domain.ImageResult, error)
}

// TitleGenerator は、プロンプトから短いタイトルを生成する責務を持ちます。
type TitleGenerator interface {
	GenerateTitle(ctx context.Context, prompt string) (*domain.TitleResult, error)
}

// StoryGenerator は、プロンプトからストーリー本文とナレーション音声を生成する責務を持ちます。
type StoryGenerator interface {
	GenerateStory(ctx context.Context, prompt string) (*domain.StoryResult, error)
}
