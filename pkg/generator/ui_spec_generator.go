package generator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shouni/go-decal-kit/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// UISpecGenerator は、画像・タイトル・ストーリーの各生成サービスを束ねて UISpec を組み立てます。
// 画像生成を先に完了させ、ブロックされなかった場合のみタイトルとストーリーを並列で生成します。
type UISpecGenerator struct {
	image ImageGenerator
	title TitleGenerator
	story StoryGenerator
}

// NewUISpecGenerator は UISpecGenerator の新しいインスタンスを初期化します。
func NewUISpecGenerator(image ImageGenerator, title TitleGenerator, story StoryGenerator) *UISpecGenerator {
	return &UISpecGenerator{
		image: image,
		title: title,
		story: story,
	}
}

// Generate は、プロンプトから UISpec を生成します。
// ブロックは正常な戻り値として扱い、各サービスのエラーはそのまま呼び出し元へ返します。
func (g *UISpecGenerator) Generate(ctx context.Context, prompt string) (*domain.UISpec, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrEmptyPrompt
	}

	logger := slog.With("prompt_length", len(prompt))
	startTime := time.Now()

	imageResult, err := g.image.GenerateImage(ctx, prompt)
	if err != nil {
		logger.Error("Image generation failed", "error", err)
		return nil, err
	}

	if imageResult == nil || imageResult.Blocked || !imageResult.HasMedia() {
		var reason string
		if imageResult != nil {
			reason = imageResult.Reason
		}
		logger.Warn("Prompt was blocked or produced no image", "reason", reason)
		return domain.NewBlockedUISpec(reason), nil
	}

	logger.Info("Image generated, starting title and story generation",
		"duration", time.Since(startTime).Round(time.Millisecond))

	var (
		titleResult *domain.TitleResult
		storyResult *domain.StoryResult
	)
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		res, err := g.title.GenerateTitle(egCtx, prompt)
		if err != nil {
			return err
		}
		titleResult = res
		return nil
	})
	eg.Go(func() error {
		res, err := g.story.GenerateStory(egCtx, prompt)
		if err != nil {
			return err
		}
		storyResult = res
		return nil
	})

	if err := eg.Wait(); err != nil {
		logger.Error("Title or story generation failed", "error", err)
		return nil, err
	}

	if titleResult == nil || titleResult.Title == "" {
		return nil, domain.ErrTitleGenerationFailed
	}
	if storyResult == nil || storyResult.Story == "" || storyResult.Audio == "" {
		return nil, domain.ErrStoryGenerationFailed
	}

	logger.Info("UI spec generation completed",
		"title", titleResult.Title,
		"duration", time.Since(startTime).Round(time.Millisecond))

	return domain.NewCompleteUISpec(
		titleResult.Title,
		storyResult.Story,
		imageResult.Media,
		storyResult.Audio,
	), nil
}
