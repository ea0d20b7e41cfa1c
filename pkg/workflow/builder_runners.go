package workflow

import (
	"github.com/shouni/go-decal-kit/pkg/adapters"
	"github.com/shouni/go-decal-kit/pkg/generator"
	"github.com/shouni/go-decal-kit/pkg/runner"
)

// BuildUISpecRunner は、画像・タイトル・ストーリーを統合した UI 仕様生成を担当する Runner を作成します。
func (m *Manager) BuildUISpecRunner() (UISpecRunner, error) {
	gen := m.buildUISpecGenerator()
	return runner.NewUISpecRunner(m.cfg, gen), nil
}

// buildUISpecGenerator は各アダプターを組み立てて UISpecGenerator を作成します。
func (m *Manager) buildUISpecGenerator() *generator.UISpecGenerator {
	image := adapters.NewGeminiImageAdapter(m.models, m.promptBuilder, m.cfg.ImageModel, m.limiter)
	title := adapters.NewGeminiTitleAdapter(m.text, m.promptBuilder, m.cfg.GeminiModel, m.limiter)
	story := adapters.NewGeminiStoryAdapter(adapters.StoryAdapterArgs{
		Text:          m.text,
		Speech:        m.models,
		PromptBuilder: m.promptBuilder,
		TextModel:     m.cfg.GeminiModel,
		SpeechModel:   m.cfg.SpeechModel,
		VoiceName:     m.cfg.VoiceName,
		Limiter:       m.limiter,
	})

	return generator.NewUISpecGenerator(image, title, story)
}
