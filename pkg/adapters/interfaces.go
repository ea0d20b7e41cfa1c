package adapters

import (
	"github.com/shouni/go-decal-kit/pkg/generator"

	"google.golang.org/genai"
)

// 各アダプタが生成器の契約を満たしていることをコンパイル時に確認するのだ
var (
	_ generator.ImageGenerator = (*GeminiImageAdapter)(nil)
	_ generator.TitleGenerator = (*GeminiTitleAdapter)(nil)
	_ generator.StoryGenerator = (*GeminiStoryAdapter)(nil)

	_ ContentGenerator = (*genai.Models)(nil)
	_ TextGenerator    = (*GeminiTextClient)(nil)
)
