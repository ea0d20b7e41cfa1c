package workflow

import (
	"github.com/shouni/go-decal-kit/pkg/adapters"
	"github.com/shouni/go-decal-kit/pkg/config"
	"github.com/shouni/go-decal-kit/pkg/prompts"
)

// Args は Manager の初期化引数です。
// クライアントやプロンプトビルダーが nil の場合は Config を基に新規作成します。
type Args struct {
	Config        config.Config
	TextClient    adapters.TextGenerator    // タイトル・ストーリー用のテキストクライアント
	Models        adapters.ContentGenerator // 画像・音声用の genai Models
	PromptBuilder prompts.PromptBuilder
}
