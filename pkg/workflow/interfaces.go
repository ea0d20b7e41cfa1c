package workflow

import (
	"context"

	"github.com/shouni/go-decal-kit/pkg/domain"
	"github.com/shouni/go-decal-kit/pkg/runner"
)

// Workflow は、UI 仕様生成の各工程を担当する Runner を構築するためのインターフェースを定義します。
type Workflow interface {
	BuildUISpecRunner() (UISpecRunner, error)
}

// UISpecRunner は、プロンプトから UISpec を生成し、必要に応じて成果物を保存する責務を持ちます。
type UISpecRunner interface {
	Run(ctx context.Context, prompt string) (*domain.UISpec, error)
	RunAndSave(ctx context.Context, prompt, outputDir string) (*runner.SaveResult, error)
}

var (
	_ Workflow     = (*Manager)(nil)
	_ UISpecRunner = (*runner.UISpecRunner)(nil)
)
