package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shouni/go-decal-kit/pkg/asset"
	"github.com/shouni/go-decal-kit/pkg/config"
	"github.com/shouni/go-decal-kit/pkg/domain"
	"github.com/shouni/go-decal-kit/pkg/media"
)

// Generator は、プロンプトから UISpec を生成する契約です。
type Generator interface {
	Generate(ctx context.Context, prompt string) (*domain.UISpec, error)
}

// SaveResult は RunAndSave で保存された成果物のパスです。
type SaveResult struct {
	Spec      *domain.UISpec
	Dir       string
	SpecPath  string
	ImagePath string
	AudioPath string
}

// UISpecRunner は、生成処理にタイムアウトを適用し、必要に応じて成果物を保存します。
type UISpecRunner struct {
	cfg       config.Config
	generator Generator
}

// NewUISpecRunner は、依存関係を注入して初期化します。
func NewUISpecRunner(cfg config.Config, generator Generator) *UISpecRunner {
	return &UISpecRunner{
		cfg:       cfg,
		generator: generator,
	}
}

// Run は、プロンプトから UISpec を生成します。
func (r *UISpecRunner) Run(ctx context.Context, prompt string) (*domain.UISpec, error) {
	if r.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.RequestTimeout)
		defer cancel()
	}

	slog.InfoContext(ctx, "Starting UI spec generation")
	spec, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "UI spec generation failed", "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "UI spec generation finished", "blocked", spec.Blocked)
	return spec, nil
}

// RunAndSave は、UISpec を生成し、outputDir 配下の実行ごとのディレクトリに JSON と画像・音声を保存します。
// ブロックされた場合は JSON のみを保存します。保存に失敗した場合、実行ディレクトリは残しません。
func (r *UISpecRunner) RunAndSave(ctx context.Context, prompt, outputDir string) (*SaveResult, error) {
	spec, err := r.Run(ctx, prompt)
	if err != nil {
		return nil, err
	}

	dir := asset.NewRunDir(outputDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	result, err := saveArtifacts(dir, spec)
	if err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			slog.WarnContext(ctx, "Failed to remove partial output", "dir", dir, "error", rmErr)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "Saved UI spec artifacts",
		"dir", dir,
		"image", result.ImagePath,
		"audio", result.AudioPath,
	)
	return result, nil
}

// saveArtifacts は dir に画像・音声・JSON を書き出します。
func saveArtifacts(dir string, spec *domain.UISpec) (*SaveResult, error) {
	result := &SaveResult{Spec: spec, Dir: dir}

	var err error
	if !spec.Blocked {
		if result.ImagePath, err = saveMedia(dir, asset.ImageBaseName, spec.ImageURL); err != nil {
			return nil, fmt.Errorf("画像の保存に失敗しました: %w", err)
		}
		if result.AudioPath, err = saveMedia(dir, asset.AudioBaseName, spec.StoryAudio); err != nil {
			return nil, fmt.Errorf("ナレーション音声の保存に失敗しました: %w", err)
		}
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("UISpec のエンコードに失敗しました: %w", err)
	}
	result.SpecPath = filepath.Join(dir, asset.SpecFileName)
	if err := os.WriteFile(result.SpecPath, data, 0644); err != nil {
		return nil, fmt.Errorf("UISpec の保存に失敗しました (path: %s): %w", result.SpecPath, err)
	}
	return result, nil
}

// saveMedia は data URI をデコードしてファイルに保存します。data URI 以外の参照は保存せず空を返します。
func saveMedia(dir, baseName, ref string) (string, error) {
	if !media.IsDataURI(ref) {
		slog.Debug("Skipping non data URI media", "name", baseName)
		return "", nil
	}

	mimeType, data, err := media.DecodeDataURI(ref)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, asset.MediaFileName(baseName, mimeType))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
