package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-decal-kit/internal/config"
	"github.com/shouni/go-decal-kit/pkg/workflow"

	"github.com/spf13/cobra"
)

// generateCmd は、プロンプトから UI 仕様を生成して保存するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "プロンプトからタイトル・ストーリー・画像・ナレーションを生成しますなのだ。",
	Long: `プロンプトを基に画像を生成し、安全に生成できた場合はタイトルとストーリー（音声付き）を並行して生成するのだ。
結果は出力ディレクトリ配下の実行ごとのフォルダに ui_spec.json と画像・音声ファイルとして保存されるのだよ。`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: requireAPIKey,
	RunE:    generateCommand,
}

func init() {
	generateCmd.Flags().StringVarP(&opts.Prompt, "prompt", "p", "", "生成に使うプロンプトなのだ（引数でも指定できるのだ）。")
	generateCmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "成果物を保存するディレクトリなのだ。")
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	prompt := opts.Prompt
	if len(args) > 0 {
		prompt = args[0]
	}

	cfg := config.LoadConfig()
	cfg.Options = opts
	kitCfg := cfg.KitConfig()

	slog.Info("UI 仕様生成を開始するのだ！",
		"text_model", kitCfg.GeminiModel,
		"image_model", kitCfg.ImageModel,
		"speech_model", kitCfg.SpeechModel,
		"output", opts.OutputDir)

	manager, err := workflow.New(ctx, workflow.Args{Config: kitCfg})
	if err != nil {
		return fmt.Errorf("ワークフローの初期化に失敗したのだ: %w", err)
	}
	runner, err := manager.BuildUISpecRunner()
	if err != nil {
		return fmt.Errorf("Runner の構築に失敗したのだ: %w", err)
	}

	result, err := runner.RunAndSave(ctx, prompt, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("UI 仕様の生成中にエラーが発生したのだ: %w", err)
	}

	if result.Spec.Blocked {
		slog.Warn("画像生成がブロックされたのだ", "reason", result.Spec.BlockedReason)
	}

	out, err := json.MarshalIndent(result.Spec, "", "  ")
	if err != nil {
		return fmt.Errorf("結果のエンコードに失敗したのだ: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	slog.Info("すべての生成工程が完了したのだ！", "dir", result.Dir)
	return nil
}
