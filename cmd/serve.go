package cmd

import (
	"fmt"

	"github.com/shouni/go-decal-kit/internal/config"
	"github.com/shouni/go-decal-kit/internal/server"
	"github.com/shouni/go-decal-kit/pkg/workflow"

	"github.com/spf13/cobra"
)

// serveCmd は、UI 仕様生成とアイコン解決を HTTP API として提供するのだ。
var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "UI 仕様生成の HTTP サーバーを起動しますなのだ。",
	PreRunE: requireAPIKey,
	RunE:    serveCommand,
}

func init() {
	serveCmd.Flags().StringVar(&opts.Addr, "addr", "", "待ち受けアドレスなのだ（未指定なら LISTEN_ADDR）。")
}

func serveCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.LoadConfig()
	cfg.Options = opts
	addr := cfg.ListenAddr
	if opts.Addr != "" {
		addr = opts.Addr
	}

	manager, err := workflow.New(ctx, workflow.Args{Config: cfg.KitConfig()})
	if err != nil {
		return fmt.Errorf("ワークフローの初期化に失敗したのだ: %w", err)
	}
	runner, err := manager.BuildUISpecRunner()
	if err != nil {
		return fmt.Errorf("Runner の構築に失敗したのだ: %w", err)
	}

	router := server.NewRouter(server.RouterConfig{
		UISpecHandler: server.NewUISpecHandler(runner),
	})
	return server.Run(ctx, addr, router)
}
