package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"

	kitcfg "github.com/shouni/go-decal-kit/pkg/config"
)

// デフォルト値の定義なのだ
const (
	DefaultListenAddr = ":8080"
	DefaultOutputDir  = "output"
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey     string
	GeminiModel      string
	GeminiImageModel string
	SpeechModel      string
	VoiceName        string
	ListenAddr       string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:      envutil.GetEnv("GEMINI_MODEL", kitcfg.DefaultGeminiModel),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", kitcfg.DefaultImageModel),
		SpeechModel:      envutil.GetEnv("TTS_GEMINI_MODEL", kitcfg.DefaultSpeechModel),
		VoiceName:        envutil.GetEnv("TTS_VOICE", kitcfg.DefaultVoiceName),
		ListenAddr:       envutil.GetEnv("LISTEN_ADDR", DefaultListenAddr),
	}
}

// KitConfig は CLI フラグの上書きを反映した生成用設定を返すのだ。
func (c *Config) KitConfig() kitcfg.Config {
	cfg := kitcfg.NewConfig(c.GeminiAPIKey)
	cfg.GeminiModel = c.GeminiModel
	cfg.ImageModel = c.GeminiImageModel
	cfg.SpeechModel = c.SpeechModel
	cfg.VoiceName = c.VoiceName

	if c.Options.AIModel != "" {
		cfg.GeminiModel = c.Options.AIModel
	}
	if c.Options.ImageModel != "" {
		cfg.ImageModel = c.Options.ImageModel
	}
	if c.Options.Timeout > 0 {
		cfg.RequestTimeout = c.Options.Timeout
	}
	return cfg.WithDefaults()
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	Prompt    string // --prompt
	OutputDir string // --output-dir
	Addr      string // --addr

	// AI挙動設定
	AIModel    string // --model: テキスト生成用のGeminiモデル
	ImageModel string // --image-model: 画像生成用のGeminiモデル

	// 実行制御
	Timeout time.Duration // --timeout
	Verbose bool          // --verbose
}
