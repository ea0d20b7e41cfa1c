package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel  = "gemini-3-flash-preview"
	DefaultImageModel   = "gemini-2.5-flash-image"
	DefaultSpeechModel  = "gemini-2.5-flash-preview-tts"
	DefaultVoiceName    = "Algenib"
	DefaultTemperature  = float32(0.7)
	DefaultRateInterval = 1 * time.Second
	DefaultRateBurst    = 3
	// 画像・ストーリー・音声の3段を合計した上限
	DefaultRequestTimeout = 3 * time.Minute
)

// Config は Go Decal Kit の生成処理を動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiAPIKey string
	GeminiModel  string // タイトル・ストーリー用
	ImageModel   string
	SpeechModel  string // ナレーション (TTS) 用
	VoiceName    string

	// --- Generation Settings ---
	Temperature  *float32 // nil ならデフォルト。0 も有効な値なのだ
	RateInterval time.Duration
	RateBurst    int

	// --- Timeout ---
	RequestTimeout time.Duration
}

// NewConfig はデフォルト値で初期化された Config を作成し、API キーをセットして返します。
func NewConfig(apiKey string) Config {
	cfg := DefaultConfig()
	cfg.GeminiAPIKey = apiKey
	return cfg
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:    DefaultGeminiModel,
		ImageModel:     DefaultImageModel,
		SpeechModel:    DefaultSpeechModel,
		VoiceName:      DefaultVoiceName,
		Temperature:    Float32(DefaultTemperature),
		RateInterval:   DefaultRateInterval,
		RateBurst:      DefaultRateBurst,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// WithDefaults は、未設定（ゼロ値）の項目をデフォルト値で補完した Config を返します。
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.GeminiModel == "" {
		c.GeminiModel = def.GeminiModel
	}
	if c.ImageModel == "" {
		c.ImageModel = def.ImageModel
	}
	if c.SpeechModel == "" {
		c.SpeechModel = def.SpeechModel
	}
	if c.VoiceName == "" {
		c.VoiceName = def.VoiceName
	}
	if c.Temperature == nil {
		c.Temperature = def.Temperature
	}
	if c.RateInterval <= 0 {
		c.RateInterval = def.RateInterval
	}
	if c.RateBurst <= 0 {
		c.RateBurst = def.RateBurst
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	return c
}

// Float32 は float32 の値へのポインタを返します。
func Float32(v float32) *float32 {
	return &v
}
