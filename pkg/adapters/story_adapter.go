package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-decal-kit/pkg/domain"
	"github.com/shouni/go-decal-kit/pkg/media"
	"github.com/shouni/go-decal-kit/pkg/prompts"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiStoryAdapter はストーリー本文を生成し、TTS モデルでナレーション音声に変換します。
type GeminiStoryAdapter struct {
	text          TextGenerator
	speech        ContentGenerator
	promptBuilder prompts.PromptBuilder
	textModel     string
	speechModel   string
	voiceName     string
	limiter       *rate.Limiter
}

// StoryAdapterArgs は GeminiStoryAdapter の初期化引数です。
type StoryAdapterArgs struct {
	Text          TextGenerator
	Speech        ContentGenerator
	PromptBuilder prompts.PromptBuilder
	TextModel     string
	SpeechModel   string
	VoiceName     string
	Limiter       *rate.Limiter
}

// NewGeminiStoryAdapter は依存関係を注入して GeminiStoryAdapter を初期化します。
func NewGeminiStoryAdapter(args StoryAdapterArgs) *GeminiStoryAdapter {
	return &GeminiStoryAdapter{
		text:          args.Text,
		speech:        args.Speech,
		promptBuilder: args.PromptBuilder,
		textModel:     args.TextModel,
		speechModel:   args.SpeechModel,
		voiceName:     args.VoiceName,
		limiter:       args.Limiter,
	}
}

// GenerateStory はストーリーとナレーション音声 (WAV の data URI) を生成します。
// 本文が得られなかった場合は音声合成を行わずに空の結果を返すのだ。
func (a *GeminiStoryAdapter) GenerateStory(ctx context.Context, prompt string) (*domain.StoryResult, error) {
	storyPrompt, err := a.promptBuilder.Build(prompts.ModeStory, prompts.TemplateData{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	if err := waitLimiter(ctx, a.limiter); err != nil {
		return nil, err
	}

	slog.Debug("Calling Gemini API for story", "model", a.textModel)
	raw, err := a.text.GenerateText(ctx, storyPrompt, a.textModel)
	if err != nil {
		return nil, fmt.Errorf("ストーリーの生成に失敗しました (model: %s): %w", a.textModel, err)
	}

	story := cleanStory(raw)
	if story == "" {
		slog.Warn("AI returned an empty story")
		return &domain.StoryResult{}, nil
	}

	audio, err := a.narrate(ctx, story)
	if err != nil {
		return nil, err
	}
	return &domain.StoryResult{Story: story, Audio: audio}, nil
}

// narrate はストーリーを読み上げ、音声の data URI を返します。
func (a *GeminiStoryAdapter) narrate(ctx context.Context, story string) (string, error) {
	if err := waitLimiter(ctx, a.limiter); err != nil {
		return "", err
	}

	startTime := time.Now()
	resp, err := a.speech.GenerateContent(ctx, a.speechModel, genai.Text(story), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: a.voiceName},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ナレーション音声の生成に失敗しました (model: %s): %w", a.speechModel, err)
	}

	audio := audioDataURI(resp)
	slog.Info("Narration generated",
		"voice", a.voiceName,
		"has_audio", audio != "",
		"duration", time.Since(startTime).Round(time.Millisecond))
	return audio, nil
}

// audioDataURI は TTS の応答から音声を取り出し、PCM の場合は WAV に包んで data URI にします。
func audioDataURI(resp *genai.GenerateContentResponse) string {
	blob := firstInlineData(resp, "audio/")
	if blob == nil {
		return ""
	}
	if media.IsPCM(blob.MIMEType) {
		wav := media.PCMToWAV(blob.Data, media.ParsePCMRate(blob.MIMEType))
		return media.EncodeDataURI(media.WAVMimeType, wav)
	}
	return media.EncodeDataURI(blob.MIMEType, blob.Data)
}
