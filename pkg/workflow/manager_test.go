package workflow

import (
	"context"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shouni/go-decal-kit/pkg/config"
	"google.golang.org/genai"
)

type recordedCall struct {
	model  string
	config *genai.GenerateContentConfig
}

// fakeModels は画像と音声の両方に応答する genai Models の代役なのだ。
type fakeModels struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, _ []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{model: model, config: cfg})
	f.mu.Unlock()

	blob := &genai.Blob{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	if slices.Contains(cfg.ResponseModalities, "AUDIO") {
		blob = &genai.Blob{MIMEType: "audio/L16;codec=pcm;rate=24000", Data: make([]byte, 32)}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{InlineData: blob}}},
		}},
	}, nil
}

func (f *fakeModels) callFor(modality string) (recordedCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if slices.Contains(c.config.ResponseModalities, modality) {
			return c, true
		}
	}
	return recordedCall{}, false
}

// fakeTextClient はタイトルとストーリーの両方に使われるテキストクライアントの代役なのだ。
type fakeTextClient struct {
	mu     sync.Mutex
	models []string
}

func (f *fakeTextClient) GenerateText(_ context.Context, prompt, model string) (string, error) {
	f.mu.Lock()
	f.models = append(f.models, model)
	f.mu.Unlock()

	if strings.Contains(prompt, `"title"`) {
		return `{"title": "Ember Crown"}`, nil
	}
	return "A dragon guards the last ember of the world.", nil
}

func testConfig() config.Config {
	return config.Config{
		GeminiModel:    "text-model",
		ImageModel:     "image-model",
		SpeechModel:    "tts-model",
		VoiceName:      "Kore",
		RateInterval:   time.Hour,
		RateBurst:      4,
		RequestTimeout: time.Second,
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Run("APIキーもクライアントも無い場合はエラーなのだ", func(t *testing.T) {
		_, err := New(context.Background(), Args{Config: config.Config{}})
		if err == nil {
			t.Fatal("エラーが期待されたのに nil なのだ")
		}
	})
}

func TestManager_BuildUISpecRunner_Wiring(t *testing.T) {
	models := &fakeModels{}
	text := &fakeTextClient{}

	m, err := New(context.Background(), Args{Config: testConfig(), TextClient: text, Models: models})
	if err != nil {
		t.Fatalf("予期しないエラーなのだ: %v", err)
	}
	r, err := m.BuildUISpecRunner()
	if err != nil {
		t.Fatalf("Runner の構築に失敗したのだ: %v", err)
	}

	spec, err := r.Run(context.Background(), "a dragon breathing fire")
	if err != nil {
		t.Fatalf("予期しないエラーなのだ: %v", err)
	}
	if !spec.IsComplete() || spec.Title != "Ember Crown" {
		t.Fatalf("complete な結果になっていないのだ: %+v", spec)
	}

	image, ok := models.callFor("IMAGE")
	if !ok || image.model != "image-model" {
		t.Errorf("画像は ImageModel で生成されるはずなのだ: %+v", image)
	}

	speech, ok := models.callFor("AUDIO")
	if !ok || speech.model != "tts-model" {
		t.Fatalf("ナレーションは SpeechModel で生成されるはずなのだ: %+v", speech)
	}
	if voice := speech.config.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName; voice != "Kore" {
		t.Errorf("ボイス名が違うのだ: %q", voice)
	}

	if len(text.models) != 2 {
		t.Fatalf("テキスト生成はタイトルとストーリーの2回のはずなのだ: %v", text.models)
	}
	for _, model := range text.models {
		if model != "text-model" {
			t.Errorf("テキストは GeminiModel で生成されるはずなのだ: %v", text.models)
		}
	}
}

func TestManager_SharedLimiter(t *testing.T) {
	// 1回の生成で画像・タイトル・ストーリー・ナレーションの4回リミッターを待つのだ
	tests := []struct {
		name    string
		burst   int
		wantErr bool
	}{
		{"バースト4なら1回の生成が通るのだ", 4, false},
		{"共有リミッターならバースト3では足りないのだ", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.RateBurst = tt.burst

			m, err := New(context.Background(), Args{Config: cfg, TextClient: &fakeTextClient{}, Models: &fakeModels{}})
			if err != nil {
				t.Fatalf("予期しないエラーなのだ: %v", err)
			}
			r, err := m.BuildUISpecRunner()
			if err != nil {
				t.Fatalf("Runner の構築に失敗したのだ: %v", err)
			}

			_, err = r.Run(context.Background(), "a dragon")
			if (err != nil) != tt.wantErr {
				t.Errorf("エラー有無: 期待値 %v, 実際のエラー %v", tt.wantErr, err)
			}
		})
	}
}
