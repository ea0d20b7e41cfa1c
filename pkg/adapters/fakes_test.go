package adapters

import (
	"context"
	"sync"

	"github.com/shouni/go-decal-kit/pkg/prompts"
	"google.golang.org/genai"
)

type fakeContentGenerator struct {
	mu     sync.Mutex
	resp   *genai.GenerateContentResponse
	err    error
	calls  int
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeContentGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && contents[0] != nil && len(contents[0].Parts) > 0 && contents[0].Parts[0] != nil {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

type fakeText struct {
	reply  string
	err    error
	calls  int
	prompt string
	model  string
}

func (f *fakeText) GenerateText(_ context.Context, prompt, model string) (string, error) {
	f.calls++
	f.prompt = prompt
	f.model = model
	return f.reply, f.err
}

func mustPromptBuilder(t interface{ Fatalf(string, ...any) }) prompts.PromptBuilder {
	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("プロンプトビルダーの作成に失敗したのだ: %v", err)
	}
	return pb
}

func inlineResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here you go"},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			}},
			FinishReason: genai.FinishReason("STOP"),
		}},
	}
}
