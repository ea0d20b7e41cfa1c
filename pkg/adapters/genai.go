package adapters

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ContentGenerator は genai の Models.GenerateContent と同じ形の呼び出し契約です。
// *genai.Models がそのまま満たすのだ。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGenAIClient は Gemini API 向けの genai クライアントを初期化します。
func NewGenAIClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai クライアントの初期化に失敗しました: %w", err)
	}
	return client, nil
}

// blockingFinishReasons は、安全性やポリシーにより生成が止められたことを示す終了理由です。
var blockingFinishReasons = map[string]string{
	"SAFETY":                   "The request was blocked by the safety filter.",
	"PROHIBITED_CONTENT":       "The request contains prohibited content.",
	"IMAGE_SAFETY":             "The generated image was blocked by the safety filter.",
	"IMAGE_PROHIBITED_CONTENT": "The generated image contains prohibited content.",
	"BLOCKLIST":                "The request contains blocked terms.",
	"SPII":                     "The request may contain sensitive personal information.",
}

// blockReason は、応答がブロックされていれば理由を返します。
func blockReason(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil {
		return "", false
	}

	if fb := resp.PromptFeedback; fb != nil {
		code := string(fb.BlockReason)
		if code != "" && code != "BLOCKED_REASON_UNSPECIFIED" {
			if fb.BlockReasonMessage != "" {
				return fb.BlockReasonMessage, true
			}
			return fmt.Sprintf("The prompt was blocked (%s).", code), true
		}
	}

	for _, c := range resp.Candidates {
		if c == nil {
			continue
		}
		desc, ok := blockingFinishReasons[string(c.FinishReason)]
		if !ok {
			continue
		}
		if c.FinishMessage != "" {
			return c.FinishMessage, true
		}
		return desc, true
	}
	return "", false
}

// firstInlineData は、指定 MIME プレフィックスに一致する最初のインラインデータを返します。
func firstInlineData(resp *genai.GenerateContentResponse, mimePrefix string) *genai.Blob {
	if resp == nil {
		return nil
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if p == nil || p.InlineData == nil || len(p.InlineData.Data) == 0 {
				continue
			}
			if strings.HasPrefix(strings.ToLower(p.InlineData.MIMEType), mimePrefix) {
				return p.InlineData
			}
		}
	}
	return nil
}

// waitLimiter は、リミッターが設定されていれば待機します。
func waitLimiter(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("リミッター待機中にエラーが発生しました: %w", err)
	}
	return nil
}
