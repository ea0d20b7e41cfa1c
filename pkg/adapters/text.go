package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shouni/go-gemini-client/gemini"
)

var (
	jsonBlockRegex  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")
	// 言語タグ (text, markdown など) ごとフェンスを外す
	storyFenceRegex = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*\\S)\\s*```")
)

// TextGenerator は、プロンプトとモデル名からテキストを生成する契約です。
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt, model string) (string, error)
}

// GeminiTextClient は go-gemini-client の GenerativeModel を TextGenerator として扱うラッパーです。
type GeminiTextClient struct {
	client gemini.GenerativeModel
}

// NewGeminiTextClient は gemini クライアントを初期化します。temperature が nil ならクライアント既定値なのだ。
func NewGeminiTextClient(ctx context.Context, apiKey string, temperature *float32) (*GeminiTextClient, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: temperature,
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return WrapGenerativeModel(aiClient), nil
}

// WrapGenerativeModel は既存の GenerativeModel を GeminiTextClient に包みます。
func WrapGenerativeModel(client gemini.GenerativeModel) *GeminiTextClient {
	return &GeminiTextClient{client: client}
}

// GenerateText は GenerateContent を呼び出し、応答テキストを返します。
func (c *GeminiTextClient) GenerateText(ctx context.Context, prompt, model string) (string, error) {
	resp, err := c.client.GenerateContent(ctx, prompt, model)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// extractJSON は、AIが返したテキストから JSON 部分を取り出します。
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	if matches := jsonBlockRegex.FindStringSubmatch(raw); len(matches) > 1 {
		return matches[1]
	}
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first != -1 && last > first {
		return raw[first : last+1]
	}
	return raw
}

// parseTitle は、{"title": "..."} 形式の応答からタイトルを取り出します。
// JSON として読めない場合は、最初の空でない行をタイトルとして扱います。
func parseTitle(raw string) string {
	var parsed struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err == nil {
		return cleanTitle(parsed.Title)
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		return cleanTitle(line)
	}
	return ""
}

func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'`“”「」*#")
	return strings.TrimSpace(s)
}

// cleanStory は、読み上げに不要なコードフェンスや前後の空白を取り除きます。
func cleanStory(raw string) string {
	s := strings.TrimSpace(raw)
	if matches := storyFenceRegex.FindStringSubmatch(s); len(matches) > 1 {
		s = matches[1]
	}
	return strings.TrimSpace(s)
}

// truncateString はログ用に s を maxLen バイト以内に切り詰めます。マルチバイト文字の途中では切らないのだ。
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
