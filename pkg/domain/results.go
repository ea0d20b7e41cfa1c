package domain

// ImageResult は画像生成サービスの応答です。
type ImageResult struct {
	Blocked bool   `json:"blocked"`
	Media   string `json:"media,omitempty"`  // data URI や URL などの画像参照
	Reason  string `json:"reason,omitempty"` // ブロック理由
}

// HasMedia は、画像参照が含まれているかを返します。
func (r *ImageResult) HasMedia() bool {
	return r != nil && r.Media != ""
}

// TitleResult はタイトル生成サービスの応答です。
type TitleResult struct {
	Title string `json:"title,omitempty"`
}

// StoryResult はストーリー生成とナレーション音声の応答です。
// Story と Audio は両方揃って初めて有効なのだ。
type StoryResult struct {
	Story string `json:"story"`
	Audio string `json:"audio"`
}
