package domain

// BlockedTitle は、ブロックされた結果に設定される固定タイトルです。
const BlockedTitle = "Blocked"

// DefaultBlockedReason は、画像生成側から理由が返されなかった場合に使用する説明文です。
const DefaultBlockedReason = "The AI failed to generate an image. This can happen with unusual prompts or if the content violates safety policies. Please try again with a different idea."

// UISpec は、デカールデザイン1件分の生成結果（タイトル、ストーリー、画像、ナレーション）を保持します。
// 返される形は「blocked」か「complete」のどちらか一方のみです。
type UISpec struct {
	Title         string `json:"title"`
	Story         string `json:"story"`
	ImageURL      string `json:"imageUrl"`
	StoryAudio    string `json:"storyAudio"`
	Blocked       bool   `json:"blocked"`
	BlockedReason string `json:"blockedReason,omitempty"`
}

// NewBlockedUISpec は、セーフティフィルタ等でブロックされた場合の結果を作成します。
// reason が空ならば DefaultBlockedReason を使うのだ。
func NewBlockedUISpec(reason string) *UISpec {
	if reason == "" {
		reason = DefaultBlockedReason
	}
	return &UISpec{
		Title:         BlockedTitle,
		Blocked:       true,
		BlockedReason: reason,
	}
}

// NewCompleteUISpec は、すべてのコンテンツが揃った結果を作成します。
func NewCompleteUISpec(title, story, imageURL, storyAudio string) *UISpec {
	return &UISpec{
		Title:      title,
		Story:      story,
		ImageURL:   imageURL,
		StoryAudio: storyAudio,
	}
}

// IsComplete は、4つのコンテンツフィールドがすべて埋まった非ブロック結果かどうかを返します。
func (s *UISpec) IsComplete() bool {
	return !s.Blocked &&
		s.Title != "" &&
		s.Story != "" &&
		s.ImageURL != "" &&
		s.StoryAudio != ""
}
