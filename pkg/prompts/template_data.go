package prompts

import (
	_ "embed"
)

const (
	ModeTitle = "title"
	ModeStory = "story"
	ModeImage = "image"
)

// TemplateData はプロンプトテンプレートに渡すデータ構造です。
type TemplateData struct {
	Prompt string
}

var (
	//go:embed title.md
	TitlePrompt string
	//go:embed story.md
	StoryPrompt string
	//go:embed image.md
	ImagePrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップなのだ。
var allTemplates = map[string]string{
	ModeTitle: TitlePrompt,
	ModeStory: StoryPrompt,
	ModeImage: ImagePrompt,
}
