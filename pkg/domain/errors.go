package domain

import "errors"

var (
	// ErrEmptyPrompt は、空のプロンプトが渡されたことを示します。
	ErrEmptyPrompt = errors.New("prompt must not be empty")

	// ErrTitleGenerationFailed は、画像生成後にタイトルが得られなかったことを示します。
	ErrTitleGenerationFailed = errors.New("the AI failed to generate a title for this prompt")

	// ErrStoryGenerationFailed は、ストーリー本文またはナレーション音声が欠けていたことを示します。
	ErrStoryGenerationFailed = errors.New("the AI failed to generate a story or narration")
)
