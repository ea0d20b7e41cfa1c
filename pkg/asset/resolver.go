package asset

import (
	"log/slog"
	"mime"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/shouni/go-decal-kit/pkg/media"
)

const (
	// SpecFileName は生成された UISpec を保存する JSON ファイル名です。
	SpecFileName = "ui_spec.json"
	// ImageBaseName は生成画像の拡張子を除いたファイル名です。
	ImageBaseName = "image"
	// AudioBaseName はナレーション音声の拡張子を除いたファイル名です。
	AudioBaseName = "story"

	defaultExtension = ".bin"
)

// preferredExtensions は mime.ExtensionsByType の結果が環境依存になる型の拡張子です。
var preferredExtensions = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/webp":      ".webp",
	media.WAVMimeType: ".wav",
}

// NewRunDir は、outputDir 配下に実行ごとの一意なディレクトリパスを生成します。
func NewRunDir(outputDir string) string {
	return filepath.Join(outputDir, uuid.NewString())
}

// MediaFileName は、ベース名と MIME タイプからファイル名を生成します。
// 例: "image", "image/png" -> "image.png"
func MediaFileName(baseName, mimeType string) string {
	return baseName + ExtensionForMIME(mimeType)
}

// ExtensionForMIME は MIME タイプから拡張子を決定します。判定できない場合は ".bin" です。
func ExtensionForMIME(mimeType string) string {
	if ext, ok := preferredExtensions[mimeType]; ok {
		return ext
	}
	extensions, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(extensions) == 0 {
		slog.Warn("Could not determine file extension from MIME type, defaulting to .bin",
			slog.String("mime_type", mimeType))
		return defaultExtension
	}
	return extensions[0]
}
