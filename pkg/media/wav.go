package media

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
)

const (
	// DefaultPCMSampleRate は Gemini TTS が返す L16 PCM のサンプルレートです。
	DefaultPCMSampleRate = 24000
	defaultChannels      = 1
	defaultBitsPerSample = 16

	WAVMimeType = "audio/wav"
)

// ParsePCMRate は "audio/L16;codec=pcm;rate=24000" のような MIME タイプからサンプルレートを取得します。
// 見つからない場合は DefaultPCMSampleRate を返します。
func ParsePCMRate(mimeType string) int {
	for _, param := range strings.Split(mimeType, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(key, "rate") {
			continue
		}
		if rate, err := strconv.Atoi(value); err == nil && rate > 0 {
			return rate
		}
	}
	return DefaultPCMSampleRate
}

// PCMToWAV は、モノラル 16bit のリトルエンディアン PCM に RIFF/WAVE ヘッダを付与します。
func PCMToWAV(pcm []byte, sampleRate int) []byte {
	if sampleRate <= 0 {
		sampleRate = DefaultPCMSampleRate
	}
	blockAlign := defaultChannels * defaultBitsPerSample / 8
	byteRate := sampleRate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	buf.WriteString("RIFF")
	writeLE(&buf, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	// fmt チャンク
	buf.WriteString("fmt ")
	writeLE(&buf, uint32(16))
	writeLE(&buf, uint16(1)) // PCM
	writeLE(&buf, uint16(defaultChannels))
	writeLE(&buf, uint32(sampleRate))
	writeLE(&buf, uint32(byteRate))
	writeLE(&buf, uint16(blockAlign))
	writeLE(&buf, uint16(defaultBitsPerSample))

	// data チャンク
	buf.WriteString("data")
	writeLE(&buf, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

// IsPCM は、MIME タイプが生の L16 PCM を示すかを返します。
func IsPCM(mimeType string) bool {
	lower := strings.ToLower(mimeType)
	return strings.HasPrefix(lower, "audio/l16") || strings.Contains(lower, "codec=pcm")
}

func writeLE(buf *bytes.Buffer, v any) {
	// bytes.Buffer への書き込みは失敗しないのだ
	_ = binary.Write(buf, binary.LittleEndian, v)
}
