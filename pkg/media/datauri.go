package media

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/vincent-petithory/dataurl"
)

const dataURIPrefix = "data:"

// EncodeDataURI は、バイナリデータを base64 の data URI に変換します。
func EncodeDataURI(mimeType string, data []byte) string {
	return dataURIPrefix + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI は、data URI から MIME タイプとデータを取り出します。
// base64 とパーセントエンコードの両方に対応し、返す MIME タイプには charset などのパラメータを含みません。
func DecodeDataURI(uri string) (mimeType string, data []byte, err error) {
	if !IsDataURI(uri) {
		return "", nil, fmt.Errorf("data URI ではありません")
	}

	du, err := dataurl.DecodeString(uri)
	if err != nil {
		return "", nil, fmt.Errorf("data URI のデコードに失敗しました: %w", err)
	}
	return du.ContentType(), du.Data, nil
}

// IsDataURI は、文字列が data URI 形式かどうかを返します。
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}
