package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// エラーコード
const (
	CodeInvalidPrompt         = "invalid_prompt"
	CodeInvalidRequest        = "invalid_request"
	CodeTitleGenerationFailed = "title_generation_failed"
	CodeStoryGenerationFailed = "story_generation_failed"
	CodeTimeout               = "timeout"
	CodeGenerationFailed      = "generation_failed"
	CodeIconNotFound          = "icon_not_found"
)

// APIError はエラーレスポンスの本体です。
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope はエラーレスポンスの外枠です。
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
