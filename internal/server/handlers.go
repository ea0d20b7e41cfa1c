package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shouni/go-decal-kit/pkg/domain"
	"github.com/shouni/go-decal-kit/pkg/icon"
)

// UISpecService は、プロンプトから UISpec を生成するサービスの契約です。
type UISpecService interface {
	Run(ctx context.Context, prompt string) (*domain.UISpec, error)
}

// UISpecRequest は POST /api/ui-spec のリクエストボディです。
type UISpecRequest struct {
	Prompt string `json:"prompt"`
}

// UISpecHandler は UI 仕様生成の HTTP ハンドラーです。
type UISpecHandler struct {
	service UISpecService
}

// NewUISpecHandler は UISpecHandler を初期化します。
func NewUISpecHandler(service UISpecService) *UISpecHandler {
	return &UISpecHandler{service: service}
}

// Generate はプロンプトを受け取り UISpec を返します。ブロックされた結果も 200 で返すのだ。
func (h *UISpecHandler) Generate(c *gin.Context) {
	var req UISpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, fmt.Errorf("リクエストボディが不正です: %w", err))
		return
	}

	spec, err := h.service.Run(c.Request.Context(), req.Prompt)
	if err != nil {
		status, code := classifyError(err)
		slog.ErrorContext(c.Request.Context(), "UI spec request failed",
			"status", status,
			"code", code,
			"error", err,
		)
		respondError(c, status, code, err)
		return
	}

	respondOK(c, spec)
}

// classifyError は生成エラーを HTTP ステータスとエラーコードに対応付けます。
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyPrompt):
		return http.StatusBadRequest, CodeInvalidPrompt
	case errors.Is(err, domain.ErrTitleGenerationFailed):
		return http.StatusBadGateway, CodeTitleGenerationFailed
	case errors.Is(err, domain.ErrStoryGenerationFailed):
		return http.StatusBadGateway, CodeStoryGenerationFailed
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout
	default:
		return http.StatusBadGateway, CodeGenerationFailed
	}
}

// ListIcons はアイコン表の全件を名前順で返します。
func ListIcons(c *gin.Context) {
	respondOK(c, gin.H{"icons": icon.All()})
}

// GetIcon は名前に対応するアイコンを返します。
func GetIcon(c *gin.Context) {
	name := c.Param("name")
	ic, ok := icon.Resolve(name)
	if !ok {
		respondError(c, http.StatusNotFound, CodeIconNotFound, fmt.Errorf("アイコン %q は登録されていません", name))
		return
	}
	respondOK(c, ic)
}

// HealthCheck は死活監視用のエンドポイントです。
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
