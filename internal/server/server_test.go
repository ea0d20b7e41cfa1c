package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/shouni/go-decal-kit/pkg/domain"
	"github.com/shouni/go-decal-kit/pkg/icon"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeService struct {
	spec   *domain.UISpec
	err    error
	prompt string
}

func (f *fakeService) Run(_ context.Context, prompt string) (*domain.UISpec, error) {
	f.prompt = prompt
	return f.spec, f.err
}

func newTestRouter(svc UISpecService) *gin.Engine {
	return NewRouter(RouterConfig{UISpecHandler: NewUISpecHandler(svc)})
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUISpecHandler_Generate(t *testing.T) {
	t.Run("完成した UISpec を返すのだ", func(t *testing.T) {
		want := domain.NewCompleteUISpec("Dragon's Breath", "story", "img://1", "aud://1")
		svc := &fakeService{spec: want}

		w := doRequest(newTestRouter(svc), http.MethodPost, "/api/ui-spec", `{"prompt":"a dragon"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスが違うのだ: %d", w.Code)
		}
		if svc.prompt != "a dragon" {
			t.Errorf("プロンプトが渡されていないのだ: %q", svc.prompt)
		}

		var got domain.UISpec
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("JSON のパースに失敗したのだ: %v", err)
		}
		if diff := cmp.Diff(*want, got); diff != "" {
			t.Errorf("レスポンスが違うのだ (-want +got):\n%s", diff)
		}
	})

	t.Run("ブロックされた結果も200なのだ", func(t *testing.T) {
		svc := &fakeService{spec: domain.NewBlockedUISpec("policy violation")}

		w := doRequest(newTestRouter(svc), http.MethodPost, "/api/ui-spec", `{"prompt":"explicit content"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスが違うのだ: %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"blockedReason":"policy violation"`) {
			t.Errorf("ブロック理由が含まれていないのだ: %s", w.Body.String())
		}
	})

	t.Run("不正な JSON は400なのだ", func(t *testing.T) {
		w := doRequest(newTestRouter(&fakeService{}), http.MethodPost, "/api/ui-spec", `{`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスが違うのだ: %d", w.Code)
		}
	})
}

func TestUISpecHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"空のプロンプト", domain.ErrEmptyPrompt, http.StatusBadRequest, CodeInvalidPrompt},
		{"タイトル生成失敗", domain.ErrTitleGenerationFailed, http.StatusBadGateway, CodeTitleGenerationFailed},
		{"ストーリー生成失敗", fmt.Errorf("wrap: %w", domain.ErrStoryGenerationFailed), http.StatusBadGateway, CodeStoryGenerationFailed},
		{"タイムアウト", context.DeadlineExceeded, http.StatusGatewayTimeout, CodeTimeout},
		{"その他のエラー", errors.New("quota exceeded"), http.StatusBadGateway, CodeGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(newTestRouter(&fakeService{err: tt.err}), http.MethodPost, "/api/ui-spec", `{"prompt":"p"}`)
			if w.Code != tt.wantStatus {
				t.Errorf("ステータス: 期待値 %d, 実際 %d", tt.wantStatus, w.Code)
			}

			var env ErrorEnvelope
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("JSON のパースに失敗したのだ: %v", err)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("コード: 期待値 %s, 実際 %s", tt.wantCode, env.Error.Code)
			}
		})
	}
}

func TestIconRoutes(t *testing.T) {
	r := newTestRouter(&fakeService{})

	t.Run("一覧を返すのだ", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/icons", "")
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスが違うのだ: %d", w.Code)
		}
		var body struct {
			Icons []icon.Icon `json:"icons"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("JSON のパースに失敗したのだ: %v", err)
		}
		if diff := cmp.Diff(icon.All(), body.Icons); diff != "" {
			t.Errorf("一覧が違うのだ (-want +got):\n%s", diff)
		}
	})

	t.Run("既知の名前は解決されるのだ", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/icons/Zap", "")
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスが違うのだ: %d", w.Code)
		}
		want, _ := icon.Resolve("Zap")
		var got icon.Icon
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("JSON のパースに失敗したのだ: %v", err)
		}
		if got != want {
			t.Errorf("期待値 %+v, 実際 %+v", want, got)
		}
	})

	t.Run("未知の名前は404なのだ", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/icons/Unicorn", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスが違うのだ: %d", w.Code)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	w := doRequest(newTestRouter(&fakeService{}), http.MethodGet, "/healthcheck", "")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("ヘルスチェックが失敗したのだ: %d %s", w.Code, w.Body.String())
	}
}
