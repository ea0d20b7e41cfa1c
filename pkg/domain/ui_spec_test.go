package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewBlockedUISpec(t *testing.T) {
	t.Run("理由が指定されていればそのまま使うのだ", func(t *testing.T) {
		spec := NewBlockedUISpec("policy violation")
		if !spec.Blocked {
			t.Fatal("Blocked が true になっていないのだ")
		}
		if spec.Title != BlockedTitle {
			t.Errorf("期待値 %q, 実際の値 %q", BlockedTitle, spec.Title)
		}
		if spec.BlockedReason != "policy violation" {
			t.Errorf("期待値 %q, 実際の値 %q", "policy violation", spec.BlockedReason)
		}
		if spec.Story != "" || spec.ImageURL != "" || spec.StoryAudio != "" {
			t.Errorf("コンテンツが空ではないのだ: %+v", spec)
		}
	})

	t.Run("理由が空ならフォールバック文を使うのだ", func(t *testing.T) {
		spec := NewBlockedUISpec("")
		if spec.BlockedReason != DefaultBlockedReason {
			t.Errorf("フォールバック文になっていないのだ: %q", spec.BlockedReason)
		}
		if spec.IsComplete() {
			t.Error("ブロック結果が complete 扱いになっているのだ")
		}
	})
}

func TestUISpec_JSON(t *testing.T) {
	complete := NewCompleteUISpec("Dragon's Breath", "...", "img://1", "aud://1")
	if !complete.IsComplete() {
		t.Fatalf("complete になっていないのだ: %+v", complete)
	}

	data, err := json.Marshal(complete)
	if err != nil {
		t.Fatalf("Marshal失敗なのだ: %v", err)
	}
	if strings.Contains(string(data), "blockedReason") {
		t.Errorf("complete 形に blockedReason が含まれているのだ: %s", data)
	}
	for _, key := range []string{`"imageUrl"`, `"storyAudio"`, `"blocked":false`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("%s が見つからないのだ: %s", key, data)
		}
	}

	blocked, err := json.Marshal(NewBlockedUISpec("policy violation"))
	if err != nil {
		t.Fatalf("Marshal失敗なのだ: %v", err)
	}
	if !strings.Contains(string(blocked), `"blockedReason":"policy violation"`) {
		t.Errorf("blockedReason が出力されていないのだ: %s", blocked)
	}
}

func TestImageResult_HasMedia(t *testing.T) {
	var nilResult *ImageResult
	if nilResult.HasMedia() {
		t.Error("nil の結果で true になったのだ")
	}
	if (&ImageResult{Blocked: false}).HasMedia() {
		t.Error("Media が空なのに true になったのだ")
	}
	if !(&ImageResult{Media: "img://1"}).HasMedia() {
		t.Error("Media があるのに false になったのだ")
	}
}
