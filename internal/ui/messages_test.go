package ui

import (
	"strings"
	"testing"

	"github.com/knife-media/watchcat/internal/domain/enums"
)

func TestWarningTextEscapesContent(t *testing.T) {
	text := WarningText(`<b>spam</b> & "quotes"`, "https://knife.media/post#comment-42")

	if strings.Contains(text, "<b>spam</b>") {
		t.Fatal("expected comment html to be escaped")
	}
	if !strings.Contains(text, "&lt;b&gt;spam&lt;/b&gt; &amp;") {
		t.Fatalf("unexpected escaping: %q", text)
	}
	if !strings.HasSuffix(text, "\n\nhttps://knife.media/post#comment-42") {
		t.Fatalf("expected link on its own paragraph, got %q", text)
	}
}

func TestDecisionText(t *testing.T) {
	testCases := []struct {
		name   string
		action enums.Action
		prefix string
	}{
		{name: "remove", action: enums.ActionRemove, prefix: "<b>Удалено</b>: "},
		{name: "block", action: enums.ActionBlock, prefix: "<b>Заблокировано</b>: "},
		{name: "leave", action: enums.ActionLeave, prefix: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text := DecisionText(tc.action, "original <text>")
			expected := tc.prefix + "original &lt;text&gt;"
			if text != expected {
				t.Fatalf("expected %q, got %q", expected, text)
			}
		})
	}
}

func TestModerationButtons(t *testing.T) {
	buttons := ModerationButtons(42)
	if len(buttons) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(buttons))
	}

	expectedData := []string{"remove-42", "block-42", "leave-42"}
	for i, data := range expectedData {
		if buttons[i].Data != data {
			t.Fatalf("button %d: expected data %q, got %q", i, data, buttons[i].Data)
		}
		if buttons[i].Text == "" {
			t.Fatalf("button %d: empty label", i)
		}
	}
}
