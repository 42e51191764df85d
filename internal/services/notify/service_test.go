package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/knife-media/watchcat/internal/domain/enums"
	"github.com/knife-media/watchcat/internal/domain/model"
)

type stubSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *stubSender) Send(msg tgbotapi.Chattable) error {
	s.sent = append(s.sent, msg)
	return s.err
}

type stubResolver struct {
	link string
	err  error
}

func (s *stubResolver) ResolveCommentLink(_ context.Context, postID, commentID int64) (string, error) {
	return s.link, s.err
}

func TestShowWarning(t *testing.T) {
	sender := &stubSender{}
	resolver := &stubResolver{link: "https://knife.media/how-to#comment-42"}
	svc := NewService(sender, resolver, -100500)

	comment := model.Comment{ID: 42, PostID: 7, Content: "buy now http://spam.example"}
	if err := svc.ShowWarning(context.Background(), comment); err != nil {
		t.Fatalf("show warning: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}

	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("expected MessageConfig, got %T", sender.sent[0])
	}
	if msg.ChatID != -100500 {
		t.Fatalf("expected moderation chat id, got %d", msg.ChatID)
	}
	if msg.ParseMode != tgbotapi.ModeHTML {
		t.Fatalf("expected html parse mode, got %q", msg.ParseMode)
	}
	if !msg.DisableWebPagePreview {
		t.Fatal("expected web page preview disabled")
	}
	if !strings.HasSuffix(msg.Text, "#comment-42") {
		t.Fatalf("expected link ending #comment-42, got %q", msg.Text)
	}

	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected inline keyboard, got %T", msg.ReplyMarkup)
	}
	if len(markup.InlineKeyboard) != 1 || len(markup.InlineKeyboard[0]) != 3 {
		t.Fatal("expected a single row of three buttons")
	}
	if data := markup.InlineKeyboard[0][0].CallbackData; data == nil || *data != "remove-42" {
		t.Fatalf("unexpected first button payload %v", data)
	}
}

func TestShowWarningResolverFailure(t *testing.T) {
	sender := &stubSender{}
	resolver := &stubResolver{err: errors.New("connection refused")}
	svc := NewService(sender, resolver, 1)

	err := svc.ShowWarning(context.Background(), model.Comment{ID: 42, PostID: 7})
	if err == nil {
		t.Fatal("expected resolver error")
	}
	if len(sender.sent) != 0 {
		t.Fatal("expected no message on resolver failure")
	}
}

func TestApplyDecisionEditsInPlace(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, &stubResolver{}, 1)

	if err := svc.ApplyDecision(10, 55, "spam text", enums.ActionRemove); err != nil {
		t.Fatalf("apply decision: %v", err)
	}

	edit, ok := sender.sent[0].(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("expected EditMessageTextConfig, got %T", sender.sent[0])
	}
	if edit.ChatID != 10 || edit.MessageID != 55 {
		t.Fatalf("unexpected edit target chat=%d message=%d", edit.ChatID, edit.MessageID)
	}
	if !strings.HasPrefix(edit.Text, "<b>Удалено</b>: ") {
		t.Fatalf("expected removed label, got %q", edit.Text)
	}
	if edit.ReplyMarkup != nil {
		t.Fatal("expected buttons stripped on edit")
	}
}

func TestApplyDecisionLeaveUnlabeled(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, &stubResolver{}, 1)

	if err := svc.ApplyDecision(10, 55, "fine text", enums.ActionLeave); err != nil {
		t.Fatalf("apply decision: %v", err)
	}

	edit := sender.sent[0].(tgbotapi.EditMessageTextConfig)
	if edit.Text != "fine text" {
		t.Fatalf("expected unlabeled text, got %q", edit.Text)
	}
}

func TestApplyDecisionSendFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("bad gateway")}
	svc := NewService(sender, &stubResolver{}, 1)

	if err := svc.ApplyDecision(10, 55, "text", enums.ActionBlock); err == nil {
		t.Fatal("expected send error to surface")
	}
}
