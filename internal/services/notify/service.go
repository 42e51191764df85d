// Package notify posts flagged comments to the moderation chat and edits
// them once a decision is made.
package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/knife-media/watchcat/internal/domain/enums"
	"github.com/knife-media/watchcat/internal/domain/model"
	"github.com/knife-media/watchcat/internal/infra/telegram"
	"github.com/knife-media/watchcat/internal/ui"
)

type Sender interface {
	Send(msg tgbotapi.Chattable) error
}

type LinkResolver interface {
	ResolveCommentLink(ctx context.Context, postID, commentID int64) (string, error)
}

type Service struct {
	sender Sender
	links  LinkResolver
	chatID int64
}

func NewService(sender Sender, links LinkResolver, chatID int64) *Service {
	return &Service{sender: sender, links: links, chatID: chatID}
}

// ShowWarning sends a flagged comment with the three moderation buttons.
func (s *Service) ShowWarning(ctx context.Context, comment model.Comment) error {
	link, err := s.links.ResolveCommentLink(ctx, comment.PostID, comment.ID)
	if err != nil {
		return fmt.Errorf("resolve link for comment %d: %w", comment.ID, err)
	}

	msg := tgbotapi.NewMessage(s.chatID, ui.WarningText(comment.Content, link))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = telegram.BuildInlineKeyboard([][]telegram.InlineButton{
		ui.ModerationButtons(comment.ID),
	})

	if err := s.sender.Send(msg); err != nil {
		return fmt.Errorf("send warning for comment %d: %w", comment.ID, err)
	}
	return nil
}

// ApplyDecision rewrites the warning message in place. The edit replaces the
// whole message and never re-attaches the buttons, which closes the pending
// notification.
func (s *Service) ApplyDecision(chatID int64, messageID int, originalText string, action enums.Action) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, ui.DecisionText(action, originalText))
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true

	if err := s.sender.Send(edit); err != nil {
		return fmt.Errorf("edit moderated message %d: %w", messageID, err)
	}
	return nil
}
