package app

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/knife-media/watchcat/internal/domain/enums"
	"github.com/knife-media/watchcat/internal/services/moderate"
)

func (a *App) routeUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		a.handleCallback(ctx, update.CallbackQuery)
	}
}

// handleCallback applies one moderator decision to completion. Failures are
// operator-visible only; the moderator at most sees the message unchanged.
func (a *App) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query == nil || query.Message == nil {
		return
	}
	defer a.answerCallback(query.ID)

	action, commentID, ok := enums.ParseActionToken(query.Data)
	if !ok {
		return
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	originalText := query.Message.Text

	switch action {
	case enums.ActionRemove:
		if err := a.moderation.Remove(ctx, commentID); err != nil {
			a.logger.Error("remove comment", "error", err, "comment_id", commentID)
			return
		}
	case enums.ActionBlock:
		err := a.moderation.BlockAuthor(ctx, commentID)
		if errors.Is(err, moderate.ErrCommentNotFound) {
			// The comment vanished between flagging and the button press.
			// The message stays untouched.
			a.logger.Warn("block skipped, comment not found", "comment_id", commentID)
			return
		}
		if err != nil {
			a.logger.Error("block author", "error", err, "comment_id", commentID)
			return
		}
	case enums.ActionLeave:
		// Approve: no store mutation, just strip the buttons.
	}

	// The edit is unconditional on rows affected: pressing remove on an
	// already-gone comment still labels the message.
	if err := a.notifier.ApplyDecision(chatID, messageID, originalText, action); err != nil {
		a.logger.Error("apply decision", "error", err, "action", string(action), "comment_id", commentID)
	}
}

func (a *App) answerCallback(callbackID string) {
	if err := a.tg.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		a.logger.Warn("answer callback", "error", err)
	}
}
