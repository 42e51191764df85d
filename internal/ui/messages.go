package ui

import (
	"html"

	"github.com/knife-media/watchcat/internal/domain/enums"
	"github.com/knife-media/watchcat/internal/infra/telegram"
)

// WarningText is the body of a flagged-comment message: escaped comment
// text, a blank line, and the canonical comment link.
func WarningText(content, link string) string {
	return html.EscapeString(content) + "\n\n" + link
}

// DecisionText rewrites a warning message after a moderator acted on it.
// Leave keeps the text unlabeled; the removed buttons are the only signal
// that the comment was approved.
func DecisionText(action enums.Action, originalText string) string {
	escaped := html.EscapeString(originalText)
	switch action {
	case enums.ActionRemove:
		return "<b>Удалено</b>: " + escaped
	case enums.ActionBlock:
		return "<b>Заблокировано</b>: " + escaped
	default:
		return escaped
	}
}

// ModerationButtons is the single row of inline actions under a warning.
func ModerationButtons(commentID int64) []telegram.InlineButton {
	return []telegram.InlineButton{
		{Text: "Удалить", Data: enums.ActionRemove.Token(commentID)},
		{Text: "Заблокировать", Data: enums.ActionBlock.Token(commentID)},
		{Text: "Оставить", Data: enums.ActionLeave.Token(commentID)},
	}
}
