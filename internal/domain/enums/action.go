package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is a moderator decision carried in an inline button callback.
type Action string

const (
	ActionRemove Action = "remove"
	ActionBlock  Action = "block"
	ActionLeave  Action = "leave"
)

// Token encodes the action and comment id into a callback payload.
// Comment ids are numeric, so the first hyphen always separates the action.
func (a Action) Token(commentID int64) string {
	return fmt.Sprintf("%s-%d", a, commentID)
}

func ParseActionToken(data string) (Action, int64, bool) {
	raw, idPart, found := strings.Cut(data, "-")
	if !found {
		return "", 0, false
	}

	action := Action(raw)
	switch action {
	case ActionRemove, ActionBlock, ActionLeave:
	default:
		return "", 0, false
	}

	commentID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || commentID <= 0 {
		return "", 0, false
	}

	return action, commentID, true
}
