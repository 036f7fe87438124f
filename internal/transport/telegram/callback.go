package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// CallbackPrefix marks callback data produced by log channel buttons
const CallbackPrefix = "mod:"

// Callback is the payload of an undo button: mod:<action>:<chat>:<user>
type Callback struct {
	Action CallbackAction
	ChatID int64
	UserID int64
}

func (c Callback) String() string {
	return fmt.Sprintf("%s%s:%d:%d", CallbackPrefix, c.Action, c.ChatID, c.UserID)
}

// ParseCallback decodes button data
func ParseCallback(data string) (Callback, error) {
	rest, ok := strings.CutPrefix(data, CallbackPrefix)
	if !ok {
		return Callback{}, oops.With("data", data).Errorf("not a moderation callback")
	}

	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return Callback{}, oops.With("data", data).Errorf("malformed moderation callback")
	}

	action, err := ParseCallbackAction(parts[0])
	if err != nil {
		return Callback{}, oops.With("data", data).Wrap(err)
	}
	chatID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Callback{}, oops.With("data", data).Wrap(err)
	}
	userID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Callback{}, oops.With("data", data).Wrap(err)
	}

	return Callback{Action: action, ChatID: chatID, UserID: userID}, nil
}
