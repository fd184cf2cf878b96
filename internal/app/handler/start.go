package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/damonto/cellinfo/internal/pkg/util"
)

func Start() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if update.Message == nil {
			return nil
		}
		return Reply(ctx, update.Message, startText(update.Message))
	}
}

func startText(message *telego.Message) string {
	name := "there"
	if message.From != nil {
		name = strings.TrimSpace(message.From.FirstName + " " + message.From.LastName)
	}
	return fmt.Sprintf("Hello, *%s*\\!\nYour chat id is `%d`", util.EscapeText(name), message.Chat.ID)
}
