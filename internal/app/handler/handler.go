package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Command describes a bot command for the Telegram command menu.
type Command struct {
	Name        string
	Description string
}

var (
	StartCommand    = Command{Name: "start", Description: "Show your chat id"}
	CarriersCommand = Command{Name: "carriers", Description: "List the carriers of every device"}
)

// Reply sends a MarkdownV2 formatted reply to message.
func Reply(ctx *th.Context, message *telego.Message, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(message.Chat.ID), text).
		WithParseMode(telego.ModeMarkdownV2).
		WithReplyParameters(&telego.ReplyParameters{MessageID: message.MessageID}))
	return err
}
