package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/damonto/cellinfo/internal/app/handler"
	"github.com/damonto/cellinfo/internal/pkg/util"
)

// Error reports handler failures back to the chat the update came from.
func Error() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		err := ctx.Next(update)
		if err == nil || update.Message == nil {
			return err
		}
		slog.Error("failed to handle command", "text", update.Message.Text, "error", err)
		if err := handler.Reply(ctx, update.Message, util.EscapeText(err.Error())); err != nil {
			slog.Error("failed to send message", "error", err)
		}
		return nil
	}
}
