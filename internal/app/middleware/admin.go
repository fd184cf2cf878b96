package middleware

import (
	"errors"
	"slices"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

var ErrPermissionDenied = errors.New("permission denied")

func Admin(admins ...int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if !isAdmin(update, admins) {
			return ErrPermissionDenied
		}
		return ctx.Next(update)
	}
}

func isAdmin(update telego.Update, admins []int64) bool {
	if update.Message == nil || update.Message.From == nil {
		return false
	}
	return slices.Contains(admins, update.Message.From.ID)
}
