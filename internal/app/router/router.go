package router

import (
	"context"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/damonto/cellinfo/internal/app/handler"
	"github.com/damonto/cellinfo/internal/app/middleware"
	"github.com/damonto/cellinfo/internal/pkg/carrier"
	"github.com/damonto/cellinfo/internal/pkg/device"
)

type router struct {
	*th.BotHandler
	resolver *carrier.Resolver
	source   device.Source
	admins   []int64
}

func NewRouter(handler *th.BotHandler, resolver *carrier.Resolver, source device.Source, admins []int64) *router {
	return &router{BotHandler: handler, resolver: resolver, source: source, admins: admins}
}

func (r *router) Register(ctx context.Context, bot *telego.Bot) error {
	r.Handle(handler.Start(), th.CommandEqual(handler.StartCommand.Name))

	admin := r.Group(th.AnyCommand())
	admin.Use(middleware.Admin(r.admins...))
	admin.Handle(handler.Carriers(r.resolver, r.source), th.CommandEqual(handler.CarriersCommand.Name))

	return bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{Commands: botCommands(handler.StartCommand, handler.CarriersCommand)})
}

func botCommands(commands ...handler.Command) []telego.BotCommand {
	botCommands := make([]telego.BotCommand, 0, len(commands))
	for _, c := range commands {
		botCommands = append(botCommands, telego.BotCommand{Command: c.Name, Description: c.Description})
	}
	return botCommands
}
