package app

import (
	"context"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/damonto/cellinfo/internal/app/middleware"
	"github.com/damonto/cellinfo/internal/app/router"
	"github.com/damonto/cellinfo/internal/pkg/carrier"
	"github.com/damonto/cellinfo/internal/pkg/device"
)

type application struct {
	Bot      *telego.Bot
	handler  *th.BotHandler
	updates  <-chan telego.Update
	ctx      context.Context
	resolver *carrier.Resolver
	source   device.Source
	admins   []int64
}

func NewApp(ctx context.Context, bot *telego.Bot, resolver *carrier.Resolver, source device.Source, admins []int64) (*application, error) {
	app := &application{
		Bot:      bot,
		ctx:      ctx,
		resolver: resolver,
		source:   source,
		admins:   admins,
	}
	var err error
	app.updates, err = bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return nil, err
	}
	app.handler, err = th.NewBotHandler(bot, app.updates)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (app *application) Start() error {
	app.registerMiddleware()
	if err := app.registerRouter(); err != nil {
		return err
	}
	return app.handler.Start()
}

func (app *application) registerRouter() error {
	return router.NewRouter(app.handler, app.resolver, app.source, app.admins).Register(app.ctx, app.Bot)
}

func (app *application) registerMiddleware() {
	app.handler.Use(th.PanicRecovery())
	app.handler.Use(middleware.Error())
}

func (app *application) Shutdown() error {
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second*30)
	defer stopCancel()

outer:
	for len(app.updates) > 0 {
		select {
		case <-stopCtx.Done():
			break outer
		case <-time.After(100 * time.Millisecond):
		}
	}
	return app.handler.StopWithContext(stopCtx)
}
