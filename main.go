package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mymmrac/telego"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/damonto/cellinfo/internal/app"
	"github.com/damonto/cellinfo/internal/pkg/android"
	"github.com/damonto/cellinfo/internal/pkg/carrier"
	"github.com/damonto/cellinfo/internal/pkg/config"
	"github.com/damonto/cellinfo/internal/pkg/device"
	"github.com/damonto/cellinfo/internal/pkg/modem"
	"github.com/damonto/cellinfo/internal/pkg/provider"
)

var adminId config.ChatId

func init() {
	if err := config.C.Load(); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	flag.StringVar(&config.C.BotToken, "bot-token", config.C.BotToken, "Telegram bot token")
	flag.Var(&adminId, "admin-id", "Admin user id (can be repeated)")
	flag.StringVar(&config.C.Backend, "backend", config.C.Backend, "Telephony backend: modemmanager or android")
	flag.StringVar(&config.C.Providers, "providers", config.C.Providers, "Path to a network provider dataset (JSON)")
	flag.StringVar(&config.C.LogFile, "log-file", config.C.LogFile, "Also write logs to this file, rotated by size")
	flag.BoolVar(&config.C.Dump, "dump", false, "Print the resolved carriers as JSON and exit")
	flag.BoolVar(&config.C.Verbose, "verbose", config.C.Verbose, "Enable verbose mode")
	flag.Parse()
	if len(adminId) > 0 {
		config.C.AdminId = adminId
	}
}

func main() {
	setupLogger()
	if err := config.C.IsValid(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	table := provider.Default()
	if config.C.Providers != "" {
		var err error
		if table, err = provider.LoadFile(config.C.Providers); err != nil {
			slog.Error("failed to load network providers", "path", config.C.Providers, "error", err)
			os.Exit(1)
		}
	}
	slog.Debug("network providers loaded", "count", table.Len())
	store := provider.NewStore(table)
	resolver := carrier.NewResolver(store)

	source, err := newSource(store)
	if err != nil {
		slog.Error("failed to connect to telephony backend", "backend", config.C.Backend, "error", err)
		os.Exit(1)
	}

	if config.C.Dump {
		if err := dump(resolver, source); err != nil {
			slog.Error("failed to resolve carriers", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.C.Providers != "" {
		go func() {
			if err := store.Watch(ctx, config.C.Providers); err != nil {
				slog.Warn("network provider reloading disabled", "error", err)
			}
		}()
	}

	bot, err := telego.NewBot(config.C.BotToken, telego.WithDefaultLogger(config.C.Verbose, true))
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	application, err := app.NewApp(ctx, bot, resolver, source, config.C.AdminId.ToInt64())
	if err != nil {
		slog.Error("failed to create app", "error", err)
		os.Exit(1)
	}
	go func() {
		if err := application.Start(); err != nil {
			slog.Error("failed to start app", "error", err)
			stop()
		}
	}()
	slog.Info("bot started", "backend", config.C.Backend)

	<-ctx.Done()
	slog.Info("shutting down")
	if err := application.Shutdown(); err != nil {
		slog.Error("failed to shutdown app", "error", err)
	}
}

func setupLogger() {
	level := slog.LevelInfo
	if config.C.Verbose {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	if config.C.LogFile != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   config.C.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func newSource(store *provider.Store) (device.Source, error) {
	switch config.C.Backend {
	case config.BackendAndroid:
		return device.Android(android.NewTelephony(android.Getprop{})), nil
	default:
		manager, err := modem.NewManager(store)
		if err != nil {
			return nil, err
		}
		return device.ModemManager(manager), nil
	}
}

func dump(resolver *carrier.Resolver, source device.Source) error {
	reports, err := device.Collect(resolver, source)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reports)
}
