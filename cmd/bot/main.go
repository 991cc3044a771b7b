package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mehidihasan1/twixdbot/internal/api"
	"github.com/mehidihasan1/twixdbot/internal/bot"
	"github.com/mehidihasan1/twixdbot/internal/config"
	"github.com/mehidihasan1/twixdbot/internal/service"
	"github.com/mehidihasan1/twixdbot/internal/session"
	"github.com/mehidihasan1/twixdbot/pkg/httpclient"
	"github.com/mehidihasan1/twixdbot/pkg/telco"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			session.NewStore,
			NewClientFactory,
			session.NewResolver,
			NewBotResolver,
			service.NewNumberService,

			bot.NewDispatcher,
			bot.NewTelegram,

			fiber.New,
			api.NewHandler,
		),
		fx.Invoke(startBot, startServer),
	).Run()
}

func NewClientFactory(cfg *config.Config) session.ClientFactory {
	client := httpclient.NewHTTPClient(cfg.Provider.Timeout)
	return func(accountSID, authToken string) telco.API {
		return telco.NewClient(cfg.Provider, accountSID, authToken, client)
	}
}

func NewBotResolver(resolver *session.Resolver) bot.Resolver {
	return resolver
}

func startBot(telegram *bot.Telegram, logger *zap.Logger, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go telegram.Start()
			logger.Info("bot started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping bot")
			telegram.Stop()
			return nil
		},
	})
}

func startServer(app *fiber.App, handler *api.Handler, cfg *config.Config, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
