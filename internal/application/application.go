package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"tg_dealscan/internal/config"
	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/service/editor"
	"tg_dealscan/internal/domain/service/scanner"
	"tg_dealscan/internal/domain/service/settings"
	"tg_dealscan/internal/infrastructure/notifier"
	"tg_dealscan/internal/server"
	"tg_dealscan/internal/transport/bot"
	"tg_dealscan/internal/transport/bot/handler"
	"tg_dealscan/internal/transport/bot/view"
	"tg_dealscan/internal/worker"
	"tg_dealscan/pkg/application/connectors"
	"tg_dealscan/pkg/application/modules"
	"tg_dealscan/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run собирает зависимости и блокируется до отмены контекста или падения одного из модулей.
func Run(ctx context.Context, cfg config.Config) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	// 1. Ожидаемые правки: Redis, если задан адрес, иначе память процесса
	pending, closePending, err := newPendingStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePending()

	// 2. Домен
	store := settings.NewStore(settings.Defaults())
	dealScanner := scanner.New(
		store,
		editor.New(store, pending),
		view.NewRenderer(),
		scanner.NewMetrics(registry),
	)

	// 3. Telegram
	client, err := bot.NewClient(ctx, cfg.Bot)
	if err != nil {
		return fmt.Errorf("bot.NewClient: %w", err)
	}

	outbox := make(chan entity.OutboundMessage, cfg.Bot.OutboxSize)
	alertBot := notifier.NewTelegramBot(client)
	tgBot := bot.New(client, handler.New(dealScanner, outbox), worker.NewSequencer(), cfg.Bot.PollTimeout)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := tgBot.Run(ctx); err != nil {
			return fmt.Errorf("tgBot.Run: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		if err := alertBot.Run(ctx, outbox); err != nil {
			return fmt.Errorf("alertBot.Run: %w", err)
		}

		return nil
	})

	// 4. HTTP
	apiServer := server.NewServer(server.NewSettingsServer(store, dealScanner))

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           apiServer.Handler(cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         tgBot.Ready,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	logger(ctx).Info("application started", slog.String("version", cfg.App.Version))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	logger(ctx).Info("application stopping")

	return nil
}

func newPendingStore(ctx context.Context, cfg config.Config) (editor.PendingStore, func(), error) {
	if !cfg.Redis.Enabled() {
		logger(ctx).Info("pending edits stored in memory", slog.Duration("ttl", cfg.Editor.PendingTTL))

		return editor.NewMemoryPendingStore(cfg.Editor.PendingTTL), func() {}, nil
	}

	redisConnector := &connectors.Redis{
		Username:       cfg.Redis.Username,
		Password:       cfg.Redis.Password,
		Address:        cfg.Redis.Address,
		DatabaseNumber: cfg.Redis.DB,
		PoolSize:       cfg.Redis.PoolSize,
	}

	client, err := redisConnector.Client(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("redisConnector.Client: %w", err)
	}

	logger(ctx).Info("pending edits stored in redis", slog.Duration("ttl", cfg.Editor.PendingTTL))

	return editor.NewRedisPendingStore(client, cfg.Editor.PendingTTL), func() { redisConnector.Close(ctx) }, nil
}
