package bot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tg_dealscan/internal/config"
	"tg_dealscan/internal/transport/bot/handler"
	"tg_dealscan/internal/worker"
	"tg_dealscan/pkg/contextx"
	"tg_dealscan/pkg/httpx"
	"tg_dealscan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot принимает обновления через long polling и передаёт их обработчикам.
type Bot struct {
	bot         *telego.Bot
	handler     *handler.Handler
	sequencer   *worker.Sequencer
	pollTimeout time.Duration

	ready atomic.Bool
}

// NewClient клиент Bot API. Запросы идут через net/http с логированием и маскированием токена.
func NewClient(ctx context.Context, cfg config.Bot) (*telego.Bot, error) {
	level := slog.LevelDebug
	if cfg.LogHTTP {
		level = slog.LevelInfo
	}

	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLevel(level),
		),
	}

	bot, err := telego.NewBot(cfg.Token,
		telego.WithHTTPClient(httpClient),
		telego.WithLogger(newTelegoLogger(logger(ctx))),
	)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return bot, nil
}

func New(
	bot *telego.Bot,
	h *handler.Handler,
	sequencer *worker.Sequencer,
	pollTimeout time.Duration,
) *Bot {
	return &Bot{
		bot:         bot,
		handler:     h,
		sequencer:   sequencer,
		pollTimeout: pollTimeout,
	}
}

// Ready true, пока бот получает обновления.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

// Run блокируется до отмены контекста или остановки обработчика.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        int(b.pollTimeout.Seconds()),
		AllowedUpdates: []string{"message", "callback_query"},
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	dispatcher := worker.NewDispatcher(b.sequencer, updates)
	if err := dispatcher.Start(ctx); err != nil {
		return fmt.Errorf("dispatcher.Start: %w", err)
	}
	defer dispatcher.Stop()

	botHandler, err := th.NewBotHandler(b.bot, dispatcher.Updates())
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.sequencer)

	done := make(chan error, 1)
	go func() {
		done <- botHandler.Start()
	}()

	b.ready.Store(true)
	defer b.ready.Store(false)

	logger(ctx).Info("bot started", slog.Duration("poll-timeout", b.pollTimeout))

	select {
	case <-ctx.Done():
		if err := botHandler.Stop(); err != nil {
			logger(ctx).Error("botHandler.Stop", logx.Error(err))
		}
	case err := <-done:
		if err != nil {
			return fmt.Errorf("botHandler.Start: %w", err)
		}
	}

	logger(ctx).Info("bot stopped", slog.Int("pending-updates", b.sequencer.Pending()))

	return nil
}

// telegoLogger направляет внутренние сообщения telego в slog.
type telegoLogger struct {
	log *slog.Logger
}

func newTelegoLogger(log *slog.Logger) telegoLogger {
	return telegoLogger{log: log.With(slog.String("component", "telego"))}
}

func (l telegoLogger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l telegoLogger) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...))
}
