package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tg_dealscan/internal/worker"
	"tg_dealscan/pkg/contextx"
	"tg_dealscan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Sequential запускает обработчик только после завершения предыдущего события той же сессии.
func Sequential(sequencer *worker.Sequencer) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		release, err := sequencer.Acquire(ctx, update.UpdateID)
		if err != nil {
			logger(ctx).Warn("update skipped",
				slog.Int(logx.FieldUpdateID, update.UpdateID),
				logx.Error(err),
			)

			return nil
		}
		defer release()

		if err := ctx.Next(update); err != nil {
			logger(ctx).Error("update handler failed",
				slog.Int(logx.FieldUpdateID, update.UpdateID),
				logx.Error(err),
			)

			return fmt.Errorf("update %d: %w", update.UpdateID, err)
		}

		return nil
	}
}

// Recovery не даёт панике в обработчике уронить бота.
func Recovery() th.Handler {
	return func(ctx *th.Context, update telego.Update) (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error("update handler panic",
					slog.Int(logx.FieldUpdateID, update.UpdateID),
					slog.Any("panic", rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				err = fmt.Errorf("update %d: panic: %v", update.UpdateID, rec)
			}
		}()

		return ctx.Next(update)
	}
}
