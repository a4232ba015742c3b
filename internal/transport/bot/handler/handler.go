package handler

import (
	"context"
	"fmt"
	"log/slog"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/pkg/contextx"
	"tg_dealscan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Scanner interface {
	HandleIncoming(ctx context.Context, session int64, text string) []entity.OutboundMessage
	RequestEdit(ctx context.Context, session int64, field value.SettingField) (entity.OutboundMessage, error)
	Settings(session int64) entity.OutboundMessage
}

// Handler обработчики команд, кнопок и текста. Ответы не отправляются напрямую,
// а кладутся в outbox: порядок ответов одной сессии совпадает с порядком обработки.
type Handler struct {
	scanner Scanner
	outbox  chan<- entity.OutboundMessage
}

func New(scanner Scanner, outbox chan<- entity.OutboundMessage) *Handler {
	return &Handler{
		scanner: scanner,
		outbox:  outbox,
	}
}

func (h *Handler) publish(ctx context.Context, messages ...entity.OutboundMessage) error {
	for _, msg := range messages {
		select {
		case h.outbox <- msg:
		case <-ctx.Done():
			return fmt.Errorf("publish to session %d: %w", msg.SessionID, ctx.Err())
		}
	}

	return nil
}

// sessionContext контекст обработки одного события с trace id и логгером сессии.
func sessionContext(ctx context.Context, session int64) context.Context {
	traceID := contextx.NewTraceID()

	ctx = contextx.WithTraceID(ctx, traceID)
	ctx = contextx.WithSessionID(ctx, contextx.SessionID(session))

	return contextx.WithLogger(ctx, logger(ctx).With(
		logx.Stringer(logx.FieldTraceID, traceID),
		slog.Int64(logx.FieldSessionID, session),
	))
}
