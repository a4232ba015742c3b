package handler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/internal/transport/bot/handler"
)

type stubScanner struct{}

func (stubScanner) HandleIncoming(_ context.Context, session int64, text string) []entity.OutboundMessage {
	return []entity.OutboundMessage{{SessionID: session, Text: text}, {SessionID: session, Text: text + "!"}}
}

func (stubScanner) RequestEdit(_ context.Context, session int64, field value.SettingField) (entity.OutboundMessage, error) {
	return entity.OutboundMessage{SessionID: session, Text: field.String()}, nil
}

func (stubScanner) Settings(session int64) entity.OutboundMessage {
	return entity.OutboundMessage{SessionID: session, WithSettingsKeyboard: true}
}

func TestPublishRespectsContext(t *testing.T) {
	rq := require.New(t)

	outbox := make(chan entity.OutboundMessage)
	h := handler.New(stubScanner{}, outbox)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := handler.Publish(h, ctx, entity.OutboundMessage{SessionID: 1})
	rq.ErrorIs(err, context.DeadlineExceeded)
}

func TestPublishKeepsOrder(t *testing.T) {
	rq := require.New(t)

	outbox := make(chan entity.OutboundMessage, 2)
	h := handler.New(stubScanner{}, outbox)

	rq.NoError(handler.Publish(h, context.Background(), stubScanner{}.HandleIncoming(context.Background(), 3, "x")...))

	rq.Equal("x", (<-outbox).Text)
	rq.Equal("x!", (<-outbox).Text)
}
