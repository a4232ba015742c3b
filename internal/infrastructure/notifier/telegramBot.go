package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/transport/bot/view"
	"tg_dealscan/pkg/contextx"
	"tg_dealscan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// MessageSender часть Bot API, нужная для отправки. Реализуется *telego.Bot.
type MessageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

type TelegramBot struct {
	bot MessageSender
}

func NewTelegramBot(bot MessageSender) *TelegramBot {
	return &TelegramBot{
		bot: bot,
	}
}

// Run отправляет сообщения из канала по одному в порядке поступления.
// Ошибка отправки логируется и не останавливает цикл.
func (b *TelegramBot) Run(ctx context.Context, outbox <-chan entity.OutboundMessage) error {
	logger(ctx).Info("notifier started")

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("notifier stopped")
			return nil
		case msg, ok := <-outbox:
			if !ok {
				logger(ctx).Info("notifier stopped", slog.String("reason", "outbox closed"))
				return nil
			}

			if err := b.Send(ctx, msg); err != nil {
				logger(ctx).Error("failed to send message",
					slog.Int64(logx.FieldSessionID, msg.SessionID),
					slog.String("kind", string(msg.Kind)),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) Send(ctx context.Context, msg entity.OutboundMessage) error {
	if _, err := b.bot.SendMessage(ctx, NewSendMessageParams(msg)); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

// NewSendMessageParams HTML-сообщение с кнопкой «купить» или клавиатурой настроек.
func NewSendMessageParams(msg entity.OutboundMessage) *telego.SendMessageParams {
	params := tu.Message(tu.ID(msg.SessionID), msg.Text).
		WithParseMode(telego.ModeHTML).
		WithLinkPreviewOptions(&telego.LinkPreviewOptions{IsDisabled: true})

	switch {
	case msg.LinkURL != "":
		params = params.WithReplyMarkup(view.BuyNowKeyboard(msg.LinkURL))
	case msg.WithSettingsKeyboard:
		params = params.WithReplyMarkup(view.SettingsKeyboard())
	}

	return params
}
