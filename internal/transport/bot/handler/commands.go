package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// OnSettings отвечает на /start и /settings текущими настройками и клавиатурой.
func (h *Handler) OnSettings(ctx *th.Context, msg telego.Message) error {
	return h.publish(ctx, h.scanner.Settings(msg.Chat.ID))
}

// OnStatus текущие настройки без клавиатуры.
func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	status := h.scanner.Settings(msg.Chat.ID)
	status.WithSettingsKeyboard = false

	return h.publish(ctx, status)
}

// OnText любой текст: значение настройки, если его ждут, иначе объявление.
func (h *Handler) OnText(ctx *th.Context, msg telego.Message) error {
	reqCtx := sessionContext(ctx, msg.Chat.ID)

	return h.publish(reqCtx, h.scanner.HandleIncoming(reqCtx, msg.Chat.ID, msg.Text)...)
}
