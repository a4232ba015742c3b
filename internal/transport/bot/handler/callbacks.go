package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"tg_dealscan/internal/transport/bot/view"
	"tg_dealscan/pkg/logx"
)

// OnSettingsCallback нажатие кнопки настройки: сессия начинает ждать значение поля.
func (h *Handler) OnSettingsCallback(ctx *th.Context, query telego.CallbackQuery) error {
	if query.Message == nil {
		return h.answer(ctx, query, view.UnknownSetting)
	}

	session := query.Message.GetChat().ID
	reqCtx := sessionContext(ctx, session)

	field, ok := view.ParseSettingsCallback(query.Data)
	if !ok {
		return h.answer(ctx, query, view.UnknownSetting)
	}

	prompt, err := h.scanner.RequestEdit(reqCtx, session, field)
	if err != nil {
		logger(reqCtx).Error("scanner.RequestEdit", logx.Error(err))
		if answerErr := h.answer(ctx, query, view.UnknownSetting); answerErr != nil {
			logger(reqCtx).Warn("answer callback query", logx.Error(answerErr))
		}

		return fmt.Errorf("scanner.RequestEdit: %w", err)
	}

	// Часики на кнопке убираем до отправки подсказки.
	if err := h.answer(ctx, query, ""); err != nil {
		logger(reqCtx).Warn("answer callback query", logx.Error(err))
	}

	return h.publish(reqCtx, prompt)
}

// OnUnknownCallback отвечает на остальные нажатия, чтобы Telegram не показывал загрузку.
func (h *Handler) OnUnknownCallback(ctx *th.Context, query telego.CallbackQuery) error {
	return h.answer(ctx, query, "")
}

func (h *Handler) answer(ctx *th.Context, query telego.CallbackQuery, text string) error {
	params := tu.CallbackQuery(query.ID)
	if text != "" {
		params = params.WithText(text)
	}

	if err := ctx.Bot().AnswerCallbackQuery(ctx, params); err != nil {
		return fmt.Errorf("bot.AnswerCallbackQuery: %w", err)
	}

	return nil
}
