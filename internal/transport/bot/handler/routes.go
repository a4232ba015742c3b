package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"tg_dealscan/internal/transport/bot/middleware"
	"tg_dealscan/internal/transport/bot/view"
	"tg_dealscan/internal/worker"
)

// RegisterRoutes регистрирует обработчики. Telego выбирает первый подходящий,
// поэтому общие обработчики текста и кнопок идут последними: каждое событие
// с билетом Sequencer обязательно дойдёт до обработчика и отпустит очередь сессии.
func (h *Handler) RegisterRoutes(bh *th.BotHandler, sequencer *worker.Sequencer) {
	bh.Use(middleware.Recovery())
	bh.Use(middleware.Sequential(sequencer))

	bh.HandleMessage(h.OnSettings, th.CommandEqual("start"))
	bh.HandleMessage(h.OnSettings, th.CommandEqual("settings"))
	bh.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	bh.HandleCallbackQuery(h.OnSettingsCallback, th.CallbackDataPrefix(view.SettingsCallbackPrefix))

	bh.HandleMessage(h.OnText, th.AnyMessageWithText())
	bh.HandleCallbackQuery(h.OnUnknownCallback, th.AnyCallbackQuery())
}
