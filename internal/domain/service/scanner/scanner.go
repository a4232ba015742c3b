// Package scanner точка входа для входящего текста: сначала редактор настроек, затем поиск сделки.
package scanner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/service/deal"
	"tg_dealscan/internal/domain/service/editor"
	"tg_dealscan/internal/domain/service/extract"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/pkg/contextx"
	"tg_dealscan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type SettingsReader interface {
	Snapshot() entity.Settings
}

type Editor interface {
	Begin(ctx context.Context, session int64, field value.SettingField) error
	Consume(ctx context.Context, session int64, input string) (editor.Outcome, bool)
}

// Renderer превращает результаты в текст для пользователя.
type Renderer interface {
	Deal(facts entity.ListingFacts, verdict entity.DealVerdict) string
	EditPrompt(field value.SettingField) string
	EditUpdated(field value.SettingField) string
	EditInvalid(field value.SettingField, err error) string
	Settings(s entity.Settings) string
}

type Scanner struct {
	settings SettingsReader
	editor   Editor
	renderer Renderer
	metrics  *Metrics
}

func New(
	settings SettingsReader,
	editor Editor,
	renderer Renderer,
	metrics *Metrics,
) *Scanner {
	return &Scanner{
		settings: settings,
		editor:   editor,
		renderer: renderer,
		metrics:  metrics,
	}
}

// HandleIncoming обрабатывает один входящий текст сессии.
// Если сессия ждёт значение настройки, текст уходит в редактор и как объявление не рассматривается.
// Пустой результат означает, что отвечать не нужно.
func (s *Scanner) HandleIncoming(ctx context.Context, session int64, text string) []entity.OutboundMessage {
	if outcome, ok := s.editor.Consume(ctx, session, text); ok {
		s.metrics.observeEdit(outcome.Field, outcome.Updated())

		if outcome.Updated() {
			return []entity.OutboundMessage{{
				SessionID:            session,
				Kind:                 entity.OutboundEditUpdated,
				Text:                 s.renderer.EditUpdated(outcome.Field),
				WithSettingsKeyboard: true,
			}}
		}

		return []entity.OutboundMessage{{
			SessionID: session,
			Kind:      entity.OutboundEditInvalid,
			Text:      s.renderer.EditInvalid(outcome.Field, outcome.Err),
		}}
	}

	facts, verdict, ok := s.Evaluate(text)
	if !ok {
		s.metrics.observeIgnored()
		return nil
	}

	s.metrics.observeAlert(verdict)

	logger(ctx).Info("deal found",
		slog.String(logx.FieldMarketplace, verdict.Marketplace.String()),
		slog.Float64(logx.FieldPrice, verdict.Price),
		slog.Any(logx.FieldReasons, lo.Map(verdict.Reasons, func(r entity.Reason, _ int) entity.ReasonKind {
			return r.Kind
		})),
	)

	return []entity.OutboundMessage{{
		SessionID: session,
		Kind:      entity.OutboundDeal,
		Text:      s.renderer.Deal(facts, verdict),
		LinkURL:   facts.URL,
	}}
}

// Evaluate оценивает текст на текущем снимке настроек без побочных эффектов.
func (s *Scanner) Evaluate(text string) (entity.ListingFacts, entity.DealVerdict, bool) {
	snapshot := s.settings.Snapshot()
	facts := extract.Extract(text, snapshot.RarityKeywords)

	verdict, ok := deal.Evaluate(facts, snapshot)

	return facts, verdict, ok
}

// RequestEdit начинает редактирование поля и возвращает подсказку с ожидаемым форматом.
func (s *Scanner) RequestEdit(ctx context.Context, session int64, field value.SettingField) (entity.OutboundMessage, error) {
	if err := s.editor.Begin(ctx, session, field); err != nil {
		return entity.OutboundMessage{}, fmt.Errorf("editor.Begin: %w", err)
	}

	return entity.OutboundMessage{
		SessionID: session,
		Kind:      entity.OutboundEditPrompt,
		Text:      s.renderer.EditPrompt(field),
	}, nil
}

// Settings текущие настройки с клавиатурой редактирования.
func (s *Scanner) Settings(session int64) entity.OutboundMessage {
	return entity.OutboundMessage{
		SessionID:            session,
		Kind:                 entity.OutboundSettings,
		Text:                 s.renderer.Settings(s.settings.Snapshot()),
		WithSettingsKeyboard: true,
	}
}
