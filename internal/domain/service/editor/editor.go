// Package editor ведёт диалог изменения настроек: запрос поля, ожидание значения, проверка и применение.
package editor

import (
	"context"
	"fmt"
	"log/slog"

	"tg_dealscan/internal/domain"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/pkg/contextx"
	"tg_dealscan/pkg/errcodes"
	"tg_dealscan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Outcome результат обработки введённого значения.
// Err == nil означает, что значение применено.
type Outcome struct {
	Field value.SettingField
	Err   error
}

func (o Outcome) Updated() bool {
	return o.Err == nil
}

type Editor struct {
	store   SettingsWriter
	pending PendingStore
}

func New(store SettingsWriter, pending PendingStore) *Editor {
	return &Editor{
		store:   store,
		pending: pending,
	}
}

// Begin переводит сессию в ожидание значения поля. Повторный вызов заменяет ожидаемое поле.
func (e *Editor) Begin(ctx context.Context, session int64, field value.SettingField) error {
	if _, err := value.ParseSettingField(field.String()); err != nil {
		return domain.WrapError(err, errcodes.UnknownSettingField, "editor.Begin")
	}

	if err := e.pending.Put(ctx, session, field); err != nil {
		return domain.WrapError(err, errcodes.PendingEditStorage, "pending.Put")
	}

	logger(ctx).Debug("edit requested", slog.String(logx.FieldSettingField, field.String()))

	return nil
}

// Consume обрабатывает ввод, если сессия ждёт значение. false означает, что ожидания нет
// и сообщение нужно обработать как объявление.
// Ожидание снимается при любом исходе, в том числе при некорректном вводе.
func (e *Editor) Consume(ctx context.Context, session int64, input string) (Outcome, bool) {
	field, ok, err := e.pending.Pop(ctx, session)
	if err != nil {
		logger(ctx).Error("pending.Pop", logx.Error(err))
		return Outcome{}, false
	}
	if !ok {
		return Outcome{}, false
	}

	if err := Apply(e.store, field, input); err != nil {
		logger(ctx).Info("edit rejected",
			slog.String(logx.FieldSettingField, field.String()),
			logx.Error(err),
		)

		return Outcome{Field: field, Err: fmt.Errorf("editor.Apply: %w", err)}, true
	}

	logger(ctx).Info("setting updated", slog.String(logx.FieldSettingField, field.String()))

	return Outcome{Field: field}, true
}
