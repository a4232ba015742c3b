package editor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tg_dealscan/internal/domain"
	"tg_dealscan/internal/domain/service/editor"
	"tg_dealscan/internal/domain/service/settings"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/pkg/errcodes"
)

func TestEditorRoundTrip(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := settings.NewStore(settings.Defaults())
	e := editor.New(store, editor.NewMemoryPendingStore(0))

	_, ok := e.Consume(ctx, 1, "getgems 1 ton")
	rq.False(ok)

	rq.NoError(e.Begin(ctx, 1, value.FieldFees))

	outcome, ok := e.Consume(ctx, 1, "getgems=3.5")
	rq.True(ok)
	rq.True(outcome.Updated())
	rq.Equal(value.FieldFees, outcome.Field)
	rq.Equal(3.5, store.Snapshot().Fees.GetOrZero(value.Getgems))

	// Ожидание снято: следующий ввод идёт в сканер.
	_, ok = e.Consume(ctx, 1, "getgems=4")
	rq.False(ok)
	rq.Equal(3.5, store.Snapshot().Fees.GetOrZero(value.Getgems))
}

func TestEditorInvalidInputClearsPending(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := settings.NewStore(settings.Defaults())
	e := editor.New(store, editor.NewMemoryPendingStore(time.Hour))

	rq.NoError(e.Begin(ctx, 7, value.FieldFees))

	outcome, ok := e.Consume(ctx, 7, "getgems=3.5, portal=bad")
	rq.True(ok)
	rq.False(outcome.Updated())
	rq.True(domain.HasCode(outcome.Err, errcodes.InvalidFees))
	rq.Equal(settings.Defaults(), store.Snapshot())

	_, ok = e.Consume(ctx, 7, "getgems=3.5")
	rq.False(ok)
}

func TestEditorSessionsAreIndependent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := settings.NewStore(settings.Defaults())
	e := editor.New(store, editor.NewMemoryPendingStore(0))

	rq.NoError(e.Begin(ctx, 1, value.FieldMinPrice))
	rq.NoError(e.Begin(ctx, 2, value.FieldMaxPrice))
	rq.NoError(e.Begin(ctx, 2, value.FieldFloorPercent))

	outcome, ok := e.Consume(ctx, 2, "30")
	rq.True(ok)
	rq.Equal(value.FieldFloorPercent, outcome.Field)

	outcome, ok = e.Consume(ctx, 1, "1")
	rq.True(ok)
	rq.Equal(value.FieldMinPrice, outcome.Field)

	snapshot := store.Snapshot()
	rq.Equal(1.0, snapshot.MinPrice)
	rq.Equal(20.0, snapshot.MaxPrice)
	rq.Equal(30.0, snapshot.BelowFloorPercent)
}

func TestEditorBeginUnknownField(t *testing.T) {
	rq := require.New(t)

	e := editor.New(settings.NewStore(settings.Defaults()), editor.NewMemoryPendingStore(0))

	err := e.Begin(context.Background(), 1, value.SettingField("volume"))

	rq.True(domain.HasCode(err, errcodes.UnknownSettingField))
}

func TestMemoryPendingStoreExpires(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	pending := editor.NewMemoryPendingStore(20 * time.Millisecond)

	rq.NoError(pending.Put(ctx, 1, value.FieldRarity))
	time.Sleep(50 * time.Millisecond)

	_, ok, err := pending.Pop(ctx, 1)
	rq.NoError(err)
	rq.False(ok)
}
