package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/value"
)

func TestPriceTable(t *testing.T) {
	rq := require.New(t)

	var table entity.PriceTable

	_, ok := table.Get(value.Getgems)
	rq.False(ok)
	rq.Zero(table.GetOrZero(value.Getgems))
	rq.Zero(table.Len())

	table.Set(value.Tonnel, 7)
	table.Set(value.Getgems, 5)
	table.Set(value.Tonnel, 1.5)

	rq.Equal([]entity.PriceEntry{
		{Marketplace: value.Tonnel, Value: 1.5},
		{Marketplace: value.Getgems, Value: 5},
	}, table.Entries())

	clone := table.Clone()
	clone.Set(value.Portal, 2.5)
	clone.Set(value.Getgems, 0)

	rq.Equal(2, table.Len())
	rq.Equal(5.0, table.GetOrZero(value.Getgems))
	rq.Equal(3, clone.Len())
	rq.Equal(0.0, clone.GetOrZero(value.Getgems))
}

func TestSettingsClone(t *testing.T) {
	rq := require.New(t)

	original := entity.Settings{
		MinPrice:       1,
		MaxPrice:       2,
		RarityKeywords: []string{"rare"},
		Fees:           entity.NewPriceTable(entity.PriceEntry{Marketplace: value.Getgems, Value: 5}),
	}

	clone := original.Clone()
	clone.RarityKeywords[0] = "common"
	clone.Fees.Set(value.Getgems, 1)

	rq.Equal([]string{"rare"}, original.RarityKeywords)
	rq.Equal(5.0, original.Fees.GetOrZero(value.Getgems))
	rq.Equal(0, clone.Floors.Len())
}

func TestPriceTableAssignedCopyStaysConsistent(t *testing.T) {
	rq := require.New(t)

	original := entity.NewPriceTable(
		entity.PriceEntry{Marketplace: value.Getgems, Value: 10},
		entity.PriceEntry{Marketplace: value.Portal, Value: 10},
	)

	copied := original
	copied.Set(value.Mrkt, 9.5)

	// Новый ключ копии не появляется в оригинале ни через Get, ни через Entries.
	_, ok := original.Get(value.Mrkt)
	rq.False(ok)
	rq.Equal(2, original.Len())
	rq.Len(original.Entries(), original.Len())

	v, ok := copied.Get(value.Mrkt)
	rq.True(ok)
	rq.Equal(9.5, v)
	rq.Equal(3, copied.Len())

	entries := original.Entries()
	entries[0].Value = 0
	rq.Equal(10.0, original.GetOrZero(value.Getgems))
}
