package settings

import (
	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/value"
)

// Defaults начальные настройки процесса. Никуда не сохраняются и при рестарте возвращаются к этим значениям.
func Defaults() entity.Settings {
	return entity.Settings{
		MinPrice:          0.2,
		MaxPrice:          20.0,
		BelowFloorPercent: 20,
		RarityKeywords:    []string{"rare", "limited", "legendary", "1/1"},
		Fees: entity.NewPriceTable(
			entity.PriceEntry{Marketplace: value.Getgems, Value: 5.0},
			entity.PriceEntry{Marketplace: value.Portal, Value: 5.0},
			entity.PriceEntry{Marketplace: value.Tonnel, Value: 7.0},
			entity.PriceEntry{Marketplace: value.Mrkt, Value: 0.0},
		),
		Floors: entity.NewPriceTable(
			entity.PriceEntry{Marketplace: value.Getgems, Value: 10.0},
			entity.PriceEntry{Marketplace: value.Portal, Value: 10.0},
			entity.PriceEntry{Marketplace: value.Tonnel, Value: 10.0},
			entity.PriceEntry{Marketplace: value.Mrkt, Value: 9.5},
		),
	}
}
