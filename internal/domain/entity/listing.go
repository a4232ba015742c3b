package entity

import "tg_dealscan/internal/domain/value"

// ListingFacts факты, извлечённые из одного входящего сообщения. Не изменяются после создания.
type ListingFacts struct {
	RawText     string
	Marketplace value.Marketplace // пусто, если площадка не найдена
	Price       *float64          // nil, если цена не найдена
	URL         string            // пусто, если ссылки нет
	IsRare      bool
}

func (f ListingFacts) HasMarketplace() bool {
	return f.Marketplace != ""
}
