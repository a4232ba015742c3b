package entity

import "tg_dealscan/internal/domain/value"

type ReasonKind string

const (
	ReasonBelowFloor ReasonKind = "below_floor"
	ReasonRare       ReasonKind = "rare"
	ReasonArbitrage  ReasonKind = "arbitrage"
)

// Reason одна из причин алерта с готовым человекочитаемым текстом.
type Reason struct {
	Kind ReasonKind
	Text string
}

// ArbitrageTarget площадка, где перепродажа по флору за вычетом комиссии даёт прибыль.
type ArbitrageTarget struct {
	Marketplace value.Marketplace
	Profit      float64 // TON, округлено до 3 знаков
}

// DealVerdict решение движка по одному объявлению.
type DealVerdict struct {
	ShouldAlert       bool
	Marketplace       value.Marketplace
	Price             float64
	EffectiveBuyPrice float64  // цена с учётом комиссии площадки покупки
	Floor             *float64 // флор площадки покупки, если задан
	Discount          *float64 // скидка от флора в %, округлено до 2 знаков
	BelowFloor        bool
	Rare              bool
	ArbitrageTargets  []ArbitrageTarget
	Reasons           []Reason
}
