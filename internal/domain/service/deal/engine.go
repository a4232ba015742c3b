// Package deal решает, стоит ли объявление алерта: скидка от флора, редкость, арбитраж между площадками.
// Движок не хранит состояния и не делает I/O: результат зависит только от фактов и снимка настроек.
package deal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/value"
)

const (
	discountPlaces = 2
	profitPlaces   = 3
)

// Evaluate возвращает вердикт и true, если по объявлению нужно отправить алерт.
// false означает «ничего не делать»: нет площадки или цены, цена вне границ, ни один критерий не сработал.
func Evaluate(facts entity.ListingFacts, s entity.Settings) (entity.DealVerdict, bool) {
	if !facts.HasMarketplace() || facts.Price == nil {
		return entity.DealVerdict{}, false
	}

	price := *facts.Price
	if price < s.MinPrice || price > s.MaxPrice {
		return entity.DealVerdict{}, false
	}

	market := facts.Marketplace

	verdict := entity.DealVerdict{
		Marketplace:       market,
		Price:             price,
		EffectiveBuyPrice: EffectiveBuyPrice(price, s.Fees.GetOrZero(market)),
		Rare:              facts.IsRare,
	}

	if floor, ok := s.Floors.Get(market); ok {
		verdict.Floor = &floor

		// Нулевой флор считаем отсутствующим: скидку от него не посчитать.
		// Бесконечная скидка (флор около нуля) тоже не считается.
		if floor > 0 {
			if discount := FloorDiscount(price, floor); isFinite(discount) {
				verdict.Discount = &discount
				verdict.BelowFloor = discount >= s.BelowFloorPercent
			}
		}
	}

	verdict.ArbitrageTargets = ArbitrageTargets(market, verdict.EffectiveBuyPrice, s)

	verdict.ShouldAlert = verdict.BelowFloor || verdict.Rare || len(verdict.ArbitrageTargets) > 0
	if !verdict.ShouldAlert {
		return entity.DealVerdict{}, false
	}

	verdict.Reasons = reasons(verdict)

	return verdict, true
}

// EffectiveBuyPrice цена покупки с комиссией площадки.
func EffectiveBuyPrice(price, feePercent float64) float64 {
	return price * (1 + feePercent/100)
}

// FloorDiscount скидка от флора в процентах, округлённая до 2 знаков.
// При переполнении возвращает ±Inf (или NaN для нулевого флора) без округления.
func FloorDiscount(price, floor float64) float64 {
	return round((1-price/floor)*100, discountPlaces)
}

// ArbitrageTargets обходит флоры в порядке добавления и оставляет площадки,
// где продажа по флору за вычетом комиссии дороже эффективной цены покупки.
func ArbitrageTargets(buyOn value.Marketplace, effectiveBuyPrice float64, s entity.Settings) []entity.ArbitrageTarget {
	var targets []entity.ArbitrageTarget

	for _, floor := range s.Floors.Entries() {
		if floor.Marketplace == buyOn {
			continue
		}

		sellAfterFee := floor.Value * (1 - s.Fees.GetOrZero(floor.Marketplace)/100)

		profit := round(sellAfterFee-effectiveBuyPrice, profitPlaces)
		if isFinite(profit) && profit > 0 {
			targets = append(targets, entity.ArbitrageTarget{
				Marketplace: floor.Marketplace,
				Profit:      profit,
			})
		}
	}

	return targets
}

func reasons(v entity.DealVerdict) []entity.Reason {
	var result []entity.Reason

	if v.BelowFloor {
		result = append(result, entity.Reason{
			Kind: entity.ReasonBelowFloor,
			Text: fmt.Sprintf("📉 %s%% below %s floor", FormatNumber(*v.Discount), v.Marketplace.Label()),
		})
	}

	if v.Rare {
		result = append(result, entity.Reason{
			Kind: entity.ReasonRare,
			Text: "💎 Rare keyword detected",
		})
	}

	if len(v.ArbitrageTargets) > 0 {
		parts := make([]string, 0, len(v.ArbitrageTargets))
		for _, t := range v.ArbitrageTargets {
			parts = append(parts, fmt.Sprintf("%s (+%s TON)", t.Marketplace.Label(), FormatNumber(t.Profit)))
		}

		result = append(result, entity.Reason{
			Kind: entity.ReasonArbitrage,
			Text: "🔁 Cross-sell: " + strings.Join(parts, " | "),
		})
	}

	return result
}

// FormatNumber печатает число без лишних нулей: 21, 4.15, 0.2.
func FormatNumber(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return decimal.NewFromFloat(v).String()
}

// round округляет половину от нуля (Decimal.Round). Inf и NaN возвращаются как есть.
func round(v float64, places int32) float64 {
	if !isFinite(v) {
		return v
	}

	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
