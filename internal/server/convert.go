package server

import (
	"math"

	"github.com/samber/lo"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/pkg/rest"
)

func newRESTSettings(s entity.Settings) rest.Settings {
	return rest.Settings{
		MinPrice:          s.MinPrice,
		MaxPrice:          s.MaxPrice,
		BelowFloorPercent: s.BelowFloorPercent,
		RarityKeywords:    s.RarityKeywords,
		Fees:              newRESTPriceEntries(s.Fees),
		Floors:            newRESTPriceEntries(s.Floors),
	}
}

func newRESTPriceEntries(t entity.PriceTable) []rest.PriceEntry {
	return lo.Map(t.Entries(), func(e entity.PriceEntry, _ int) rest.PriceEntry {
		return rest.PriceEntry{
			Marketplace: e.Marketplace.String(),
			Value:       e.Value,
		}
	})
}

func newRESTFacts(f entity.ListingFacts) rest.ListingFacts {
	facts := rest.ListingFacts{
		Price:  f.Price,
		IsRare: f.IsRare,
	}

	if f.HasMarketplace() {
		facts.Marketplace = lo.ToPtr(f.Marketplace.String())
	}

	if f.URL != "" {
		facts.URL = lo.ToPtr(f.URL)
	}

	return facts
}

func newRESTEvaluation(f entity.ListingFacts, v entity.DealVerdict, ok bool) rest.Evaluation {
	evaluation := rest.Evaluation{
		ShouldAlert: ok,
		Facts:       newRESTFacts(f),
	}

	if !ok {
		return evaluation
	}

	evaluation.Verdict = &rest.Verdict{
		EffectiveBuyPrice: finite(v.EffectiveBuyPrice),
		Floor:             v.Floor,
		Discount:          v.Discount,
		BelowFloor:        v.BelowFloor,
		Rare:              v.Rare,
		ArbitrageTargets: lo.Map(v.ArbitrageTargets, func(t entity.ArbitrageTarget, _ int) rest.ArbitrageTarget {
			return rest.ArbitrageTarget{
				Marketplace: t.Marketplace.String(),
				Profit:      t.Profit,
			}
		}),
		Reasons: lo.Map(v.Reasons, func(r entity.Reason, _ int) string {
			return r.Text
		}),
	}

	return evaluation
}

// finite nil для Inf и NaN: JSON их не представляет.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}

	return &v
}
