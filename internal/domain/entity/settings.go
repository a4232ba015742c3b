package entity

// Settings пороги и таблицы, по которым движок принимает решение о сделке.
// Инвариант MinPrice <= MaxPrice не проверяется.
type Settings struct {
	MinPrice          float64    // TON
	MaxPrice          float64    // TON
	BelowFloorPercent float64    // скидка от флора, начиная с которой сделка интересна
	RarityKeywords    []string   // в нижнем регистре
	Fees              PriceTable // комиссия площадки, %
	Floors            PriceTable // флор площадки, TON
}

// Clone возвращает независимую копию, безопасную для чтения без блокировок.
func (s Settings) Clone() Settings {
	keywords := make([]string, len(s.RarityKeywords))
	copy(keywords, s.RarityKeywords)

	return Settings{
		MinPrice:          s.MinPrice,
		MaxPrice:          s.MaxPrice,
		BelowFloorPercent: s.BelowFloorPercent,
		RarityKeywords:    keywords,
		Fees:              s.Fees.Clone(),
		Floors:            s.Floors.Clone(),
	}
}
