// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// PriceEntry Значение для площадки
type PriceEntry struct {
	Marketplace string  `json:"marketplace"`
	Value       float64 `json:"value"`
}

// Settings Текущие настройки движка
type Settings struct {
	MinPrice          float64      `json:"minPrice"`
	MaxPrice          float64      `json:"maxPrice"`
	BelowFloorPercent float64      `json:"belowFloorPercent"`
	RarityKeywords    []string     `json:"rarityKeywords"`
	Fees              []PriceEntry `json:"fees"`
	Floors            []PriceEntry `json:"floors"`
}

// EvaluateRequest Текст объявления для пробной оценки
type EvaluateRequest struct {
	Text string `json:"text" validate:"required"`
}

// ListingFacts Факты, извлечённые из текста
type ListingFacts struct {
	Marketplace *string  `json:"marketplace"`
	Price       *float64 `json:"price"`
	URL         *string  `json:"url"`
	IsRare      bool     `json:"isRare"`
}

// ArbitrageTarget Площадка для перепродажи
type ArbitrageTarget struct {
	Marketplace string  `json:"marketplace"`
	Profit      float64 `json:"profit"`
}

// Verdict Решение по объявлению
type Verdict struct {
	// EffectiveBuyPrice пуст, если цена с комиссией не помещается в float64.
	EffectiveBuyPrice *float64          `json:"effectiveBuyPrice"`
	Floor             *float64          `json:"floor"`
	Discount          *float64          `json:"discount"`
	BelowFloor        bool              `json:"belowFloor"`
	Rare              bool              `json:"rare"`
	ArbitrageTargets  []ArbitrageTarget `json:"arbitrageTargets"`
	Reasons           []string          `json:"reasons"`
}

// Evaluation Результат пробной оценки. Verdict пуст, если алерта не было бы.
type Evaluation struct {
	ShouldAlert bool         `json:"shouldAlert"`
	Facts       ListingFacts `json:"facts"`
	Verdict     *Verdict     `json:"verdict"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
