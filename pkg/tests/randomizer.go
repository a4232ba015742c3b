package tests

import (
	"math/rand"
	"time"
)

// Randomizer источник случайных значений для property-тестов.
type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	// Price случайная цена в TON в полуинтервале [0, max).
	Price func(max float64) float64
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Price:   func(max float64) float64 { return random.Float64() * max },
	}
}
