// Package settings хранит живые настройки движка, общие для всех чатов.
package settings

import (
	"sync"

	"tg_dealscan/internal/domain/entity"
)

// Store единственный экземпляр настроек процесса. Передаётся явно в движок и редактор.
// Чтение отдаёт снимок всех полей целиком, поэтому оценка никогда не видит половину обновления.
type Store struct {
	mu       sync.RWMutex
	settings entity.Settings
}

func NewStore(initial entity.Settings) *Store {
	return &Store{
		settings: initial.Clone(),
	}
}

// Snapshot возвращает независимую копию текущих настроек.
func (s *Store) Snapshot() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.Clone()
}

func (s *Store) SetMinPrice(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.MinPrice = v
}

func (s *Store) SetMaxPrice(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.MaxPrice = v
}

func (s *Store) SetBelowFloorPercent(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.BelowFloorPercent = v
}

// SetRarityKeywords заменяет список ключевых слов целиком.
func (s *Store) SetRarityKeywords(keywords []string) {
	cp := make([]string, len(keywords))
	copy(cp, keywords)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.RarityKeywords = cp
}

// UpdateFees обновляет только перечисленные площадки, остальные ключи не трогает.
// Весь набор применяется под одной блокировкой.
func (s *Store) UpdateFees(entries ...entity.PriceEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		s.settings.Fees.Set(e.Marketplace, e.Value)
	}
}

// UpdateFloors аналогично UpdateFees для таблицы флоров.
func (s *Store) UpdateFloors(entries ...entity.PriceEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		s.settings.Floors.Set(e.Marketplace, e.Value)
	}
}
