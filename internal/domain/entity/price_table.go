package entity

import "tg_dealscan/internal/domain/value"

// PriceEntry пара "площадка: число" (комиссия в % или флор в TON).
type PriceEntry struct {
	Marketplace value.Marketplace `json:"marketplace"`
	Value       float64           `json:"value"`
}

// PriceTable отображение площадка → число, которое помнит порядок добавления ключей.
// Обновления точечные: Set меняет только свой ключ. Нулевое значение готово к работе.
// Таблиц на несколько площадок хватает линейного поиска, поэтому пары лежат одним срезом
// и Get с Entries всегда видят одно и то же.
// Присваивание делит общий массив с оригиналом: для независимой копии нужен Clone.
type PriceTable struct {
	entries []PriceEntry
}

func NewPriceTable(entries ...PriceEntry) PriceTable {
	var t PriceTable
	for _, e := range entries {
		t.Set(e.Marketplace, e.Value)
	}
	return t
}

func (t PriceTable) Get(m value.Marketplace) (float64, bool) {
	if i := t.index(m); i >= 0 {
		return t.entries[i].Value, true
	}
	return 0, false
}

// GetOrZero возвращает значение или 0, если ключа нет.
func (t PriceTable) GetOrZero(m value.Marketplace) float64 {
	v, _ := t.Get(m)
	return v
}

// Set обновляет значение; новый ключ добавляется в конец порядка обхода.
func (t *PriceTable) Set(m value.Marketplace, v float64) {
	if i := t.index(m); i >= 0 {
		t.entries[i].Value = v
		return
	}
	t.entries = append(t.entries, PriceEntry{Marketplace: m, Value: v})
}

func (t PriceTable) Len() int {
	return len(t.entries)
}

// Entries возвращает пары в порядке добавления.
func (t PriceTable) Entries() []PriceEntry {
	result := make([]PriceEntry, len(t.entries))
	copy(result, t.entries)
	return result
}

// Clone глубокая копия: изменения копии не видны оригиналу.
func (t PriceTable) Clone() PriceTable {
	if len(t.entries) == 0 {
		return PriceTable{}
	}

	return PriceTable{entries: t.Entries()}
}

func (t PriceTable) index(m value.Marketplace) int {
	for i, e := range t.entries {
		if e.Marketplace == m {
			return i
		}
	}
	return -1
}
