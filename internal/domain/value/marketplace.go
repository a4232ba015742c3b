package value

import "strings"

// Marketplace идентификатор площадки. Значения всегда в нижнем регистре.
type Marketplace string

const (
	Getgems Marketplace = "getgems"
	Portal  Marketplace = "portal"
	Tonnel  Marketplace = "tonnel"
	Mrkt    Marketplace = "mrkt"
)

// Marketplaces фиксированный словарь площадок в порядке проверки.
// Порядок важен: в тексте побеждает первая найденная площадка из списка.
var Marketplaces = []Marketplace{Getgems, Portal, Tonnel, Mrkt} //nolint:gochecknoglobals

// NormalizeMarketplace приводит произвольный ввод к виду ключа таблиц комиссий и флоров.
func NormalizeMarketplace(s string) Marketplace {
	return Marketplace(strings.ToLower(strings.TrimSpace(s)))
}

func (m Marketplace) String() string {
	return string(m)
}

// Label используется в сообщениях: GETGEMS, PORTAL, ...
func (m Marketplace) Label() string {
	return strings.ToUpper(string(m))
}

// IsKnown сообщает, входит ли площадка в фиксированный словарь.
func (m Marketplace) IsKnown() bool {
	for _, known := range Marketplaces {
		if m == known {
			return true
		}
	}
	return false
}
