package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"tg_dealscan/internal/domain"
	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/pkg/errcodes"
)

// SettingsWriter точечные изменения настроек. Реализуется settings.Store.
type SettingsWriter interface {
	SetMinPrice(v float64)
	SetMaxPrice(v float64)
	SetBelowFloorPercent(v float64)
	SetRarityKeywords(keywords []string)
	UpdateFees(entries ...entity.PriceEntry)
	UpdateFloors(entries ...entity.PriceEntry)
}

var fieldCodes = map[value.SettingField]failure.ErrorCode{ //nolint:gochecknoglobals
	value.FieldMinPrice:     errcodes.InvalidMinPrice,
	value.FieldMaxPrice:     errcodes.InvalidMaxPrice,
	value.FieldFloorPercent: errcodes.InvalidFloorPercent,
	value.FieldFees:         errcodes.InvalidFees,
	value.FieldFloors:       errcodes.InvalidFloors,
}

// Apply проверяет ввод для поля и применяет его к настройкам.
// При ошибке настройки не меняются: таблицы комиссий и флоров обновляются целиком или никак.
func Apply(store SettingsWriter, field value.SettingField, input string) error {
	input = strings.TrimSpace(input)

	switch field {
	case value.FieldMinPrice, value.FieldMaxPrice, value.FieldFloorPercent:
		v, err := parseNumber(input)
		if err != nil {
			return domain.WrapError(err, fieldCodes[field], fmt.Sprintf("invalid %s value", field))
		}

		switch field { //nolint:exhaustive
		case value.FieldMinPrice:
			store.SetMinPrice(v)
		case value.FieldMaxPrice:
			store.SetMaxPrice(v)
		default:
			store.SetBelowFloorPercent(v)
		}
	case value.FieldRarity:
		store.SetRarityKeywords(ParseKeywords(input))
	case value.FieldFees, value.FieldFloors:
		entries, err := ParsePriceEntries(input)
		if err != nil {
			return domain.WrapError(err, fieldCodes[field], fmt.Sprintf("invalid %s value", field))
		}

		if field == value.FieldFees {
			store.UpdateFees(entries...)
		} else {
			store.UpdateFloors(entries...)
		}
	default:
		return domain.NewError(errcodes.UnknownSettingField, fmt.Sprintf("unknown setting field %q", field))
	}

	return nil
}

// ParseKeywords разбирает список через запятую: пробелы по краям убираются, регистр нижний, пустые элементы отбрасываются.
func ParseKeywords(input string) []string {
	keywords := lo.Map(strings.Split(input, ","), func(k string, _ int) string {
		return strings.ToLower(strings.TrimSpace(k))
	})

	return lo.Compact(keywords)
}

// ParsePriceEntries разбирает строку вида "getgems=2, portal=2.5".
// Любой некорректный элемент отклоняет весь ввод.
func ParsePriceEntries(input string) ([]entity.PriceEntry, error) {
	pieces := strings.Split(input, ",")
	entries := make([]entity.PriceEntry, 0, len(pieces))

	for _, piece := range pieces {
		parts := strings.Split(piece, "=")
		if len(parts) != 2 { //nolint:mnd
			return nil, fmt.Errorf("entry %q: expected marketplace=value", strings.TrimSpace(piece))
		}

		marketplace := value.NormalizeMarketplace(parts[0])
		if marketplace == "" {
			return nil, fmt.Errorf("entry %q: empty marketplace", strings.TrimSpace(piece))
		}

		v, err := parseNumber(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", strings.TrimSpace(piece), err)
		}

		entries = append(entries, entity.PriceEntry{Marketplace: marketplace, Value: v})
	}

	return entries, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("number %q is not finite", s)
	}

	return v, nil
}
