package editor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tg_dealscan/internal/domain"
	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/service/editor"
	"tg_dealscan/internal/domain/service/settings"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/pkg/errcodes"
)

func TestApplyScalarFields(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		field value.SettingField
		input string
		check func(s entity.Settings)
	}{
		{
			name:  "Min price",
			field: value.FieldMinPrice,
			input: "  1.5 ",
			check: func(s entity.Settings) { rq.Equal(1.5, s.MinPrice) },
		},
		{
			name:  "Max price",
			field: value.FieldMaxPrice,
			input: "50",
			check: func(s entity.Settings) { rq.Equal(50.0, s.MaxPrice) },
		},
		{
			name:  "Floor percent",
			field: value.FieldFloorPercent,
			input: "12.25",
			check: func(s entity.Settings) { rq.Equal(12.25, s.BelowFloorPercent) },
		},
		{
			name:  "Negative min is accepted",
			field: value.FieldMinPrice,
			input: "-1",
			check: func(s entity.Settings) { rq.Equal(-1.0, s.MinPrice) },
		},
		{
			name:  "Rarity keywords",
			field: value.FieldRarity,
			input: " Rare , ,MYTHIC,",
			check: func(s entity.Settings) { rq.Equal([]string{"rare", "mythic"}, s.RarityKeywords) },
		},
		{
			name:  "Empty rarity input clears keywords",
			field: value.FieldRarity,
			input: "   ",
			check: func(s entity.Settings) { rq.Empty(s.RarityKeywords) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			store := settings.NewStore(settings.Defaults())

			rq.NoError(editor.Apply(store, tc.field, tc.input))
			tc.check(store.Snapshot())
		})
	}
}

func TestApplyInvalidInputKeepsSettings(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		field value.SettingField
		input string
		code  string
	}{
		{name: "Min not a number", field: value.FieldMinPrice, input: "abc", code: string(errcodes.InvalidMinPrice)},
		{name: "Max empty", field: value.FieldMaxPrice, input: "  ", code: string(errcodes.InvalidMaxPrice)},
		{name: "Floor percent NaN", field: value.FieldFloorPercent, input: "NaN", code: string(errcodes.InvalidFloorPercent)},
		{name: "Max infinity", field: value.FieldMaxPrice, input: "+Inf", code: string(errcodes.InvalidMaxPrice)},
		{name: "Fees partly invalid", field: value.FieldFees, input: "getgems=3.5, portal=bad", code: string(errcodes.InvalidFees)},
		{name: "Fees missing separator", field: value.FieldFees, input: "getgems 3.5", code: string(errcodes.InvalidFees)},
		{name: "Fees double separator", field: value.FieldFees, input: "getgems=3=4", code: string(errcodes.InvalidFees)},
		{name: "Fees trailing comma", field: value.FieldFees, input: "getgems=3,", code: string(errcodes.InvalidFees)},
		{name: "Floors empty marketplace", field: value.FieldFloors, input: " =3", code: string(errcodes.InvalidFloors)},
		{name: "Floors empty value", field: value.FieldFloors, input: "portal=", code: string(errcodes.InvalidFloors)},
		{name: "Unknown field", field: value.SettingField("volume"), input: "1", code: string(errcodes.UnknownSettingField)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			store := settings.NewStore(settings.Defaults())

			err := editor.Apply(store, tc.field, tc.input)

			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))
			rq.Equal(settings.Defaults(), store.Snapshot())
		})
	}
}

func TestApplyFeesUpdatesOnlyListedKeys(t *testing.T) {
	rq := require.New(t)

	store := settings.NewStore(settings.Defaults())

	rq.NoError(editor.Apply(store, value.FieldFees, "getgems=3.5"))

	fees := store.Snapshot().Fees
	rq.Equal(3.5, fees.GetOrZero(value.Getgems))
	rq.Equal(5.0, fees.GetOrZero(value.Portal))
	rq.Equal(7.0, fees.GetOrZero(value.Tonnel))
	rq.Equal(0.0, fees.GetOrZero(value.Mrkt))
}

func TestApplyFloorsAddsUnknownMarketplace(t *testing.T) {
	rq := require.New(t)

	store := settings.NewStore(settings.Defaults())

	rq.NoError(editor.Apply(store, value.FieldFloors, " Fragment = 12 , TONNEL=8"))

	floors := store.Snapshot().Floors
	rq.Equal([]entity.PriceEntry{
		{Marketplace: value.Getgems, Value: 10},
		{Marketplace: value.Portal, Value: 10},
		{Marketplace: value.Tonnel, Value: 8},
		{Marketplace: value.Mrkt, Value: 9.5},
		{Marketplace: "fragment", Value: 12},
	}, floors.Entries())
}

func TestParseKeywords(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"1/1", "legendary"}, editor.ParseKeywords("1/1,  Legendary"))
	rq.Empty(editor.ParseKeywords(",,"))
}
