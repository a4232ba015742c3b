package view_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tg_dealscan/internal/domain"
	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/service/deal"
	"tg_dealscan/internal/domain/service/extract"
	"tg_dealscan/internal/domain/service/settings"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/internal/transport/bot/view"
	"tg_dealscan/pkg/errcodes"
)

func TestRendererDeal(t *testing.T) {
	rq := require.New(t)

	s := settings.Defaults()
	s.BelowFloorPercent = 100

	facts := extract.Extract("tonnel 5 ton", s.RarityKeywords)
	verdict, ok := deal.Evaluate(facts, s)
	rq.True(ok)

	text := view.NewRenderer().Deal(facts, verdict)

	rq.Equal(view.DealHeader+"\n\n"+
		"🏪 <b>TONNEL</b>  Price: 5 TON  After Fee: 5.350 TON\n"+
		"📊 Floor: 10 TON\n"+
		"🏷 🔁 Cross-sell: GETGEMS (+4.15 TON) | PORTAL (+4.15 TON) | MRKT (+4.15 TON)\n\n"+
		"<i>no link in listing</i>", text)
}

func TestRendererDealEscapesMarketplace(t *testing.T) {
	rq := require.New(t)

	price := 1.0
	verdict := entity.DealVerdict{
		Marketplace:       value.Getgems,
		Price:             price,
		EffectiveBuyPrice: price,
		Reasons:           []entity.Reason{{Kind: entity.ReasonArbitrage, Text: "🔁 Cross-sell: <B> (+1 TON)"}},
	}

	text := view.NewRenderer().Deal(entity.ListingFacts{URL: "https://x"}, verdict)

	rq.Contains(text, "&lt;B&gt;")
	rq.Contains(text, "📊 Floor: —")
	rq.NotContains(text, "no link")
}

func TestRendererEditMessages(t *testing.T) {
	rq := require.New(t)

	r := view.NewRenderer()

	rq.Equal("Send new MIN price in TON:", r.EditPrompt(value.FieldMinPrice))
	rq.Equal("Send fees as:\ngetgems=2, portal=2.5, tonnel=1.5, mrkt=2", r.EditPrompt(value.FieldFees))
	rq.Equal(view.EditUpdatedText, r.EditUpdated(value.FieldFees))
	rq.Equal(view.EditInvalidText, r.EditInvalid(value.FieldMinPrice, errors.New("boom")))
	rq.Equal(
		view.EditInvalidText+"\n<i>expected getgems=2, portal=2.5, tonnel=1.5, mrkt=2</i>",
		r.EditInvalid(value.FieldFloors, domain.NewError(errcodes.InvalidFloors, "invalid floors value")),
	)
}

func TestRendererSettings(t *testing.T) {
	rq := require.New(t)

	text := view.NewRenderer().Settings(settings.Defaults())

	rq.Contains(text, "Min price: <b>0.2</b> TON")
	rq.Contains(text, "Max price: <b>20</b> TON")
	rq.Contains(text, "Below floor: <b>20%</b>")
	rq.Contains(text, "<code>rare, limited, legendary, 1/1</code>")
	rq.Contains(text, "Fees: GETGEMS 5%, PORTAL 5%, TONNEL 7%, MRKT 0%")
	rq.Contains(text, "Floors: GETGEMS 10 TON, PORTAL 10 TON, TONNEL 10 TON, MRKT 9.5 TON")
}

func TestSettingsKeyboard(t *testing.T) {
	rq := require.New(t)

	keyboard := view.SettingsKeyboard()

	var data []string
	for _, row := range keyboard.InlineKeyboard {
		for _, button := range row {
			data = append(data, button.CallbackData)
		}
	}

	rq.Equal([]string{"set_min", "set_max", "set_floor_pct", "set_rare", "set_fees", "set_floors"}, data)

	for _, d := range data {
		field, ok := view.ParseSettingsCallback(d)
		rq.True(ok)
		rq.Equal(view.SettingsCallbackPrefix+field.String(), d)
	}
}

func TestParseSettingsCallback(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		data  string
		field value.SettingField
		ok    bool
	}{
		{name: "Fees", data: "set_fees", field: value.FieldFees, ok: true},
		{name: "Floor percent", data: "set_floor_pct", field: value.FieldFloorPercent, ok: true},
		{name: "Unknown field", data: "set_volume"},
		{name: "Foreign prefix", data: "catalog_page:1"},
		{name: "Empty", data: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			field, ok := view.ParseSettingsCallback(tc.data)

			rq.Equal(tc.ok, ok)
			rq.Equal(tc.field, field)
		})
	}
}

func TestBuyNowKeyboard(t *testing.T) {
	rq := require.New(t)

	keyboard := view.BuyNowKeyboard("https://getgems.io/nft/1")

	rq.Len(keyboard.InlineKeyboard, 1)
	rq.Equal(view.BuyNowButton, keyboard.InlineKeyboard[0][0].Text)
	rq.Equal("https://getgems.io/nft/1", keyboard.InlineKeyboard[0][0].URL)
}
