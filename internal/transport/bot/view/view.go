// Package view тексты и клавиатуры бота.
package view

import (
	"fmt"
	"html"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/samber/lo"

	"tg_dealscan/internal/domain"
	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/service/deal"
	"tg_dealscan/internal/domain/value"
	"tg_dealscan/pkg/errcodes"
)

// SettingsCallbackPrefix префикс callback data кнопок клавиатуры настроек: set_min, set_fees, ...
const SettingsCallbackPrefix = "set_"

const (
	SettingsHeader   = "⚙️ <b>Bot Settings</b> (configure by buttons):"
	EditUpdatedText  = "✅ Updated."
	EditInvalidText  = "❌ Invalid format."
	UnknownSetting   = "Unknown setting"
	BuyNowButton     = "🛒 BUY NOW"
	DealHeader       = "🔥 <b>DEAL FOUND</b>"
	priceTableFormat = "getgems=2, portal=2.5, tonnel=1.5, mrkt=2"
)

var prompts = map[value.SettingField]string{ //nolint:gochecknoglobals
	value.FieldMinPrice:     "Send new MIN price in TON:",
	value.FieldMaxPrice:     "Send new MAX price in TON:",
	value.FieldFloorPercent: "Send new below floor % threshold:",
	value.FieldRarity:       "Send rarity keywords separated by commas:\nrare, limited, legendary, 1/1",
	value.FieldFees:         "Send fees as:\n" + priceTableFormat,
	value.FieldFloors:       "Send floors as:\n" + priceTableFormat,
}

var hints = map[failure.ErrorCode]string{ //nolint:gochecknoglobals
	errcodes.InvalidMinPrice:     "expected a number, e.g. 0.5",
	errcodes.InvalidMaxPrice:     "expected a number, e.g. 20",
	errcodes.InvalidFloorPercent: "expected a number, e.g. 15",
	errcodes.InvalidFees:         "expected " + priceTableFormat,
	errcodes.InvalidFloors:       "expected " + priceTableFormat,
}

var buttons = map[value.SettingField]string{ //nolint:gochecknoglobals
	value.FieldMinPrice:     "🔻 Min Price",
	value.FieldMaxPrice:     "🔺 Max Price",
	value.FieldFloorPercent: "📉 Below Floor %",
	value.FieldRarity:       "💎 Rarity Keywords",
	value.FieldFees:         "🏪 Fees",
	value.FieldFloors:       "📊 Floors",
}

// Renderer HTML-представление результатов сканера.
type Renderer struct{}

func NewRenderer() Renderer {
	return Renderer{}
}

func (Renderer) Deal(facts entity.ListingFacts, verdict entity.DealVerdict) string {
	var sb strings.Builder

	sb.WriteString(DealHeader + "\n\n")
	sb.WriteString(fmt.Sprintf("🏪 <b>%s</b>  Price: %s TON  After Fee: %.3f TON\n",
		html.EscapeString(verdict.Marketplace.Label()),
		deal.FormatNumber(verdict.Price),
		verdict.EffectiveBuyPrice,
	))

	floor := "—"
	if verdict.Floor != nil {
		floor = deal.FormatNumber(*verdict.Floor) + " TON"
	}
	sb.WriteString(fmt.Sprintf("📊 Floor: %s\n", floor))

	reasons := lo.Map(verdict.Reasons, func(r entity.Reason, _ int) string {
		return html.EscapeString(r.Text)
	})
	sb.WriteString("🏷 " + strings.Join(reasons, " | "))

	if facts.URL == "" {
		sb.WriteString("\n\n<i>no link in listing</i>")
	}

	return sb.String()
}

func (Renderer) EditPrompt(field value.SettingField) string {
	if prompt, ok := prompts[field]; ok {
		return prompt
	}

	return fmt.Sprintf("Send new value for %s:", html.EscapeString(field.String()))
}

func (Renderer) EditUpdated(value.SettingField) string {
	return EditUpdatedText
}

func (Renderer) EditInvalid(_ value.SettingField, err error) string {
	code, ok := domain.GetCode(err)
	if !ok {
		return EditInvalidText
	}

	hint, ok := hints[code]
	if !ok {
		return EditInvalidText
	}

	return EditInvalidText + "\n<i>" + html.EscapeString(hint) + "</i>"
}

func (Renderer) Settings(s entity.Settings) string {
	var sb strings.Builder

	sb.WriteString(SettingsHeader + "\n\n")
	sb.WriteString(fmt.Sprintf("🔻 Min price: <b>%s</b> TON\n", deal.FormatNumber(s.MinPrice)))
	sb.WriteString(fmt.Sprintf("🔺 Max price: <b>%s</b> TON\n", deal.FormatNumber(s.MaxPrice)))
	sb.WriteString(fmt.Sprintf("📉 Below floor: <b>%s%%</b>\n", deal.FormatNumber(s.BelowFloorPercent)))
	sb.WriteString(fmt.Sprintf("💎 Rarity: <code>%s</code>\n", html.EscapeString(strings.Join(s.RarityKeywords, ", "))))
	sb.WriteString("🏪 Fees: " + priceTable(s.Fees, "%") + "\n")
	sb.WriteString("📊 Floors: " + priceTable(s.Floors, " TON"))

	return sb.String()
}

func priceTable(t entity.PriceTable, unit string) string {
	if t.Len() == 0 {
		return "—"
	}

	parts := lo.Map(t.Entries(), func(e entity.PriceEntry, _ int) string {
		return fmt.Sprintf("%s %s%s", html.EscapeString(e.Marketplace.Label()), deal.FormatNumber(e.Value), unit)
	})

	return strings.Join(parts, ", ")
}

// SettingsKeyboard клавиатура редактирования настроек.
func SettingsKeyboard() *telego.InlineKeyboardMarkup {
	button := func(field value.SettingField) telego.InlineKeyboardButton {
		return tu.InlineKeyboardButton(buttons[field]).WithCallbackData(SettingsCallbackPrefix + field.String())
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(button(value.FieldMinPrice), button(value.FieldMaxPrice)),
		tu.InlineKeyboardRow(button(value.FieldFloorPercent)),
		tu.InlineKeyboardRow(button(value.FieldRarity)),
		tu.InlineKeyboardRow(button(value.FieldFees)),
		tu.InlineKeyboardRow(button(value.FieldFloors)),
	)
}

// BuyNowKeyboard кнопка со ссылкой на объявление.
func BuyNowKeyboard(url string) *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(tu.InlineKeyboardButton(BuyNowButton).WithURL(url)),
	)
}

// ParseSettingsCallback поле из callback data вида set_<field>.
func ParseSettingsCallback(data string) (value.SettingField, bool) {
	name, ok := strings.CutPrefix(data, SettingsCallbackPrefix)
	if !ok {
		return "", false
	}

	field, err := value.ParseSettingField(name)
	if err != nil {
		return "", false
	}

	return field, true
}
