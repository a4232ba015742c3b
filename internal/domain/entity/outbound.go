package entity

type OutboundKind string

const (
	OutboundDeal        OutboundKind = "deal"
	OutboundEditPrompt  OutboundKind = "edit_prompt"
	OutboundEditUpdated OutboundKind = "edit_updated"
	OutboundEditInvalid OutboundKind = "edit_invalid"
	OutboundSettings    OutboundKind = "settings"
)

// OutboundMessage сообщение, которое транспорт должен отправить в сессию.
type OutboundMessage struct {
	SessionID int64
	Kind      OutboundKind
	Text      string
	// LinkURL кнопка «купить» со ссылкой на объявление.
	LinkURL string
	// WithSettingsKeyboard прикрепить клавиатуру настроек.
	WithSettingsKeyboard bool
}
