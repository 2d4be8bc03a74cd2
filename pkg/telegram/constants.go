package telegram

const (
	StartCmd  = "/start"
	CancelCmd = "/cancel"
)

// callback data инлайн-кнопок подтверждения
const (
	ConfirmPayCmd  = "confirm_pay"
	CancelOrderCmd = "cancel_order"
)

const (
	EmojiPrimary   = "🔵"
	EmojiSecondary = "⚪️"
)

const (
	CancelButtonText = "❌ Отменить заказ / Cancel order"
	YesButtonText    = EmojiPrimary + " Да / Yes"
	NoButtonText     = EmojiSecondary + " Нет / No"
)
