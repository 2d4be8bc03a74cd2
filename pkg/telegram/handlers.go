package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EBWTBME/reshu-bot/pkg/session"
)

func (b *Bot) handleMessage(message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	if message.SuccessfulPayment != nil {
		return b.handleSuccessfulPayment(message)
	}

	switch message.Text {
	case StartCmd:
		return b.handleStart(message)
	case CancelCmd:
		return b.handleCancel(message)
	}

	sess := b.sessions.Get(chatID)
	if sess == nil {
		return b.handleUnknown(message)
	}

	// Отмена принимается на любом шаге и всегда сбрасывает заказ целиком.
	if message.Text != "" && DetectIntent(message.Text) == IntentCancel {
		return b.handleCancel(message)
	}

	switch sess.State {
	case session.StateTypeChoice:
		return b.handleTypeChoice(message, sess)
	case session.StateSendMaterial:
		return b.handleMaterial(message, sess)
	case session.StateExplainChoice:
		return b.handleExplainChoice(message, sess)
	case session.StateDeadlineChoice:
		return b.handleDeadlineChoice(message, sess)
	case session.StateExtraParams:
		return b.handleExtraParams(message, sess)
	case session.StateConfirm:
		// Подтверждение только инлайн-кнопками под сводкой.
		return b.send(tgbotapi.NewMessage(chatID, b.messages.InvalidInput))
	case session.StatePayment:
		// Ждём событие оплаты от платёжки.
		return nil
	case session.StateWaitingReceipt:
		return b.handleReceipt(message, sess)
	}
	return nil
}

func (b *Bot) handleStart(message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	b.sessions.Delete(chatID)

	welcome := tgbotapi.NewMessage(chatID, b.messages.StartWelcome)
	welcome.ParseMode = tgbotapi.ModeHTML
	if err := b.send(welcome); err != nil {
		return err
	}

	b.sessions.Start(chatID)

	types := tgbotapi.NewMessage(chatID, b.messages.StartTypes)
	types.ReplyMarkup = workTypesKeyboard()
	return b.send(types)
}

func (b *Bot) handleCancel(message *tgbotapi.Message) error {
	b.sessions.Delete(message.Chat.ID)

	msg := tgbotapi.NewMessage(message.Chat.ID, b.messages.CancelOrder)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	return b.send(msg)
}

func (b *Bot) handleUnknown(message *tgbotapi.Message) error {
	return b.send(tgbotapi.NewMessage(message.Chat.ID, b.messages.UnknownCommand))
}
