package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EBWTBME/reshu-bot/pkg/config"
	"github.com/EBWTBME/reshu-bot/pkg/order"
	"github.com/EBWTBME/reshu-bot/pkg/session"
)

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) error {
	// Снимаем "часики" с кнопки независимо от результата.
	if _, err := b.client.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.logger.Warn("не удалось ответить на callback", "err", err)
	}
	if callback.Message == nil {
		return nil
	}

	chatID := callback.Message.Chat.ID
	sess := b.sessions.Get(chatID)
	if sess == nil {
		return nil
	}

	switch callback.Data {
	case CancelOrderCmd:
		b.sessions.Delete(chatID)
		return b.send(tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, b.messages.CancelOrder))
	case ConfirmPayCmd:
		if sess.State != session.StateConfirm {
			return nil
		}
		return b.handleConfirmPay(callback, sess)
	}
	return nil
}

func (b *Bot) handleConfirmPay(callback *tgbotapi.CallbackQuery, sess *session.Session) error {
	chatID := callback.Message.Chat.ID
	ord := sess.Order

	// Пересчёт, а не кэш: заказ после подтверждения не меняется, поэтому
	// суммы здесь и в финальном уведомлении совпадают.
	calc := b.table.Calculate(ord.Selection())

	if b.cfg.Notify == config.NotifyOnConfirm {
		b.notifyAdmin(callback.From, ord, calc, false)
	}

	if token := strings.TrimSpace(b.cfg.PaymentsProviderToken); token != "" {
		invoice := tgbotapi.NewInvoice(chatID,
			b.messages.InvoiceTitle,
			fmt.Sprintf(b.messages.InvoiceDescription, ord.Type.Title()),
			"order_"+ord.Ref,
			token,
			"pay_reshemu",
			b.cfg.Currency,
			[]tgbotapi.LabeledPrice{{Label: b.messages.InvoiceLabel, Amount: int(calc.TotalPrimary.IntPart()) * 100}},
		)
		if err := b.send(invoice); err != nil {
			// Инвойс не ушёл — переходим на ручную оплату переводом.
			b.logger.Error("ошибка отправки инвойса", "chat_id", chatID, "err", err)
		} else {
			ord.Method = order.PayInvoice
			sess.State = session.StatePayment
			return b.send(tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, b.messages.InvoiceSent))
		}
	}

	ord.Method = order.PayTransfer
	sess.State = session.StateWaitingReceipt

	text := fmt.Sprintf(b.messages.PaymentPrompt,
		b.table.Primary.Format(calc.TotalPrimary),
		b.table.Secondary.Format(calc.TotalSecondary),
		b.cfg.CardNumber,
	)
	edit := tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return b.send(edit)
}

// handlePreCheckout всегда подтверждает предоплатную проверку:
// валидировать на этом шаге нечего.
func (b *Bot) handlePreCheckout(query *tgbotapi.PreCheckoutQuery) error {
	_, err := b.client.Request(tgbotapi.PreCheckoutConfig{
		PreCheckoutQueryID: query.ID,
		OK:                 true,
	})
	return err
}

func (b *Bot) handleSuccessfulPayment(message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	sess := b.sessions.Get(chatID)
	if sess == nil || sess.State != session.StatePayment {
		b.logger.Warn("оплата без активного заказа", "chat_id", chatID)
		return nil
	}

	b.completeOrder(message.From, sess)
	b.sessions.Delete(chatID)

	msg := tgbotapi.NewMessage(chatID, b.messages.SuccessfulPayment)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = startKeyboard()
	return b.send(msg)
}

func (b *Bot) handleReceipt(message *tgbotapi.Message, sess *session.Session) error {
	chatID := message.Chat.ID

	var att *order.Attachment
	switch {
	case len(message.Photo) > 0:
		att = &order.Attachment{
			Kind:   order.AttachmentPhoto,
			FileID: message.Photo[len(message.Photo)-1].FileID,
		}
	case message.Document != nil:
		att = &order.Attachment{
			Kind:   order.AttachmentDocument,
			FileID: message.Document.FileID,
			Name:   message.Document.FileName,
		}
	default:
		prompt := tgbotapi.NewMessage(chatID, b.messages.WaitingReceiptPrompt)
		prompt.ParseMode = tgbotapi.ModeHTML
		return b.send(prompt)
	}

	sess.Order.Receipt = att
	b.completeOrder(message.From, sess)
	b.sessions.Delete(chatID)

	msg := tgbotapi.NewMessage(chatID, b.messages.ReceiptReceived)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = startKeyboard()
	return b.send(msg)
}
