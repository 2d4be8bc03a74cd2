package telegram

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EBWTBME/reshu-bot/pkg/config"
	"github.com/EBWTBME/reshu-bot/pkg/order"
	"github.com/EBWTBME/reshu-bot/pkg/pricing"
	"github.com/EBWTBME/reshu-bot/pkg/session"
)

// captionLimit — предел Telegram на подпись к фото/документу.
const captionLimit = 1024

// completeOrder выполняет завершающие действия заказа: пересылки материалов
// и сводку админу. Каждая пересылка независима — неудача логируется и не
// прерывает остальные шаги.
func (b *Bot) completeOrder(user *tgbotapi.User, sess *session.Session) {
	ord := sess.Order
	calc := b.table.Calculate(ord.Selection())

	if b.cfg.Notify == config.NotifyOnComplete && ord.Assignment != nil {
		if err := b.forwardAttachment(ord.Assignment, assignmentCaption(user, ord.Assignment)); err != nil {
			b.logger.Error("не удалось переслать задание админу", "chat_id", sess.ChatID, "err", err)
		}
	}

	if ord.Receipt != nil {
		if err := b.forwardAttachment(ord.Receipt, receiptCaption(user)); err != nil {
			b.logger.Error("не удалось переслать чек админу", "chat_id", sess.ChatID, "err", err)
		}
	}

	b.notifyAdmin(user, ord, calc, true)
}

// forwardAttachment пересылает материал в чат админа как есть.
func (b *Bot) forwardAttachment(att *order.Attachment, caption string) error {
	switch att.Kind {
	case order.AttachmentPhoto:
		photo := tgbotapi.NewPhoto(b.cfg.AdminChatID, tgbotapi.FileID(att.FileID))
		photo.Caption = truncate(caption, captionLimit)
		return b.send(photo)
	case order.AttachmentDocument:
		doc := tgbotapi.NewDocument(b.cfg.AdminChatID, tgbotapi.FileID(att.FileID))
		doc.Caption = truncate(caption, captionLimit)
		return b.send(doc)
	default:
		return b.send(tgbotapi.NewMessage(b.cfg.AdminChatID, caption+":\n\n"+att.Text))
	}
}

// notifyAdmin отправляет админу сводку заказа: клиент, все поля,
// детализация в обеих валютах, способ оплаты, статус и время.
// Ошибка отправки не фатальна.
func (b *Bot) notifyAdmin(user *tgbotapi.User, ord *order.Order, calc pricing.Breakdown, paid bool) {
	explain := "Нет"
	if ord.Explain {
		explain = "Да"
	}

	lines := []string{
		"<b>Новый заказ / New Order</b>",
		"Заказ / Order: " + ord.Ref,
		fmt.Sprintf("Клиент / Client: %s (@%s) id=%d", fullName(user), user.UserName, user.ID),
		"Тип / Type: " + ord.Type.Title(),
		"Объяснения / Explanations: " + explain,
		fmt.Sprintf("Срок / Deadline: %d дн / days", ord.Days),
	}
	if b.table.PerItem[ord.Type] {
		count := ord.Count
		if count < 1 {
			count = 1
		}
		lines = append(lines, fmt.Sprintf("Количество заданий / Quantity: %d", count))
	}
	if ord.Method == order.PayInvoice {
		lines = append(lines, "Оплата / Payment: Telegram Payments")
	} else if ord.Method == order.PayTransfer {
		lines = append(lines, "Оплата / Payment: перевод на карту / card transfer")
	}

	lines = append(lines, "", "<b>Детализация / Breakdown:</b>")
	lines = append(lines, b.table.RenderPrimary(calc)...)
	lines = append(lines, b.table.RenderSecondary(calc)...)
	lines = append(lines, fmt.Sprintf("\n<b>Итого / Total: %s / %s</b>",
		b.table.Primary.Format(calc.TotalPrimary),
		b.table.Secondary.Format(calc.TotalSecondary)))

	if paid {
		lines = append(lines, "✅ Статус: ОПЛАЧЕН / Status: PAID")
	} else {
		lines = append(lines, "⏳ Статус: ЖДУ ОПЛАТУ / Status: AWAITING PAYMENT")
	}
	lines = append(lines, time.Now().Format("15:04 02.01.2006"))

	msg := tgbotapi.NewMessage(b.cfg.AdminChatID, strings.Join(lines, "\n"))
	msg.ParseMode = tgbotapi.ModeHTML
	if user.UserName != "" {
		msg.ReplyMarkup = contactClientKeyboard(user.UserName)
	}

	if err := b.send(msg); err != nil {
		b.logger.Error("не удалось уведомить администратора", "err", err)
		return
	}
	b.logger.Info("уведомление админу отправлено", "client", fullName(user), "order", ord.Ref)
}

func assignmentCaption(user *tgbotapi.User, att *order.Attachment) string {
	caption := fmt.Sprintf("📩 Задание от %s (@%s | id=%d)", fullName(user), user.UserName, user.ID)
	if att.Caption != "" {
		caption += "\n\n📝 Подпись: " + att.Caption
	}
	return caption
}

func receiptCaption(user *tgbotapi.User) string {
	return fmt.Sprintf("📸 Чек от %s (@%s | id=%d)", fullName(user), user.UserName, user.ID)
}

func fullName(user *tgbotapi.User) string {
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return name
}

// truncate обрезает строку до limit рун.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
