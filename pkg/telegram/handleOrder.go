package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EBWTBME/reshu-bot/pkg/config"
	"github.com/EBWTBME/reshu-bot/pkg/order"
	"github.com/EBWTBME/reshu-bot/pkg/pricing"
	"github.com/EBWTBME/reshu-bot/pkg/session"
)

func (b *Bot) handleTypeChoice(message *tgbotapi.Message, sess *session.Session) error {
	chatID := message.Chat.ID

	wt, ok := ParseWorkType(message.Text)
	if !ok {
		return b.send(tgbotapi.NewMessage(chatID, b.messages.InvalidInput))
	}
	sess.Order.Type = wt
	sess.State = session.StateSendMaterial

	chosen := tgbotapi.NewMessage(chatID, fmt.Sprintf(b.messages.TypeChosen, wt.Title(), wt.TitleEN()))
	chosen.ParseMode = tgbotapi.ModeHTML
	chosen.ReplyMarkup = cancelKeyboard()
	if err := b.send(chosen); err != nil {
		return err
	}

	prompt := tgbotapi.NewMessage(chatID, b.messages.SendFilePrompt)
	prompt.ParseMode = tgbotapi.ModeHTML
	return b.send(prompt)
}

func (b *Bot) handleMaterial(message *tgbotapi.Message, sess *session.Session) error {
	chatID := message.Chat.ID

	var att *order.Attachment
	var received string
	switch {
	case message.Document != nil:
		att = &order.Attachment{
			Kind:    order.AttachmentDocument,
			FileID:  message.Document.FileID,
			Name:    message.Document.FileName,
			Caption: message.Caption,
		}
		received = b.messages.FileReceived
	case len(message.Photo) > 0:
		att = &order.Attachment{
			Kind:    order.AttachmentPhoto,
			FileID:  message.Photo[len(message.Photo)-1].FileID,
			Caption: message.Caption,
		}
		received = b.messages.PhotoReceived
	case message.Text != "":
		att = &order.Attachment{Kind: order.AttachmentText, Text: message.Text}
		received = b.messages.TextReceived
	default:
		// Стикеры, голосовые и прочее заданием не считаются.
		return b.send(tgbotapi.NewMessage(chatID, b.messages.SendFileError))
	}

	sess.Order.Assignment = att
	if b.cfg.Notify == config.NotifyOnConfirm {
		if err := b.forwardAttachment(att, assignmentCaption(message.From, att)); err != nil {
			b.logger.Error("не удалось переслать задание админу", "chat_id", chatID, "err", err)
		}
	}

	if err := b.send(tgbotapi.NewMessage(chatID, received)); err != nil {
		return err
	}

	sess.State = session.StateExplainChoice
	prompt := tgbotapi.NewMessage(chatID, b.messages.ExplainPrompt)
	prompt.ReplyMarkup = yesNoKeyboard()
	return b.send(prompt)
}

func (b *Bot) handleExplainChoice(message *tgbotapi.Message, sess *session.Session) error {
	chatID := message.Chat.ID

	var reply string
	switch DetectIntent(message.Text) {
	case IntentYes:
		sess.Order.Explain = true
		reply = b.messages.ExplainYes
	case IntentNo:
		sess.Order.Explain = false
		reply = b.messages.ExplainNo
	default:
		return b.send(tgbotapi.NewMessage(chatID, b.messages.ExplainError))
	}

	if err := b.send(tgbotapi.NewMessage(chatID, reply)); err != nil {
		return err
	}

	sess.State = session.StateDeadlineChoice
	prompt := tgbotapi.NewMessage(chatID, b.messages.DeadlinePrompt)
	prompt.ReplyMarkup = cancelKeyboard()
	return b.send(prompt)
}

func (b *Bot) handleDeadlineChoice(message *tgbotapi.Message, sess *session.Session) error {
	chatID := message.Chat.ID

	days, ok := parsePositiveInt(message.Text)
	if !ok {
		return b.send(tgbotapi.NewMessage(chatID, b.messages.InvalidDays))
	}
	sess.Order.Days = days

	if b.table.PerItem[sess.Order.Type] {
		sess.State = session.StateExtraParams
		return b.send(tgbotapi.NewMessage(chatID, b.messages.ExtraParamsPrompt))
	}
	return b.showConfirmation(message, sess)
}

func (b *Bot) handleExtraParams(message *tgbotapi.Message, sess *session.Session) error {
	count, ok := parsePositiveInt(message.Text)
	if !ok {
		return b.send(tgbotapi.NewMessage(message.Chat.ID, b.messages.InvalidCount))
	}
	sess.Order.Count = count
	return b.showConfirmation(message, sess)
}

// showConfirmation считает цену и показывает сводку заказа с кнопками
// подтверждения. Детализация не кэшируется: при оплате она будет
// посчитана заново и обязана совпасть, поэтому заказ с этого момента
// не меняется.
func (b *Bot) showConfirmation(message *tgbotapi.Message, sess *session.Session) error {
	sess.State = session.StateConfirm
	calc := b.table.Calculate(sess.Order.Selection())

	msg := tgbotapi.NewMessage(message.Chat.ID, b.summaryText(sess.Order, calc))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = b.confirmKeyboard()
	return b.send(msg)
}

func (b *Bot) summaryText(ord *order.Order, calc pricing.Breakdown) string {
	explain := "Нет"
	if ord.Explain {
		explain = "Да"
	}

	var countLine string
	if b.table.PerItem[ord.Type] {
		count := ord.Count
		if count < 1 {
			count = 1
		}
		countLine = fmt.Sprintf("Количество заданий / Quantity: %d\n", count)
	}

	return fmt.Sprintf(b.messages.ConfirmationSummary,
		ord.Type.Title(),
		explain,
		ord.Days,
		countLine,
		strings.Join(b.table.RenderPrimary(calc), "\n"),
		strings.Join(b.table.RenderSecondary(calc), "\n"),
		b.table.Primary.Format(calc.TotalPrimary),
		b.table.Secondary.Format(calc.TotalSecondary),
	)
}
