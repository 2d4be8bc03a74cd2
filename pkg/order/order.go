package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/EBWTBME/reshu-bot/pkg/pricing"
)

// AttachmentKind — вид присланного материала.
type AttachmentKind string

const (
	AttachmentText     AttachmentKind = "text"
	AttachmentPhoto    AttachmentKind = "photo"
	AttachmentDocument AttachmentKind = "document"
)

// Attachment — материал задания или чек. Для бота содержимое непрозрачно:
// храним telegram file_id (или текст) и пересылаем админу как есть.
type Attachment struct {
	Kind    AttachmentKind
	FileID  string // фото и документы
	Name    string // имя файла документа
	Text    string // текстовые задания
	Caption string // подпись к фото/файлу
}

// PaymentMethod — способ оплаты заказа.
type PaymentMethod string

const (
	PayInvoice  PaymentMethod = "invoice"  // Telegram Payments
	PayTransfer PaymentMethod = "transfer" // перевод на карту + скриншот чека
)

// Order — единственный активный заказ диалога. Живёт только в памяти
// сессии: при отмене или завершении удаляется целиком, частично не
// сохраняется.
type Order struct {
	Ref        string // короткий номер для админа и payload инвойса
	Type       pricing.WorkType
	Explain    bool
	Days       int // срок в днях, всегда >= 1 после выбора
	Count      int // количество заданий для штучных типов, 0 = не задано
	Assignment *Attachment
	Receipt    *Attachment
	Method     PaymentMethod
	CreatedAt  time.Time
}

// New создаёт пустой заказ с новым номером.
func New() *Order {
	return &Order{
		Ref:       uuid.NewString()[:8],
		CreatedAt: time.Now(),
	}
}

// Selection собирает вход для калькулятора цены.
func (o *Order) Selection() pricing.Selection {
	sel := pricing.Selection{
		Type:    o.Type,
		Explain: o.Explain,
		Count:   o.Count,
	}
	if o.Days > 0 {
		days := o.Days
		sel.Days = &days
	}
	return sel
}
