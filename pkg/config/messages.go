package config

// Messages — тексты ответов бота. Все сообщения двуязычные, RU + EN.
type Messages struct {
	Responses Responses
}

type Responses struct {
	StartWelcome   string
	StartTypes     string
	TypeChosen     string // %s — русское название, %s — английское
	SendFilePrompt string

	FileReceived  string
	PhotoReceived string
	TextReceived  string
	SendFileError string

	ExplainPrompt string
	ExplainYes    string
	ExplainNo     string
	ExplainError  string

	DeadlinePrompt    string
	ExtraParamsPrompt string

	ConfirmationSummary string // тип, объяснения, срок, строка количества, детализации, итоги
	ConfirmButton       string
	CancelButton        string

	InvoiceTitle       string
	InvoiceDescription string // %s — тип работы
	InvoiceLabel       string
	InvoiceSent        string

	PaymentPrompt string // %[1]s — итог осн., %[2]s — итог втор., %[3]s — карта

	SuccessfulPayment    string
	WaitingReceiptPrompt string
	ReceiptReceived      string
	ReceiptForwardError  string

	CancelOrder    string
	InvalidInput   string
	InvalidDays    string
	InvalidCount   string
	UnknownCommand string
}

// DefaultMessages возвращает боевые тексты сервиса.
func DefaultMessages() Messages {
	return Messages{Responses: Responses{
		StartWelcome: "🔵 <b>Заходи за решением! / Come in for a solution! </b>\n\n" +
			"Привет! Я помогу вам оперативно и качественно решить учебные задания.\n" +
			"Hi! I'll help you solve your academic assignments quickly and reliably.\n\n" +
			"<b>Прайс-лист / Price List</b> 💰",
		StartTypes: "Выберите тип работы / Choose work type:",
		TypeChosen: "Вы выбрали: %s / You have chosen: %s.",
		SendFilePrompt: "📌 Пришлите, пожалуйста, <b>фото, файл или текст с заданием</b>.\n" +
			"Можно добавить пояснения в подпись (caption) к файлу или фото.\n\n" +
			"📌 Please send <b>photo, file or text with your assignment</b>.\n" +
			"Caption allowed.",

		FileReceived:  "✅ Файл задания получен. Теперь выберите: нужны ли объяснения?\n✅ Assignment file received. Need explanations?",
		PhotoReceived: "✅ Фото задания получено. Теперь выберите: нужны ли объяснения?\n✅ Assignment photo received. Need explanations?",
		TextReceived:  "✅ Текст задания получен. Теперь выберите: нужны ли объяснения?\n✅ Assignment text received. Need explanations?",
		SendFileError: "Пожалуйста, отправьте задание в виде текста, фото или файла (можно с подписью).\n" +
			"Please send assignment as text, photo or file (caption allowed).",

		ExplainPrompt: "Нужны ли подробные объяснения каждого шага решения?\n" +
			"За +2999₽ (за задания) / +5999₽ (за Курсовую) / +1999₽ (за Практику) / +15999₽ (за Дипломную) — я подробно объясню каждое задание и весь ход решения.\n\n" +
			"Need detailed explanations?\n" +
			"For +$33 (for Assignments) / +$67 (for Coursework) / +$22 (for Practice) / +$178 (for Thesis) — I'll explain each task and the entire solution process in detail.",
		ExplainYes: "✅ Объяснения включены.\n✅ Explanations enabled.",
		ExplainNo:  "✅ Объяснения отключены.\n✅ Explanations disabled.",
		ExplainError: "Пожалуйста, нажмите «Да / Yes» или «Нет / No».\n" +
			"Please press «Да / Yes» or «Нет / No».",

		DeadlinePrompt: "Укажите срок выполнения в днях (целое число). Пример: 3\n" +
			"(минимум 1 день).\n\n" +
			"Specify deadline in days (integer). Example: 3\n" +
			"(minimum 1 day).",
		ExtraParamsPrompt: "Укажите количество заданий (целое число). Пример: 3\n" +
			"Specify number of tasks (integer). Example: 3",

		ConfirmationSummary: "<b>Итог заказа / Order Summary</b>\n" +
			"Тип / Type: %s\n" +
			"Объяснения / Explanations: %s\n" +
			"Срок / Deadline: %d дн / days\n" +
			"%s" +
			"\n<b>Детализация / Breakdown:</b>\n" +
			"%s\n" +
			"%s\n" +
			"\n<b>Итого / Total: %s / %s</b>",
		ConfirmButton: "✅ Подтвердить и оплатить / Confirm & Pay",
		CancelButton:  "❌ Отменить заказ / Cancel Order",

		InvoiceTitle:       "Оплата заказа — Решу бот",
		InvoiceDescription: "%s — оплата услуги",
		InvoiceLabel:       "Итого",
		InvoiceSent:        "Счёт отправлен. Пожалуйста, оплатите через окно оплаты Telegram.",

		PaymentPrompt: "✅ Оплата заказа:\n\n" +
			"<b>Переведите %[1]s / %[2]s</b> на карту:\n" +
			"<code>%[3]s</code>\n\n" +
			"⚠️ После оплаты отправьте сюда <b>скриншот чека</b> (фото или документ) — я уведомлю администратора, и заказ будет подтверждён.\n\n" +
			"❗ Срок выполнения начинается с момента получения чека.\n\n" +
			"✅ Payment:\n\n" +
			"<b>Transfer %[1]s / %[2]s</b> to card:\n" +
			"<code>%[3]s</code>\n\n" +
			"⚠️ After payment, send a <b>screenshot</b> (photo/document) — I'll notify admin, and order will be confirmed.\n\n" +
			"❗ Deadline starts when payment is confirmed.",

		SuccessfulPayment: "✅ Оплата получена! Спасибо!\n\n" +
			"Администратор скоро свяжется с вами.\n" +
			"💬 <b>Вся дальнейшая работа — правки, уточнения, сдача — будет вестись напрямую с исполнителем в личных сообщениях.</b>\n\n" +
			"Хотите сделать ещё один заказ? Нажмите /start 👇\n\n" +
			"✅ Payment received! Thank you!\n\n" +
			"The administrator will contact you soon.\n" +
			"💬 <b>All further work — revisions, clarifications, submission — will be done directly with the executor in private messages.</b>\n\n" +
			"Want another order? Press /start 👇",
		WaitingReceiptPrompt: "📎 Пожалуйста, отправьте <b>скриншот чека об оплате</b> в виде <b>фото или документа</b>.\n\n" +
			"Текст, голосовые, стикеры, аудио и другие форматы не принимаются.\n\n" +
			"📎 Please send <b>payment screenshot</b> as <b>photo or document</b>.\n\n" +
			"Text, voice, stickers, audio and other formats are not accepted.",
		ReceiptReceived: "✅ Скриншот чека получен!\n\n" +
			"Администратор проверит оплату и скоро свяжется с вами.\n" +
			"💬 <b>Вся дальнейшая работа — правки, уточнения, сдача — будет вестись напрямую с исполнителем в личных сообщениях.</b>\n\n" +
			"Хотите сделать ещё один заказ? Нажмите /start 👇\n\n" +
			"✅ Payment screenshot received!\n\n" +
			"Admin will verify payment and contact you soon.\n" +
			"💬 <b>All further work — revisions, clarifications, submission — will be done directly with the executor in private messages.</b>\n\n" +
			"Want another order? Press /start 👇",
		ReceiptForwardError: "❌ Не удалось передать скриншот. Попробуйте ещё раз.",

		CancelOrder: "Заказ отменён. Если хотите — начните заново командой /start.\n" +
			"Order cancelled. Start again with /start.",
		InvalidInput: "Пожалуйста, используйте кнопки ниже.\n" +
			"Please use the buttons below.",
		InvalidDays: "Пожалуйста, введите целое число дней (например: 1, 2, 3).\n" +
			"Please enter integer days (e.g.: 1, 2, 3).",
		InvalidCount: "Пожалуйста, введите целое количество заданий (например: 1, 2, 5).\n" +
			"Please enter integer number of tasks (e.g.: 1, 2, 5).",
		UnknownCommand: "Нажмите /start, чтобы оформить заказ.\n" +
			"Press /start to place an order.",
	}}
}
