package telegram

import (
	"strconv"
	"strings"

	"github.com/EBWTBME/reshu-bot/pkg/pricing"
)

// Intent — нормализованное действие пользователя. Текст кнопок и ключевые
// слова превращаются в перечислимое значение, чтобы локализованные строки
// не расползались по управляющей логике.
type Intent int

const (
	IntentNone Intent = iota
	IntentCancel
	IntentYes
	IntentNo
)

// DetectIntent распознаёт действие по свободному тексту. Совпадение
// терпимое: достаточно ключевого слова в любом регистре.
func DetectIntent(text string) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	switch {
	case lower == "":
		return IntentNone
	case strings.HasPrefix(lower, "❌"),
		strings.Contains(lower, "отмен"),
		strings.Contains(lower, "cancel"):
		return IntentCancel
	case strings.Contains(lower, "да"), strings.Contains(lower, "yes"):
		return IntentYes
	case strings.Contains(lower, "нет"), strings.Contains(lower, "no"):
		return IntentNo
	}
	return IntentNone
}

// ParseChoice снимает с текста кнопки эмодзи и английскую половину подписи:
// "🔵 Задание / Assignment" -> "Задание".
func ParseChoice(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, EmojiPrimary)
	clean = strings.TrimPrefix(clean, EmojiSecondary)
	clean = strings.TrimSpace(clean)
	if i := strings.Index(clean, " / "); i >= 0 {
		clean = clean[:i]
	}
	return clean
}

// ParseWorkType находит тип работы по тексту кнопки каталога.
func ParseWorkType(text string) (pricing.WorkType, bool) {
	return pricing.ByTitle(ParseChoice(text))
}

// parsePositiveInt принимает только целое >= 1.
func parsePositiveInt(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
