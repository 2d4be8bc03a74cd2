package pricing

import "github.com/shopspring/decimal"

// WorkType — тип работы из каталога услуг.
type WorkType string

const (
	WorkAssignment             WorkType = "assignment"
	WorkLabQuiz                WorkType = "lab_quiz"
	WorkExamQuestion           WorkType = "exam_question"
	WorkPractice               WorkType = "practice"
	WorkCoursework             WorkType = "coursework"
	WorkThesis                 WorkType = "thesis"
	WorkPresentationCoursework WorkType = "presentation_coursework"
	WorkPresentationThesis     WorkType = "presentation_thesis"
)

// Catalog — все типы работ в порядке показа в меню.
var Catalog = []WorkType{
	WorkAssignment,
	WorkLabQuiz,
	WorkExamQuestion,
	WorkPractice,
	WorkCoursework,
	WorkThesis,
	WorkPresentationCoursework,
	WorkPresentationThesis,
}

var workTitles = map[WorkType]struct{ ru, en string }{
	WorkAssignment:             {"Задание", "Assignment"},
	WorkLabQuiz:                {"Лабораторная/Контрольная", "Lab / Quiz"},
	WorkExamQuestion:           {"Экзаменационный вопрос", "Exam Question"},
	WorkPractice:               {"Практика", "Practice"},
	WorkCoursework:             {"Курсовая", "Coursework"},
	WorkThesis:                 {"Дипломная", "Thesis"},
	WorkPresentationCoursework: {"Презентация для курсовой", "Presentation for Coursework"},
	WorkPresentationThesis:     {"Презентация для диплома", "Presentation for Thesis"},
}

// Title возвращает русское название типа работы.
func (t WorkType) Title() string { return workTitles[t].ru }

// TitleEN возвращает английское название типа работы.
func (t WorkType) TitleEN() string { return workTitles[t].en }

// Label — подпись для кнопки: "Задание / Assignment".
func (t WorkType) Label() string { return workTitles[t].ru + " / " + workTitles[t].en }

// ByTitle находит тип работы по русскому названию (текст кнопки без эмодзи).
func ByTitle(title string) (WorkType, bool) {
	for t, m := range workTitles {
		if m.ru == title {
			return t, true
		}
	}
	return "", false
}

// Currency описывает валюту детализации: код для платёжки и формат суммы.
type Currency struct {
	Code   string
	Symbol string
	Prefix bool // символ перед суммой ($10), иначе после (299₽)
}

// Format форматирует сумму с символом валюты.
func (c Currency) Format(d decimal.Decimal) string {
	if c.Prefix {
		return c.Symbol + d.String()
	}
	return d.String() + c.Symbol
}

// UrgencyRule — правило надбавки за срочность для типа работы.
// Линейное затухание: max(Start - PerDay*(days-1), 0).
// Capped: надбавка стартует от 2×базы и не опускает итог ниже 1×базы,
// т.е. max(2*base - PerDay*(days-1), base) - base.
type UrgencyRule struct {
	Start  decimal.Decimal
	PerDay decimal.Decimal
	Capped bool
}

// Table — прайс-таблица и валютные параметры. Инжектится в калькулятор,
// чтобы один и тот же поток работал с разными прайсами и валютами.
type Table struct {
	Base          map[WorkType]decimal.Decimal // базовая цена, основная валюта
	BaseSecondary map[WorkType]decimal.Decimal // базовая цена, вторая валюта

	Explain        map[WorkType]decimal.Decimal // надбавка за объяснения
	ExplainDefault decimal.Decimal              // для типов не из Explain

	Urgency map[WorkType]UrgencyRule

	// PerItem — типы, у которых база умножается на количество заданий.
	PerItem map[WorkType]bool

	Primary   Currency
	Secondary Currency

	// SecondaryRate — курс пересчёта надбавок во вторую валюту (деление).
	SecondaryRate decimal.Decimal
}

// DefaultTable возвращает боевой прайс сервиса.
func DefaultTable() Table {
	return Table{
		Base: map[WorkType]decimal.Decimal{
			WorkAssignment:             decimal.NewFromInt(299),
			WorkLabQuiz:                decimal.NewFromInt(999),
			WorkExamQuestion:           decimal.NewFromInt(999),
			WorkPractice:               decimal.NewFromInt(4999),
			WorkCoursework:             decimal.NewFromInt(9999),
			WorkThesis:                 decimal.NewFromInt(25999),
			WorkPresentationCoursework: decimal.NewFromInt(1999),
			WorkPresentationThesis:     decimal.NewFromInt(4999),
		},
		BaseSecondary: map[WorkType]decimal.Decimal{
			WorkAssignment:             decimal.NewFromInt(5),
			WorkLabQuiz:                decimal.NewFromInt(12),
			WorkExamQuestion:           decimal.NewFromInt(12),
			WorkPractice:               decimal.NewFromInt(59),
			WorkCoursework:             decimal.NewFromInt(119),
			WorkThesis:                 decimal.NewFromInt(299),
			WorkPresentationCoursework: decimal.NewFromInt(99),
			WorkPresentationThesis:     decimal.NewFromInt(199),
		},
		Explain: map[WorkType]decimal.Decimal{
			WorkCoursework: decimal.NewFromInt(5999),
			WorkThesis:     decimal.NewFromInt(15999),
			WorkPractice:   decimal.NewFromInt(1999),
		},
		ExplainDefault: decimal.NewFromInt(2999),
		Urgency: map[WorkType]UrgencyRule{
			WorkAssignment:             {Start: decimal.NewFromInt(1500), PerDay: decimal.NewFromInt(100)},
			WorkLabQuiz:                {Start: decimal.NewFromInt(1500), PerDay: decimal.NewFromInt(100)},
			WorkExamQuestion:           {Start: decimal.NewFromInt(2000), PerDay: decimal.NewFromInt(200)},
			WorkPractice:               {Start: decimal.NewFromInt(4000), PerDay: decimal.NewFromInt(250)},
			WorkCoursework:             {Start: decimal.NewFromInt(6000), PerDay: decimal.NewFromInt(250)},
			WorkPresentationCoursework: {Start: decimal.NewFromInt(6000), PerDay: decimal.NewFromInt(250)},
			WorkThesis:                 {PerDay: decimal.NewFromInt(250), Capped: true},
			WorkPresentationThesis:     {PerDay: decimal.NewFromInt(250), Capped: true},
		},
		PerItem: map[WorkType]bool{
			WorkAssignment:   true,
			WorkLabQuiz:      true,
			WorkExamQuestion: true,
		},
		Primary:       Currency{Code: "RUB", Symbol: "₽"},
		Secondary:     Currency{Code: "USD", Symbol: "$", Prefix: true},
		SecondaryRate: decimal.NewFromInt(90),
	}
}
