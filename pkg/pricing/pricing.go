package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Selection — параметры заказа, влияющие на цену.
// Days == nil означает, что срок вообще не выбирался — строка срочности не
// показывается. Явный ноль даёт строку "+0". Count == 0 считается как 1.
type Selection struct {
	Type    WorkType
	Explain bool
	Days    *int
	Count   int
}

// Line — одна строка детализации.
type Line struct {
	Label  string
	Amount decimal.Decimal
	Add    bool // надбавка, выводится со знаком "+"
}

// Render выводит строку в формате детализации: "Задание = 299₽",
// "За объяснения = +2999₽".
func (l Line) Render(c Currency) string {
	if l.Add {
		return l.Label + " = +" + c.Format(l.Amount)
	}
	return l.Label + " = " + c.Format(l.Amount)
}

// Breakdown — детализация стоимости в двух валютах.
type Breakdown struct {
	TotalPrimary   decimal.Decimal
	TotalSecondary decimal.Decimal
	LinesPrimary   []Line
	LinesSecondary []Line
}

// Calculate считает стоимость заказа. Чистая функция: ничего не пишет,
// на одинаковый Selection всегда возвращает одинаковый результат, поэтому
// её безопасно звать повторно при подтверждении и при уведомлении админа.
func (t Table) Calculate(sel Selection) Breakdown {
	count := sel.Count
	if count < 1 {
		count = 1
	}

	var b Breakdown
	b.TotalPrimary = decimal.Zero
	b.TotalSecondary = decimal.Zero

	// База: для штучных типов цена умножается на количество.
	unit := t.Base[sel.Type]
	unitSec := t.BaseSecondary[sel.Type]
	if t.PerItem[sel.Type] {
		base := unit.Mul(decimal.NewFromInt(int64(count)))
		baseSec := unitSec.Mul(decimal.NewFromInt(int64(count)))
		b.addLine(
			Line{Label: fmt.Sprintf("%s — %s × %d", sel.Type.Title(), t.Primary.Format(unit), count), Amount: base},
			Line{Label: fmt.Sprintf("%s — %s × %d", sel.Type.TitleEN(), t.Secondary.Format(unitSec), count), Amount: baseSec},
		)
	} else {
		b.addLine(
			Line{Label: sel.Type.Title(), Amount: unit},
			Line{Label: sel.Type.TitleEN(), Amount: unitSec},
		)
	}

	// Надбавка за объяснения: фиксированная по типу, с дефолтом.
	if sel.Explain {
		surcharge, ok := t.Explain[sel.Type]
		if !ok {
			surcharge = t.ExplainDefault
		}
		b.addLine(
			Line{Label: "За объяснения", Amount: surcharge, Add: true},
			Line{Label: "For explanations", Amount: t.toSecondary(surcharge), Add: true},
		)
	}

	// Надбавка за срочность.
	if sel.Days != nil {
		days := *sel.Days
		if days > 0 {
			urgency := t.urgency(sel.Type, days)
			b.addLine(
				Line{Label: fmt.Sprintf("Срочность (%d дн)", days), Amount: urgency, Add: true},
				Line{Label: fmt.Sprintf("Urgency (%d days)", days), Amount: t.toSecondary(urgency), Add: true},
			)
		} else {
			// Срок явно не горит — строка "+0" для единообразия сводки.
			b.addLine(
				Line{Label: "Срочность", Amount: decimal.Zero, Add: true},
				Line{Label: "Urgency", Amount: decimal.Zero, Add: true},
			)
		}
	}

	return b
}

func (b *Breakdown) addLine(primary, secondary Line) {
	b.LinesPrimary = append(b.LinesPrimary, primary)
	b.LinesSecondary = append(b.LinesSecondary, secondary)
	b.TotalPrimary = b.TotalPrimary.Add(primary.Amount)
	b.TotalSecondary = b.TotalSecondary.Add(secondary.Amount)
}

// urgency — надбавка за срочность в основной валюте, не ниже нуля.
func (t Table) urgency(wt WorkType, days int) decimal.Decimal {
	rule, ok := t.Urgency[wt]
	if !ok {
		return decimal.Zero
	}
	decay := rule.PerDay.Mul(decimal.NewFromInt(int64(days - 1)))
	if rule.Capped {
		base := t.Base[wt]
		val := base.Mul(decimal.NewFromInt(2)).Sub(decay)
		if val.LessThan(base) {
			val = base
		}
		return val.Sub(base)
	}
	val := rule.Start.Sub(decay)
	if val.IsNegative() {
		return decimal.Zero
	}
	return val
}

// toSecondary переводит надбавку во вторую валюту по фиксированному курсу,
// округляя до целого.
func (t Table) toSecondary(d decimal.Decimal) decimal.Decimal {
	return d.Div(t.SecondaryRate).Round(0)
}

// RenderPrimary возвращает строки детализации в основной валюте.
func (t Table) RenderPrimary(b Breakdown) []string {
	out := make([]string, 0, len(b.LinesPrimary))
	for _, l := range b.LinesPrimary {
		out = append(out, l.Render(t.Primary))
	}
	return out
}

// RenderSecondary возвращает строки детализации во второй валюте.
func (t Table) RenderSecondary(b Breakdown) []string {
	out := make([]string, 0, len(b.LinesSecondary))
	for _, l := range b.LinesSecondary {
		out = append(out, l.Render(t.Secondary))
	}
	return out
}
