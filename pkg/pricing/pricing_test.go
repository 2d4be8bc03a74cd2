package pricing

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(n int) *int { return &n }

func sumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

func TestCalculateAssignmentWithEverything(t *testing.T) {
	table := DefaultTable()

	calc := table.Calculate(Selection{Type: WorkAssignment, Explain: true, Days: days(1), Count: 2})

	require.Len(t, calc.LinesPrimary, 3)
	require.Len(t, calc.LinesSecondary, 3)

	// 299×2 + 2999 за объяснения + максимальная срочность за 1 день
	assert.True(t, calc.TotalPrimary.Equal(decimal.NewFromInt(598+2999+1500)),
		"got %s", calc.TotalPrimary)
	// 5×2 + round(2999/90) + round(1500/90)
	assert.True(t, calc.TotalSecondary.Equal(decimal.NewFromInt(10+33+17)),
		"got %s", calc.TotalSecondary)

	assert.Equal(t, "Задание — 299₽ × 2 = 598₽", calc.LinesPrimary[0].Render(table.Primary))
	assert.Equal(t, "За объяснения = +2999₽", calc.LinesPrimary[1].Render(table.Primary))
	assert.Equal(t, "Срочность (1 дн) = +1500₽", calc.LinesPrimary[2].Render(table.Primary))

	assert.Equal(t, "Assignment — $5 × 2 = $10", calc.LinesSecondary[0].Render(table.Secondary))
	assert.Equal(t, "For explanations = +$33", calc.LinesSecondary[1].Render(table.Secondary))
	assert.Equal(t, "Urgency (1 days) = +$17", calc.LinesSecondary[2].Render(table.Secondary))
}

func TestCalculateThesisNextDay(t *testing.T) {
	table := DefaultTable()

	calc := table.Calculate(Selection{Type: WorkThesis, Days: days(1)})

	require.Len(t, calc.LinesPrimary, 2)

	// За 1 день надбавка ровно равна базе: итог 2×базы, выше нельзя.
	base := table.Base[WorkThesis]
	assert.True(t, calc.LinesPrimary[1].Amount.Equal(base))
	assert.True(t, calc.TotalPrimary.Equal(base.Mul(decimal.NewFromInt(2))))
}

func TestCalculateDeterministic(t *testing.T) {
	table := DefaultTable()
	sel := Selection{Type: WorkCoursework, Explain: true, Days: days(5)}

	first := table.Calculate(sel)
	second := table.Calculate(sel)

	assert.Equal(t, first, second)
}

func TestTotalsEqualLineSums(t *testing.T) {
	table := DefaultTable()

	selections := []Selection{
		{Type: WorkAssignment, Count: 3, Explain: true, Days: days(2)},
		{Type: WorkLabQuiz, Count: 1, Days: days(10)},
		{Type: WorkExamQuestion, Count: 7, Explain: true},
		{Type: WorkPractice, Explain: true, Days: days(30)},
		{Type: WorkCoursework, Days: days(0)},
		{Type: WorkThesis, Explain: true, Days: days(1)},
		{Type: WorkPresentationCoursework},
		{Type: WorkPresentationThesis, Days: days(120)},
	}

	for _, sel := range selections {
		sel := sel
		t.Run(string(sel.Type), func(t *testing.T) {
			calc := table.Calculate(sel)
			assert.True(t, calc.TotalPrimary.Equal(sumLines(calc.LinesPrimary)),
				"primary: %s != %s", calc.TotalPrimary, sumLines(calc.LinesPrimary))
			assert.True(t, calc.TotalSecondary.Equal(sumLines(calc.LinesSecondary)),
				"secondary: %s != %s", calc.TotalSecondary, sumLines(calc.LinesSecondary))
		})
	}
}

func TestQuantityScalesBase(t *testing.T) {
	table := DefaultTable()

	for wt := range table.PerItem {
		wt := wt
		t.Run(string(wt), func(t *testing.T) {
			one := table.Calculate(Selection{Type: wt, Count: 1})
			four := table.Calculate(Selection{Type: wt, Count: 4})
			assert.True(t, four.TotalPrimary.Equal(one.TotalPrimary.Mul(decimal.NewFromInt(4))))
			assert.True(t, four.TotalSecondary.Equal(one.TotalSecondary.Mul(decimal.NewFromInt(4))))
		})
	}
}

func TestCountDefaultsToOne(t *testing.T) {
	table := DefaultTable()

	zero := table.Calculate(Selection{Type: WorkAssignment, Count: 0})
	one := table.Calculate(Selection{Type: WorkAssignment, Count: 1})

	assert.Equal(t, one, zero)
}

func TestUrgencyMonotonicAndNonNegative(t *testing.T) {
	table := DefaultTable()

	for wt := range table.Urgency {
		wt := wt
		t.Run(string(wt), func(t *testing.T) {
			prev := decimal.Decimal{}
			for d := 1; d <= 90; d++ {
				calc := table.Calculate(Selection{Type: wt, Days: days(d)})
				urgency := calc.LinesPrimary[1].Amount
				assert.False(t, urgency.IsNegative(), "day %d: %s", d, urgency)
				if d > 1 {
					assert.True(t, urgency.LessThanOrEqual(prev),
						"day %d: %s > %s", d, urgency, prev)
				}
				prev = urgency
			}
		})
	}
}

func TestCappedUrgencyStaysWithinBase(t *testing.T) {
	table := DefaultTable()

	for _, wt := range []WorkType{WorkThesis, WorkPresentationThesis} {
		wt := wt
		t.Run(string(wt), func(t *testing.T) {
			base := table.Base[wt]
			for d := 1; d <= 250; d++ {
				calc := table.Calculate(Selection{Type: wt, Days: days(d)})
				urgency := calc.LinesPrimary[1].Amount
				// база + надбавка в пределах [1×база, 2×база]
				assert.True(t, urgency.LessThanOrEqual(base), "day %d: %s", d, urgency)
				assert.False(t, urgency.IsNegative(), "day %d: %s", d, urgency)
			}
		})
	}
}

func TestUrgencyLineEdgeCases(t *testing.T) {
	table := DefaultTable()

	t.Run("days omitted: no urgency line", func(t *testing.T) {
		calc := table.Calculate(Selection{Type: WorkAssignment})
		require.Len(t, calc.LinesPrimary, 1)
	})

	t.Run("days explicitly zero: +0 line", func(t *testing.T) {
		calc := table.Calculate(Selection{Type: WorkAssignment, Days: days(0)})
		require.Len(t, calc.LinesPrimary, 2)
		assert.Equal(t, "Срочность = +0₽", calc.LinesPrimary[1].Render(table.Primary))
		assert.Equal(t, "Urgency = +$0", calc.LinesSecondary[1].Render(table.Secondary))
		assert.True(t, calc.TotalPrimary.Equal(table.Base[WorkAssignment]))
	})

	t.Run("decayed to zero: +0 line with days", func(t *testing.T) {
		// 1500 - 100×15 = 0
		calc := table.Calculate(Selection{Type: WorkAssignment, Days: days(16)})
		require.Len(t, calc.LinesPrimary, 2)
		assert.Equal(t, "Срочность (16 дн) = +0₽", calc.LinesPrimary[1].Render(table.Primary))
		assert.True(t, calc.TotalPrimary.Equal(table.Base[WorkAssignment]))
	})

	t.Run("unmapped category contributes zero", func(t *testing.T) {
		custom := DefaultTable()
		delete(custom.Urgency, WorkPractice)
		calc := custom.Calculate(Selection{Type: WorkPractice, Days: days(3)})
		require.Len(t, calc.LinesPrimary, 2)
		assert.True(t, calc.LinesPrimary[1].Amount.IsZero())
		assert.True(t, calc.TotalPrimary.Equal(custom.Base[WorkPractice]))
	})
}

func TestExplainSurchargeFallsBackToDefault(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		wt   WorkType
		want int64
	}{
		{WorkAssignment, 2999},
		{WorkLabQuiz, 2999},
		{WorkExamQuestion, 2999},
		{WorkPresentationCoursework, 2999},
		{WorkPresentationThesis, 2999},
		{WorkPractice, 1999},
		{WorkCoursework, 5999},
		{WorkThesis, 15999},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.wt), func(t *testing.T) {
			with := table.Calculate(Selection{Type: tt.wt, Explain: true})
			without := table.Calculate(Selection{Type: tt.wt})
			diff := with.TotalPrimary.Sub(without.TotalPrimary)
			assert.True(t, diff.Equal(decimal.NewFromInt(tt.want)), "got %s", diff)
		})
	}
}

func TestByTitle(t *testing.T) {
	for _, wt := range Catalog {
		got, ok := ByTitle(wt.Title())
		require.True(t, ok, wt)
		assert.Equal(t, wt, got)
	}

	_, ok := ByTitle("Реферат")
	assert.False(t, ok)
}

func TestCurrencyFormat(t *testing.T) {
	rub := Currency{Code: "RUB", Symbol: "₽"}
	usd := Currency{Code: "USD", Symbol: "$", Prefix: true}

	assert.Equal(t, "299₽", rub.Format(decimal.NewFromInt(299)))
	assert.Equal(t, "$5", usd.Format(decimal.NewFromInt(5)))
}

func ExampleTable_Calculate() {
	table := DefaultTable()
	d := 3
	calc := table.Calculate(Selection{Type: WorkAssignment, Count: 2, Days: &d})
	for _, line := range table.RenderPrimary(calc) {
		fmt.Println(line)
	}
	fmt.Println("Итого:", table.Primary.Format(calc.TotalPrimary))
	// Output:
	// Задание — 299₽ × 2 = 598₽
	// Срочность (3 дн) = +1300₽
	// Итого: 1898₽
}
