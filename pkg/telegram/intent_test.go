package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EBWTBME/reshu-bot/pkg/pricing"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"🔵 Да / Yes", IntentYes},
		{"да", IntentYes},
		{"Да, нужны", IntentYes},
		{"YES", IntentYes},
		{"⚪️ Нет / No", IntentNo},
		{"нет", IntentNo},
		{"No", IntentNo},
		{"❌ Отменить заказ / Cancel order", IntentCancel},
		{"отмена", IntentCancel},
		{"хочу отменить", IntentCancel},
		{"cancel", IntentCancel},
		{"", IntentNone},
		{"3", IntentNone},
		{"Курсовая", IntentNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectIntent(tt.text), "text %q", tt.text)
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"🔵 Задание / Assignment", "Задание"},
		{"⚪️ Нет / No", "Нет"},
		{"Курсовая", "Курсовая"},
		{"  Практика / Practice  ", "Практика"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseChoice(tt.text), "text %q", tt.text)
	}
}

func TestParseWorkType(t *testing.T) {
	wt, ok := ParseWorkType("🔵 Лабораторная/Контрольная / Lab / Quiz")
	require.True(t, ok)
	assert.Equal(t, pricing.WorkLabQuiz, wt)

	_, ok = ParseWorkType("🔵 Реферат / Essay")
	assert.False(t, ok)
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{" 14 ", 14, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePositiveInt(tt.text)
		assert.Equal(t, tt.ok, ok, "text %q", tt.text)
		assert.Equal(t, tt.want, got, "text %q", tt.text)
	}
}
