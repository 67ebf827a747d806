package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextBundle_Lines(t *testing.T) {
	b := ContextBundle{
		"schedule": "пн-пт 8:00-18:00",
		"contacts": "+7 3022 000000",
	}

	assert.Equal(t, []string{
		"contacts: +7 3022 000000",
		"schedule: пн-пт 8:00-18:00",
	}, b.Lines())
	assert.Empty(t, ContextBundle{}.Lines())
}

func TestReminders(t *testing.T) {
	t.Run("empty is not found", func(t *testing.T) {
		var r Reminders
		assert.False(t, r.Found())
		assert.Equal(t, RemindersNotFound, r.String())
	})

	t.Run("set replaces in place", func(t *testing.T) {
		var r Reminders
		r.Set("Анализ крови", []string{"натощак"})
		r.Set("УЗИ", []string{"за 3 дня диета"})
		r.Set("Анализ крови", []string{"натощак", "без физической нагрузки"})

		assert.Equal(t, "Анализ крови:\n1. натощак\n2. без физической нагрузки\n\nУЗИ:\n1. за 3 дня диета", r.String())
	})

	t.Run("title without steps", func(t *testing.T) {
		var r Reminders
		r.Set("Флюорография", nil)
		assert.Equal(t, "Флюорография:", r.String())
	})
}
