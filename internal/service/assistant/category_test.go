package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Category
		ok    bool
	}{
		{label: "Расписание", want: Schedule, ok: true},
		{label: "  расписание ", want: Schedule, ok: true},
		{label: "РЕЖИМ РАБОТЫ", want: Schedule, ok: true},
		{label: "Контакты:", want: Contacts, ok: true},
		{label: "contacts", want: Contacts, ok: true},
		{label: "Анализы", want: LabTiming, ok: true},
		{label: "analyze_time", want: LabTiming, ok: true},
		{label: "Lab-Timing", want: LabTiming, ok: true},
		{label: "Памятка", want: Reminder, ok: true},
		{label: "Памятки", want: Reminder, ok: true},
		{label: "Погода", ok: false},
		{label: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseCategory(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	var s Categories
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())

	s = s.Add(Reminder).Add(Schedule).Add(Schedule)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(Schedule))
	assert.True(t, s.Has(Reminder))
	assert.False(t, s.Has(Contacts))
	assert.Equal(t, []Category{Schedule, Reminder}, s.List())
	assert.Equal(t, "[Расписание, Памятка]", s.String())

	assert.Equal(t, s, s.Add(Category(42)))
	assert.Equal(t, NewCategories(Schedule, Reminder), s)
}

func TestCategory_Key(t *testing.T) {
	assert.Equal(t, "schedule", Schedule.Key())
	assert.Equal(t, "contacts", Contacts.Key())
	assert.Equal(t, "analyze_time", LabTiming.Key())
	assert.Equal(t, "reminder", Reminder.Key())
	assert.Equal(t, "", Category(9).Key())
}
