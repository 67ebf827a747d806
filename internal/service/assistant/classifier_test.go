package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Categories
	}{
		{
			name:  "single true key",
			reply: `{"Расписание": true}`,
			want:  NewCategories(Schedule),
		},
		{
			name:  "falsy values skipped",
			reply: `{"Расписание": true, "Контакты": false, "Анализы": null, "Памятка": ""}`,
			want:  NewCategories(Schedule),
		},
		{
			name:  "descriptions as values",
			reply: `{"Контакты": "вопрос о телефоне", "Анализы": "сроки"}`,
			want:  NewCategories(Contacts, LabTiming),
		},
		{
			name:  "unknown keys ignored",
			reply: `{"Погода": true, "памятка": 1}`,
			want:  NewCategories(Reminder),
		},
		{
			name:  "code fence and prose",
			reply: "Вот ответ:\n```json\n{\"Контакты\": true}\n```\nНадеюсь, помог.",
			want:  NewCategories(Contacts),
		},
		{
			name:  "array of names",
			reply: `["Расписание", "Контакты", "Погода"]`,
			want:  NewCategories(Schedule, Contacts),
		},
		{
			name:  "names under a wrapper key",
			reply: `{"категории": ["Анализы", "Памятка"]}`,
			want:  NewCategories(LabTiming, Reminder),
		},
		{
			name:  "nested object under a wrapper key",
			reply: `{"категории": {"Расписание": true, "Контакты": true}}`,
			want:  NewCategories(Schedule, Contacts),
		},
		{
			name:  "comma separated names",
			reply: `{"категории": "Расписание, Контакты"}`,
			want:  NewCategories(Schedule, Contacts),
		},
		{
			name:  "bracketed word before the object",
			reply: `[Ответ] {"Расписание": true}`,
			want:  NewCategories(Schedule),
		},
		{
			name:  "only falsy categories",
			reply: `{"Расписание": false}`,
			want:  0,
		},
		{
			name:  "empty array",
			reply: `[]`,
			want:  0,
		},
		{
			name:  "empty object",
			reply: `{}`,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClassification(tt.reply)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClassification_Errors(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "plain text", reply: "Расписание и контакты"},
		{name: "broken json", reply: `{"Расписание": tru}`},
		{name: "unclosed", reply: `{"Расписание": true`},
		{name: "empty", reply: ""},
		{name: "only unknown keys", reply: `{"Погода": true}`},
		{name: "nested object without categories", reply: `{"категории": {"погода": true}}`},
		{name: "wrapper with unknown names", reply: `{"категории": "погода, транспорт"}`},
		{name: "array of unknown names", reply: `["Погода"]`},
		{name: "scalar", reply: `"Расписание"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClassification(tt.reply)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrClassificationFormat)
		})
	}
}
