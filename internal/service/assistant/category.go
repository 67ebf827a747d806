package assistant

import (
	"strings"
	"unicode"
)

// Category is one element of the closed question taxonomy.
type Category uint8

const (
	Schedule Category = iota
	Contacts
	LabTiming
	Reminder

	categoryCount
)

var categoryNames = [categoryCount]string{
	Schedule:  "Расписание",
	Contacts:  "Контакты",
	LabTiming: "Анализы",
	Reminder:  "Памятка",
}

// categoryKeys are the context bundle keys the backend sees.
var categoryKeys = [categoryCount]string{
	Schedule:  "schedule",
	Contacts:  "contacts",
	LabTiming: "analyze_time",
	Reminder:  "reminder",
}

var categoryAliases = map[string]Category{}

func init() {
	aliases := map[Category][]string{
		Schedule:  {"Расписание", "График", "График работы", "Режим работы", "Время работы", "Schedule", "Hours"},
		Contacts:  {"Контакты", "Контакт", "Телефоны", "Адрес", "Contacts", "Contact"},
		LabTiming: {"Анализы", "Анализ", "Сроки анализов", "Lab timing", "Analyze time", "Analyses", "Analysis", "Tests"},
		Reminder:  {"Памятка", "Памятки", "Памятка пациента", "Reminder", "Reminders", "Patient reminder"},
	}
	for c, names := range aliases {
		for _, name := range names {
			categoryAliases[normalizeLabel(name)] = c
		}
	}
	for c := range categoryCount {
		categoryAliases[normalizeLabel(categoryKeys[c])] = c
	}
}

func (c Category) String() string {
	if c >= categoryCount {
		return "Unknown"
	}
	return categoryNames[c]
}

// Key is the context bundle key for the category.
func (c Category) Key() string {
	if c >= categoryCount {
		return ""
	}
	return categoryKeys[c]
}

// ParseCategory resolves a backend label, ignoring case, spacing and
// punctuation.
func ParseCategory(label string) (Category, bool) {
	c, ok := categoryAliases[normalizeLabel(label)]
	return c, ok
}

func normalizeLabel(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r == 'ё':
			sb.WriteRune('е')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Categories is a set of categories.
type Categories uint8

func NewCategories(cs ...Category) Categories {
	var s Categories
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

func (s Categories) Has(c Category) bool {
	return c < categoryCount && s&(1<<c) != 0
}

func (s Categories) Add(c Category) Categories {
	if c >= categoryCount {
		return s
	}
	return s | 1<<c
}

// List returns the members in declaration order.
func (s Categories) List() []Category {
	var out []Category
	for c := range categoryCount {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Categories) Len() int {
	return len(s.List())
}

func (s Categories) String() string {
	names := make([]string, 0, categoryCount)
	for _, c := range s.List() {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
