package core

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	MedicName      = "MedicBot"
	MedicUserAgent = "MedicBot-Scraper/0.1"
	MedicVersion   = "0.1.0"

	MedicRepositoryURL = "https://github.com/sandevgo/medicbot"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenOptions are per-request generation parameters. Zero values mean
// "backend default".
type GenOptions struct {
	Temperature *float64
	MaxTokens   int
	TopK        int
}

// ContextBundle maps a fact key to its text for a single question.
// A missing key means the fact was not requested.
type ContextBundle map[string]string

// Lines renders the bundle as "key: value" lines in key order.
func (b ContextBundle) Lines() []string {
	lines := make([]string, 0, len(b))
	for _, k := range slices.Sorted(maps.Keys(b)) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, b[k]))
	}
	return lines
}

const RemindersNotFound = "Нужные памятки не найдены"

type Reminder struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// Reminders is an ordered set of patient reminders. An empty value is the
// not-found sentinel, not "zero reminders".
type Reminders struct {
	Items []Reminder `json:"items,omitempty"`
}

func (r Reminders) Found() bool {
	return len(r.Items) > 0
}

// Set adds a reminder, replacing the steps of an existing one with the same
// title while keeping its position.
func (r *Reminders) Set(title string, steps []string) {
	for i := range r.Items {
		if r.Items[i].Title == title {
			r.Items[i].Steps = steps
			return
		}
	}
	r.Items = append(r.Items, Reminder{Title: title, Steps: steps})
}

func (r Reminders) String() string {
	if !r.Found() {
		return RemindersNotFound
	}

	var sb strings.Builder
	for i, item := range r.Items {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(item.Title)
		sb.WriteString(":")
		for n, step := range item.Steps {
			fmt.Fprintf(&sb, "\n%d. %s", n+1, step)
		}
	}
	return sb.String()
}

// SitePayload is one snapshot of everything extracted from the clinic pages.
type SitePayload struct {
	Contacts  string    `json:"contacts"`
	Schedule  string    `json:"schedule"`
	Results   string    `json:"results"`
	Reminders Reminders `json:"patient_reminder"`
}
