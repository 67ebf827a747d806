package facts

import (
	"context"

	"github.com/sandevgo/medicbot/internal/core"
	"github.com/sandevgo/medicbot/pkg/log"
)

const (
	ContactsNotFound = "Контакты не найдены"
	ScheduleNotFound = "Расписание не найдено"
	ReminderNotFound = "Памятка не найдена"
	ResultsNotFound  = "Расписание выдачи результатов не найдено"
)

// Aggregator answers single-fact queries. Every call refetches the pages, and
// an unavailable site is reported in-band as a fallback string.
type Aggregator struct {
	site core.SiteFetcher
}

func NewAggregator(site core.SiteFetcher) *Aggregator {
	return &Aggregator{site: site}
}

func (a *Aggregator) Contacts(ctx context.Context) string {
	return a.pick(ctx, "contacts", ContactsNotFound, func(p core.SitePayload) string {
		return p.Contacts
	})
}

func (a *Aggregator) Schedule(ctx context.Context) string {
	return a.pick(ctx, "schedule", ScheduleNotFound, func(p core.SitePayload) string {
		return p.Schedule
	})
}

// Reminder renders the patient reminders, or the reminder not-found
// sentinel when the page had none.
func (a *Aggregator) Reminder(ctx context.Context) string {
	return a.pick(ctx, "reminder", ReminderNotFound, func(p core.SitePayload) string {
		return p.Reminders.String()
	})
}

func (a *Aggregator) Results(ctx context.Context) string {
	return a.pick(ctx, "results", ResultsNotFound, func(p core.SitePayload) string {
		return p.Results
	})
}

func (a *Aggregator) pick(ctx context.Context, fact, fallback string, field func(core.SitePayload) string) string {
	payloads := a.site.Fetch(ctx)
	if len(payloads) == 0 {
		log.FromCtx(ctx).Warn().Str("fact", fact).Msg("site unavailable, using fallback")
		return fallback
	}
	return field(payloads[0])
}
