package scraper

import (
	"context"
	"fmt"

	"github.com/sandevgo/medicbot/internal/config"
	"github.com/sandevgo/medicbot/internal/core"
	"github.com/sandevgo/medicbot/pkg/log"
)

// Website extracts clinic facts from the institutional pages.
type Website struct {
	cfg   *config.SiteConfig
	links linker
}

func NewWebsite(cfg *config.SiteConfig) *Website {
	return &Website{
		cfg:   cfg,
		links: newLinker(cfg.MapsURL, cfg.City),
	}
}

// Fetch downloads and parses every page in a fresh session. It returns a
// single payload, or nil when any page fails.
func (w *Website) Fetch(ctx context.Context) (payloads []core.SitePayload) {
	logger := log.FromCtx(ctx).With().Str("component", "scraper").Logger()

	sess := NewSession(w.cfg.Timeout)
	defer sess.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("site parsing panicked")
			payloads = nil
		}
	}()

	payload, err := w.fetch(ctx, sess)
	if err != nil {
		logger.Error().Err(err).Msg("site fetch failed")
		return nil
	}

	logger.Debug().
		Int("reminders", len(payload.Reminders.Items)).
		Msg("site fetched")

	return []core.SitePayload{payload}
}

func (w *Website) fetch(ctx context.Context, sess *Session) (core.SitePayload, error) {
	var payload core.SitePayload

	mainDoc, err := sess.Page(ctx, w.cfg.MainURL)
	if err != nil {
		return payload, fmt.Errorf("main page: %w", err)
	}

	consultDoc, err := sess.Page(ctx, w.cfg.ConsultativeURL)
	if err != nil {
		return payload, fmt.Errorf("consultative page: %w", err)
	}

	resultsDoc, err := sess.Page(ctx, w.cfg.GetResultsURL())
	if err != nil {
		return payload, fmt.Errorf("results page: %w", err)
	}

	labDoc, err := sess.Page(ctx, w.cfg.LabURL)
	if err != nil {
		return payload, fmt.Errorf("reminder page: %w", err)
	}

	payload.Contacts = w.parseContacts(mainDoc)
	payload.Schedule = w.parseMainSchedule(mainDoc) + "\n\n" + w.parseConsultativeSchedule(consultDoc)
	payload.Results = parseResultsSchedule(resultsDoc)
	payload.Reminders = parseReminders(labDoc)

	return payload, nil
}
