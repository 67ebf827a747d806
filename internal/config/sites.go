package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/medicbot/pkg/log"
)

// SiteConfig lists the institutional pages the scraper reads.
type SiteConfig struct {
	MainURL         string        `env:"CLINIC_MAIN_URL" envDefault:"https://clinica.chitgma.ru/diagnosticheskaya-poliklinika"`
	ConsultativeURL string        `env:"CLINIC_CONSULTATIVE_URL" envDefault:"https://clinica.chitgma.ru/otdelenie-konsultativnoj-pomoshchi-detyam"`
	LabURL          string        `env:"CLINIC_LAB_URL" envDefault:"https://clinica.chitgma.ru/informatsiya-po-otdeleniyu-12"`
	ResultsURL      string        `env:"CLINIC_RESULTS_URL"`
	MapsURL         string        `env:"CLINIC_MAPS_URL" envDefault:"https://yandex.ru/maps/?text="`
	City            string        `env:"CLINIC_CITY" envDefault:"Чита"`
	Timeout         time.Duration `env:"CLINIC_FETCH_TIMEOUT" envDefault:"15s"`
}

func NewSiteConfig(ctx context.Context) *SiteConfig {
	c := &SiteConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Site config")
	}
	return c
}

// GetResultsURL falls back to the lab page, which carries the results
// issue hours as well as the reminders.
func (c SiteConfig) GetResultsURL() string {
	if c.ResultsURL != "" {
		return c.ResultsURL
	}
	return c.LabURL
}
