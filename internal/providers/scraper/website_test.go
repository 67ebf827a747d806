package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/medicbot/internal/config"
	"github.com/sandevgo/medicbot/internal/core"
)

const testMapsURL = "https://maps.test/?text="

func mapLink(addr string) string {
	return fmt.Sprintf(`<a href="%s%s">%s</a>`, testMapsURL, url.QueryEscape("Чита, "+addr), addr)
}

type fakeSite struct {
	*httptest.Server

	mu     sync.Mutex
	hits   map[string]int
	status map[string]int
}

func newFakeSite(t *testing.T) *fakeSite {
	t.Helper()

	site := &fakeSite{hits: map[string]int{}, status: map[string]int{}}
	site.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site.mu.Lock()
		site.hits[r.URL.Path]++
		status := site.status[r.URL.Path]
		site.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}

		body, err := os.ReadFile(filepath.Join("testdata", strings.TrimPrefix(r.URL.Path, "/")+".html"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(body)
	}))
	t.Cleanup(site.Close)

	return site
}

func (s *fakeSite) config() *config.SiteConfig {
	return &config.SiteConfig{
		MainURL:         s.URL + "/main",
		ConsultativeURL: s.URL + "/consultative",
		LabURL:          s.URL + "/lab",
		MapsURL:         testMapsURL,
		City:            "Чита",
		Timeout:         5 * time.Second,
	}
}

func (s *fakeSite) hitsFor(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func TestWebsite_Fetch(t *testing.T) {
	site := newFakeSite(t)
	w := NewWebsite(site.config())

	payloads := w.Fetch(context.Background())
	require.Len(t, payloads, 1)
	got := payloads[0]

	expectedContacts := strings.Join([]string{
		` <b>Единый центр:</b> <a href="tel:+73022323058">8 (3022) 32-30-58</a>`,
		"\n <b>Для студентов ЧГМА:</b>",
		` <a href="tel:+79140001122">8-914-000-11-22</a>`,
		" 35-43-24",
		"\n Адрес: " + mapLink("ул. Бабушкина, 48") + " (к терапевту Котовщиковой И.А.)",
	}, "\n")
	assert.Equal(t, expectedContacts, got.Contacts)

	expectedSchedule := strings.Join([]string{
		"\n<b>Диагностическая поликлиника (" + mapLink("ул. Бабушкина, 44") + ")</b>",
		"• Пн-Пт: 08:00 - 18:00",
		"• Сб: 09:00 - 14:00",
		"\n<b>Сдача анализов (Диагностическая поликлиника, " + mapLink("ул. Бабушкина, 44") + ")</b>",
		"• Пн-Пт: 08:00 - 10:00",
		"\n<b>Сдача анализов (Бактериологическая лаборатория, " + mapLink("ул. Бабушкина, 46") + ")</b>",
		"• Пн-Пт: 08:00 - 11:00",
	}, "\n") + "\n\n" + strings.Join([]string{
		"\n<b>Отделение консультативной помощи детям</b> " + mapLink("ул. Бабушкина, 44") + " (вход с ул. Горького)",
		"• Понедельник: 08:00 - 16:00",
		"• Вторник: 08:00 - 15:00",
	}, "\n")
	assert.Equal(t, expectedSchedule, got.Schedule)

	assert.Equal(t, "Понедельник - Пятница: 08:00 - 17:30\nСуббота: 09:00 - 13:00", got.Results)

	assert.Equal(t, []core.Reminder{
		{Title: "Подготовка к сдаче крови", Steps: []string{"Обновлено"}},
		{Title: "Сбор мочи", Steps: []string{"Утренняя порция"}},
	}, got.Reminders.Items)

	// Results default to the lab page, which is downloaded once per session.
	assert.Equal(t, 1, site.hitsFor("/lab"))
	assert.Equal(t, 1, site.hitsFor("/main"))
}

func TestWebsite_Fetch_Deterministic(t *testing.T) {
	site := newFakeSite(t)
	w := NewWebsite(site.config())

	first := w.Fetch(context.Background())
	second := w.Fetch(context.Background())

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, site.hitsFor("/lab"))
}

func TestWebsite_Fetch_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeSite, *config.SiteConfig)
	}{
		{
			name: "server error on consultative page",
			setup: func(s *fakeSite, _ *config.SiteConfig) {
				s.status["/consultative"] = http.StatusInternalServerError
			},
		},
		{
			name: "missing lab page",
			setup: func(s *fakeSite, _ *config.SiteConfig) {
				s.status["/lab"] = http.StatusNotFound
			},
		},
		{
			name: "unreachable host",
			setup: func(_ *fakeSite, cfg *config.SiteConfig) {
				cfg.MainURL = "http://127.0.0.1:1/main"
			},
		},
		{
			name: "malformed url",
			setup: func(_ *fakeSite, cfg *config.SiteConfig) {
				cfg.MainURL = "://bad"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := newFakeSite(t)
			cfg := site.config()
			tt.setup(site, cfg)

			assert.Empty(t, NewWebsite(cfg).Fetch(context.Background()))
		})
	}
}

func TestWebsite_Fetch_CancelledContext(t *testing.T) {
	site := newFakeSite(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, NewWebsite(site.config()).Fetch(ctx))
}

func TestWebsite_Fetch_EmptyPages(t *testing.T) {
	site := newFakeSite(t)
	cfg := site.config()
	cfg.MainURL = site.URL + "/empty"
	cfg.ConsultativeURL = site.URL + "/empty"
	cfg.LabURL = site.URL + "/empty"

	payloads := NewWebsite(cfg).Fetch(context.Background())
	require.Len(t, payloads, 1)
	got := payloads[0]

	assert.Equal(t, "Телефоны не найдены", got.Contacts)
	assert.Equal(t,
		"Расписание не найдено\n\n\n<b>Отделение консультативной помощи детям</b> "+
			mapLink("ул. Бабушкина, 44")+" (вход с ул. Горького)\nРасписание не найдено",
		got.Schedule,
	)
	assert.Equal(t, "Расписание выдачи результатов не найдено", got.Results)
	assert.False(t, got.Reminders.Found())
	assert.Equal(t, core.RemindersNotFound, got.Reminders.String())

	assert.Equal(t, 1, site.hitsFor("/empty"))
}
