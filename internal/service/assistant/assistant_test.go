package assistant

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/medicbot/internal/core"
	"github.com/sandevgo/medicbot/internal/providers/llm"
	"github.com/sandevgo/medicbot/internal/service/conversation"
	"github.com/sandevgo/medicbot/internal/service/facts"
)

// fakeBackend answers classification prompts with classification and every
// other request with answer.
type fakeBackend struct {
	mu             sync.Mutex
	classification string
	answer         string
	answerErr      error
	requests       [][]core.Message
}

func (b *fakeBackend) Chat(_ context.Context, history []core.Message, _ core.GenOptions) (core.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests = append(b.requests, history)
	last := history[len(history)-1].Content
	if strings.HasPrefix(last, "Классифицируй") {
		return core.Message{Role: core.RoleAssistant, Content: b.classification}, nil
	}
	if b.answerErr != nil {
		return core.Message{}, b.answerErr
	}
	return core.Message{Role: core.RoleAssistant, Content: b.answer}, nil
}

func (b *fakeBackend) last() []core.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[len(b.requests)-1]
}

type fakeFacts struct {
	calls []string
}

func (f *fakeFacts) Schedule(context.Context) string {
	f.calls = append(f.calls, "schedule")
	return "Пн-Пт 08:00 - 18:00"
}

func (f *fakeFacts) Contacts(context.Context) string {
	f.calls = append(f.calls, "contacts")
	return "8 (3022) 32-30-58"
}

func (f *fakeFacts) Reminder(context.Context) string {
	f.calls = append(f.calls, "reminder")
	return "Кровь:\n1. Натощак"
}

type unavailableSite struct{}

func (unavailableSite) Fetch(context.Context) []core.SitePayload { return nil }

func newAssistant(b core.AIProvider, f core.FactSource) *Assistant {
	return New(conversation.NewSession(llm.NewAdapter(b, DefaultSystemPrompt)), f)
}

func TestAssistant_Classify(t *testing.T) {
	b := &fakeBackend{classification: `{"Расписание": true}`}
	a := newAssistant(b, &fakeFacts{})

	got, err := a.Classify(context.Background(), "Во сколько вы работаете?")
	require.NoError(t, err)
	assert.Equal(t, NewCategories(Schedule), got)

	// Side channel: nothing recorded.
	assert.Len(t, a.History(), 1)
	req := b.last()
	assert.Contains(t, req[len(req)-1].Content, `Вопрос: "Во сколько вы работаете?"`)
}

func TestAssistant_Classify_FormatError(t *testing.T) {
	a := newAssistant(&fakeBackend{classification: "Расписание"}, &fakeFacts{})

	_, err := a.Classify(context.Background(), "q")
	assert.ErrorIs(t, err, ErrClassificationFormat)
}

func TestAssistant_Answer(t *testing.T) {
	tests := []struct {
		name           string
		classification string
		wantKeys       []string
		wantCalls      []string
	}{
		{
			name:           "contacts only",
			classification: `{"Контакты": true}`,
			wantKeys:       []string{"contacts"},
			wantCalls:      []string{"contacts"},
		},
		{
			name:           "schedule and contacts",
			classification: `{"Расписание": true, "Контакты": true, "Анализы": false}`,
			wantKeys:       []string{"contacts", "schedule"},
			wantCalls:      []string{"schedule", "contacts"},
		},
		{
			name:           "lab timing is static",
			classification: `{"Анализы": true, "Памятка": true}`,
			wantKeys:       []string{"analyze_time", "reminder"},
			wantCalls:      []string{"reminder"},
		},
		{
			name:           "nothing applicable",
			classification: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBackend{classification: tt.classification, answer: "Ответ"}
			f := &fakeFacts{}
			a := newAssistant(b, f)

			got, err := a.Answer(context.Background(), "вопрос", core.GenOptions{})
			require.NoError(t, err)
			assert.Equal(t, "Ответ", got)
			assert.Equal(t, tt.wantCalls, f.calls)
			assert.Len(t, a.History(), 3)

			system := b.last()[0].Content
			for _, key := range tt.wantKeys {
				assert.Contains(t, system, "\n"+key+": ")
			}
			if len(tt.wantKeys) == 0 {
				assert.Equal(t, DefaultSystemPrompt, system)
			}
			for _, key := range []string{"schedule", "contacts", "analyze_time", "reminder"} {
				if !slices.Contains(tt.wantKeys, key) {
					assert.NotContains(t, system, "\n"+key+": ")
				}
			}
		})
	}
}

func TestAssistant_Answer_ScheduleFallback(t *testing.T) {
	b := &fakeBackend{classification: `{"Расписание": true}`, answer: "Ответ"}
	a := newAssistant(b, facts.NewAggregator(unavailableSite{}))

	_, err := a.Answer(context.Background(), "what are your hours?", core.GenOptions{})
	require.NoError(t, err)

	assert.Contains(t, b.last()[0].Content, "Контекстные данные:\nschedule: Расписание не найдено")
}

func TestAssistant_Answer_GenerationError(t *testing.T) {
	b := &fakeBackend{classification: `{"Контакты": true}`, answerErr: errors.New("down")}
	a := newAssistant(b, &fakeFacts{})

	_, err := a.Answer(context.Background(), "q", core.GenOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrGeneration)
	assert.Len(t, a.History(), 1)
}

func TestAssistant_Reset(t *testing.T) {
	a := newAssistant(&fakeBackend{classification: `{}`, answer: "a"}, &fakeFacts{})

	_, err := a.Answer(context.Background(), "q", core.GenOptions{})
	require.NoError(t, err)

	a.Reset()
	h := a.History()
	require.Len(t, h, 1)
	assert.Equal(t, core.RoleSystem, h[0].Role)
}

func TestRegistry(t *testing.T) {
	b := &fakeBackend{classification: `{}`, answer: "a"}
	r := NewRegistry(func() *Assistant { return newAssistant(b, &fakeFacts{}) })

	ctx := context.Background()
	_, err := r.Answer(ctx, "chat-1", "q", core.GenOptions{})
	require.NoError(t, err)
	_, err = r.Answer(ctx, "chat-2", "q", core.GenOptions{})
	require.NoError(t, err)
	_, err = r.Answer(ctx, "chat-1", "q2", core.GenOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	assert.Len(t, r.get("chat-1").a.History(), 5)
	assert.Len(t, r.get("chat-2").a.History(), 3)

	r.Reset("chat-1")
	assert.Len(t, r.get("chat-1").a.History(), 1)

	_, err = r.Answer(ctx, "", "q", core.GenOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_ConcurrentSameConversation(t *testing.T) {
	b := &fakeBackend{classification: `{}`, answer: "a"}
	r := NewRegistry(func() *Assistant { return newAssistant(b, &fakeFacts{}) })

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Answer(context.Background(), "chat", "q", core.GenOptions{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	h := r.get("chat").a.History()
	require.Len(t, h, 21)
	for i := 1; i < len(h); i += 2 {
		assert.Equal(t, core.RoleUser, h[i].Role)
		assert.Equal(t, core.RoleAssistant, h[i+1].Role)
	}
}

func TestRegistry_Prune(t *testing.T) {
	r := NewRegistry(func() *Assistant { return newAssistant(&fakeBackend{}, &fakeFacts{}) })
	now := time.Now()
	r.now = func() time.Time { return now }

	r.get("old")
	now = now.Add(3 * time.Hour)
	r.get("fresh")

	assert.Equal(t, 1, r.Prune())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_PruneKeepsBusyConversation(t *testing.T) {
	r := NewRegistry(func() *Assistant { return newAssistant(&fakeBackend{}, &fakeFacts{}) })
	now := time.Now()
	r.now = func() time.Time { return now }

	busy := r.get("busy")
	busy.mu.Lock()
	now = now.Add(3 * time.Hour)

	assert.Equal(t, 0, r.Prune())
	assert.Same(t, busy, r.get("busy"))

	busy.mu.Unlock()
	now = now.Add(3 * time.Hour)
	assert.Equal(t, 1, r.Prune())
	assert.Equal(t, 0, r.Len())
}
