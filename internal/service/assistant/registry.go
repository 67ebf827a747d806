package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/medicbot/internal/core"
	"github.com/sandevgo/medicbot/pkg/log"
)

const (
	defaultIdleTTL      = 2 * time.Hour
	defaultPruneEvery   = 10 * time.Minute
	DefaultConversation = "default"
)

// Registry keeps one Assistant per conversation id and serializes the calls
// made within each conversation.
type Registry struct {
	newAssistant func() *Assistant
	idleTTL      time.Duration
	now          func() time.Time

	mu      sync.Mutex
	entries map[string]*entry

	stop chan struct{}
	once sync.Once
}

type entry struct {
	mu       sync.Mutex
	a        *Assistant
	lastUsed time.Time
}

func NewRegistry(newAssistant func() *Assistant) *Registry {
	return &Registry{
		newAssistant: newAssistant,
		idleTTL:      defaultIdleTTL,
		now:          time.Now,
		entries:      make(map[string]*entry),
		stop:         make(chan struct{}),
	}
}

func (r *Registry) get(id string) *entry {
	if id == "" {
		id = DefaultConversation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		e = &entry{a: r.newAssistant()}
		r.entries[id] = e
	}
	e.lastUsed = r.now()
	return e
}

func (r *Registry) Answer(ctx context.Context, id, question string, opts core.GenOptions) (string, error) {
	e := r.get(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.a.Answer(ctx, question, opts)
}

func (r *Registry) Reset(id string) {
	e := r.get(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.a.Reset()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Prune forgets conversations idle for longer than the TTL. A conversation
// still answering is kept, whatever its age.
func (r *Registry) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTTL)
	removed := 0
	for id, e := range r.entries {
		if !e.lastUsed.Before(cutoff) || !e.mu.TryLock() {
			continue
		}
		delete(r.entries, id)
		e.mu.Unlock()
		removed++
	}
	return removed
}

// Start prunes idle conversations until Shutdown.
func (r *Registry) Start(ctx context.Context) error {
	ticker := time.NewTicker(defaultPruneEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.stop:
			return nil
		case <-ticker.C:
			if n := r.Prune(); n > 0 {
				log.FromCtx(ctx).Debug().Int("removed", n).Msg("pruned idle conversations")
			}
		}
	}
}

func (r *Registry) Shutdown(context.Context) error {
	r.once.Do(func() { close(r.stop) })
	return nil
}
