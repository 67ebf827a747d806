package conversation

import (
	"context"
	"slices"

	"github.com/sandevgo/medicbot/internal/core"
)

// Session owns the history of one logical conversation. It is not safe for
// concurrent use.
type Session struct {
	adapter core.ChatAdapter
	history []core.Message
}

func NewSession(adapter core.ChatAdapter) *Session {
	s := &Session{adapter: adapter}
	s.Reset()
	return s
}

// Reset drops every turn and leaves only the system message.
func (s *Session) Reset() {
	s.history = []core.Message{s.adapter.FormatMessage(s.adapter.SystemPrompt(), false)}
}

// GetAnswer runs one durable turn. History grows by exactly two entries on
// success and is left untouched on failure.
func (s *Session) GetAnswer(ctx context.Context, text string, bundle core.ContextBundle, opts core.GenOptions) (string, error) {
	n := len(s.history)
	s.history = append(s.history, s.adapter.FormatMessage(text, true))

	reply, err := s.adapter.GetResponse(ctx, s.history, bundle, opts)
	if err != nil {
		s.history = s.history[:n]
		return "", err
	}

	s.history = append(s.history, s.adapter.FormatMessage(reply, false))
	return reply, nil
}

// Ask sends text on top of the current history without recording the
// exchange.
func (s *Session) Ask(ctx context.Context, text string, opts core.GenOptions) (string, error) {
	msgs := append(s.History(), s.adapter.FormatMessage(text, true))
	return s.adapter.GetResponse(ctx, msgs, nil, opts)
}

func (s *Session) History() []core.Message {
	return slices.Clone(s.history)
}

func (s *Session) Len() int {
	return len(s.history)
}
