package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/medicbot/internal/core"
)

type recordingProvider struct {
	calls [][]core.Message
	reply string
	err   error
}

func (p *recordingProvider) Chat(_ context.Context, history []core.Message, _ core.GenOptions) (core.Message, error) {
	p.calls = append(p.calls, history)
	if p.err != nil {
		return core.Message{}, p.err
	}
	return core.Message{Role: core.RoleAssistant, Content: p.reply}, nil
}

func TestAdapter_FormatMessage(t *testing.T) {
	a := NewAdapter(&recordingProvider{}, "sys")

	assert.Equal(t, core.Message{Role: core.RoleUser, Content: "sys"}, a.FormatMessage("sys", true))
	assert.Equal(t, core.Message{Role: core.RoleSystem, Content: "sys"}, a.FormatMessage("sys", false))
	assert.Equal(t, core.Message{Role: core.RoleAssistant, Content: "hi"}, a.FormatMessage("hi", false))
	assert.Equal(t, "sys", a.SystemPrompt())
}

func TestAdapter_GetResponse(t *testing.T) {
	tests := []struct {
		name     string
		history  []core.Message
		bundle   core.ContextBundle
		expected []core.Message
	}{
		{
			name: "merged into system message",
			history: []core.Message{
				{Role: core.RoleSystem, Content: "sys"},
				{Role: core.RoleUser, Content: "q"},
			},
			bundle: core.ContextBundle{"schedule": "s", "contacts": "c"},
			expected: []core.Message{
				{Role: core.RoleSystem, Content: "sys\n\nКонтекстные данные:\ncontacts: c\nschedule: s"},
				{Role: core.RoleUser, Content: "q"},
			},
		},
		{
			name:    "prepended without system message",
			history: []core.Message{{Role: core.RoleUser, Content: "q"}},
			bundle:  core.ContextBundle{"reminder": "r"},
			expected: []core.Message{
				{Role: core.RoleSystem, Content: "Контекстные данные:\nreminder: r"},
				{Role: core.RoleUser, Content: "q"},
			},
		},
		{
			name: "empty bundle leaves history as is",
			history: []core.Message{
				{Role: core.RoleSystem, Content: "sys"},
				{Role: core.RoleUser, Content: "q"},
			},
			expected: []core.Message{
				{Role: core.RoleSystem, Content: "sys"},
				{Role: core.RoleUser, Content: "q"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingProvider{reply: "  answer with spaces \n"}
			a := NewAdapter(p, "sys")

			snapshot := append([]core.Message(nil), tt.history...)

			got, err := a.GetResponse(context.Background(), tt.history, tt.bundle, core.GenOptions{})
			require.NoError(t, err)
			assert.Equal(t, "  answer with spaces \n", got)

			require.Len(t, p.calls, 1)
			assert.Equal(t, tt.expected, p.calls[0])
			assert.Equal(t, snapshot, tt.history, "caller history must not change")
		})
	}
}

func TestAdapter_GetResponse_Error(t *testing.T) {
	backendErr := errors.New("boom")
	a := NewAdapter(&recordingProvider{err: backendErr}, "sys")

	_, err := a.GetResponse(context.Background(), nil, nil, core.GenOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, backendErr)
}
