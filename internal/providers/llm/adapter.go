package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/medicbot/internal/core"
)

// ErrGeneration wraps every failure of the language backend.
var ErrGeneration = errors.New("generation failed")

const contextHeader = "Контекстные данные:"

// Adapter shapes conversation history for a backend and merges per-question
// context into the outgoing request only.
type Adapter struct {
	provider     core.AIProvider
	systemPrompt string
}

func NewAdapter(provider core.AIProvider, systemPrompt string) *Adapter {
	return &Adapter{
		provider:     provider,
		systemPrompt: systemPrompt,
	}
}

func (a *Adapter) SystemPrompt() string {
	return a.systemPrompt
}

// FormatMessage builds a history entry. Non-user text equal to the system
// prompt becomes the System message, any other non-user text is an
// Assistant reply.
func (a *Adapter) FormatMessage(text string, isUser bool) core.Message {
	switch {
	case isUser:
		return core.Message{Role: core.RoleUser, Content: text}
	case text == a.systemPrompt:
		return core.Message{Role: core.RoleSystem, Content: text}
	default:
		return core.Message{Role: core.RoleAssistant, Content: text}
	}
}

// GetResponse sends history, with bundle merged into a copy of the system
// message, and returns the reply text unchanged.
func (a *Adapter) GetResponse(ctx context.Context, history []core.Message, bundle core.ContextBundle, opts core.GenOptions) (string, error) {
	msg, err := a.provider.Chat(ctx, withContext(history, bundle), opts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return msg.Content, nil
}

func withContext(history []core.Message, bundle core.ContextBundle) []core.Message {
	out := make([]core.Message, len(history), len(history)+1)
	copy(out, history)

	if len(bundle) == 0 {
		return out
	}

	block := contextHeader + "\n" + strings.Join(bundle.Lines(), "\n")

	for i := range out {
		if out[i].Role == core.RoleSystem {
			out[i].Content += "\n\n" + block
			return out
		}
	}

	return append([]core.Message{{Role: core.RoleSystem, Content: block}}, out...)
}
