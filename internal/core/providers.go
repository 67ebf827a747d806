package core

import "context"

// AIProvider is a generative backend reachable over a request/response API.
type AIProvider interface {
	Chat(ctx context.Context, history []Message, opts GenOptions) (Message, error)
}

// SiteFetcher extracts one payload per call. An empty result means the
// pages are temporarily unavailable.
type SiteFetcher interface {
	Fetch(ctx context.Context) []SitePayload
}

// ChatAdapter mediates between a conversation history and an AIProvider.
type ChatAdapter interface {
	SystemPrompt() string
	FormatMessage(text string, isUser bool) Message
	GetResponse(ctx context.Context, history []Message, bundle ContextBundle, opts GenOptions) (string, error)
}

// FactSource answers single-fact queries in-band: failures come back as
// fallback text, never as errors.
type FactSource interface {
	Schedule(ctx context.Context) string
	Contacts(ctx context.Context) string
	Reminder(ctx context.Context) string
}

// Command is a slash command available in chat front ends. Results are in
// Telegram's HTML subset.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, sessionID string, args []string) (string, error)
}
