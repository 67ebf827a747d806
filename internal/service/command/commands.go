package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/medicbot/internal/core"
)

// Resetter forgets the turns of one conversation.
type Resetter interface {
	Reset(conversationID string)
}

// FactReader is the read side of the fact aggregator.
type FactReader interface {
	core.FactSource
	Results(ctx context.Context) string
}

func NewCommands(conversations Resetter, facts FactReader) []core.Command {
	return []core.Command{
		&ResetCommand{conversations: conversations},
		&FactsCommand{facts: facts},
	}
}

type ResetCommand struct {
	conversations Resetter
}

func (c *ResetCommand) Name() string { return "reset" }

func (c *ResetCommand) Description() string { return "начать диалог заново" }

func (c *ResetCommand) Execute(_ context.Context, sessionID string, _ []string) (string, error) {
	c.conversations.Reset(sessionID)
	return "Диалог начат заново.", nil
}

var factNames = []string{"contacts", "schedule", "reminder", "results"}

type FactsCommand struct {
	facts FactReader
}

func (c *FactsCommand) Name() string { return "facts" }

func (c *FactsCommand) Description() string {
	return "сведения с сайта поликлиники: " + strings.Join(factNames, ", ")
}

func (c *FactsCommand) Execute(ctx context.Context, _ string, args []string) (string, error) {
	if len(args) == 0 {
		return formatUsage("/facts " + strings.Join(factNames, "|")), nil
	}

	switch strings.ToLower(args[0]) {
	case "contacts":
		return c.facts.Contacts(ctx), nil
	case "schedule":
		return c.facts.Schedule(ctx), nil
	case "reminder":
		return c.facts.Reminder(ctx), nil
	case "results":
		return c.facts.Results(ctx), nil
	default:
		return "", fmt.Errorf("unknown fact %q", args[0])
	}
}

type helpCommand struct {
	router *Router
}

func newHelpCommand(r *Router) *helpCommand {
	return &helpCommand{router: r}
}

func (c *helpCommand) Name() string { return "help" }

func (c *helpCommand) Description() string { return "список команд" }

func (c *helpCommand) Execute(context.Context, string, []string) (string, error) {
	var items []string
	for _, cmd := range c.router.ListCommands() {
		items = append(items, fmt.Sprintf("/%s - %s", cmd.Name(), cmd.Description()))
	}
	return formatTitle("Команды") + formatList(items), nil
}
