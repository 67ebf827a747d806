package assistant

import (
	"context"
	"fmt"

	"github.com/sandevgo/medicbot/internal/core"
	"github.com/sandevgo/medicbot/internal/service/conversation"
	"github.com/sandevgo/medicbot/pkg/log"
)

// Assistant answers patient questions for one conversation: classify, fetch
// the facts the question needs, then generate with them as context.
type Assistant struct {
	session *conversation.Session
	facts   core.FactSource
}

func New(session *conversation.Session, facts core.FactSource) *Assistant {
	return &Assistant{
		session: session,
		facts:   facts,
	}
}

// Classify asks the backend which categories apply to question. The
// exchange is not recorded in the conversation.
func (a *Assistant) Classify(ctx context.Context, question string) (Categories, error) {
	reply, err := a.session.Ask(ctx, classifyPrompt(question), core.GenOptions{})
	if err != nil {
		return 0, fmt.Errorf("classify: %w", err)
	}

	set, err := ParseClassification(reply)
	if err != nil {
		return 0, fmt.Errorf("classify: %w", err)
	}
	return set, nil
}

// Answer runs one full turn. Facts are fetched one category at a time.
func (a *Assistant) Answer(ctx context.Context, question string, opts core.GenOptions) (string, error) {
	set, err := a.Classify(ctx, question)
	if err != nil {
		return "", err
	}
	log.FromCtx(ctx).Debug().Stringer("categories", set).Msg("question classified")

	return a.AnswerWith(ctx, question, set, opts)
}

// AnswerWith answers using the facts of an already known category set.
func (a *Assistant) AnswerWith(ctx context.Context, question string, set Categories, opts core.GenOptions) (string, error) {
	return a.session.GetAnswer(ctx, question, a.Bundle(ctx, set), opts)
}

// Bundle fetches one fact per category in set. Absent categories contribute
// no key.
func (a *Assistant) Bundle(ctx context.Context, set Categories) core.ContextBundle {
	bundle := make(core.ContextBundle, set.Len())
	for _, c := range set.List() {
		switch c {
		case Schedule:
			bundle[c.Key()] = a.facts.Schedule(ctx)
		case Contacts:
			bundle[c.Key()] = a.facts.Contacts(ctx)
		case LabTiming:
			bundle[c.Key()] = LabTimingText
		case Reminder:
			bundle[c.Key()] = a.facts.Reminder(ctx)
		}
	}
	return bundle
}

func (a *Assistant) Reset() {
	a.session.Reset()
}

// History returns a copy of the conversation so far.
func (a *Assistant) History() []core.Message {
	return a.session.History()
}
