package telegram

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/medicbot/internal/config"
	"github.com/sandevgo/medicbot/internal/core"
	"github.com/sandevgo/medicbot/internal/service/assistant"
	"github.com/sandevgo/medicbot/internal/service/command"
	"github.com/sandevgo/medicbot/pkg/log"
)

const baseContextKey = "base_context"

const errorReply = "Извините, произошла ошибка при обработке вашего запроса."

// Answerer runs free-text questions within a conversation.
type Answerer interface {
	Answer(ctx context.Context, conversationID, question string, opts core.GenOptions) (string, error)
	Reset(conversationID string)
}

type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	answer Answerer
	facts  core.FactSource
	router *command.Router
	sender *sender
	menu   *tele.ReplyMarkup
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	answer Answerer,
	facts core.FactSource,
	router *command.Router,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		answer: answer,
		facts:  facts,
		router: router,
		sender: newSender(b),
		menu:   &tele.ReplyMarkup{ResizeKeyboard: true},
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, log.WithComponent(ctx, "telegram"))
			return next(c)
		}
	})

	btnHours := bot.menu.Text("Режим работы")
	btnContacts := bot.menu.Text("Контакты")
	btnHelp := bot.menu.Text("Помощь")
	btnAppointments := bot.menu.Text("График приема")
	bot.menu.Reply(
		bot.menu.Row(btnHours),
		bot.menu.Row(btnContacts),
		bot.menu.Row(btnHelp),
		bot.menu.Row(btnAppointments),
	)

	b.Handle("/start", bot.handleStart)
	b.Handle("/help", bot.handleHelp)
	b.Handle(&btnHelp, bot.handleHelp)
	b.Handle(&btnHours, bot.handleFact(facts.Schedule))
	b.Handle(&btnContacts, bot.handleFact(facts.Contacts))
	b.Handle(&btnAppointments, bot.handleMessage)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func conversationID(c tele.Context) string {
	return fmt.Sprintf("telegram-%d", c.Chat().ID)
}

func (b *Bot) handleStart(c tele.Context) error {
	b.answer.Reset(conversationID(c))
	return c.Send(assistant.StartMessage, b.menu)
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(assistant.HelpText, tele.ModeHTML, b.menu)
}

func (b *Bot) handleFact(get func(context.Context) string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := c.Get(baseContextKey).(context.Context)
		_ = c.Notify(tele.Typing)

		return b.sender.sendHTML(ctx, c.Recipient(), get(ctx), b.menu)
	}
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	// Unregistered slash commands such as /reset and /facts land here
	if res, handled := b.router.Execute(ctx, conversationID(c), c.Text()); handled {
		return b.sender.sendHTML(ctx, c.Recipient(), res, b.menu)
	}

	reply, err := b.answer.Answer(ctx, conversationID(c), c.Text(), assistant.DefaultOptions())
	if err != nil {
		logger.Error().Err(err).Int64("chat", c.Chat().ID).Msg("answer failed")
		return c.Send(errorReply, b.menu)
	}

	return b.sender.sendMarkdown(ctx, c.Recipient(), reply, b.menu)
}
