package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/medicbot/internal/config"
	"github.com/sandevgo/medicbot/internal/core"
	"github.com/sandevgo/medicbot/internal/service/command"
	"github.com/sandevgo/medicbot/internal/service/ui"
	"github.com/sandevgo/medicbot/pkg/conv"
	"github.com/sandevgo/medicbot/pkg/log"
)

const defaultSessionID = "cli-local"

// Answerer runs free-text questions within a conversation.
type Answerer interface {
	Answer(ctx context.Context, conversationID, question string, opts core.GenOptions) (string, error)
}

type ReadLine struct {
	cfg    *config.AppConfig
	answer Answerer
	router *command.Router
	opts   core.GenOptions
	rl     *readline.Instance
}

func NewReadLine(answer Answerer, router *command.Router, opts core.GenOptions, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		answer: answer,
		router: router,
		opts:   opts,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("chat started. Type '/help' for commands or 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit":
			return nil
		}

		if res, handled := r.router.Execute(ctx, defaultSessionID, line); handled {
			text, err := conv.HTMLToText(res)
			if err != nil {
				text = res
			}
			fmt.Fprintln(r.rl.Stdout(), ui.System(text))
			continue
		}

		reply, err := r.answer.Answer(ctx, defaultSessionID, line, r.opts)
		if err != nil {
			logger.Error().Err(err).Msg("answer failed")
			fmt.Fprintln(r.rl.Stdout(), ui.Error(err))
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "%s\n", reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
