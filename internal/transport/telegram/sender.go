package telegram

import (
	"context"
	"strings"
	"unicode/utf8"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/medicbot/pkg/conv"
	"github.com/sandevgo/medicbot/pkg/log"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if needed.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string, menu *tele.ReplyMarkup) error {
	return s.send(ctx, to, conv.MarkdownToTelegramHTML([]byte(md)), menu)
}

// sendHTML sends a fact that is already in Telegram's HTML subset.
func (s *sender) sendHTML(ctx context.Context, to tele.Recipient, html string, menu *tele.ReplyMarkup) error {
	return s.send(ctx, to, conv.SanitizeTelegramHTML(html), menu)
}

func (s *sender) send(ctx context.Context, to tele.Recipient, html string, menu *tele.ReplyMarkup) error {
	logger := log.FromCtx(ctx)

	html = strings.TrimSpace(html)
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		opts := []any{tele.ModeHTML, tele.NoPreview}
		if menu != nil {
			opts = append(opts, menu)
		}

		if _, err := s.bot.Send(to, chunk, opts...); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		// Try to find a good break point (newline) in the second half of the chunk
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		} else {
			cut = runeBoundary(text, cut)
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}

// runeBoundary moves cut back so that it does not split a multi-byte rune.
func runeBoundary(s string, cut int) int {
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return cut
}
