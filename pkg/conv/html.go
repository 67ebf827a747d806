package conv

import (
	"strings"

	"github.com/inbucket/html2text"
)

// SanitizeTelegramHTML strips every tag Telegram's HTML parse mode rejects.
func SanitizeTelegramHTML(s string) string {
	return tgPolicy.Sanitize(s)
}

// HTMLToText converts a fact snippet (inline tags separated by newlines) into
// plain text. Newlines are significant in facts, so they become <br> first.
func HTMLToText(s string) (string, error) {
	s = strings.ReplaceAll(s, "\n", "<br>")
	text, err := html2text.FromString(s, html2text.Options{
		OmitLinks: true,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
