package scraper

import (
	"regexp"

	"golang.org/x/net/html"

	"github.com/sandevgo/medicbot/internal/core"
)

var reminderColorRe = regexp.MustCompile(`(?i)color:\s*#21347d(?:[;\s]|$)`)

func reminderHeader(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "strong" && reminderColorRe.MatchString(attr(n, "style"))
}

func parseReminders(doc *html.Node) core.Reminders {
	var out core.Reminders

	for _, strong := range findAll(doc, reminderHeader) {
		title := normalizeSpace(textContent(strong, ""))
		if title == "" {
			continue
		}

		ol := findNext(strong, isElement("ol"))
		if ol == nil {
			continue
		}

		var steps []string
		for _, li := range findAll(ol, isElement("li")) {
			steps = append(steps, normalizeSpace(rawText(li)))
		}
		out.Set(title, steps)
	}

	return out
}
