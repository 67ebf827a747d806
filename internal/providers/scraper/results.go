package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const resultsNotFound = "Расписание выдачи результатов не найдено"

var (
	timeRangeRe = regexp.MustCompile(`(\d{1,2})\s*[:.]\s*(\d{2})\s*[-–—]\s*(\d{1,2})\s*[:.]\s*(\d{2})`)
	weekdaysRe  = regexp.MustCompile(`понедельник\s*[-–—]\s*пятница`)
)

type dayGroup struct {
	label string
	match func(string) bool
}

var resultDays = []dayGroup{
	{label: "Понедельник - Пятница", match: weekdaysRe.MatchString},
	{label: "Суббота", match: func(s string) bool { return strings.Contains(s, "суббота") }},
	{label: "Воскресенье", match: func(s string) bool { return strings.Contains(s, "воскресенье") }},
}

func parseResultsSchedule(doc *html.Node) string {
	times := make([]string, len(resultDays))

	for _, p := range findAll(doc, and(isElement("p"), styleContains("font-family"))) {
		text := strings.ToLower(normalizeSpace(textContent(p, " ")))
		for i, day := range resultDays {
			if !day.match(text) {
				continue
			}
			if t, ok := extractTimeRange(text); ok {
				times[i] = t
			}
			break
		}
	}

	var lines []string
	for i, day := range resultDays {
		if times[i] != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", day.label, times[i]))
		}
	}

	if len(lines) == 0 {
		return resultsNotFound
	}
	return strings.Join(lines, "\n")
}

// extractTimeRange finds the first "HH:MM - HH:MM" range and zero-pads it.
func extractTimeRange(s string) (string, bool) {
	m := timeRangeRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	from, _ := strconv.Atoi(m[1])
	to, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%02d:%s - %02d:%s", from, m[2], to, m[4]), true
}
