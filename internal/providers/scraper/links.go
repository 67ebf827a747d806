package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var addressRe = regexp.MustCompile(`ул\.\s*Бабушкина,\s*\d+`)

// linker decorates phones and street addresses with Telegram-friendly links.
type linker struct {
	mapsURL string
	city    string
}

func newLinker(mapsURL, city string) linker {
	return linker{mapsURL: mapsURL, city: city}
}

// phone renders a tel: link for Russian numbers and plain escaped text for
// anything it cannot normalize.
func (l linker) phone(display string) string {
	display = normalizeSpace(display)

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, display)

	var e164 string
	switch {
	case len(digits) == 11 && (digits[0] == '8' || digits[0] == '7'):
		e164 = "+7" + digits[1:]
	case len(digits) == 10:
		e164 = "+7" + digits
	default:
		return html.EscapeString(display)
	}

	return fmt.Sprintf(`<a href="tel:%s">%s</a>`, e164, html.EscapeString(display))
}

// addresses wraps every street address found in s with a map link.
func (l linker) addresses(s string) string {
	if l.mapsURL == "" {
		return s
	}
	return addressRe.ReplaceAllStringFunc(s, func(addr string) string {
		query := addr
		if l.city != "" {
			query = l.city + ", " + addr
		}
		return fmt.Sprintf(`<a href="%s%s">%s</a>`, l.mapsURL, url.QueryEscape(query), addr)
	})
}
