package scraper

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	mainPhoneAnchor    = "Телефон единого центра обработки звонков диагностической поликлиники"
	studentBlockAnchor = "СТУДЕНТАМ ЧГМА"
	studentAddress     = "ул. Бабушкина, 48 (к терапевту Котовщиковой И.А.)"

	contactsNotFound = "Телефоны не найдены"
)

var coloredStrong = and(isElement("strong"), styleContains("color"))

func (w *Website) parseContacts(doc *html.Node) string {
	var lines []string

	if p := findFirst(doc, and(isElement("p"), containsAnchor(mainPhoneAnchor))); p != nil {
		if strong := findFirst(p, coloredStrong); strong != nil {
			lines = append(lines, " <b>Единый центр:</b> "+w.links.phone(textContent(strong, "")))
		}
	}

	if p := findFirst(doc, and(isElement("p"), containsAnchor(studentBlockAnchor))); p != nil {
		if phones := findAll(p, coloredStrong); len(phones) > 0 {
			lines = append(lines, "\n <b>Для студентов ЧГМА:</b>")
			for _, phone := range phones {
				lines = append(lines, " "+w.links.phone(textContent(phone, "")))
			}
			lines = append(lines, "\n Адрес: "+w.links.addresses(studentAddress))
		}
	}

	if len(lines) == 0 {
		return contactsNotFound
	}
	return strings.Join(lines, "\n")
}
