package scraper

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const scheduleNotFound = "Расписание не найдено"

var mainScheduleTitles = []string{
	"Диагностическая поликлиника (ул. Бабушкина, 44)",
	"Сдача анализов (Диагностическая поликлиника, ул. Бабушкина, 44)",
	"Сдача анализов (Бактериологическая лаборатория, ул. Бабушкина, 46)",
}

const (
	consultativeTitle   = "Отделение консультативной помощи детям"
	consultativeAddress = "ул. Бабушкина, 44 (вход с ул. Горького)"
)

// widthHint matches tables laid out with a fixed pixel width, either through
// inline style or the legacy width attribute.
func widthHint(px int) matcher {
	inStyle := styleContains(fmt.Sprintf("width:%dpx", px))
	return and(isElement("table"), func(n *html.Node) bool {
		if inStyle(n) {
			return true
		}
		w := strings.TrimSpace(strings.ToLower(attr(n, "width")))
		return w == fmt.Sprint(px) || w == fmt.Sprintf("%dpx", px)
	})
}

func (w *Website) parseMainSchedule(doc *html.Node) string {
	tables := findAll(doc, widthHint(350))

	var lines []string
	for i, title := range mainScheduleTitles {
		if i >= len(tables) {
			break
		}
		lines = append(lines, "\n<b>"+w.links.addresses(title)+"</b>")
		lines = append(lines, tableRows(tables[i])...)
	}

	if len(lines) == 0 {
		return scheduleNotFound
	}
	return strings.Join(lines, "\n")
}

func (w *Website) parseConsultativeSchedule(doc *html.Node) string {
	lines := []string{
		fmt.Sprintf("\n<b>%s</b> %s", consultativeTitle, w.links.addresses(consultativeAddress)),
	}

	if table := findFirst(doc, widthHint(644)); table != nil {
		lines = append(lines, tableRows(table)...)
	} else {
		lines = append(lines, scheduleNotFound)
	}

	return strings.Join(lines, "\n")
}

// tableRows skips the header row and renders every two-cell row as a bullet.
func tableRows(table *html.Node) []string {
	rows := findAll(table, isElement("tr"))
	if len(rows) == 0 {
		return nil
	}

	var out []string
	for _, row := range rows[1:] {
		cells := findAll(row, isElement("td"))
		if len(cells) != 2 {
			continue
		}
		day := normalizeSpace(rawText(cells[0]))
		hours := textContent(cells[1], " ")
		out = append(out, fmt.Sprintf("• %s: %s", day, hours))
	}
	return out
}
