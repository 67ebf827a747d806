package command

import (
	"fmt"
	"html"
	"strings"
)

func formatTitle(title string) string {
	return fmt.Sprintf("<b>%s</b>\n", html.EscapeString(title))
}

func formatError(err error) string {
	return fmt.Sprintf("<b>Ошибка команды</b>\n%s", html.EscapeString(err.Error()))
}

func formatUsage(usage string) string {
	return fmt.Sprintf("Использование: <code>%s</code>", html.EscapeString(usage))
}

func formatList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("• ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}
