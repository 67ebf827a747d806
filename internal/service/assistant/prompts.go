package assistant

import (
	"fmt"
	"os"
	"strings"

	"github.com/sandevgo/medicbot/internal/core"
)

const DefaultSystemPrompt = `Вы — Ассистент регистратуры поликлиники Читинской Государственной Медицинской Академии. Ваша задача — отвечать ТОЛЬКО на вопросы, связанные с записью к врачу, медицинскими услугами и работой поликлиники. Не отклоняйтесь от темы.
Ответ должен быть сформулирован в виде текста, а не JSON.

Правила:

Тематика:
- Запись на прием (к врачу, на диагностику, анализы).
- Режим работы поликлиники и врачей.
- Неотложная помощь (куда обратиться).
- Правила подготовки к процедурам.

Запрещено:
- Давать медицинские консультации (например, интерпретировать симптомы, назначать лечение).
- Отвечать на вопросы не по теме (погода, политика, IT и т.д.).

Тон:
- Вежливый, четкий, без лишней информации.`

// LabTimingText is constant domain knowledge, not scraped.
const LabTimingText = "общеклинические в течение дня сдачи анализа, бактериологические исследования от 1 до 14 рабочих дней зависит от исследования, молекулярная диагностика и иммунохроматографический анализ уточняются индивидуально"

const classifyTemplate = `Классифицируй следующий вопрос пользователя в одну или несколько категорий:
- Расписание: вопросы о времени работы, графике приема.
- Контакты: вопросы о телефонах, адресах, способах связи.
- Анализы: вопросы о сроках выполнения анализов, подготовке к ним.
- Памятка: запрос полезной информации для пациента.

Вопрос: "%s"

Ответь в формате JSON, указав категории, которые подходят к вопросу. Если категория не подходит, не включай её в ответ.`

func classifyPrompt(question string) string {
	return fmt.Sprintf(classifyTemplate, question)
}

const HelpText = "<b>Справка по боту</b>\n\n" +
	"Вы можете использовать следующие команды и кнопки:\n" +
	"• <b>Режим работы</b> - график работы поликлиники.\n" +
	"• <b>Контакты</b> - телефоны для записи и справочной информации.\n" +
	"• <b>Помощь</b> - для получения информации о боте.\n" +
	"• <b>График приема</b> - график приема специалистов.\n" +
	"  /help для получения информации о боте."

const StartMessage = "Здравствуйте! Вы обратились в чат-бот поликлиники. " +
	"Мы готовы ответить на ваши вопросы и помочь с записью к врачу, " +
	"информацией о расписании работы специалистов, а также предоставить данные " +
	"о необходимых документах и услугах нашей клиники. " +
	"Пожалуйста, уточните ваш вопрос или просьбу."

// LoadSystemPrompt returns the contents of path when it exists and is not
// blank, and the built-in prompt otherwise.
func LoadSystemPrompt(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return DefaultSystemPrompt
	}
	if s := strings.TrimSpace(string(content)); s != "" {
		return s
	}
	return DefaultSystemPrompt
}

// DefaultOptions mirror the defaults of the question endpoint.
func DefaultOptions() core.GenOptions {
	temperature := 0.7
	return core.GenOptions{
		Temperature: &temperature,
		MaxTokens:   500,
		TopK:        3,
	}
}
