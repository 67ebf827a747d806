package installer

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

var providerItems = []list.Item{
	item{id: "gigachat", title: "GigaChat", desc: "Sber GigaChat, OAuth authorization key"},
	item{id: "openai", title: "OpenAI", desc: "api.openai.com"},
	item{id: "anthropic", title: "Anthropic", desc: "Claude messages API"},
	item{id: "openrouter", title: "OpenRouter", desc: "openrouter.ai gateway"},
	item{id: "gemini", title: "Gemini", desc: "Google Gemini API"},
	item{id: "ollama", title: "Ollama", desc: "local models"},
	item{id: "custom", title: "Custom", desc: "any OpenAI compatible endpoint"},
}

// ProviderStep allows selection of the language backend
type ProviderStep struct {
	list list.Model
}

func NewProviderStep() Step {
	l := list.New(providerItems, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select the language backend"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return &ProviderStep{list: l}
}

func (s *ProviderStep) Init() tea.Cmd {
	return nil
}

func (s *ProviderStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if width > 0 {
		s.list.SetSize(width, height-4)
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && s.list.FilterState() != list.Filtering {
		if i, ok := s.list.SelectedItem().(item); ok {
			state.EnvVars[keyProvider] = i.id
			return nil, nil
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ProviderStep) View(state *InstallState) string {
	return s.list.View()
}
