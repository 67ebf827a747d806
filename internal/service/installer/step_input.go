package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputField describes one text prompt for the current provider.
type inputField struct {
	envKey      string
	title       string
	placeholder string
	secret      bool
	optional    bool
	fallback    string
}

// inputStep asks for a single value. A nil field from resolve skips the step.
type inputStep struct {
	resolve func(state *InstallState) *inputField
	field   *inputField
	input   textinput.Model
	ready   bool
	err     string
}

func newInputStep(resolve func(state *InstallState) *inputField) *inputStep {
	return &inputStep{resolve: resolve}
}

func (s *inputStep) Init() tea.Cmd {
	return next
}

func (s *inputStep) prepare(state *InstallState) bool {
	s.field = s.resolve(state)
	if s.field == nil {
		return false
	}

	s.input = textinput.New()
	s.input.Focus()
	s.input.CharLimit = 255
	s.input.Width = 50
	s.input.Placeholder = s.field.placeholder
	if s.field.secret {
		s.input.EchoMode = textinput.EchoPassword
		s.input.EchoCharacter = '•'
	}
	s.ready = true
	return true
}

func (s *inputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !s.ready {
		if !s.prepare(state) {
			return nil, nil
		}
		return s, textinput.Blink
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			val = s.field.fallback
		}
		if val == "" && !s.field.optional {
			s.err = s.field.title + " is required"
			return s, nil
		}
		if val != "" {
			state.EnvVars[s.field.envKey] = val
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *inputStep) View(state *InstallState) string {
	if !s.ready {
		return "Loading...\n"
	}

	hint := ""
	if s.field.optional || s.field.fallback != "" {
		hint = " (press Enter to skip)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Enter %s%s:\n\n%s\n\n", s.field.title, hint, s.input.View())
	if s.err != "" {
		b.WriteString(errorStyle.Render(s.err) + "\n\n")
	}
	b.WriteString("(press enter to confirm)\n")
	return b.String()
}

// NewAPIKeyStep collects the provider credentials.
func NewAPIKeyStep() Step {
	return newInputStep(func(state *InstallState) *inputField {
		switch state.Provider() {
		case "gigachat":
			return &inputField{envKey: "GIGACHAT_CREDENTIALS", title: "GigaChat authorization key", placeholder: "Base64 client_id:secret", secret: true}
		case "openai":
			return &inputField{envKey: "OPENAI_API_KEY", title: "OpenAI API Key", placeholder: "sk-...", secret: true}
		case "anthropic":
			return &inputField{envKey: "ANTHROPIC_API_KEY", title: "Anthropic API Key", placeholder: "sk-ant-...", secret: true}
		case "openrouter":
			return &inputField{envKey: "OPENROUTER_API_KEY", title: "OpenRouter API Key", placeholder: "sk-or-v1-...", secret: true}
		case "gemini":
			return &inputField{envKey: "GEMINI_API_KEY", title: "Gemini API Key", placeholder: "AIza...", secret: true}
		case "ollama":
			return &inputField{envKey: "OLLAMA_API_KEY", title: "Ollama API Key", optional: true}
		case "custom":
			return &inputField{envKey: "CUSTOM_OPENAI_API_KEY", title: "API Key", optional: true, secret: true}
		}
		return nil
	})
}

// NewBaseURLStep asks for the endpoint of self-hosted backends.
func NewBaseURLStep() Step {
	return newInputStep(func(state *InstallState) *inputField {
		switch state.Provider() {
		case "ollama":
			return &inputField{envKey: "OLLAMA_BASE_URL", title: "Ollama Base URL", placeholder: "http://localhost:11434", fallback: "http://localhost:11434"}
		case "custom":
			return &inputField{envKey: "CUSTOM_OPENAI_BASE_URL", title: "Custom OpenAI Base URL", placeholder: "https://api.example.com/v1"}
		}
		return nil
	})
}

var defaultModels = map[string]string{
	"gigachat":   "GigaChat",
	"openai":     "gpt-4o-mini",
	"anthropic":  "claude-3-5-haiku-latest",
	"openrouter": "openai/gpt-4o-mini",
	"gemini":     "gemini-2.0-flash",
	"ollama":     "llama3.1",
}

// NewModelStep asks for the model name, offering the provider default.
func NewModelStep() Step {
	return newInputStep(func(state *InstallState) *inputField {
		def := defaultModels[state.Provider()]
		return &inputField{envKey: keyModel, title: "model name", placeholder: def, fallback: def}
	})
}

// NewTelegramTokenStep collects the bot token when Telegram is enabled.
func NewTelegramTokenStep() Step {
	return newInputStep(func(state *InstallState) *inputField {
		if !state.TelegramEnabled() {
			return nil
		}
		return &inputField{envKey: keyTelegramToken, title: "Telegram Bot Token", placeholder: "123456789:ABCDEF...", secret: true}
	})
}
