package installer

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep computes derived values and final env var formatting
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return next
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	channel := strings.ToLower(state.EnvVars[keyChannel])
	state.EnvVars[keyEnableHTTP] = strconv.FormatBool(channel == "" || strings.Contains(channel, "http"))
	state.EnvVars[keyEnableTelegram] = strconv.FormatBool(state.TelegramEnabled() && state.EnvVars[keyTelegramToken] != "")

	if state.EnvVars["MEDIC_DEBUG"] == "" {
		state.EnvVars["MEDIC_DEBUG"] = "0"
	}

	// Only used as intermediate state
	delete(state.EnvVars, keyChannel)
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
