package installer

import "strings"

// Keys of the runtime .env written by the wizard.
const (
	keyProvider       = "LLM_PROVIDER"
	keyModel          = "LLM_MODEL"
	keyEnableHTTP     = "ENABLE_HTTP"
	keyEnableTelegram = "ENABLE_TELEGRAM"
	keyTelegramToken  = "TELEGRAM_TOKEN"

	// keyChannel is only used between steps.
	keyChannel = "MEDIC_CHANNEL"
)

type InstallState struct {
	EnvVars map[string]string
}

func NewInstallState() *InstallState {
	return &InstallState{
		EnvVars: make(map[string]string),
	}
}

func (s *InstallState) Provider() string {
	return strings.ToLower(s.EnvVars[keyProvider])
}

func (s *InstallState) TelegramEnabled() bool {
	return strings.Contains(strings.ToLower(s.EnvVars[keyChannel]), "telegram")
}
