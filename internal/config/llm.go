package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/medicbot/pkg/log"
)

type LLMConfig struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"gigachat"`
	Model    string `env:"LLM_MODEL" envDefault:"GigaChat"`

	GigaChatCredentials string `env:"GIGACHAT_CREDENTIALS" secret:"true"`
	GigaChatScope       string `env:"GIGACHAT_SCOPE" envDefault:"GIGACHAT_API_PERS"`
	GigaChatAuthURL     string `env:"GIGACHAT_AUTH_URL" envDefault:"https://ngw.devices.sberbank.ru:9443/api/v2/oauth"`
	GigaChatBaseURL     string `env:"GIGACHAT_BASE_URL" envDefault:"https://gigachat.devices.sberbank.ru/api"`
	GigaChatInsecure    bool   `env:"GIGACHAT_INSECURE_TLS" envDefault:"true"`

	OpenAIAPIKey     string `env:"OPENAI_API_KEY" secret:"true"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY" secret:"true"`
	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY" secret:"true"`
	GeminiAPIKey     string `env:"GEMINI_API_KEY" secret:"true"`

	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey  string `env:"OLLAMA_API_KEY" secret:"true"`

	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY" secret:"true"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}
