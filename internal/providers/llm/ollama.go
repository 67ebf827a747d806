package llm

type Ollama struct {
	*OpenAICompatible
}

func NewOllama(baseURL, apiKey, model string) *Ollama {
	return &Ollama{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:      baseURL,
			APIKey:       apiKey,
			Model:        model,
			AuthHeader:   "Authorization",
			AuthPrefix:   "Bearer ",
			SupportsTopK: true,
		}),
	}
}
