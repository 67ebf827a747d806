package llm

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sandevgo/medicbot/internal/core"
)

// tokenLeeway refreshes the access token slightly before it expires.
const tokenLeeway = time.Minute

type GigaChatConfig struct {
	BaseURL     string
	AuthURL     string
	Credentials string
	Scope       string
	Model       string
	// Insecure skips TLS verification; the public endpoints are signed by
	// a national CA missing from most trust stores.
	Insecure bool
}

// GigaChat talks to the OpenAI-shaped chat API after exchanging the
// authorization key for a short-lived access token.
type GigaChat struct {
	*OpenAICompatible
	authURL     string
	credentials string
	scope       string

	mu        sync.Mutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

func NewGigaChat(cfg GigaChatConfig) *GigaChat {
	compat := NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		Model:   cfg.Model,
	})

	if cfg.Insecure {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		compat.client.Transport = transport
	}

	return &GigaChat{
		OpenAICompatible: compat,
		authURL:          cfg.AuthURL,
		credentials:      cfg.Credentials,
		scope:            cfg.Scope,
		now:              time.Now,
	}
}

func (g *GigaChat) Chat(ctx context.Context, history []core.Message, opts core.GenOptions) (core.Message, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return core.Message{}, err
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}
	return g.chat(ctx, history, opts, headers)
}

func (g *GigaChat) accessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && g.now().Add(tokenLeeway).Before(g.expiresAt) {
		return g.token, nil
	}

	if g.credentials == "" {
		return "", fmt.Errorf("gigachat: credentials are not set")
	}

	form := url.Values{"scope": {g.scope}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+g.credentials)
	req.Header.Set("RqUID", uuid.NewString())

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	data, err := readOK(resp)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresAt   int64  `json:"expires_at"` // unix milliseconds
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}

	g.token = result.AccessToken
	g.expiresAt = time.UnixMilli(result.ExpiresAt)

	return g.token, nil
}
