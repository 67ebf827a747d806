package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactsCmd_WithoutBackendCredentials(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer site.Close()

	t.Setenv("MEDIC_RUNTIME_PATH", t.TempDir())
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CLINIC_MAIN_URL", site.URL+"/main")
	t.Setenv("CLINIC_CONSULTATIVE_URL", site.URL+"/consultative")
	t.Setenv("CLINIC_LAB_URL", site.URL+"/lab")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"facts", "contacts"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Equal(t, "== contacts ==\nКонтакты не найдены\n\n", out.String())
}
