package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	URL      string        `env:"SAMPLE_URL,required"`
	Token    string        `env:"SAMPLE_TOKEN" secret:"true"`
	Timeout  time.Duration `env:"SAMPLE_TIMEOUT"`
	Enabled  bool          `env:"SAMPLE_ENABLED"`
	Empty    string        `env:"SAMPLE_EMPTY"`
	internal string
	NoTag    string
}

func TestMarshalEnv(t *testing.T) {
	cfg := &sample{
		URL:      "http://localhost",
		Token:    "abc",
		Timeout:  15 * time.Second,
		Enabled:  true,
		internal: "x",
		NoTag:    "y",
	}

	t.Run("masks secrets", func(t *testing.T) {
		got, err := MarshalEnv(false, cfg)
		require.NoError(t, err)
		assert.Equal(t, "SAMPLE_URL=http://localhost\nSAMPLE_TOKEN=****\nSAMPLE_TIMEOUT=15s\nSAMPLE_ENABLED=true\n", got)
	})

	t.Run("reveals secrets", func(t *testing.T) {
		got, err := MarshalEnv(true, cfg)
		require.NoError(t, err)
		assert.Contains(t, got, "SAMPLE_TOKEN=abc\n")
	})

	t.Run("multiple configs", func(t *testing.T) {
		got, err := MarshalEnv(false, cfg, &sample{URL: "second"})
		require.NoError(t, err)
		assert.Contains(t, got, "SAMPLE_URL=second\n")
	})

	t.Run("rejects non pointer", func(t *testing.T) {
		_, err := MarshalEnv(false, sample{})
		assert.Error(t, err)
	})

	t.Run("empty struct", func(t *testing.T) {
		got, err := MarshalEnv(false, &sample{})
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}
