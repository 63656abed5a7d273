package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("SESSION_SECRET", "not-the-default")
	t.Setenv("DB_DRIVER", "postgres")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.HTTPAddr)
	require.Equal(t, "not-the-default", cfg.SessionSecret)
	require.Equal(t, "postgres", cfg.DBDriver)
}

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv actually clears the variable;
	// envconfig only falls back to defaults when the key is absent
	for _, key := range []string{"HTTP_ADDR", "SESSION_SECRET", "DB_DRIVER", "SQLITE_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "dev-session-secret-change-me", cfg.SessionSecret)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "shiftcheck.db", cfg.SQLitePath)
}
