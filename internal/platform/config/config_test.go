package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://jsonplaceholder.typicode.com/users", cfg.UsersURL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("USERCARDS_ADDR", ":9090")
	t.Setenv("USERCARDS_USERS_URL", "http://localhost:3000/users")
	t.Setenv("USERCARDS_FETCH_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "http://localhost:3000/users", cfg.UsersURL)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchTimeout)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("USERCARDS_FETCH_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
