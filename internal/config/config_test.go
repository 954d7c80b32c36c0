package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
	t.Setenv("APP_NAME", "")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("SESSION_SECURE", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "Goby", cfg.GetAppName())
	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, "text", cfg.GetLogFormat())
	assert.Equal(t, 10, cfg.GetRateLimitPerMinute())
	assert.Equal(t, 10*time.Second, cfg.GetShutdownTimeout())
	assert.False(t, cfg.GetSessionSecure())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
	t.Setenv("APP_NAME", "Acme")
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("SESSION_SECURE", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.AppName)
	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3, cfg.RateLimitPerMinute)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.SessionSecure)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing session secret",
			env:  map[string]string{"SESSION_SECRET": ""},
			want: "SESSION_SECRET",
		},
		{
			name: "short session secret",
			env:  map[string]string{"SESSION_SECRET": "short"},
			want: "SESSION_SECRET",
		},
		{
			name: "bad rate limit",
			env:  map[string]string{"SESSION_SECRET": "a-very-secret-key-for-testing-!", "RATE_LIMIT_PER_MINUTE": "lots"},
			want: "RATE_LIMIT_PER_MINUTE",
		},
		{
			name: "non-positive rate limit",
			env:  map[string]string{"SESSION_SECRET": "a-very-secret-key-for-testing-!", "RATE_LIMIT_PER_MINUTE": "0"},
			want: "RATE_LIMIT_PER_MINUTE",
		},
		{
			name: "bad log format",
			env:  map[string]string{"SESSION_SECRET": "a-very-secret-key-for-testing-!", "LOG_FORMAT": "xml"},
			want: "LOG_FORMAT",
		},
		{
			name: "bad shutdown timeout",
			env:  map[string]string{"SESSION_SECRET": "a-very-secret-key-for-testing-!", "SHUTDOWN_TIMEOUT": "soon"},
			want: "SHUTDOWN_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"RATE_LIMIT_PER_MINUTE", "LOG_FORMAT", "SHUTDOWN_TIMEOUT", "SESSION_SECURE"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
