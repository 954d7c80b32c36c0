package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/nfrund/goby-reset/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "server v"+version+"\n", out.String())
}

func TestPrintRoutes(t *testing.T) {
	cfg := &config.Config{
		AppName:            "Goby",
		SessionSecret:      "a-very-secret-key-for-testing-!",
		RateLimitPerMinute: 10,
		ShutdownTimeout:    time.Second,
	}
	c := &cobra.Command{}
	c.SetContext(context.Background())

	var out bytes.Buffer
	require.NoError(t, printRoutes(c, cfg, &out))

	got := out.String()
	assert.Contains(t, got, "GET     /auth/forgot-password\n")
	assert.Contains(t, got, "POST    /auth/forgot-password\n")
	assert.Contains(t, got, "POST    /auth/forgot-password/retry\n")
	assert.Contains(t, got, "GET     /health\n")
}
