package cli

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dvalero/finwallet/internal/client/config"
	"github.com/dvalero/finwallet/internal/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL:    "http://127.0.0.1:1",
		DatabasePath: filepath.Join(t.TempDir(), "wallet", "finwallet.db"),
		HTTPTimeout:  time.Second,
		LogLevel:     "info",
	}
}

func TestNewApp(t *testing.T) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := NewApp(testConfig(t), log)
	require.NoError(t, err)
	require.NotNil(t, app.session)
	require.NotNil(t, app.accounts)
	require.NotNil(t, app.dashboard)
	require.NotNil(t, app.db)

	app.shutdown()
}
