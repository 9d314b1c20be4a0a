package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"techtrends/app"
	"techtrends/app/config"
	"techtrends/app/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedExit   int
		expectedOutput string
	}{
		{
			name:           "no arguments",
			args:           nil,
			expectedExit:   1,
			expectedOutput: "Usage: techtrends <command>",
		},
		{
			name:           "help command",
			args:           []string{"help"},
			expectedExit:   0,
			expectedOutput: "Usage: techtrends <command> [options]",
		},
		{
			name:           "version command",
			args:           []string{"version"},
			expectedExit:   0,
			expectedOutput: "techtrends version " + CliVersion,
		},
		{
			name:           "unknown command",
			args:           []string{"unknown"},
			expectedExit:   1,
			expectedOutput: "Unknown command: unknown",
		},
		{
			name:           "backup without file",
			args:           []string{"backup"},
			expectedExit:   1,
			expectedOutput: "backup file path required",
		},
		{
			name:           "init with bad flag",
			args:           []string{"init", "--nope"},
			expectedExit:   1,
			expectedOutput: "flag provided but not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(tt.args, &out)

			assert.Equal(t, tt.expectedExit, code)
			assert.Contains(t, out.String(), tt.expectedOutput)
		})
	}
}

func TestPrintHelp(t *testing.T) {
	var out bytes.Buffer
	printHelp(&out)

	for _, cmd := range []string{"help", "version", "serve", "init [--seed]", "backup <file>"} {
		assert.Contains(t, out.String(), cmd)
	}
}

func TestInitSeedsStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "database.db")
	t.Setenv("TECHTRENDS_DATABASE", dbPath)
	t.Setenv("TECHTRENDS_LOG_DEBUG", "false")

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"init", "--seed"}, &out))
	assert.Contains(t, out.String(), "Initialized sqlite store")
	assert.Contains(t, out.String(), "Seeded 4 posts")

	store, err := app.OpenStore(config.Config{Store: config.StoreSQLite, DatabasePath: dbPath}, metrics.NewCounter())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(app.SeedPosts), n)
}

func TestInitRejectsBadConfig(t *testing.T) {
	t.Setenv("TECHTRENDS_STORE", "mongo")

	var out bytes.Buffer
	assert.Equal(t, 1, run([]string{"init"}, &out))
}

func TestServeRejectsBadConfig(t *testing.T) {
	t.Setenv("TECHTRENDS_DB_MAX_IDLE_CONNS", "-3")
	assert.Equal(t, 1, run([]string{"serve"}, &bytes.Buffer{}))
}

func TestBackupCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TECHTRENDS_DATABASE", filepath.Join(dir, "database.db"))
	t.Setenv("TECHTRENDS_LOG_DEBUG", "false")
	require.Equal(t, 0, run([]string{"init", "--seed"}, &bytes.Buffer{}))

	backupPath := filepath.Join(dir, "backup.db")
	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"backup", backupPath}, &out))
	assert.Contains(t, out.String(), "backed up successfully")

	copied, err := app.OpenStore(config.Config{Store: config.StoreSQLite, DatabasePath: backupPath}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { copied.Close() })

	n, err := copied.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(app.SeedPosts), n)

	assert.Equal(t, 1, run([]string{"backup", backupPath}, &bytes.Buffer{}), "refuses to overwrite")
}
