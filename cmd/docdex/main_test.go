package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	run := func(level string) error {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
			Before: setupLogger,
			Action: func(*cli.Context) error { return nil },
		}
		return app.Run([]string{"docdex", "--log-level", level})
	}

	t.Run("accepts valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
			assert.NoError(t, run(level), "level %q", level)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		err := run("verbose")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestAppFlagDefaults(t *testing.T) {
	app := newApp()

	stringFlag := func(name string) *cli.StringFlag {
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
				return f
			}
		}
		t.Fatalf("string flag %q not found", name)
		return nil
	}
	intFlag := func(name string) *cli.IntFlag {
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == name {
				return f
			}
		}
		t.Fatalf("int flag %q not found", name)
		return nil
	}

	assert.Equal(t, "data", stringFlag("data").Value)
	assert.Equal(t, "index", stringFlag("db").Value)
	assert.Equal(t, "http://localhost:11434/v1", stringFlag("embedding-host").Value)
	assert.Equal(t, "nomic-embed-text", stringFlag("embedding-model").Value)
	assert.Equal(t, "info", stringFlag("log-level").Value)
	assert.Equal(t, 800, intFlag("chunk-size").Value)
	assert.Equal(t, 80, intFlag("chunk-overlap").Value)
	assert.Equal(t, 0, intFlag("pool-size").Value)

	assert.Contains(t, stringFlag("data").EnvVars, "DOCDEX_DATA")
	assert.Contains(t, stringFlag("db").EnvVars, "DOCDEX_DB")
	assert.Contains(t, stringFlag("embedding-host").EnvVars, "DOCDEX_EMBEDDING_HOST")
	assert.Contains(t, stringFlag("embedding-model").EnvVars, "DOCDEX_EMBEDDING_MODEL")
}

func TestAppHasResetFlag(t *testing.T) {
	for _, flag := range newApp().Flags {
		if f, ok := flag.(*cli.BoolFlag); ok && f.Name == "reset" {
			assert.False(t, f.Value)
			return
		}
	}
	t.Fatal("bool flag \"reset\" not found")
}
