package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutSentry(t *testing.T) {
	log := New(Opts{Env: "development"})
	require.NotNil(t, log)

	// Must not panic on any level or on the fx printer path.
	log.Debug("debug", "k", "v")
	log.Info("info")
	log.Warn("warn")
	log.Error("error", "err", assert.AnError)
	log.Printf("fx event %s", "provided")
}

func TestNewWithSentryDSNAttachesHandler(t *testing.T) {
	// A syntactically valid DSN is enough; sentry.Init does not dial.
	log := New(Opts{Env: "production", SentryUrl: "https://public@sentry.example.com/1"})
	require.NotNil(t, log)

	log.Error("wired through the sentry fanout", "err", assert.AnError)
}

func TestWithReturnsChildLogger(t *testing.T) {
	log := New(Opts{})
	child := log.With("component", "test")

	require.NotNil(t, child)
	assert.NotSame(t, log, child)
	child.Info("child logger logs")
}
