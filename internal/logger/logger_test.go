package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLevelParsing(t *testing.T) {
	Setup("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Setup("WARN", "json")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Setup("nonsense", "json")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupTagsService(t *testing.T) {
	root := Setup("info", "json")

	var buf bytes.Buffer
	out := root.Output(&buf)
	out.Info().Msg("boot")
	assert.Contains(t, buf.String(), `"service":"smartedu-backend"`)
}

func TestComponentTagsChildLogger(t *testing.T) {
	prev := log.Logger
	defer func() { log.Logger = prev }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	comp := Component("snapshot_store")
	comp.Info().Msg("loaded")
	assert.Contains(t, buf.String(), `"component":"snapshot_store"`)
}
