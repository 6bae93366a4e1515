package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("chatty"))
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{ServiceName: "poster-api", Environment: "test", LogLevel: "info", LogFormat: "json"}

	log := newWithWriter(cfg, &buf)
	log.Info().Str("poster_id", "abc").Msg("hello")
	log.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"service":"poster-api"`)
	assert.Contains(t, out, `"environment":"test"`)
	assert.Contains(t, out, `"poster_id":"abc"`)
	assert.NotContains(t, out, "hidden")
}
