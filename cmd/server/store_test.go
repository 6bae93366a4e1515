package main

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/extraction"
)

func TestNewDateExtractor_WithoutKey(t *testing.T) {
	extractor, err := newDateExtractor(&config.Config{}, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, extractor.Configured())

	result := extractor.Extract(context.Background(), "iVBORw0KGgo=")
	assert.False(t, result.Success)
	assert.Equal(t, extraction.MessageNotConfigured, result.Message)
}

func TestNewDateExtractor_WithKey(t *testing.T) {
	cfg := &config.Config{LLMAPIKey: "k", LLMBaseURL: "http://127.0.0.1:1/v1", LLMModel: "gpt-4o", LLMMaxTokens: 50}
	extractor, err := newDateExtractor(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, extractor.Configured())
}
