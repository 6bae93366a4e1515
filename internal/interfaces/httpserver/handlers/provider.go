package handlers

import (
	"github.com/rs/zerolog"
)

// Provider wires HTTP handlers.
type Provider struct {
	Poster *PosterHandler
}

func NewProvider(service PosterService, log zerolog.Logger) *Provider {
	return &Provider{
		Poster: NewPosterHandler(service, log),
	}
}
