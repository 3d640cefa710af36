package api

import (
	"context"

	"carpark-finder/internal/form"
	"carpark-finder/internal/session"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	// ctx bounds lookups started through the session API; it is cancelled
	// when the server shuts down.
	ctx      context.Context
	finder   form.Finder
	sessions *session.Registry
}

// NewHandler creates a new API handler.
func NewHandler(ctx context.Context, f form.Finder, sessions *session.Registry) *Handler {
	return &Handler{
		ctx:      ctx,
		finder:   f,
		sessions: sessions,
	}
}
