package api

import (
	"github.com/ericogr/ringside/internal/engine"
	"github.com/ericogr/ringside/internal/events"
	"github.com/ericogr/ringside/internal/game"
	"github.com/ericogr/ringside/internal/storage"
)

// MatchHandler groups all match-related HTTP handlers.
type MatchHandler struct {
	repo storage.Repository
	cat  *game.Catalog
	src  engine.Source
	bus  *events.Bus
}

// NewMatchHandler creates a MatchHandler. The catalog is read-only and
// shared by every match; src is shared by all requests and must be safe
// for concurrent use.
func NewMatchHandler(repo storage.Repository, cat *game.Catalog, src engine.Source, bus *events.Bus) *MatchHandler {
	return &MatchHandler{repo: repo, cat: cat, src: src, bus: bus}
}
