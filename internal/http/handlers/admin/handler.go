package admin

import "github.com/fleetops-api/internal/provider"

// Handler serves the admin seed/clear endpoints.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
