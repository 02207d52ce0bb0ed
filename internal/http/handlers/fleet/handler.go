package fleet

import "github.com/fleetops-api/internal/provider"

// Handler serves the fleet CRUD endpoints.
type Handler struct {
	*provider.Container
}

// New creates the fleet handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
