// Package health exposes liveness and readiness endpoints.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/fauxbook/internal/cache"
	"github.com/dropDatabas3/fauxbook/internal/http/helpers"
	"github.com/dropDatabas3/fauxbook/internal/store/core"
)

type Controller struct {
	store core.Store
	cache cache.Client
}

func NewController(store core.Store, cacheClient cache.Client) *Controller {
	return &Controller{store: store, cache: cacheClient}
}

type status struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Live handles GET /healthz: process is up, nothing else checked.
func (c *Controller) Live(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, status{Status: "ok"})
}

// Ready handles GET /readyz: store and cache must both answer.
func (c *Controller) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{"store": "ok", "cache": "ok"}
	healthy := true

	if err := c.store.Ping(ctx); err != nil {
		checks["store"] = err.Error()
		healthy = false
	}
	if err := c.cache.Ping(ctx); err != nil {
		checks["cache"] = err.Error()
		healthy = false
	}

	if !healthy {
		helpers.WriteJSON(w, http.StatusServiceUnavailable, status{Status: "degraded", Checks: checks})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, status{Status: "ok", Checks: checks})
}
