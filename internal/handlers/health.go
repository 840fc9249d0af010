package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Health reports whether the database answers a trivial query. Failures are
// returned to the caller as 503 and never propagate further.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.sugar.Warnw("Health check failed", "error", err)
		http.Error(w, fmt.Sprintf("db not ready: %v", err), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := fmt.Fprint(w, "ok")
	if err != nil {
		h.sugar.Debug(err)
	}
}
