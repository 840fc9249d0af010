package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// serverError is the single mapping from a failed store call to a response.
func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.sugar.Errorw("Request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"requestID", middleware.GetReqID(r.Context()),
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
