package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"messageboard/internal/models"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type SubmitResponse struct {
	Message string `json:"message"`
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.ListMessages(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	var page bytes.Buffer
	err = indexTemplate.Execute(&page, struct{ Messages []models.Message }{messages})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err = page.WriteTo(w); err != nil {
		h.sugar.Debug(err)
	}
}

func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(32 << 20)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.sugar.Warnw("Unreadable form",
			"requestID", middleware.GetReqID(r.Context()),
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	newMessage := r.PostForm.Get("new_message")

	stored, err := h.store.InsertMessage(r.Context(), newMessage)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.sugar.Debugw("Message stored", "length", len(stored))

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(SubmitResponse{Message: stored})
	if err != nil {
		h.sugar.Debug(err)
	}
}
