package handlers

import (
	"context"
	"messageboard/internal/models"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type MessageStore interface {
	ListMessages(ctx context.Context) ([]models.Message, error)
	InsertMessage(ctx context.Context, text string) (string, error)
	Ping(ctx context.Context) error
}

type Handlers struct {
	store MessageStore
	sugar *zap.SugaredLogger
}

func New(store MessageStore, sugar *zap.SugaredLogger) *Handlers {
	return &Handlers{store: store, sugar: sugar}
}

func NewRouter(h *Handlers, cfg *models.ConfigFile) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.PrintHttpRequests {
		r.Use(middleware.Logger)
	}

	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", h.Index)
	r.Post("/submit", h.Submit)
	r.Get("/health", h.Health)

	return r
}
