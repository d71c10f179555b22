// Package server exposes the query layer over HTTP. It owns parameter
// validation and the mapping from store errors to response codes; the store
// itself never sees an invalid parameter.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/yushkumar524/BiasLabPrototype/internal/store"
)

const (
	serviceName    = "bias-labs-api"
	serviceVersion = "1.0.0"
)

type Server struct {
	store       *store.Store
	log         *slog.Logger
	corsOrigins []string
}

// New wires the server to an already-populated store. corsOrigins may contain
// "*" to allow any origin.
func New(st *store.Store, log *slog.Logger, corsOrigins []string) *Server {
	return &Server{store: st, log: log, corsOrigins: corsOrigins}
}

// Routes wires every endpoint behind the CORS and request-log middleware.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /articles", s.handleArticles)
	mux.HandleFunc("GET /articles/{id}", s.handleArticle)
	mux.HandleFunc("GET /narratives", s.handleNarratives)
	mux.HandleFunc("GET /narratives/{id}", s.handleNarrative)
	mux.HandleFunc("GET /narratives/{id}/timeline", s.handleTimeline)
	mux.HandleFunc("GET /narratives/{id}/articles", s.handleNarrativeArticles)
	mux.HandleFunc("GET /stats", s.handleStats)
	return s.corsMiddleware(s.logMiddleware(mux))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to Bias Labs API",
		"health":  "/health",
		"endpoints": map[string]string{
			"articles":   "/articles",
			"narratives": "/narratives",
			"stats":      "/stats",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	articles, narratives := s.store.Counts()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   serviceName,
		"version":   serviceVersion,
		"data_stats": map[string]int{
			"total_articles":   articles,
			"total_narratives": narratives,
		},
	})
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := store.ArticleQuery{Limit: store.DefaultLimit}

	if v := params.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > store.MaxLimit {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("limit must be an integer between 1 and %d", store.MaxLimit))
			return
		}
		q.Limit = n
	}
	if v := params.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		q.Offset = n
	}
	if v := params.Get("bias_threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 100 {
			writeError(w, http.StatusBadRequest, "bias_threshold must be a number between 0 and 100")
			return
		}
		q.MinOverall = f
	}
	q.NarrativeID = params.Get("narrative_id")

	writeJSON(w, http.StatusOK, s.store.ListArticles(q))
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	a, err := s.store.Article(id)
	if err != nil {
		s.writeStoreError(w, err, fmt.Sprintf("article %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleNarratives(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Narratives())
}

func (s *Server) handleNarrative(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	n, err := s.store.Narrative(id)
	if err != nil {
		s.writeStoreError(w, err, fmt.Sprintf("narrative %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	points, err := s.store.Timeline(id)
	if err != nil {
		s.writeStoreError(w, err, fmt.Sprintf("narrative %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleNarrativeArticles(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	members, err := s.store.NarrativeArticles(id)
	if err != nil {
		s.writeStoreError(w, err, fmt.Sprintf("narrative %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Stats()
	if err != nil {
		s.writeStoreError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error, msg string) {
	if msg == "" {
		msg = err.Error()
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, msg)
	case errors.Is(err, store.ErrEmptyDataset):
		writeError(w, http.StatusServiceUnavailable, msg)
	default:
		s.log.Error("query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
