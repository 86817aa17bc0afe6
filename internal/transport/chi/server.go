// Package chi is the HTTP transport layer: route registration, request
// parsing, and response shaping for the search API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quiltly/searchd/internal/domain"
	"github.com/quiltly/searchd/internal/domain/search/query"
	"github.com/quiltly/searchd/internal/domain/search/tab"
	"github.com/quiltly/searchd/internal/metrics"
	healthuc "github.com/quiltly/searchd/internal/usecase/health"
	searchuc "github.com/quiltly/searchd/internal/usecase/search"
)

const (
	msgInvalidTab   = "Invalid tab. Must be overall, users, social, marketplace, or quilts."
	msgSearchFailed = "Failed to perform search."
)

// Server implements the HTTP API.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.Search)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Search handles GET /search. The tab parameter selects between overview
// mode (four capped sections) and tab mode (one paginated entity list).
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	params := r.URL.Query()

	q, err := query.New(
		params.Get("q"),
		params.Get("tab"),
		intParam(params.Get("limit")),
		intParam(params.Get("offset")),
		intParam(params.Get("sectionLimit")),
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTab) {
			metrics.SearchesTotal.WithLabelValues("unknown", "invalid").Inc()
			writeMessage(w, http.StatusBadRequest, msgInvalidTab)
			return
		}
		s.logger.Error("query construction failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, msgSearchFailed)
		return
	}

	viewerID := ViewerFromContext(r.Context())
	tabName := string(q.Tab())

	if err := s.dispatch(w, r, &q, viewerID); err != nil {
		metrics.SearchesTotal.WithLabelValues(tabName, "error").Inc()
		s.logger.Error("search failed",
			zap.String("tab", tabName),
			zap.String("viewer_id", viewerID),
			zap.Error(err),
		)
		writeMessage(w, http.StatusInternalServerError, msgSearchFailed)
		return
	}

	metrics.SearchesTotal.WithLabelValues(tabName, "ok").Inc()
	metrics.SearchDuration.WithLabelValues(tabName).Observe(time.Since(start).Seconds())
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, q *query.Query, viewerID string) error {
	ctx := r.Context()
	queryText := q.Normalized()
	tabName := string(q.Tab())

	switch q.Tab() {
	case tab.Users:
		pg, err := s.search.Users(ctx, q, viewerID)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, tabPayloadFrom(queryText, tabName, pg, userToDTO))
	case tab.Social:
		pg, err := s.search.Social(ctx, q, viewerID)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, tabPayloadFrom(queryText, tabName, pg, postToDTO))
	case tab.Marketplace:
		pg, err := s.search.Marketplace(ctx, q, viewerID)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, tabPayloadFrom(queryText, tabName, pg, postToDTO))
	case tab.Quilts:
		pg, err := s.search.Quilts(ctx, q, viewerID)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, tabPayloadFrom(queryText, tabName, pg, quiltToDTO))
	default:
		ov, err := s.search.Overview(ctx, q, viewerID)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, overviewPayload{
			Query: queryText,
			Tab:   tabName,
			Sections: overviewSections{
				Users:       sectionToDTO(ov.Users, userToDTO),
				Social:      sectionToDTO(ov.Social, postToDTO),
				Marketplace: sectionToDTO(ov.Marketplace, postToDTO),
				Quilts:      sectionToDTO(ov.Quilts, quiltToDTO),
			},
		})
	}
	return nil
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// intParam parses an integer query parameter. Absent or malformed values
// come back as 0 so the query constructor applies its defaults.
func intParam(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}
