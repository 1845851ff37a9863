/*
Package server exposes a decision tree over HTTP so vectors can be
classified remotely.
*/
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/internal/logging"
	"github.com/pbanos/id3/metrics"
	"github.com/pbanos/id3/tree"
	treejson "github.com/pbanos/id3/tree/json"
)

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Values []feature.Value `json:"values"`
}

// ClassifyResponse is the body answered to a successful POST /classify.
type ClassifyResponse struct {
	Label feature.Value `json:"label"`
}

// ErrorResponse is the body answered on errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

type server struct {
	tree    *tree.Tree
	metrics *metrics.Metrics
	logger  *slog.Logger
}

/*
NewHandler returns an http.Handler serving the given tree:
  * POST /classify classifies the vector in the request body
  * GET /tree answers the tree serialized as JSON
  * GET /healthz answers ok
  * GET /metrics exposes the metrics gathered from gatherer, if not nil
*/
func NewHandler(t *tree.Tree, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &server{t, m, logger}
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Post("/classify", s.classify)
	r.Get("/tree", s.getTree)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *server) classify(w http.ResponseWriter, r *http.Request) {
	req := &ClassifyRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSON(w, http.StatusBadRequest, &ErrorResponse{"invalid request body: " + err.Error()})
		return
	}
	label, err := s.tree.Classify(req.Values)
	if s.metrics != nil {
		s.metrics.Classified(err)
	}
	if err != nil {
		status := http.StatusInternalServerError
		var se *dataset.StructuralError
		switch {
		case errors.Is(err, tree.ErrMissingValue):
			status = http.StatusUnprocessableEntity
		case errors.As(err, &se):
			status = http.StatusBadRequest
		}
		writeJSON(w, status, &ErrorResponse{err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, &ClassifyResponse{label})
}

func (s *server) getTree(w http.ResponseWriter, r *http.Request) {
	b, err := treejson.Marshal(s.tree)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, &ErrorResponse{err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
