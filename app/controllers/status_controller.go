package controllers

import (
	"net/http"

	"techtrends/app/logger"
	"techtrends/app/metrics"
	"techtrends/app/services"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Result string `json:"result"`
}

// MetricsResponse is the body of GET /metrics.
type MetricsResponse struct {
	DBConnectionCount int64 `json:"db_connection_count"`
	PostCount         int   `json:"post_count"`
}

// StatusController exposes liveness and counters.
type StatusController struct {
	postService *services.PostService
	conns       *metrics.Counter
}

func NewStatusController(postService *services.PostService, conns *metrics.Counter) *StatusController {
	return &StatusController{postService: postService, conns: conns}
}

// Healthz always reports healthy; it does not touch storage.
func (sc *StatusController) Healthz(w http.ResponseWriter, r *http.Request) {
	logger.Infof("Health check endpoint accessed")
	sendJSON(w, http.StatusOK, HealthResponse{Result: "OK - healthy"})
}

// Metrics reports the connection counter and the number of stored posts.
// The post count is read first so its own connection is included.
func (sc *StatusController) Metrics(w http.ResponseWriter, r *http.Request) {
	n, err := sc.postService.CountPosts(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, MetricsResponse{
		DBConnectionCount: sc.conns.Value(),
		PostCount:         n,
	})
}
