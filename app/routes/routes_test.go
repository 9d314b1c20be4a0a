package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"techtrends/app/controllers"
	"techtrends/app/metrics"
	"techtrends/app/repositories/mock"
	"techtrends/app/services"
	"techtrends/app/session"
	"techtrends/app/views"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*mux.Router, *mock.PostRepository) {
	t.Helper()
	renderer, err := controllers.NewRenderer(views.FS)
	require.NoError(t, err)

	postRepo := mock.NewPostRepository()
	postService := services.NewPostService(postRepo)

	router := SetupRoutes(Controllers{
		Posts:  controllers.NewPostController(postService, renderer, session.NewFlasher("secret")),
		Pages:  controllers.NewPageController(renderer),
		Status: controllers.NewStatusController(postService, metrics.NewCounter()),
	})
	return router, postRepo
}

func TestRoutes(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		method      string
		path        string
		status      int
		contentType string
	}{
		{"GET", "/healthz", http.StatusOK, "application/json"},
		{"GET", "/metrics", http.StatusOK, "application/json"},
		{"GET", "/", http.StatusOK, "text/html; charset=utf-8"},
		{"GET", "/about", http.StatusOK, "text/html; charset=utf-8"},
		{"GET", "/create", http.StatusOK, "text/html; charset=utf-8"},
		{"GET", "/42", http.StatusNotFound, "text/html; charset=utf-8"},
		{"GET", "/posts/42", http.StatusNotFound, "text/html; charset=utf-8"},
		{"POST", "/healthz", http.StatusMethodNotAllowed, ""},
		{"PUT", "/create", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRoutesRecoverFromPanics(t *testing.T) {
	router, _ := setupTestRouter(t)
	router.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}).Methods("GET")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
