package routes

import (
	"net/http"

	"techtrends/app/controllers"
	"techtrends/app/middleware"

	"github.com/gorilla/mux"
)

// Controllers groups the handlers the router dispatches to.
type Controllers struct {
	Posts  *controllers.PostController
	Pages  *controllers.PageController
	Status *controllers.StatusController
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(c Controllers) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Tracing)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Operational endpoints
	router.Handle("/healthz", middleware.ContentTypeJSON(http.HandlerFunc(c.Status.Healthz))).Methods("GET")
	router.Handle("/metrics", middleware.ContentTypeJSON(http.HandlerFunc(c.Status.Metrics))).Methods("GET")

	// Web routes
	router.HandleFunc("/", c.Posts.Index).Methods("GET")
	router.HandleFunc("/about", c.Pages.About).Methods("GET")
	router.HandleFunc("/create", c.Posts.New).Methods("GET")
	router.HandleFunc("/create", c.Posts.Create).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}", c.Posts.Show).Methods("GET")

	router.NotFoundHandler = middleware.Logger(http.HandlerFunc(c.Pages.NotFound))

	return router
}
