package controllers

import (
	"net/http"

	"techtrends/app/logger"
)

// PageController serves the static pages.
type PageController struct {
	views *Renderer
}

func NewPageController(views *Renderer) *PageController {
	return &PageController{views: views}
}

// About renders the about page.
func (pc *PageController) About(w http.ResponseWriter, r *http.Request) {
	logger.Infof("About Us page accessed")
	pc.views.HTML(w, r, http.StatusOK, PageAbout, nil)
}

// NotFound renders the 404 page for paths no route matches.
func (pc *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	logger.Warnf("No route for %s %s. Returning 404 page.", r.Method, r.URL.Path)
	pc.views.HTML(w, r, http.StatusNotFound, PageNotFound, nil)
}
