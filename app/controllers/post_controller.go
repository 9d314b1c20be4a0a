package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"techtrends/app/logger"
	"techtrends/app/models"
	"techtrends/app/services"
	"techtrends/app/session"

	"github.com/gorilla/mux"
	"golang.org/x/text/unicode/norm"
)

// TitleRequiredMessage is shown when the creation form is sent without a title.
const TitleRequiredMessage = "Title is required!"

// maxFlashTitle bounds how many runes of a title go into the flash cookie.
const maxFlashTitle = 60

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	views       *Renderer
	flash       *session.Flasher
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, views *Renderer, flash *session.Flasher) *PostController {
	return &PostController{
		postService: postService,
		views:       views,
		flash:       flash,
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	logger.Infof("Main page accessed")
	pc.views.HTML(w, r, http.StatusOK, PageIndex, &PageData{
		Flashes: pc.flash.Pop(w, r),
		Posts:   posts,
	})
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]
	id, err := strconv.Atoi(rawID)
	if err != nil {
		// The route only matches digits, so this is an id too large to exist.
		logger.Warnf("Post with id %s not found. Returning 404 page.", rawID)
		pc.views.HTML(w, r, http.StatusNotFound, PageNotFound, nil)
		return
	}

	post, found, err := pc.postService.GetPost(r.Context(), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if !found {
		logger.Warnf("Post with id %d not found. Returning 404 page.", id)
		pc.views.HTML(w, r, http.StatusNotFound, PageNotFound, nil)
		return
	}

	logger.Infof("Article %q retrieved", post.Title)
	pc.views.HTML(w, r, http.StatusOK, PageShow, &PageData{Post: post})
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	pc.views.HTML(w, r, http.StatusOK, PageNew, nil)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	post := models.Post{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}
	if !norm.NFC.IsNormalString(post.Title) || !norm.NFC.IsNormalString(post.Content) {
		logger.Debugf("Post %q submitted with text that is not NFC normalised", post.Title)
	}

	err := pc.postService.CreatePost(r.Context(), &post)
	if errors.Is(err, models.ErrTitleRequired) {
		logger.Errorf("Attempted to create a post without title")
		pc.views.HTML(w, r, http.StatusOK, PageNew, &PageData{
			Flashes: []string{TitleRequiredMessage},
			Form:    post,
		})
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	logger.Infof("New article %q created", post.Title)
	pc.flash.Add(w, r, fmt.Sprintf("Post %q created", flashTitle(post.Title)))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// flashTitle shortens title to maxFlashTitle runes so the flash cookie stays
// well below browser cookie limits.
func flashTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxFlashTitle {
		return title
	}
	return string(runes[:maxFlashTitle]) + "..."
}
