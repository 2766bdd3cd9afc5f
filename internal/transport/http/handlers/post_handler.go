package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/dimantha2004/Blog-publication/internal/domain"
	"github.com/dimantha2004/Blog-publication/internal/service"
	"github.com/dimantha2004/Blog-publication/internal/transport/http/middleware"
	"github.com/dimantha2004/Blog-publication/pkg/validator"
	"github.com/google/uuid"
)

type PostHandler struct {
	postService    *service.PostService
	profileService *service.ProfileService
}

func NewPostHandler(postService *service.PostService, profileService *service.ProfileService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		profileService: profileService,
	}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePostFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	resp, err := h.postService.List(r.Context(), h.viewer(r), filter)
	if err != nil {
		log.Printf("ERROR list posts: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	post, err := h.postService.Get(r.Context(), h.viewer(r), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		} else {
			log.Printf("ERROR get post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	var visibility, status string
	if input.Visibility != nil {
		visibility = string(*input.Visibility)
	}
	if input.Status != nil {
		status = string(*input.Status)
	}
	if errs := validator.ValidatePost(input.Title, input.Content, visibility, status); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	post, err := h.postService.Create(r.Context(), userID, input)
	if err != nil {
		log.Printf("ERROR create post: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	var input service.UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if input.Visibility != nil && !input.Visibility.Valid() {
		writeError(w, http.StatusBadRequest, "INVALID_VISIBILITY", "Visibility must be free or premium")
		return
	}
	if input.Status != nil && !input.Status.Valid() {
		writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Status must be draft or published")
		return
	}

	post, err := h.postService.Update(r.Context(), userID, postID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrNotPostAuthor):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can update this post")
		case errors.Is(err, service.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Title cannot be empty")
		case errors.Is(err, service.ErrContentRequired):
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Content cannot be empty")
		default:
			log.Printf("ERROR update post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := h.postService.Delete(r.Context(), userID, postID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		case errors.Is(err, service.ErrNotPostAuthor):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can delete this post")
		default:
			log.Printf("ERROR delete post: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// viewer resolves the requesting profile when a token was presented.
// Anonymous or unresolvable viewers browse as nil.
func (h *PostHandler) viewer(r *http.Request) *domain.Profile {
	viewerID := middleware.ViewerID(r.Context())
	if viewerID == nil {
		return nil
	}

	profile, err := h.profileService.Fetch(r.Context(), *viewerID)
	if err != nil {
		log.Printf("ERROR resolve viewer %s: %v", viewerID, err)
		return nil
	}
	return profile
}

func parsePostFilter(r *http.Request) (domain.PostFilter, error) {
	q := r.URL.Query()
	var filter domain.PostFilter

	if v := q.Get("author_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, errors.New("invalid author_id")
		}
		filter.AuthorID = &id
	}
	if v := q.Get("visibility"); v != "" {
		vis := domain.Visibility(v)
		if !vis.Valid() {
			return filter, errors.New("invalid visibility")
		}
		filter.Visibility = &vis
	}
	if v := q.Get("status"); v != "" {
		st := domain.Status(v)
		if !st.Valid() {
			return filter, errors.New("invalid status")
		}
		filter.Status = &st
	}
	filter.Search = q.Get("search")

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, errors.New("invalid limit")
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, errors.New("invalid offset")
		}
		filter.Offset = n
	}

	return filter, nil
}
