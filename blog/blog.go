package blog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"atelier/apperrors"
	"atelier/models"
	"atelier/repo"
	"atelier/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	posts repo.Store[models.BlogPost]
}

func NewHandler(posts repo.Store[models.BlogPost]) *Handler {
	return &Handler{posts: posts}
}

// GetPosts lists all posts, newest first, optionally filtered by category.
func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := repo.Filter{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	posts, err := h.posts.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching posts")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	post, err := h.posts.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), "Post not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, post)
}

func (h *Handler) GetPostBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	post, err := h.posts.GetByField(r.Context(), "slug", ps.ByName("slug"))
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), "Post not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, post)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if post.Title == "" || post.Content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and content are required")
		return
	}
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}
	if !utils.IsSlug(post.Slug) {
		utils.RespondWithError(w, http.StatusBadRequest, "Slug must be URL-safe")
		return
	}

	// Uniqueness check happens before the write ever reaches the store.
	n, err := h.posts.Count(r.Context(), repo.Filter{"slug": post.Slug})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Slug already in use")
		return
	}

	post.ID = "b" + utils.GenerateID(10)
	if post.Date.IsZero() {
		post.Date = time.Now()
	}
	if err := h.posts.Create(r.Context(), post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, post)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var input struct {
		Title    *string `json:"title"`
		Slug     *string `json:"slug"`
		Content  *string `json:"content"`
		Category *string `json:"category"`
		Author   *string `json:"author"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := repo.Filter{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Author != nil {
		fields["author"] = *input.Author
	}
	if input.Slug != nil {
		if !utils.IsSlug(*input.Slug) {
			utils.RespondWithError(w, http.StatusBadRequest, "Slug must be URL-safe")
			return
		}
		existing, err := h.posts.GetByField(r.Context(), "slug", *input.Slug)
		if err == nil && existing.ID != id {
			utils.RespondWithError(w, http.StatusBadRequest, "Slug already in use")
			return
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		fields["slug"] = *input.Slug
	}

	post, err := h.posts.Update(r.Context(), id, fields)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), "Post not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, post)
}

// DeletePost treats a repeat delete as success so the dashboard can retry
// without surfacing an error.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.posts.Delete(r.Context(), ps.ByName("id"))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}
