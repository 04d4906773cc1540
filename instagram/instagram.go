package instagram

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
	posts repo.Store[models.InstagramPost]
}

func NewHandler(posts repo.Store[models.InstagramPost]) *Handler {
	return &Handler{posts: posts}
}

// GetPosts lists mirrored posts, newest first, optionally by username.
func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := repo.Filter{}
	if username := r.URL.Query().Get("username"); username != "" {
		filter["username"] = username
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

// GetStats sums engagement across the mirror. Derived on every call, never
// stored.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	posts, err := h.posts.List(r.Context(), repo.Filter{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching posts")
		return
	}

	stats := models.InstagramStats{Posts: len(posts)}
	for _, p := range posts {
		stats.Likes += p.Likes
		stats.Comments += p.Comments
		stats.Saves += p.Saves
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var post models.InstagramPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if post.Image == "" || post.Username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image and username are required")
		return
	}

	post.ID = "ig" + utils.GenerateID(10)
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
	var input struct {
		Image    *string `json:"image"`
		Caption  *string `json:"caption"`
		Username *string `json:"username"`
		Likes    *int    `json:"likes"`
		Comments *int    `json:"comments"`
		Saves    *int    `json:"saves"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := repo.Filter{}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if input.Caption != nil {
		fields["caption"] = *input.Caption
	}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.Likes != nil {
		fields["likes"] = *input.Likes
	}
	if input.Comments != nil {
		fields["comments"] = *input.Comments
	}
	if input.Saves != nil {
		fields["saves"] = *input.Saves
	}

	post, err := h.posts.Update(r.Context(), ps.ByName("id"), fields)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), "Post not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, post)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.posts.Delete(r.Context(), ps.ByName("id"))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// Seed loads the fixed sample set, once. The emptiness precheck makes repeat
// calls report skipped; two truly concurrent calls could still both pass the
// check and double-write.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	n, err := h.posts.Count(r.Context(), repo.Filter{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n > 0 {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"status": "skipped"})
		return
	}

	seed := SamplePosts()
	if err := h.posts.InsertMany(r.Context(), seed); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to seed posts")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"status": "seeded", "count": len(seed)})
}
