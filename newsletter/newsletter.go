package newsletter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"atelier/apperrors"
	"atelier/models"
	"atelier/repo"
	"atelier/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	subscribers repo.Store[models.NewsletterSubscriber]
}

func NewHandler(subscribers repo.Store[models.NewsletterSubscriber]) *Handler {
	return &Handler{subscribers: subscribers}
}

// Subscribe is the one public write endpoint on the site, which is why it
// sits behind the rate limiter.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !utils.ValidEmail(input.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	n, err := h.subscribers.Count(r.Context(), repo.Filter{"email": input.Email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Already subscribed")
		return
	}

	sub := models.NewsletterSubscriber{
		ID:           uuid.NewString(),
		Email:        input.Email,
		SubscribedAt: time.Now(),
	}
	if err := h.subscribers.Create(r.Context(), sub); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": sub.ID}, "Subscribed", nil)
}

func (h *Handler) GetSubscribers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	subs, err := h.subscribers.List(r.Context(), repo.Filter{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching subscribers")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, subs)
}

func (h *Handler) DeleteSubscriber(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.subscribers.Delete(r.Context(), ps.ByName("id"))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete subscriber")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Subscriber removed"})
}
