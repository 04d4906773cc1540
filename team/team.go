package team

import (
	"encoding/json"
	"errors"
	"net/http"

	"atelier/apperrors"
	"atelier/models"
	"atelier/repo"
	"atelier/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	members repo.Store[models.TeamMember]
}

func NewHandler(members repo.Store[models.TeamMember]) *Handler {
	return &Handler{members: members}
}

func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	members, err := h.members.List(r.Context(), repo.Filter{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching team")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, members)
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	member, err := h.members.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), "Member not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, member)
}

// GetMemberBySlug backs the public per-member profile route.
func (h *Handler) GetMemberBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	member, err := h.members.GetByField(r.Context(), "slug", ps.ByName("slug"))
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), "Member not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, member)
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var member models.TeamMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if member.Name == "" || member.Position == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and position are required")
		return
	}
	if member.Slug == "" {
		member.Slug = utils.Slugify(member.Name)
	}
	if !utils.IsSlug(member.Slug) {
		utils.RespondWithError(w, http.StatusBadRequest, "Slug must be URL-safe")
		return
	}

	n, err := h.members.Count(r.Context(), repo.Filter{"slug": member.Slug})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Slug already in use")
		return
	}

	member.ID = "t" + utils.GenerateID(10)
	if err := h.members.Create(r.Context(), member); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create member")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, member)
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var input struct {
		Name     *string `json:"name"`
		Position *string `json:"position"`
		Slug     *string `json:"slug"`
		Bio      *string `json:"bio"`
		Image    *string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := repo.Filter{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}
	if input.Bio != nil {
		fields["bio"] = *input.Bio
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if input.Slug != nil {
		if !utils.IsSlug(*input.Slug) {
			utils.RespondWithError(w, http.StatusBadRequest, "Slug must be URL-safe")
			return
		}
		existing, err := h.members.GetByField(r.Context(), "slug", *input.Slug)
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

	member, err := h.members.Update(r.Context(), id, fields)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), "Member not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, member)
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.members.Delete(r.Context(), ps.ByName("id"))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete member")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Member deleted"})
}
