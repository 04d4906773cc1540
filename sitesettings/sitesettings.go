package sitesettings

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

// SettingsID keys the singleton document.
const SettingsID = "site"

type Handler struct {
	settings      repo.Store[models.SiteSettings]
	storageBucket string
}

func NewHandler(settings repo.Store[models.SiteSettings], storageBucket string) *Handler {
	return &Handler{settings: settings, storageBucket: storageBucket}
}

func (h *Handler) defaults() models.SiteSettings {
	return models.SiteSettings{
		ID: SettingsID,
		General: models.GeneralSettings{
			SiteName: "Atelier",
			Tagline:  "Design studio & creative agency",
		},
		Appearance: models.AppearanceSettings{
			Theme:         "light",
			AccentColor:   "#1a1a1a",
			StorageBucket: h.storageBucket,
		},
		SEO: models.SEOSettings{
			MetaTitle:       "Atelier — design studio",
			MetaDescription: "Branding, web and content by Atelier.",
		},
		UpdatedAt: time.Now(),
	}
}

// Get returns the settings document, creating defaults the first time.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	settings, err := h.settings.GetByID(r.Context(), SettingsID)
	if errors.Is(err, apperrors.ErrNotFound) {
		settings = h.defaults()
		// Best effort; a lost race just means the next read wins.
		_ = h.settings.Create(r.Context(), settings)
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching settings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// Update replaces whole sections in place. There is no history; the document
// is always edited where it lives.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		General    *models.GeneralSettings    `json:"general"`
		Appearance *models.AppearanceSettings `json:"appearance"`
		SEO        *models.SEOSettings        `json:"seo"`
		Analytics  *models.AnalyticsSettings  `json:"analytics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := repo.Filter{"updatedAt": time.Now()}
	if input.General != nil {
		fields["general"] = *input.General
	}
	if input.Appearance != nil {
		fields["appearance"] = *input.Appearance
	}
	if input.SEO != nil {
		fields["seo"] = *input.SEO
	}
	if input.Analytics != nil {
		fields["analytics"] = *input.Analytics
	}

	settings, err := h.settings.Update(r.Context(), SettingsID, fields)
	if errors.Is(err, apperrors.ErrNotFound) {
		// First write before any read: create defaults, then merge.
		if err := h.settings.Create(r.Context(), h.defaults()); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update settings")
			return
		}
		settings, err = h.settings.Update(r.Context(), SettingsID, fields)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update settings")
			return
		}
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}
