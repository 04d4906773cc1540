package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"atelier/apperrors"
	"atelier/middleware"
	"atelier/models"
	"atelier/rdx"
	"atelier/repo"
	"atelier/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	accounts repo.Store[models.AdminAccount]
	session  *middleware.Session
	cache    *rdx.Client
}

func NewHandler(accounts repo.Store[models.AdminAccount], session *middleware.Session, cache *rdx.Client) *Handler {
	return &Handler{accounts: accounts, session: session, cache: cache}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if !utils.ValidEmail(input.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if input.Password != input.ConfirmPassword {
		utils.RespondWithError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	// Reject duplicate emails before writing.
	_, err := h.accounts.GetByField(r.Context(), "email", input.Email)
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		return
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("auth: hash error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	account := models.AdminAccount{
		ID:           "a" + utils.GenerateID(10),
		Email:        input.Email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}
	if err := h.accounts.Create(r.Context(), account); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	// Registration never signs the caller in; they still go through login.
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": account.ID}, "Registration successful", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Same message for unknown email and wrong password.
	account, err := h.accounts.GetByField(r.Context(), "email", input.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.session.Token(account.ID, account.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.cache.SetSession(r.Context(), account.ID, token)

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(middleware.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.SendResponse(w, http.StatusOK, map[string]string{"id": account.ID}, "Login successful", nil)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if claims, err := h.session.Parse(cookie.Value); err == nil {
			h.cache.DelSession(r.Context(), claims.AccountID)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.SendResponse(w, http.StatusOK, nil, "Logged out", nil)
}
