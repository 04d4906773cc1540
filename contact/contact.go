package contact

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"

	"atelier/apperrors"
	"atelier/config"
	"atelier/utils"

	"github.com/julienschmidt/httprouter"
)

// Sender delivers one message. The SMTP implementation is the real thing;
// tests plug in a recorder.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends through a plain-auth SMTP relay.
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
}

func (s SMTPSender) Send(to, subject, body string) error {
	msg := []byte("Subject: " + subject + "\r\n\r\n" + body)
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.User, []string{to}, msg)
}

type Handler struct {
	cfg    config.Config
	sender Sender
}

func NewHandler(cfg config.Config, sender Sender) *Handler {
	return &Handler{cfg: cfg, sender: sender}
}

type submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s submission) validate() error {
	if s.Name == "" || s.Email == "" || s.Subject == "" || s.Message == "" {
		return apperrors.Validation("all fields are required")
	}
	if !utils.ValidEmail(s.Email) {
		return apperrors.Validation("invalid email address")
	}
	return nil
}

// Submit relays a contact-form submission. Missing credentials fail before
// any relay attempt; a relay failure carries its cause back for diagnostics.
// No retries.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var sub submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := sub.validate(); err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}

	if h.cfg.EmailUser == "" || h.cfg.EmailPass == "" {
		err := apperrors.Config("email credentials not configured")
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", sub.Name, sub.Email, sub.Message)
	if err := h.sender.Send(h.cfg.ContactTo, "[contact] "+sub.Subject, body); err != nil {
		wrapped := &apperrors.EmailDeliveryError{Err: err}
		utils.RespondWithError(w, apperrors.HTTPStatus(wrapped), wrapped.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}
