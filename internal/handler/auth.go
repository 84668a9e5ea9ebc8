package handler

import (
	"net/http"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/ctxkeys"
	"github.com/plebtools/plebtools/internal/service"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

type registerRequest struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	NewsletterSubscribed bool   `json:"newsletter_subscribed"`
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, emailSent, err := h.authService.Register(req.Username, req.Email, req.Password, req.NewsletterSubscribed)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":                 "Account created successfully",
		"user_id":                 user.ID,
		"email_verification_sent": emailSent,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, r, apperr.Validation("Username and password required"))
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := h.authService.GenerateSessionToken(user)
	if err != nil {
		respondError(w, r, apperr.Persistence("Failed to log in", err))
		return
	}
	h.authService.SetSessionCookie(w, token)

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    user.Projection(),
	})
}

// Logout clears the session cookie unconditionally; logging out while logged
// out is still a success.
func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

type verifyRequest struct {
	Token string `json:"token"`
}

func (h *authHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	err := h.authService.VerifyEmail(req.Token)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Email verified successfully"})
}

func (h *authHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	user, err := h.authService.CurrentUser(sess.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	projection := user.Projection()
	projection.CreatedAt = &user.CreatedAt

	respondJSON(w, http.StatusOK, projection)
}
