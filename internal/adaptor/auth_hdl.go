package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"telehealth-portal/internal/dto/request"
	"telehealth-portal/internal/dto/response"
	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	cookie  utils.SessionConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookie utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		log:     log,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	result, err := h.service.Signup(r.Context(), &req, clientMeta(r))
	if err != nil {
		handleServiceError(w, h.log, err, "signup", "Failed to create user")
		return
	}

	h.deliver(w, result)
	utils.ResponseCreated(w, "User created successfully", result.User)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	result, err := h.service.Login(r.Context(), &req, clientMeta(r))
	if err != nil {
		handleServiceError(w, h.log, err, "login", msgServerError)
		return
	}

	h.deliver(w, result)
	utils.ResponseMessage(w, "Login successful", result.User)
}

// Logout handles POST /auth/logout. Clients without a session are already
// logged out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.GetTokenFromContext(r.Context())

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout", "Logout failed")
		return
	}

	utils.ClearSessionCookie(w, h.cookie)
	utils.ResponseMessage(w, "Logged out successfully", nil)
}

// deliver sets the session cookie when a session was established. Otherwise
// any cookie the client still holds is cleared so it cannot keep acting as
// the previous account.
func (h *AuthHandler) deliver(w http.ResponseWriter, result *response.AuthResult) {
	if result.Token == "" {
		utils.ClearSessionCookie(w, h.cookie)
		return
	}
	utils.SetSessionCookie(w, h.cookie, result.Token, result.ExpiresAt)
}

// decodeBody reads a JSON body into dst. An empty body decodes as {} so the
// field validation reports what is missing.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func clientMeta(r *http.Request) request.ClientMeta {
	token, _ := utils.GetTokenFromContext(r.Context())

	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}

	return request.ClientMeta{
		PriorToken: token,
		UserAgent:  r.UserAgent(),
		IPAddress:  ip,
	}
}
