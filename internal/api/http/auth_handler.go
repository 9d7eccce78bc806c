package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"saccoflow/internal/service"
)

// AuthHandler exposes the credential flows: login, logout, password reset
// and the recovery-token exchange.
type AuthHandler struct {
	server *Server
}

func NewAuthHandler(server *Server) *AuthHandler {
	return &AuthHandler{server: server}
}

type sessionResponse struct {
	Role    string `json:"role"`
	Email   string `json:"email,omitempty"`
	SaccoID string `json:"sacco_id,omitempty"`
}

func sessionBody(res service.Resolution) sessionResponse {
	body := sessionResponse{Role: res.Role.String(), Email: res.Identity.Email}
	if res.Profile != nil {
		body.SaccoID = res.Profile.SaccoID
	}
	return body
}

// HandleLogin signs in; the sign-in event swaps the dashboard to the
// resolved role before Login returns. A failed sign-in keeps the previous
// state so the form can be resubmitted.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var form service.LoginForm
	if err := decodeBody(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	res, err := h.server.creds.Login(r.Context(), form)
	if err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sessionBody(res))
}

// HandleLogout signs out and reverts to the anonymous landing state.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.server.creds.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionBody(h.server.current()))
}

// HandleRecover exchanges a recovery token from an emailed link for a
// recovery session, enabling the reset form.
func (h *AuthHandler) HandleRecover(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
		Email string `json:"email"`
	}
	if err := decodeBody(r, &body); err != nil || body.Token == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "recovery token is required"})
		return
	}
	if _, err := h.server.authn.RecoverSessionFromToken(r.Context(), body.Token, body.Email); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"reset_ready": h.server.creds.ResetReady()})
}

// HandleResetPassword sets a new password against the recovery session.
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var form service.PasswordResetForm
	if err := decodeBody(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if err := h.server.creds.ResetPassword(r.Context(), form); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}

// HandleSession reports the currently resolved role.
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionBody(h.server.current()))
}
