package httpapi

import (
	"net/http"

	"atelier-be/internal/session"
)

type SessionHandler struct {
	sessions *session.Manager
}

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type SessionResponseDTO struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
}

// Create issues a fresh anonymous shopper session.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	token, sid, err := h.sessions.Issue()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal", "failed to issue session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(session.TokenTTL.Seconds()),
	})

	respondJSON(w, http.StatusCreated, SessionResponseDTO{Token: token, SessionID: sid})
}

// requireSession pulls the session id injected by the middleware.
func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, ok := session.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "session required")
		return "", false
	}
	return sid, true
}
