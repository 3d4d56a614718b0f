package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scorp5438/articles-app/internal/domain"
	"github.com/scorp5438/articles-app/internal/middleware"
	"github.com/scorp5438/articles-app/internal/utils"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body domain.UserCreate
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.auth.Register(body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, messageResponse{"Successfully registered"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	accessToken, err := h.auth.Login(creds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, tokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(middleware.BearerToken(r)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{"Successfully logged out"})
}

func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	link := chi.URLParam(r, "link")

	if err := h.auth.Confirm(link); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{"User activated"})
}

func (h *Handler) RequestLink(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.auth.RequestLink(*user); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, messageResponse{"Link was sent"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	writeJSON(w, user)
}
