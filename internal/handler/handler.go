package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scorp5438/articles-app/internal/config"
	"github.com/scorp5438/articles-app/internal/logger"
	"github.com/scorp5438/articles-app/internal/service"
)

type Handler struct {
	auth     service.AuthService
	articles service.ArticleService
	comments service.CommentService
	users    service.UserService
	cfg      *config.Config
}

func New(auth service.AuthService, articles service.ArticleService, comments service.CommentService, users service.UserService, cfg *config.Config) *Handler {
	return &Handler{auth, articles, comments, users, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type idResponse struct {
	Id int64 `json:"id"`
}
