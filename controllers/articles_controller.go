package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"newsboard-api/middlewares"
	"newsboard-api/models"
	"newsboard-api/validation"
)

// ArticleStore is the persistence surface the article handlers need.
type ArticleStore interface {
	ListArticles(ctx context.Context) ([]models.Article, error)
	CreateArticle(ctx context.Context, article models.Article) error
}

type ArticleHandler struct {
	Store ArticleStore
}

func (h *ArticleHandler) SetupArticleRoutes(r *mux.Router) {
	articlesRouter := r.PathPrefix("/articles").Subrouter()
	articlesRouter.HandleFunc("", h.GetArticles).Methods("GET")
	articlesRouter.HandleFunc("", h.CreateArticle).Methods("POST")
}

type articleListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []models.Article `json:"data"`
}

type articleCreateResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    models.Article `json:"data"`
}

func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articles, err := h.Store.ListArticles(ctx)
	if err != nil {
		middlewares.HttpError(w, "Failed to fetch articles", http.StatusInternalServerError, err)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}

	middlewares.RespondJSON(w, articleListResponse{
		Success: true,
		Count:   len(articles),
		Data:    articles,
	}, http.StatusOK)
}

func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input validation.ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middlewares.HttpError(w, "Invalid JSON payload", http.StatusBadRequest, err)
		return
	}

	if err := validation.ValidateArticle(&input); err != nil {
		middlewares.HttpError(w, err.Error(), http.StatusBadRequest, err)
		return
	}

	article := models.Article{
		ID:      uuid.New(),
		Title:   input.Title,
		Content: input.Content,
		Date:    time.Now().UTC(),
	}

	if err := h.Store.CreateArticle(ctx, article); err != nil {
		middlewares.HttpError(w, "Failed to create article", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(w, articleCreateResponse{
		Success: true,
		Message: "Article created",
		Data:    article,
	}, http.StatusCreated)
}
