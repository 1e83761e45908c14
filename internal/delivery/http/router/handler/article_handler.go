package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArticleHandler holds dependencies for article-related handlers.
type ArticleHandler struct {
	uc usecase.ArticleUsecase
}

// NewArticleHandler is the constructor for ArticleHandler, injected by Fx.
func NewArticleHandler(uc usecase.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// List handles the article listing request.
func (h *ArticleHandler) List(c echo.Context) error {
	limit, offset := parsePagination(c)
	input := &usecase.ListArticlesInput{
		PublishedOnly: parseBool(c.QueryParam("published")),
		Limit:         limit,
		Offset:        offset,
	}

	articles, total, err := h.uc.ListArticles(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"articles": articles,
		"total":    total,
	}, "Articles retrieved successfully")
}

// Get handles the single article request.
func (h *ArticleHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid article ID")
	}

	article, err := h.uc.GetArticle(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "Article retrieved successfully")
}

// ByAuthor handles the per-author article listing request.
func (h *ArticleHandler) ByAuthor(c echo.Context) error {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid author ID")
	}

	limit, offset := parsePagination(c)

	articles, err := h.uc.GetArticlesByAuthor(c.Request().Context(), authorID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"articles": articles,
	}, "Articles retrieved successfully")
}

// Create handles the article creation request.
func (h *ArticleHandler) Create(c echo.Context) error {
	var input *usecase.CreateArticleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, article, "Article created successfully")
}

// Update handles the article update request.
func (h *ArticleHandler) Update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid article ID")
	}

	var input *usecase.UpdateArticleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}

	article, err := h.uc.UpdateArticle(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "Article updated successfully")
}

// Delete handles the article deletion request.
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid article ID")
	}

	if err := h.uc.DeleteArticle(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"id": id}, "Article deleted successfully")
}
