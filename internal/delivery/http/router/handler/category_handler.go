package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category-related handlers.
type CategoryHandler struct {
	uc        usecase.TaxonomyUsecase
	suggestUC usecase.SuggestUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.TaxonomyUsecase, suggestUC usecase.SuggestUsecase) *CategoryHandler {
	return &CategoryHandler{
		uc:        uc,
		suggestUC: suggestUC,
	}
}

// List handles the category listing request.
func (h *CategoryHandler) List(c echo.Context) error {
	limit, offset := parsePagination(c)

	categories, total, err := h.uc.ListCategories(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"categories": categories,
		"total":      total,
	}, "Categories retrieved successfully")
}

// Get handles the single category request, including its first page of
// products.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	limit, offset := parsePagination(c)

	result, err := h.uc.GetCategoryProducts(c.Request().Context(), id, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"category": result.Category,
		"products": result.Products,
		"total":    result.Total,
	}, "Category retrieved successfully")
}

// Products handles the category product listing request.
func (h *CategoryHandler) Products(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	limit, offset := parsePagination(c)

	result, err := h.uc.GetCategoryProducts(c.Request().Context(), id, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": result.Products,
		"total":    result.Total,
	}, "Category products retrieved successfully")
}

// Suggest handles the category autosuggest request.
func (h *CategoryHandler) Suggest(c echo.Context) error {
	return suggest(c, h.suggestUC.SuggestCategories)
}
