package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BrandHandler holds dependencies for brand-related handlers.
type BrandHandler struct {
	uc        usecase.TaxonomyUsecase
	suggestUC usecase.SuggestUsecase
}

// NewBrandHandler is the constructor for BrandHandler, injected by Fx.
func NewBrandHandler(uc usecase.TaxonomyUsecase, suggestUC usecase.SuggestUsecase) *BrandHandler {
	return &BrandHandler{
		uc:        uc,
		suggestUC: suggestUC,
	}
}

// List handles the brand listing request.
func (h *BrandHandler) List(c echo.Context) error {
	limit, offset := parsePagination(c)

	brands, total, err := h.uc.ListBrands(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"brands": brands,
		"total":  total,
	}, "Brands retrieved successfully")
}

// Get handles the single brand request, including its first page of
// products.
func (h *BrandHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid brand ID")
	}

	limit, offset := parsePagination(c)

	result, err := h.uc.GetBrandProducts(c.Request().Context(), id, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"brand":    result.Brand,
		"products": result.Products,
		"total":    result.Total,
	}, "Brand retrieved successfully")
}

// Products handles the brand product listing request.
func (h *BrandHandler) Products(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid brand ID")
	}

	limit, offset := parsePagination(c)

	result, err := h.uc.GetBrandProducts(c.Request().Context(), id, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": result.Products,
		"total":    result.Total,
	}, "Brand products retrieved successfully")
}

// Suggest handles the brand autosuggest request.
func (h *BrandHandler) Suggest(c echo.Context) error {
	return suggest(c, h.suggestUC.SuggestBrands)
}
