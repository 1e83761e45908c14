package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TagHandler holds dependencies for tag-related handlers.
type TagHandler struct {
	uc        usecase.TaxonomyUsecase
	suggestUC usecase.SuggestUsecase
}

// NewTagHandler is the constructor for TagHandler, injected by Fx.
func NewTagHandler(uc usecase.TaxonomyUsecase, suggestUC usecase.SuggestUsecase) *TagHandler {
	return &TagHandler{
		uc:        uc,
		suggestUC: suggestUC,
	}
}

// List returns every tag with its product count, most used first.
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.uc.ListTags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"tags": tags,
	}, "Tags retrieved successfully")
}

// Suggest handles the tag autosuggest request.
func (h *TagHandler) Suggest(c echo.Context) error {
	return suggest(c, h.suggestUC.SuggestTags)
}
