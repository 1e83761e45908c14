package handler

import (
	"context"
	"net/http"
	"strconv"

	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/search"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type suggestFunc func(ctx context.Context, query string, size int) (*usecase.SuggestResult, error)

type suggestResponse struct {
	Suggestions []search.Suggestion `json:"suggestions"`
}

// suggest parses the q/size parameters shared by every autosuggest
// endpoint and runs the given facet suggester.
func suggest(c echo.Context, fn suggestFunc) error {
	query := c.QueryParam("q")

	size := 0
	if raw := c.QueryParam("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			size = v
		}
	}

	result, err := fn(c.Request().Context(), query, size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(headerSearchSource, string(result.Outcome))

	return response.Success(c, http.StatusOK, suggestResponse{Suggestions: result.Suggestions}, "Suggestions retrieved successfully")
}
