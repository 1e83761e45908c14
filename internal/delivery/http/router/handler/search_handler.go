package handler

import (
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the cross-entity search handler.
type SearchHandler struct {
	uc usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// searchSection is one entity type's slice of the combined answer.
// Source tells the client which read path produced it.
type searchSection struct {
	Items  any    `json:"items"`
	Total  int64  `json:"total"`
	Source string `json:"source"`
}

type searchResponse struct {
	Users    *searchSection `json:"users,omitempty"`
	Articles *searchSection `json:"articles,omitempty"`
}

// Search handles the combined user/article search request.
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_QUERY", "Query parameter q is required")
	}

	searchType := c.QueryParam("type")
	if searchType == "" {
		searchType = usecase.SearchTypeBoth
	}
	switch searchType {
	case usecase.SearchTypeUsers, usecase.SearchTypeArticles, usecase.SearchTypeBoth:
	default:
		return response.BadRequest(c, "INVALID_TYPE", "Type must be one of users, articles, both")
	}

	limit, offset := parsePagination(c)
	input := &usecase.SearchInput{
		Query:         query,
		Type:          searchType,
		PublishedOnly: parseBool(c.QueryParam("published")),
		Limit:         limit,
		Offset:        offset,
	}

	output, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := searchResponse{}
	if output.Users != nil {
		resp.Users = &searchSection{
			Items:  output.Users.Items,
			Total:  output.Users.Total,
			Source: string(output.Users.Outcome),
		}
	}
	if output.Articles != nil {
		resp.Articles = &searchSection{
			Items:  output.Articles.Items,
			Total:  output.Articles.Total,
			Source: string(output.Articles.Outcome),
		}
	}

	return response.Success(c, http.StatusOK, resp, "Search completed successfully")
}
