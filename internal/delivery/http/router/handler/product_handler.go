package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/search"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// headerSearchSource reports which read path answered a search-backed
// request: "index" or "fallback".
const headerSearchSource = "X-Search-Source"

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// listMeta describes one page of a faceted listing.
type listMeta struct {
	PageNo   int   `json:"page_no"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// listFilters echoes the facet values applied to a listing.
type listFilters struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

type productListResponse struct {
	Meta     listMeta                 `json:"meta"`
	Filters  listFilters              `json:"filters"`
	Products []search.ProductDocument `json:"products"`
}

// List handles the faceted product listing request.
func (h *ProductHandler) List(c echo.Context) error {
	page, limit := parsePage(c)
	input := &usecase.ListProductsInput{
		Query:       c.QueryParam("q"),
		Brands:      parseCSV(c.QueryParam("brand")),
		Categories:  parseCSV(c.QueryParam("category")),
		Tags:        parseCSV(c.QueryParam("tags")),
		MinPrice:    parseFloatPtr(c.QueryParam("minPrice")),
		MaxPrice:    parseFloatPtr(c.QueryParam("maxPrice")),
		MinRating:   parseFloatPtr(c.QueryParam("minRating")),
		MinDiscount: parseFloatPtr(c.QueryParam("min_discount")),
		MaxDiscount: parseFloatPtr(c.QueryParam("max_discount")),
		InStock:     parseBool(c.QueryParam("in_stock")),
		Sort:        c.QueryParam("sort"),
		Order:       c.QueryParam("order"),
		Page:        page,
		Limit:       limit,
	}

	result, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(headerSearchSource, string(result.Outcome))

	return response.Success(c, http.StatusOK, productListResponse{
		Meta: listMeta{
			PageNo:   page,
			PageSize: limit,
			Total:    result.Total,
		},
		Filters: listFilters{
			Brands:     input.Brands,
			Categories: input.Categories,
			Tags:       input.Tags,
		},
		Products: result.Products,
	}, "Products retrieved successfully")
}

// Get handles the single product request.
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update handles the product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete handles the product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"id": id}, "Product deleted successfully")
}

// Reindex rebuilds the product search index from the database.
func (h *ProductHandler) Reindex(c echo.Context) error {
	result, err := h.uc.Reindex(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Reindex completed")
}
