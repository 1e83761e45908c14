package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/internal/delivery/http/validator"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/search"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductUsecase lets each test plug in just the methods it needs.
type stubProductUsecase struct {
	listFn   func(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error)
	createFn func(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error)
}

func (s *stubProductUsecase) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	return s.listFn(ctx, input)
}

func (s *stubProductUsecase) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	panic("not expected")
}

func (s *stubProductUsecase) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductUsecase) UpdateProduct(ctx context.Context, id uint, input *usecase.UpdateProductInput) (*entity.Product, error) {
	panic("not expected")
}

func (s *stubProductUsecase) DeleteProduct(ctx context.Context, id uint) error {
	panic("not expected")
}

func (s *stubProductUsecase) Reindex(ctx context.Context) (*usecase.ReindexResult, error) {
	panic("not expected")
}

func newTestContext(t *testing.T, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestProductHandler_List_ParsesFacetParameters(t *testing.T) {
	var captured *usecase.ListProductsInput
	uc := &stubProductUsecase{
		listFn: func(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
			captured = input

			return &usecase.ProductPage{
				Products: []search.ProductDocument{{ID: 1, Title: "Mechanical Keyboard"}},
				Total:    1,
				Outcome:  usecase.OutcomeIndex,
			}, nil
		},
	}
	handler := NewProductHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet,
		"/api/products?q=keyboard&brand=Keytron,Clackers&category=peripherals&tags=wireless&minPrice=10&maxPrice=200&in_stock=true&sort=price&order=asc&page=2&limit=20", nil)

	require.NoError(t, handler.List(c))

	require.NotNil(t, captured)
	assert.Equal(t, "keyboard", captured.Query)
	assert.Equal(t, []string{"Keytron", "Clackers"}, captured.Brands)
	assert.Equal(t, []string{"peripherals"}, captured.Categories)
	assert.Equal(t, []string{"wireless"}, captured.Tags)
	require.NotNil(t, captured.MinPrice)
	assert.InDelta(t, 10, *captured.MinPrice, 0.001)
	require.NotNil(t, captured.MaxPrice)
	assert.InDelta(t, 200, *captured.MaxPrice, 0.001)
	assert.True(t, captured.InStock)
	assert.Equal(t, "price", captured.Sort)
	assert.Equal(t, "asc", captured.Order)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 20, captured.Limit)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "index", rec.Header().Get(headerSearchSource))

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Meta     listMeta                 `json:"meta"`
			Products []search.ProductDocument `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 2, envelope.Data.Meta.PageNo)
	assert.Equal(t, 20, envelope.Data.Meta.PageSize)
	assert.Equal(t, int64(1), envelope.Data.Meta.Total)
	require.Len(t, envelope.Data.Products, 1)
	assert.Equal(t, "Mechanical Keyboard", envelope.Data.Products[0].Title)
}

func TestProductHandler_List_ReportsFallbackSource(t *testing.T) {
	uc := &stubProductUsecase{
		listFn: func(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
			return &usecase.ProductPage{Outcome: usecase.OutcomeFallback}, nil
		},
	}
	handler := NewProductHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet, "/api/products", nil)

	require.NoError(t, handler.List(c))
	assert.Equal(t, "fallback", rec.Header().Get(headerSearchSource))
}

func TestProductHandler_Get_RejectsInvalidID(t *testing.T) {
	handler := NewProductHandler(&stubProductUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet, "/api/products/abc", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestProductHandler_Create_ValidatesInput(t *testing.T) {
	handler := NewProductHandler(&stubProductUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Missing required sku/title/category/brand.
	c, _ := newTestContext(t, http.MethodPost, "/api/products", strings.NewReader(`{"price": 10}`))

	err := handler.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestProductHandler_Create_ReturnsCreatedProduct(t *testing.T) {
	uc := &stubProductUsecase{
		createFn: func(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
			return &entity.Product{ID: 7, SKU: input.SKU, Title: input.Title}, nil
		},
	}
	handler := NewProductHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"sku":"KB-100","title":"Mechanical Keyboard","category":"peripherals","brand":"Keytron","price":129.9}`
	c, rec := newTestContext(t, http.MethodPost, "/api/products", strings.NewReader(body))

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "KB-100")
}
