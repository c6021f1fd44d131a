package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/storefront-server/internal/apperr"
	"github.com/dtroode/storefront-server/internal/mocks"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/testutil"
)

var (
	brandID    = uuid.MustParse("1d2e3f40-5a6b-4c7d-8e9f-a0b1c2d3e4f5")
	categoryID = uuid.MustParse("2e3f4051-6b7c-4d8e-9fa0-b1c2d3e4f5a6")
	itemID     = uuid.MustParse("3f405162-7c8d-4e9f-a0b1-c2d3e4f5a6b7")
)

func newCatalogHandler(t *testing.T) (*Catalog, *mocks.CatalogService) {
	svc := mocks.NewCatalogService(t)
	return NewCatalog(svc, testutil.MakeNoopLogger()), svc
}

func TestCatalog_ListCategories(t *testing.T) {
	t.Parallel()

	h, svc := newCatalogHandler(t)
	svc.On("ListCategories", mock.Anything).Return([]model.Category{
		{ID: categoryID, Name: "Beverages"},
	}, nil)

	rec := httptest.NewRecorder()
	h.ListCategories(rec, httptest.NewRequest(http.MethodGet, "/category", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories":[{"id":"`+categoryID.String()+`","category_name":"Beverages"}]}`, rec.Body.String())
}

func TestCatalog_GetCategory(t *testing.T) {
	t.Parallel()

	t.Run("with items", func(t *testing.T) {
		t.Parallel()

		h, svc := newCatalogHandler(t)
		svc.On("GetCategory", mock.Anything, categoryID.String()).Return(model.Category{
			ID:    categoryID,
			Name:  "Beverages",
			Items: []model.Item{{ID: itemID, Name: "Tea", Price: 120, BrandID: brandID}},
		}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/category/"+categoryID.String(), nil), "categoryId", categoryID.String())
		rec := httptest.NewRecorder()
		h.GetCategory(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		items := body["items"].([]any)
		assert.Len(t, items, 1)
		assert.Equal(t, "Tea", items[0].(map[string]any)["item_name"])
		assert.Equal(t, float64(120), items[0].(map[string]any)["price"])
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		h, svc := newCatalogHandler(t)
		svc.On("GetCategory", mock.Anything, "nope").Return(model.Category{}, apperr.NewErrCategoryNotFound())

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/category/nope", nil), "categoryId", "nope")
		rec := httptest.NewRecorder()
		h.GetCategory(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CNF-002", decodeBody(t, rec)["code"])
	})
}

func TestCatalog_GetBrand(t *testing.T) {
	t.Parallel()

	h, svc := newCatalogHandler(t)
	svc.On("GetBrand", mock.Anything, brandID.String()).Return(model.Brand{
		ID:                   brandID,
		Name:                 "Chai Co",
		Address:              model.Address{City: "Pune", State: model.State{Name: "Maharashtra"}},
		CustomerRating:       4.5,
		NumberCustomersRated: 10,
		Categories: []model.Category{
			{ID: categoryID, Name: "Beverages", Items: []model.Item{{ID: itemID, Name: "Tea", BrandID: brandID}}},
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/brand/"+brandID.String(), nil), "brandId", brandID.String())
	rec := httptest.NewRecorder()
	h.GetBrand(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Chai Co", body["brand_name"])
	assert.Equal(t, 4.5, body["customer_rating"])
	assert.Equal(t, float64(10), body["number_customers_rated"])
	assert.Equal(t, "Pune", body["address"].(map[string]any)["city"])
	assert.Len(t, body["categories"].([]any), 1)
}

func TestCatalog_ListBrands(t *testing.T) {
	t.Parallel()

	t.Run("by name", func(t *testing.T) {
		t.Parallel()

		h, svc := newCatalogHandler(t)
		svc.On("ListBrandsByName", mock.Anything, "chai").Return([]model.Brand{{ID: brandID, Name: "Chai Co"}}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/brand/name/chai", nil), "brandName", "chai")
		rec := httptest.NewRecorder()
		h.ListBrandsByName(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		brands := decodeBody(t, rec)["brands"].([]any)
		assert.Len(t, brands, 1)
		assert.Equal(t, []any{}, brands[0].(map[string]any)["categories"])
	})

	t.Run("by category", func(t *testing.T) {
		t.Parallel()

		h, svc := newCatalogHandler(t)
		svc.On("ListBrandsByCategory", mock.Anything, categoryID.String()).Return([]model.Brand{{ID: brandID}}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/brand/category/"+categoryID.String(), nil), "categoryId", categoryID.String())
		rec := httptest.NewRecorder()
		h.ListBrandsByCategory(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["brands"].([]any), 1)
	})

	t.Run("infrastructure failure", func(t *testing.T) {
		t.Parallel()

		h, svc := newCatalogHandler(t)
		svc.On("ListBrandsByName", mock.Anything, "x").Return(nil, errors.New("db down"))

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/brand/name/x", nil), "brandName", "x")
		rec := httptest.NewRecorder()
		h.ListBrandsByName(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL", decodeBody(t, rec)["code"])
	})
}
