package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// CatalogService defines read-only catalog operations.
type CatalogService interface {
	GetCategory(ctx context.Context, categoryID string) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetBrand(ctx context.Context, brandID string) (model.Brand, error)
	ListBrandsByName(ctx context.Context, name string) ([]model.Brand, error)
	ListBrandsByCategory(ctx context.Context, categoryID string) ([]model.Brand, error)
}

// Catalog handles HTTP endpoints for brands and categories.
type Catalog struct {
	service CatalogService
	logger  *logger.Logger
}

// NewCatalog creates a new Catalog handler.
func NewCatalog(service CatalogService, logger *logger.Logger) *Catalog {
	return &Catalog{service: service, logger: logger}
}

func (h *Catalog) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	resp := categoriesListResponse{Categories: make([]categoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Catalog) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *Catalog) GetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.service.GetBrand(r.Context(), chi.URLParam(r, "brandId"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toBrandResponse(brand))
}

func (h *Catalog) ListBrandsByName(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrandsByName(r.Context(), chi.URLParam(r, "brandName"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toBrandsList(brands))
}

func (h *Catalog) ListBrandsByCategory(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrandsByCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toBrandsList(brands))
}

func toBrandsList(brands []model.Brand) brandsListResponse {
	resp := brandsListResponse{Brands: make([]brandResponse, 0, len(brands))}
	for _, b := range brands {
		resp.Brands = append(resp.Brands, toBrandResponse(b))
	}
	return resp
}
