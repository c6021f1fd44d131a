package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/apperr"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// Catalog serves read-only brand, category and item lookups.
type Catalog struct {
	brandStore    model.BrandStore
	categoryStore model.CategoryStore
	itemStore     model.ItemStore
	logger        *logger.Logger
}

func NewCatalog(
	brandStore model.BrandStore,
	categoryStore model.CategoryStore,
	itemStore model.ItemStore,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{
		brandStore:    brandStore,
		categoryStore: categoryStore,
		itemStore:     itemStore,
		logger:        logger,
	}
}

// GetCategory returns a category with all of its items.
func (s *Catalog) GetCategory(ctx context.Context, categoryID string) (model.Category, error) {
	if categoryID == "" {
		return model.Category{}, apperr.NewErrCategoryIDEmpty()
	}

	id, err := uuid.Parse(categoryID)
	if err != nil {
		return model.Category{}, apperr.NewErrCategoryNotFound()
	}

	category, err := s.categoryStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Category{}, apperr.NewErrCategoryNotFound()
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	category.Items, err = s.itemStore.ListByCategory(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to list items: %w", err)
	}

	return category, nil
}

func (s *Catalog) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryStore.ListOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// GetBrand returns a brand with its categories, each holding only the brand's
// items.
func (s *Catalog) GetBrand(ctx context.Context, brandID string) (model.Brand, error) {
	if brandID == "" {
		return model.Brand{}, apperr.NewErrBrandIDEmpty()
	}

	id, err := uuid.Parse(brandID)
	if err != nil {
		return model.Brand{}, apperr.NewErrBrandNotFound()
	}

	brand, err := s.brandStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Brand{}, apperr.NewErrBrandNotFound()
	}
	if err != nil {
		return model.Brand{}, fmt.Errorf("failed to get brand by id: %w", err)
	}

	brand.Categories, err = s.categoryStore.ListByBrand(ctx, id)
	if err != nil {
		return model.Brand{}, fmt.Errorf("failed to list brand categories: %w", err)
	}

	for i := range brand.Categories {
		items, err := s.itemStore.ListByCategoryAndBrand(ctx, brand.Categories[i].ID, id)
		if err != nil {
			return model.Brand{}, fmt.Errorf("failed to list brand items: %w", err)
		}
		brand.Categories[i].Items = items
	}

	return brand, nil
}

// ListBrandsByName matches brand names case-insensitively by substring.
func (s *Catalog) ListBrandsByName(ctx context.Context, name string) ([]model.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.NewErrBrandNameEmpty()
	}

	brands, err := s.brandStore.ListByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands by name: %w", err)
	}

	if err := s.attachCategories(ctx, brands); err != nil {
		return nil, err
	}

	return brands, nil
}

func (s *Catalog) ListBrandsByCategory(ctx context.Context, categoryID string) ([]model.Brand, error) {
	if categoryID == "" {
		return nil, apperr.NewErrCategoryIDEmpty()
	}

	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, apperr.NewErrCategoryNotFound()
	}

	brands, err := s.brandStore.ListByCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands by category: %w", err)
	}
	if len(brands) == 0 {
		return nil, apperr.NewErrCategoryNotFound()
	}

	if err := s.attachCategories(ctx, brands); err != nil {
		return nil, err
	}

	return brands, nil
}

func (s *Catalog) attachCategories(ctx context.Context, brands []model.Brand) error {
	for i := range brands {
		categories, err := s.categoryStore.ListByBrand(ctx, brands[i].ID)
		if err != nil {
			s.logger.Error("Catalog service: failed to list brand categories",
				"brand_id", brands[i].ID,
				"error", err.Error())
			return fmt.Errorf("failed to list brand categories: %w", err)
		}
		brands[i].Categories = categories
	}
	return nil
}
