// Package repository reads landing page data from Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/brandslanding/internal/brandslanding"
	"github.com/example/brandslanding/internal/models"
)

// ErrBrandNotFound is returned when no brand has the requested URL key.
var ErrBrandNotFound = errors.New("brand not found")

const categoryOrder = "position asc, created_at asc"

// LandingRepository loads brand landing data with GORM.
type LandingRepository struct {
	db *gorm.DB
}

// NewLandingRepository constructs LandingRepository.
func NewLandingRepository(db *gorm.DB) *LandingRepository {
	return &LandingRepository{db: db}
}

// LoadLanding returns the brand, its page config and its two-level category
// tree in display order.
func (r *LandingRepository) LoadLanding(ctx context.Context, brandKey string) (*brandslanding.Data, error) {
	db := r.db.WithContext(ctx)

	var brand models.Brand
	if err := db.Where("url_key = ?", brandKey).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("query brand: %w", err)
	}

	var configs []models.BrandLandingConfig
	if err := db.Where("brand_id = ?", brand.ID).Limit(1).Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("query landing config: %w", err)
	}
	var cfgRow *models.BrandLandingConfig
	if len(configs) > 0 {
		cfgRow = &configs[0]
	}

	var rows []models.LandingCategory
	err := db.Where("brand_id = ? AND parent_id IS NULL", brand.ID).
		Order(categoryOrder).
		Preload("Children", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(categoryOrder)
		}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query landing categories: %w", err)
	}

	categories := make([]brandslanding.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.ToDomain())
	}

	config, enabled := cfgRow.ToDomain()

	return &brandslanding.Data{
		Brand:      brand.ToDomain(),
		Categories: categories,
		Config:     config,
		Enabled:    enabled,
	}, nil
}
