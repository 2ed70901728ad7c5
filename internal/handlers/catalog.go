package handlers

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brandslanding/internal/models"
	"github.com/example/brandslanding/internal/utils"
)

// Invalidator drops cached landing data for a brand key.
type Invalidator interface {
	Invalidate(ctx context.Context, brandKey string)
}

// CatalogHandler manages brands, their landing categories and landing
// configs.
type CatalogHandler struct {
	db       *gorm.DB
	validate *validator.Validate
	cache    Invalidator
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(db *gorm.DB, cache Invalidator) *CatalogHandler {
	return &CatalogHandler{db: db, validate: validator.New(), cache: cache}
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}

func (h *CatalogHandler) check(payload interface{}) error {
	if err := h.validate.Struct(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// invalidateBrand drops the cache entry of the brand with the given ID.
func (h *CatalogHandler) invalidateBrand(ctx context.Context, brandID uuid.UUID) {
	if h.cache == nil {
		return
	}
	var brand models.Brand
	if err := h.db.WithContext(ctx).Select("url_key").First(&brand, "id = ?", brandID).Error; err != nil {
		return
	}
	h.cache.Invalidate(ctx, brand.URLKey)
}

// ListBrands returns paginated brands.
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	var items []models.Brand
	var total int64

	db := h.db.WithContext(c.UserContext())
	if err := db.Model(&models.Brand{}).Count(&total).Error; err != nil {
		return err
	}

	if err := db.Preload("LandingConfig").Limit(pg.Limit).Offset(pg.Offset).
		Order("display_name asc").Find(&items).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": items, "pagination": pg.Meta(total)})
}

// GetBrand returns one brand with its config and category tree.
func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var item models.Brand
	err = h.db.WithContext(c.UserContext()).
		Preload("LandingConfig").
		Preload("Categories", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("parent_id IS NULL").Order("position asc, created_at asc")
		}).
		Preload("Categories.Children", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc, created_at asc")
		}).
		First(&item, "id = ?", id).Error
	if err != nil {
		return notFoundOr(err, "brand not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// CreateBrand persists a new brand.
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var payload models.Brand
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.ID = uuid.Nil
	payload.LandingConfig = nil
	payload.Categories = nil
	if err := h.check(&payload); err != nil {
		return err
	}

	if err := h.db.WithContext(c.UserContext()).Create(&payload).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateBrand updates an existing brand.
func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	db := h.db.WithContext(c.UserContext())
	var item models.Brand
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		return notFoundOr(err, "brand not found")
	}
	oldKey := item.URLKey

	var payload models.Brand
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	item.URLKey = payload.URLKey
	item.Value = payload.Value
	item.DisplayName = payload.DisplayName
	item.Image = payload.Image
	if err := h.check(&item); err != nil {
		return err
	}

	if err := db.Save(&item).Error; err != nil {
		return err
	}

	if h.cache != nil {
		h.cache.Invalidate(c.UserContext(), oldKey)
		h.cache.Invalidate(c.UserContext(), item.URLKey)
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// DeleteBrand removes a brand together with its categories and config.
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var item models.Brand
	err = h.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return notFoundOr(err, "brand not found")
		}
		if err := tx.Where("brand_id = ?", id).Delete(&models.LandingCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("brand_id = ?", id).Delete(&models.BrandLandingConfig{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return err
	}

	if h.cache != nil {
		h.cache.Invalidate(c.UserContext(), item.URLKey)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCategory adds a category to a brand's landing page. A parent_id
// makes it a child of a top-level category of the same brand.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	brandID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var payload models.LandingCategory
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.ID = uuid.Nil
	payload.BrandID = brandID
	payload.Children = nil
	if err := h.check(&payload); err != nil {
		return err
	}

	db := h.db.WithContext(c.UserContext())
	var brand models.Brand
	if err := db.First(&brand, "id = ?", brandID).Error; err != nil {
		return notFoundOr(err, "brand not found")
	}
	if err := h.checkParent(db, brandID, payload.ParentID); err != nil {
		return err
	}

	if err := db.Create(&payload).Error; err != nil {
		return err
	}

	if h.cache != nil {
		h.cache.Invalidate(c.UserContext(), brand.URLKey)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// checkParent keeps the tree two levels deep and inside one brand.
func (h *CatalogHandler) checkParent(db *gorm.DB, brandID uuid.UUID, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}
	var parent models.LandingCategory
	if err := db.First(&parent, "id = ?", *parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "parent category not found")
		}
		return err
	}
	if parent.BrandID != brandID {
		return fiber.NewError(fiber.StatusBadRequest, "parent category belongs to another brand")
	}
	if parent.ParentID != nil {
		return fiber.NewError(fiber.StatusBadRequest, "categories are limited to two levels")
	}
	return nil
}

// UpdateCategory updates a landing category.
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	db := h.db.WithContext(c.UserContext())
	var item models.LandingCategory
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		return notFoundOr(err, "category not found")
	}

	var payload models.LandingCategory
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	item.Name = payload.Name
	item.URLKey = payload.URLKey
	item.EntityID = payload.EntityID
	item.IncludeInLanding = payload.IncludeInLanding
	item.Position = payload.Position
	if err := h.check(&item); err != nil {
		return err
	}

	if err := db.Save(&item).Error; err != nil {
		return err
	}

	h.invalidateBrand(c.UserContext(), item.BrandID)
	return c.JSON(fiber.Map{"success": true, "data": item})
}

// DeleteCategory removes a category and its children.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var item models.LandingCategory
	err = h.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return notFoundOr(err, "category not found")
		}
		if err := tx.Where("parent_id = ?", id).Delete(&models.LandingCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return err
	}

	h.invalidateBrand(c.UserContext(), item.BrandID)
	return c.SendStatus(fiber.StatusNoContent)
}

// GetLandingConfig returns a brand's landing config, or defaults when none
// was saved yet.
func (h *CatalogHandler) GetLandingConfig(c *fiber.Ctx) error {
	brandID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var cfg models.BrandLandingConfig
	err = h.db.WithContext(c.UserContext()).First(&cfg, "brand_id = ?", brandID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(fiber.Map{"success": true, "data": models.BrandLandingConfig{BrandID: brandID, Enabled: true}})
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": cfg})
}

// UpsertLandingConfig creates or replaces a brand's landing config.
func (h *CatalogHandler) UpsertLandingConfig(c *fiber.Ctx) error {
	brandID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input models.BrandLandingConfig
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	input.BrandID = brandID
	if err := h.check(&input); err != nil {
		return err
	}

	db := h.db.WithContext(c.UserContext())
	var brand models.Brand
	if err := db.First(&brand, "id = ?", brandID).Error; err != nil {
		return notFoundOr(err, "brand not found")
	}

	var existing models.BrandLandingConfig
	result := db.First(&existing, "brand_id = ?", brandID)
	switch {
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		input.ID = uuid.Nil
		if err := db.Create(&input).Error; err != nil {
			return err
		}
		existing = input
	case result.Error != nil:
		return result.Error
	default:
		// Copy fields explicitly so created_at is never overwritten by the
		// client payload.
		existing.Enabled = input.Enabled
		existing.Color = input.Color
		existing.BannerName = input.BannerName
		existing.CustomPageCSS = input.CustomPageCSS
		existing.CustomBannerHTML = input.CustomBannerHTML
		if err := db.Save(&existing).Error; err != nil {
			return err
		}
	}

	if h.cache != nil {
		h.cache.Invalidate(c.UserContext(), brand.URLKey)
	}
	return c.JSON(fiber.Map{"success": true, "data": existing})
}
