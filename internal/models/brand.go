package models

import "github.com/google/uuid"

// Brand is a manufacturer with a landing page. URLKey is the key used in
// landing page URLs; Value is the manufacturer filter value in catalog links.
type Brand struct {
	BaseModel
	URLKey        string              `gorm:"uniqueIndex;not null" json:"url_key" validate:"required,max=128"`
	Value         string              `gorm:"not null" json:"value" validate:"required,max=128"`
	DisplayName   string              `gorm:"not null" json:"display_name" validate:"required,max=255"`
	Image         string              `json:"image" validate:"omitempty,max=1024"`
	LandingConfig *BrandLandingConfig `json:"landing_config,omitempty" validate:"-"`
	Categories    []LandingCategory   `json:"categories,omitempty" validate:"-"`
}

// LandingCategory is a category shown on a brand's landing page. Top-level
// rows have no parent; children point at their top-level category.
type LandingCategory struct {
	BaseModel
	BrandID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"brand_id" validate:"required"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id"`
	EntityID int64      `gorm:"not null" json:"entity_id" validate:"gte=0"`
	Name     string     `gorm:"not null" json:"name" validate:"required,max=255"`
	URLKey   string     `gorm:"not null" json:"url_key" validate:"required,max=255"`
	// IncludeInLanding is "0" or "1"; empty means shown.
	IncludeInLanding string            `gorm:"size:1" json:"include_in_landing" validate:"omitempty,oneof=0 1"`
	Position         int               `gorm:"not null;default:0" json:"position"`
	Children         []LandingCategory `gorm:"foreignKey:ParentID" json:"children,omitempty" validate:"-"`
}

// BrandLandingConfig stores theming and content overrides for one brand.
type BrandLandingConfig struct {
	BaseModel
	BrandID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"brand_id" validate:"required"`
	// Enabled is stored as sent. A brand without a config row is enabled.
	Enabled          bool   `gorm:"not null" json:"enabled"`
	Color            string `json:"color" validate:"omitempty,max=32"`
	BannerName       string `json:"banner_name" validate:"omitempty,max=255"`
	CustomPageCSS    string `gorm:"type:text" json:"custom_page_css"`
	CustomBannerHTML string `gorm:"type:text" json:"custom_banner_html"`
}
