package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is embedded by every table: a UUID key plus timestamps.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" validate:"-"`
	CreatedAt time.Time `json:"created_at" validate:"-"`
	UpdatedAt time.Time `json:"updated_at" validate:"-"`
}

// BeforeCreate assigns an ID unless the caller set one.
func (b *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every migrated model, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Brand{},
		&LandingCategory{},
		&BrandLandingConfig{},
	}
}
