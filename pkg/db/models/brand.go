package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the fragrance house a product belongs to.
type Brand struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex:brands_slug_key"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
