package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdmejias/perfumes-app/pkg/enums"
)

// Category groups products for storefront navigation (men, decants, offers...).
type Category struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string              `gorm:"column:name;not null"`
	Slug      string              `gorm:"column:slug;not null;uniqueIndex:categories_slug_key"`
	Type      *enums.CategoryType `gorm:"column:type;type:category_type"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
}
