package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdmejias/perfumes-app/pkg/enums"
)

// Product is a fragrance listing. Prices live on its variants.
type Product struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug          string              `gorm:"column:slug;not null;uniqueIndex:products_slug_key"`
	Name          string              `gorm:"column:name;not null"`
	Description   *string             `gorm:"column:description"`
	Gender        enums.Gender        `gorm:"column:gender;type:gender;not null"`
	Concentration enums.Concentration `gorm:"column:concentration;type:concentration;not null"`
	TopNotes      *string             `gorm:"column:top_notes"`
	MiddleNotes   *string             `gorm:"column:middle_notes"`
	BaseNotes     *string             `gorm:"column:base_notes"`
	IsActive      bool                `gorm:"column:is_active;not null;default:true"`
	BrandID       uuid.UUID           `gorm:"column:brand_id;type:uuid;not null"`
	Brand         Brand               `gorm:"foreignKey:BrandID"`
	Categories    []Category          `gorm:"many2many:product_categories;joinForeignKey:ProductID;joinReferences:CategoryID"`
	Images        []ProductImage      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants      []ProductVariant    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Discounts     []Discount          `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
