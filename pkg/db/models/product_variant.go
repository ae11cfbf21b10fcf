package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdmejias/perfumes-app/pkg/enums"
)

// ProductVariant is a purchasable size of a product (decant, full bottle, tester).
type ProductVariant struct {
	ID                  uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID           uuid.UUID         `gorm:"column:product_id;type:uuid;not null;index:product_variants_product_id_idx"`
	Product             *Product          `gorm:"foreignKey:ProductID"`
	Type                enums.VariantType `gorm:"column:type;type:variant_type;not null"`
	SizeML              int               `gorm:"column:size_ml;not null"`
	SKU                 string            `gorm:"column:sku;not null;uniqueIndex:product_variants_sku_key"`
	PriceCents          int               `gorm:"column:price_cents;not null"`
	CompareAtPriceCents *int              `gorm:"column:compare_at_price_cents"`
	Stock               int               `gorm:"column:stock;not null;default:0"`
	IsActive            bool              `gorm:"column:is_active;not null;default:true"`
	Discounts           []Discount        `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
