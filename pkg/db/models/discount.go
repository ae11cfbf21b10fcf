package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdmejias/perfumes-app/pkg/enums"
)

// Discount belongs to exactly one of a product or a variant. A nil StartAt or
// EndAt leaves that side of the window open.
type Discount struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string             `gorm:"column:name;not null"`
	Kind      enums.DiscountKind `gorm:"column:kind;type:discount_kind;not null"`
	Value     decimal.Decimal    `gorm:"column:value;type:numeric(10,2);not null"`
	IsActive  bool               `gorm:"column:is_active;not null;default:true"`
	StartAt   *time.Time         `gorm:"column:start_at"`
	EndAt     *time.Time         `gorm:"column:end_at"`
	ProductID *uuid.UUID         `gorm:"column:product_id;type:uuid;index:discounts_product_id_idx"`
	VariantID *uuid.UUID         `gorm:"column:variant_id;type:uuid;index:discounts_variant_id_idx"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
}
