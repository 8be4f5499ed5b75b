package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem captures a frozen snapshot of one cart line at checkout time.
// UnitPriceCents and TotalPriceCents are the authoritative historical record;
// they must never be re-derived from the live product row.
type OrderItem struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID         uuid.UUID  `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID       *uuid.UUID `gorm:"column:product_id;type:uuid"`
	ProductName     string     `gorm:"column:product_name;not null"`
	Quantity        int        `gorm:"column:quantity;not null;check:quantity > 0"`
	UnitPriceCents  int        `gorm:"column:unit_price_cents;not null"`
	TotalPriceCents int        `gorm:"column:total_price_cents;not null"`
	Product         *Product   `gorm:"foreignKey:ProductID"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
}
