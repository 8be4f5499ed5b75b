package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents a storefront listing. Price is the current, mutable
// price; order line items snapshot it at checkout and never read it back.
// StockQuantity deliberately carries no non-negative constraint.
type Product struct {
	ID                 uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID         *uuid.UUID     `gorm:"column:category_id;type:uuid"`
	Name               string         `gorm:"column:name;not null"`
	NameHi             *string        `gorm:"column:name_hi"`
	Brand              *string        `gorm:"column:brand"`
	Unit               *string        `gorm:"column:unit"`
	PriceCents         int            `gorm:"column:price_cents;not null"`
	OriginalPriceCents *int           `gorm:"column:original_price_cents"`
	DiscountPercent    *int           `gorm:"column:discount_percent"`
	StockQuantity      int            `gorm:"column:stock_quantity;not null;default:0"`
	ImageURLs          pq.StringArray `gorm:"column:image_urls;type:text[]"`
	IsActive           bool           `gorm:"column:is_active;not null;default:true"`
	Category           *Category      `gorm:"foreignKey:CategoryID"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
