package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a read-only reference entity maintained by back-office tooling.
type Category struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	NameEn    string    `gorm:"column:name_en;not null"`
	NameHi    string    `gorm:"column:name_hi;not null"`
	Icon      *string   `gorm:"column:icon"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
