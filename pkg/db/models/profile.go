package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/freshkart/freshkart-backend/pkg/enums"
)

// Profile is the one-to-one shopper profile provisioned inside the
// registration transaction. user_id doubles as the primary key so the
// one-per-user constraint lives in the schema, not in application checks.
type Profile struct {
	UserID                uuid.UUID      `gorm:"column:user_id;type:uuid;primaryKey"`
	FullName              *string        `gorm:"column:full_name"`
	Phone                 *string        `gorm:"column:phone"`
	Language              enums.Language `gorm:"column:language;type:text;not null;default:'en'"`
	DataCollectionConsent bool           `gorm:"column:data_collection_consent;not null;default:false"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
