package profiles

import (
	"time"

	"github.com/google/uuid"

	"github.com/freshkart/freshkart-backend/pkg/db/models"
	"github.com/freshkart/freshkart-backend/pkg/enums"
)

// ProfileDTO is the transport shape of a shopper profile.
type ProfileDTO struct {
	UserID                uuid.UUID `json:"user_id"`
	FullName              *string   `json:"full_name,omitempty"`
	Phone                 *string   `json:"phone,omitempty"`
	Language              string    `json:"language"`
	DataCollectionConsent bool      `json:"data_collection_consent"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// UpdateProfileRequest carries the owner-editable fields. Pointers
// distinguish "not sent" from "set to empty".
type UpdateProfileRequest struct {
	FullName              *string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Phone                 *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Language              *string `json:"language,omitempty" validate:"omitempty,oneof=en hi"`
	DataCollectionConsent *bool   `json:"data_collection_consent,omitempty"`
}

func FromModel(p *models.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		UserID:                p.UserID,
		FullName:              p.FullName,
		Phone:                 p.Phone,
		Language:              string(p.Language),
		DataCollectionConsent: p.DataCollectionConsent,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// NewDefault returns the profile row provisioned at registration:
// empty contact fields, English, consent off.
func NewDefault(userID uuid.UUID) *models.Profile {
	return &models.Profile{
		UserID:   userID,
		Language: enums.LanguageEnglish,
	}
}
