package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/pkg/db/models"
	"github.com/freshkart/freshkart-backend/pkg/enums"
	pkgerrors "github.com/freshkart/freshkart-backend/pkg/errors"
)

// Service defines the behavior needed by the profile controller.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileDTO, error)
}

type profileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, changes map[string]any) (bool, error)
}

type service struct {
	repo profileRepository
}

// ServiceParams bundles the dependencies required to build a profile service.
type ServiceParams struct {
	Repo profileRepository
}

// NewService constructs a profile service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	return FromModel(profile), nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileDTO, error) {
	changes := map[string]any{}
	if req.FullName != nil {
		changes["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		changes["phone"] = *req.Phone
	}
	if req.Language != nil {
		lang, err := enums.ParseLanguage(*req.Language)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "language must be en or hi")
		}
		changes["language"] = string(lang)
	}
	if req.DataCollectionConsent != nil {
		changes["data_collection_consent"] = *req.DataCollectionConsent
	}

	if len(changes) > 0 {
		updated, err := s.repo.Update(ctx, userID, changes)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
		}
		if !updated {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
	}

	return s.Get(ctx, userID)
}
