package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/pkg/db/dbtest"
	"github.com/freshkart/freshkart-backend/pkg/db/models"
	"github.com/freshkart/freshkart-backend/pkg/enums"
)

func seedUser(t *testing.T, gdb *gorm.DB, email string) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "x",
		IsActive:     true,
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestRepository_ProvisionedDefaults(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	userID := seedUser(t, gdb, "a@example.com")
	if err := repo.Create(ctx, NewDefault(userID)); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	profile, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("find profile: %v", err)
	}
	if profile.Language != enums.LanguageEnglish {
		t.Fatalf("language = %q, want en", profile.Language)
	}
	if profile.DataCollectionConsent {
		t.Fatal("consent should default to false")
	}
	if profile.FullName != nil || profile.Phone != nil {
		t.Fatalf("contact fields should start empty, got %v %v", profile.FullName, profile.Phone)
	}
}

func TestRepository_OnePerUser(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	userID := seedUser(t, gdb, "a@example.com")
	if err := repo.Create(ctx, NewDefault(userID)); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if err := repo.Create(ctx, NewDefault(userID)); err == nil {
		t.Fatal("expected unique violation on second profile for same user")
	}
}

func TestRepository_UpdateScopedToOwner(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	owner := seedUser(t, gdb, "owner@example.com")
	other := seedUser(t, gdb, "other@example.com")
	if err := repo.Create(ctx, NewDefault(owner)); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	// not provisioned for the other user, update reports zero rows
	updated, err := repo.Update(ctx, other, map[string]any{"full_name": "Mallory"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated {
		t.Fatal("update must not touch rows the caller does not own")
	}

	updated, err = repo.Update(ctx, owner, map[string]any{"full_name": "Asha", "language": "hi"})
	if err != nil {
		t.Fatalf("update owner: %v", err)
	}
	if !updated {
		t.Fatal("expected owner row to be updated")
	}

	profile, err := repo.FindByUserID(ctx, owner)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if profile.FullName == nil || *profile.FullName != "Asha" {
		t.Fatalf("full name = %v", profile.FullName)
	}
	if profile.Language != enums.LanguageHindi {
		t.Fatalf("language = %q, want hi", profile.Language)
	}
}

func TestRepository_FindScopedToOwner(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	owner := seedUser(t, gdb, "owner@example.com")
	stranger := seedUser(t, gdb, "stranger@example.com")
	if err := repo.Create(ctx, NewDefault(owner)); err != nil {
		t.Fatalf("create profile: %v", err)
	}

	if _, err := repo.FindByUserID(ctx, stranger); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found for non-owner, got %v", err)
	}
}
