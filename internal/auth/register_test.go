package auth

import (
	"context"
	"testing"

	"github.com/freshkart/freshkart-backend/internal/profiles"
	"github.com/freshkart/freshkart-backend/internal/users"
	"github.com/freshkart/freshkart-backend/pkg/config"
	"github.com/freshkart/freshkart-backend/pkg/db"
	"github.com/freshkart/freshkart-backend/pkg/db/dbtest"
	pkgerrors "github.com/freshkart/freshkart-backend/pkg/errors"
	"github.com/freshkart/freshkart-backend/pkg/security"
)

func newRegisterService(t *testing.T) (RegisterService, *db.Client) {
	t.Helper()
	client := db.NewWithConn(dbtest.Open(t))
	svc, err := NewRegisterService(RegisterServiceParams{
		DB:             client,
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("new register service: %v", err)
	}
	return svc, client
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	svc, client := newRegisterService(t)
	ctx := context.Background()

	name := "Asha Verma"
	dto, err := svc.Register(ctx, RegisterRequest{
		Email:    "Asha@Example.com",
		Password: "super-secret",
		FullName: &name,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if dto.Email != "asha@example.com" {
		t.Fatalf("email not normalized: %q", dto.Email)
	}
	if !dto.IsActive {
		t.Fatal("new users should be active")
	}

	user, err := users.NewRepository(client.DB()).FindByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	valid, err := security.VerifyPassword("super-secret", user.PasswordHash)
	if err != nil || !valid {
		t.Fatalf("stored hash does not verify: valid=%v err=%v", valid, err)
	}

	profile, err := profiles.NewRepository(client.DB()).FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find profile: %v", err)
	}
	if profile.FullName == nil || *profile.FullName != "Asha Verma" {
		t.Fatalf("profile full name = %v", profile.FullName)
	}
	if string(profile.Language) != "en" {
		t.Fatalf("default language = %q", profile.Language)
	}
	if profile.DataCollectionConsent {
		t.Fatal("consent must default to false")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newRegisterService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "super-secret"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterRequest{Email: "DUP@example.com", Password: "other-secret"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestRegisterRollsBackUserWhenProfileInsertFails(t *testing.T) {
	svc, client := newRegisterService(t)
	ctx := context.Background()

	// Dropping profiles forces the second insert in the transaction to
	// fail, which must take the user row down with it.
	if err := client.DB().Exec(`DROP TABLE profiles`).Error; err != nil {
		t.Fatalf("drop profiles: %v", err)
	}

	_, err := svc.Register(ctx, RegisterRequest{Email: "ghost@example.com", Password: "super-secret"})
	if err == nil {
		t.Fatal("expected registration to fail")
	}

	var count int64
	if err := client.DB().Table("users").Where("email = ?", "ghost@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("user row leaked past rollback: count=%d", count)
	}
}
