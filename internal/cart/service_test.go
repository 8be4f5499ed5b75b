package cart

import (
	"context"
	"testing"

	"github.com/freshkart/freshkart-backend/internal/catalog"
	"github.com/freshkart/freshkart-backend/pkg/db/dbtest"
	pkgerrors "github.com/freshkart/freshkart-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newCartService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	gdb := dbtest.Open(t)
	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(gdb),
		Products: catalog.NewRepository(gdb),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, gdb
}

func TestServiceSetQuantityAndSubtotal(t *testing.T) {
	svc, gdb := newCartService(t)
	ctx := context.Background()

	user := seedUser(t, gdb, "shopper@example.com")
	banana := seedProduct(t, gdb, "Banana 12pc", 4000, 20, true)
	milk := seedProduct(t, gdb, "Amul Milk 1L", 7500, 50, true)

	if _, err := svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: banana.ID, Quantity: 2}); err != nil {
		t.Fatalf("set banana: %v", err)
	}
	dto, err := svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: milk.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("set milk: %v", err)
	}

	if dto.ItemCount != 2 {
		t.Fatalf("item count = %d", dto.ItemCount)
	}
	if dto.SubtotalCents != 15500 {
		t.Fatalf("subtotal = %d, want 15500", dto.SubtotalCents)
	}

	// Replacing, not incrementing.
	dto, err = svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: banana.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("replace banana qty: %v", err)
	}
	if dto.SubtotalCents != 11500 {
		t.Fatalf("subtotal after replace = %d, want 11500", dto.SubtotalCents)
	}
}

func TestServiceSetQuantityZeroRemovesLine(t *testing.T) {
	svc, gdb := newCartService(t)
	ctx := context.Background()

	user := seedUser(t, gdb, "shopper@example.com")
	product := seedProduct(t, gdb, "Banana 12pc", 4000, 20, true)

	if _, err := svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("set: %v", err)
	}

	dto, err := svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: product.ID, Quantity: 0})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if dto.ItemCount != 0 || dto.SubtotalCents != 0 {
		t.Fatalf("cart not empty after removal: %+v", dto)
	}

	// Removing an absent line succeeds.
	if _, err := svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: product.ID, Quantity: 0}); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestServiceSetQuantityRejectsInactiveProduct(t *testing.T) {
	svc, gdb := newCartService(t)
	ctx := context.Background()

	user := seedUser(t, gdb, "shopper@example.com")
	inactive := seedProduct(t, gdb, "Ghost", 1000, 10, false)

	for _, productID := range []uuid.UUID{inactive.ID, uuid.New()} {
		_, err := svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: productID, Quantity: 1})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
			t.Fatalf("product %s: expected NOT_FOUND, got %v", productID, err)
		}
	}
}

func TestServiceSetQuantityHonorsStockCeiling(t *testing.T) {
	svc, gdb := newCartService(t)
	ctx := context.Background()

	user := seedUser(t, gdb, "shopper@example.com")
	product := seedProduct(t, gdb, "Banana 12pc", 4000, 3, true)

	_, err := svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: product.ID, Quantity: 4})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}

	if _, err := svc.SetQuantity(ctx, user.ID, SetQuantityRequest{ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("qty at ceiling should pass: %v", err)
	}
}

func TestServiceClearEmptiesOnlyOwnCart(t *testing.T) {
	svc, gdb := newCartService(t)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice@example.com")
	bob := seedUser(t, gdb, "bob@example.com")
	product := seedProduct(t, gdb, "Lays Classic", 2000, 100, true)

	if _, err := svc.SetQuantity(ctx, alice.ID, SetQuantityRequest{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("set alice: %v", err)
	}
	if _, err := svc.SetQuantity(ctx, bob.ID, SetQuantityRequest{ProductID: product.ID, Quantity: 5}); err != nil {
		t.Fatalf("set bob: %v", err)
	}

	if err := svc.Clear(ctx, alice.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	aliceCart, err := svc.GetCart(ctx, alice.ID)
	if err != nil {
		t.Fatalf("get alice cart: %v", err)
	}
	if aliceCart.ItemCount != 0 {
		t.Fatalf("alice cart not empty: %+v", aliceCart)
	}

	bobCart, err := svc.GetCart(ctx, bob.ID)
	if err != nil {
		t.Fatalf("get bob cart: %v", err)
	}
	if bobCart.ItemCount != 1 || bobCart.SubtotalCents != 10000 {
		t.Fatalf("bob cart affected: %+v", bobCart)
	}
}
