package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/pkg/db/dbtest"
	"github.com/freshkart/freshkart-backend/pkg/db/models"
)

func seedUser(t *testing.T, gdb *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", IsActive: true}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedProduct(t *testing.T, gdb *gorm.DB, name string, priceCents, stock int, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		PriceCents:    priceCents,
		StockQuantity: stock,
		IsActive:      active,
	}
	if err := gdb.Create(product).Error; err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return product
}

func countCartRows(t *testing.T, gdb *gorm.DB, userID, productID uuid.UUID) int64 {
	t.Helper()
	var count int64
	err := gdb.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count cart rows: %v", err)
	}
	return count
}

func TestRepositoryUpsertCollapsesOntoOneRow(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	user := seedUser(t, gdb, "shopper@example.com")
	product := seedProduct(t, gdb, "Amul Milk 1L", 7500, 50, true)

	for _, qty := range []int{1, 5, 3} {
		if err := repo.Upsert(ctx, user.ID, product.ID, qty); err != nil {
			t.Fatalf("upsert qty=%d: %v", qty, err)
		}
	}

	if got := countCartRows(t, gdb, user.ID, product.ID); got != 1 {
		t.Fatalf("row count = %d, want 1", got)
	}

	rows, err := repo.ListWithProducts(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Quantity != 3 {
		t.Fatalf("expected single line with last-written qty 3, got %+v", rows)
	}
}

func TestRepositoryOwnerIsolation(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	alice := seedUser(t, gdb, "alice@example.com")
	bob := seedUser(t, gdb, "bob@example.com")
	product := seedProduct(t, gdb, "Lays Classic", 2000, 100, true)

	if err := repo.Upsert(ctx, alice.ID, product.ID, 2); err != nil {
		t.Fatalf("upsert alice: %v", err)
	}
	if err := repo.Upsert(ctx, bob.ID, product.ID, 7); err != nil {
		t.Fatalf("upsert bob: %v", err)
	}

	// Same product, different owners, two independent rows.
	aliceRows, err := repo.ListWithProducts(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list alice: %v", err)
	}
	if len(aliceRows) != 1 || aliceRows[0].Quantity != 2 {
		t.Fatalf("alice rows = %+v", aliceRows)
	}

	if err := repo.Clear(ctx, alice.ID); err != nil {
		t.Fatalf("clear alice: %v", err)
	}
	bobRows, err := repo.ListWithProducts(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list bob: %v", err)
	}
	if len(bobRows) != 1 || bobRows[0].Quantity != 7 {
		t.Fatalf("clearing alice touched bob's cart: %+v", bobRows)
	}
}

func TestRepositoryDeleteLineIdempotent(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	user := seedUser(t, gdb, "shopper@example.com")
	product := seedProduct(t, gdb, "Banana 12pc", 4000, 20, true)

	if err := repo.Upsert(ctx, user.ID, product.ID, 2); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.DeleteLine(ctx, user.ID, product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Absent line, still fine.
	if err := repo.DeleteLine(ctx, user.ID, product.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if got := countCartRows(t, gdb, user.ID, product.ID); got != 0 {
		t.Fatalf("row count = %d, want 0", got)
	}
}

func TestRepositoryListPreloadsProducts(t *testing.T) {
	gdb := dbtest.Open(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	user := seedUser(t, gdb, "shopper@example.com")
	milk := seedProduct(t, gdb, "Amul Milk 1L", 7500, 50, true)
	banana := seedProduct(t, gdb, "Banana 12pc", 4000, 20, true)

	if err := repo.Upsert(ctx, user.ID, milk.ID, 1); err != nil {
		t.Fatalf("upsert milk: %v", err)
	}
	if err := repo.Upsert(ctx, user.ID, banana.ID, 2); err != nil {
		t.Fatalf("upsert banana: %v", err)
	}

	rows, err := repo.ListWithProducts(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("line count = %d", len(rows))
	}
	for _, row := range rows {
		if row.Product == nil {
			t.Fatalf("line %s missing preloaded product", row.ProductID)
		}
		if row.Product.ID != row.ProductID {
			t.Fatalf("preload mismatch: %s vs %s", row.Product.ID, row.ProductID)
		}
	}
}
