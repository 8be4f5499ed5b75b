package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freshkart/freshkart-backend/pkg/db/models"
)

// Repository manages a shopper's persistent cart lines. Every method takes
// the owning user ID and folds it into the query; there is no unscoped path.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repository to the provided DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Upsert writes the quantity for one (user, product) pair in a single
// statement. The unique index on the pair makes concurrent calls collapse
// onto one row instead of racing a read-then-write.
func (r *Repository) Upsert(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   quantity,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(&item).Error
}

// DeleteLine removes one line if present. Deleting an absent line is a no-op.
func (r *Repository) DeleteLine(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

// Clear removes every line owned by the user.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

// ListForCheckout loads the user's lines with products while holding row
// locks for the rest of the transaction. sqlite has no FOR UPDATE; its
// single-writer lock covers the same ground there.
func (r *Repository) ListForCheckout(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	qb := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		qb = qb.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "cart_items"}})
	}

	var rows []models.CartItem
	err := qb.
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).
		Error
	return rows, err
}

// ListWithProducts loads the user's lines with their product rows, oldest
// line first so the cart renders in the order items were added.
func (r *Repository) ListWithProducts(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).
		Error
	return rows, err
}
