package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/pkg/db/models"
	"github.com/freshkart/freshkart-backend/pkg/pagination"
)

type productListQuery struct {
	Filters ProductListFilters
	Cursor  *pagination.Cursor
	Limit   int
}

// Repository exposes read-only catalog persistence. The storefront never
// writes categories or products; back-office tooling owns those rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActiveCategories returns the visible categories in display order.
func (r *Repository) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("name_en ASC").
		Find(&rows).
		Error
	return rows, err
}

// ListActiveProducts returns active listings matching the filters, newest
// first, keyed by a (created_at, id) cursor.
func (r *Repository) ListActiveProducts(ctx context.Context, query productListQuery) ([]models.Product, error) {
	qb := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true)

	if query.Filters.CategoryID != nil {
		qb = qb.Where("category_id = ?", *query.Filters.CategoryID)
	}
	if search := strings.TrimSpace(query.Filters.Query); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(name) LIKE ? OR LOWER(COALESCE(brand, '')) LIKE ?)", pattern, pattern)
	}
	if query.Cursor != nil {
		qb = qb.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			query.Cursor.CreatedAt, query.Cursor.CreatedAt, query.Cursor.ID,
		)
	}

	var rows []models.Product
	err := qb.Order("created_at DESC").Order("id DESC").Limit(query.Limit).Find(&rows).Error
	return rows, err
}

// FindActiveProduct loads a single visible listing. Inactive rows surface as
// gorm.ErrRecordNotFound, same as missing ones.
func (r *Repository) FindActiveProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&product, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}
