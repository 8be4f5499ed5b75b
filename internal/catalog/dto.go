package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/freshkart/freshkart-backend/pkg/db/models"
	"github.com/freshkart/freshkart-backend/pkg/pagination"
)

// CategoryDTO is the public shape of a catalog category.
type CategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	NameEn    string    `json:"name_en"`
	NameHi    string    `json:"name_hi"`
	Icon      *string   `json:"icon,omitempty"`
	SortOrder int       `json:"sort_order"`
}

// ProductDTO is the public shape of an active listing.
type ProductDTO struct {
	ID                 uuid.UUID  `json:"id"`
	CategoryID         *uuid.UUID `json:"category_id,omitempty"`
	Name               string     `json:"name"`
	NameHi             *string    `json:"name_hi,omitempty"`
	Brand              *string    `json:"brand,omitempty"`
	Unit               *string    `json:"unit,omitempty"`
	PriceCents         int        `json:"price_cents"`
	OriginalPriceCents *int       `json:"original_price_cents,omitempty"`
	DiscountPercent    *int       `json:"discount_percent,omitempty"`
	StockQuantity      int        `json:"stock_quantity"`
	ImageURLs          []string   `json:"image_urls"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ProductListFilters describe the browse endpoint's filter knobs.
type ProductListFilters struct {
	CategoryID *uuid.UUID
	Query      string
}

// ListProductsInput captures the inputs needed to paginate/filter the catalog.
type ListProductsInput struct {
	Filters    ProductListFilters
	Pagination pagination.Params
}

// ProductListResult is one page of listings plus the continuation cursor.
type ProductListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func categoryFromModel(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID,
		NameEn:    c.NameEn,
		NameHi:    c.NameHi,
		Icon:      c.Icon,
		SortOrder: c.SortOrder,
	}
}

func productFromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	images := make([]string, 0, len(p.ImageURLs))
	images = append(images, p.ImageURLs...)

	return &ProductDTO{
		ID:                 p.ID,
		CategoryID:         p.CategoryID,
		Name:               p.Name,
		NameHi:             p.NameHi,
		Brand:              p.Brand,
		Unit:               p.Unit,
		PriceCents:         p.PriceCents,
		OriginalPriceCents: p.OriginalPriceCents,
		DiscountPercent:    p.DiscountPercent,
		StockQuantity:      p.StockQuantity,
		ImageURLs:          images,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
