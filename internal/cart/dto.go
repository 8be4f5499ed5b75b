package cart

import (
	"github.com/google/uuid"

	"github.com/freshkart/freshkart-backend/pkg/db/models"
)

// SetQuantityRequest is the payload for the cart upsert endpoint. Quantity
// zero (or below) removes the line.
type SetQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0,lte=999"`
}

// LineProduct is the minimal product projection rendered inside a cart line.
type LineProduct struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	NameHi        *string   `json:"name_hi,omitempty"`
	Unit          *string   `json:"unit,omitempty"`
	PriceCents    int       `json:"price_cents"`
	ImageURLs     []string  `json:"image_urls"`
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
}

// LineDTO is one cart line priced at the product's current price.
type LineDTO struct {
	ProductID      uuid.UUID    `json:"product_id"`
	Quantity       int          `json:"quantity"`
	UnitPriceCents int          `json:"unit_price_cents"`
	LineTotalCents int          `json:"line_total_cents"`
	Product        *LineProduct `json:"product,omitempty"`
}

// CartDTO is the caller's full cart plus the running subtotal.
type CartDTO struct {
	Items         []LineDTO `json:"items"`
	ItemCount     int       `json:"item_count"`
	SubtotalCents int       `json:"subtotal_cents"`
}

func lineProductFromModel(p *models.Product) *LineProduct {
	if p == nil {
		return nil
	}
	images := make([]string, 0, len(p.ImageURLs))
	images = append(images, p.ImageURLs...)

	return &LineProduct{
		ID:            p.ID,
		Name:          p.Name,
		NameHi:        p.NameHi,
		Unit:          p.Unit,
		PriceCents:    p.PriceCents,
		ImageURLs:     images,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
	}
}
