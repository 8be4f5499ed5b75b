package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/freshkart/freshkart-backend/pkg/db/models"
	"github.com/freshkart/freshkart-backend/pkg/enums"
	"github.com/freshkart/freshkart-backend/pkg/pagination"
)

// ItemDTO renders one frozen order line. Prices come from the snapshot
// columns, never from the live product.
type ItemDTO struct {
	ID              uuid.UUID  `json:"id"`
	ProductID       *uuid.UUID `json:"product_id,omitempty"`
	ProductName     string     `json:"product_name"`
	Quantity        int        `json:"quantity"`
	UnitPriceCents  int        `json:"unit_price_cents"`
	TotalPriceCents int        `json:"total_price_cents"`
	ImageURL        *string    `json:"image_url,omitempty"`
}

// OrderDTO is the owner-scoped order view with its nested items.
type OrderDTO struct {
	ID               uuid.UUID           `json:"id"`
	Status           enums.OrderStatus   `json:"status"`
	PaymentMethod    enums.PaymentMethod `json:"payment_method"`
	SubtotalCents    int                 `json:"subtotal_cents"`
	DeliveryFeeCents int                 `json:"delivery_fee_cents"`
	TotalCents       int                 `json:"total_cents"`
	DeliveryAddress  string              `json:"delivery_address"`
	DeliveryPhone    string              `json:"delivery_phone"`
	Items            []ItemDTO           `json:"items"`
	CreatedAt        time.Time           `json:"created_at"`
}

// ListOrdersInput captures the history endpoint's pagination knobs.
type ListOrdersInput struct {
	UserID     uuid.UUID
	Pagination pagination.Params
}

// OrderListResult is one page of the caller's history plus the cursor.
type OrderListResult struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

func itemFromModel(item models.OrderItem) ItemDTO {
	dto := ItemDTO{
		ID:              item.ID,
		ProductID:       item.ProductID,
		ProductName:     item.ProductName,
		Quantity:        item.Quantity,
		UnitPriceCents:  item.UnitPriceCents,
		TotalPriceCents: item.TotalPriceCents,
	}
	if item.Product != nil && len(item.Product.ImageURLs) > 0 {
		url := item.Product.ImageURLs[0]
		dto.ImageURL = &url
	}
	return dto
}

// FromModel converts a persisted order into its transport shape.
func FromModel(order *models.Order) *OrderDTO {
	if order == nil {
		return nil
	}
	items := make([]ItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, itemFromModel(item))
	}
	return &OrderDTO{
		ID:               order.ID,
		Status:           order.Status,
		PaymentMethod:    order.PaymentMethod,
		SubtotalCents:    order.SubtotalCents,
		DeliveryFeeCents: order.DeliveryFeeCents,
		TotalCents:       order.TotalCents,
		DeliveryAddress:  order.DeliveryAddress,
		DeliveryPhone:    order.DeliveryPhone,
		Items:            items,
		CreatedAt:        order.CreatedAt,
	}
}
