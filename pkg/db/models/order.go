package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/freshkart/freshkart-backend/pkg/enums"
)

// Order is materialized once at checkout. Delivery address and phone are
// denormalized snapshots so later profile edits never rewrite history.
type Order struct {
	ID               uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID           uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	Status           enums.OrderStatus   `gorm:"column:status;type:text;not null;default:'pending'"`
	PaymentMethod    enums.PaymentMethod `gorm:"column:payment_method;type:text;not null"`
	SubtotalCents    int                 `gorm:"column:subtotal_cents;not null"`
	DeliveryFeeCents int                 `gorm:"column:delivery_fee_cents;not null;default:0"`
	TotalCents       int                 `gorm:"column:total_cents;not null"`
	DeliveryAddress  string              `gorm:"column:delivery_address;not null"`
	DeliveryPhone    string              `gorm:"column:delivery_phone;not null"`
	Items            []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
