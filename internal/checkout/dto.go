package checkout

// CheckoutRequest carries the payment choice plus the delivery snapshot
// columns. Address and phone are copied onto the order verbatim so later
// profile edits leave history alone.
type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=cod online"`
	DeliveryAddress string `json:"delivery_address" validate:"required,max=500"`
	DeliveryPhone   string `json:"delivery_phone" validate:"required,max=20"`
}
