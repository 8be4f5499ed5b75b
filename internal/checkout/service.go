package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/internal/cart"
	"github.com/freshkart/freshkart-backend/internal/orders"
	"github.com/freshkart/freshkart-backend/pkg/config"
	"github.com/freshkart/freshkart-backend/pkg/db/models"
	"github.com/freshkart/freshkart-backend/pkg/enums"
	pkgerrors "github.com/freshkart/freshkart-backend/pkg/errors"
	"github.com/freshkart/freshkart-backend/pkg/outbox"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

// Service executes the checkout transaction.
type Service interface {
	Execute(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orders.OrderDTO, error)
}

type service struct {
	tx         txRunner
	cartRepo   *cart.Repository
	ordersRepo *orders.Repository
	outbox     outboxPublisher
	cfg        config.CheckoutConfig
}

// ServiceParams bundles the dependencies required to build a checkout service.
type ServiceParams struct {
	TxRunner   txRunner
	CartRepo   *cart.Repository
	OrdersRepo *orders.Repository
	Outbox     outboxPublisher
	Config     config.CheckoutConfig
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.TxRunner == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.OrdersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Outbox == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	return &service{
		tx:         params.TxRunner,
		cartRepo:   params.CartRepo,
		ordersRepo: params.OrdersRepo,
		outbox:     params.Outbox,
		cfg:        params.Config,
	}, nil
}

// Execute materializes the caller's cart into an order in one transaction:
// lock and validate the lines, snapshot current prices into order items,
// delete the lines, queue the order.created event. Any failure rolls the
// whole thing back and the cart survives untouched.
func (s *service) Execute(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orders.OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	paymentMethod, err := enums.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment_method must be cod or online")
	}

	var result *orders.OrderDTO
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		ordersRepo := s.ordersRepo.WithTx(tx)

		lines, err := cartRepo.ListForCheckout(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
		}
		if len(lines) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		subtotal := 0
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			product := line.Product
			if product == nil || !product.IsActive {
				return unavailableProductError(line)
			}
			if line.Quantity > product.StockQuantity {
				return pkgerrors.New(pkgerrors.CodeValidation, "quantity exceeds available stock").
					WithDetails(map[string]any{
						"product_id":     product.ID,
						"product_name":   product.Name,
						"stock_quantity": product.StockQuantity,
					})
			}

			lineTotal := product.PriceCents * line.Quantity
			subtotal += lineTotal
			productID := product.ID
			items = append(items, models.OrderItem{
				ProductID:       &productID,
				ProductName:     product.Name,
				Quantity:        line.Quantity,
				UnitPriceCents:  product.PriceCents,
				TotalPriceCents: lineTotal,
			})
		}

		deliveryFee := s.deliveryFee(subtotal)
		order := &models.Order{
			UserID:           userID,
			Status:           enums.OrderStatusPending,
			PaymentMethod:    paymentMethod,
			SubtotalCents:    subtotal,
			DeliveryFeeCents: deliveryFee,
			TotalCents:       subtotal + deliveryFee,
			DeliveryAddress:  req.DeliveryAddress,
			DeliveryPhone:    req.DeliveryPhone,
			Items:            items,
		}
		if err := ordersRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}

		if err := cartRepo.Clear(ctx, userID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
		}

		if err := s.emitOrderCreated(ctx, tx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "queue order event")
		}

		created, err := ordersRepo.FindByID(ctx, userID, order.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload order")
		}
		result = orders.FromModel(created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) deliveryFee(subtotalCents int) int {
	if s.cfg.FreeDeliveryAboveCents > 0 && subtotalCents >= s.cfg.FreeDeliveryAboveCents {
		return 0
	}
	return s.cfg.DeliveryFeeCents
}

func (s *service) emitOrderCreated(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
		EventType:     enums.OutboxEventOrderCreated,
		AggregateType: enums.OutboxAggregateOrder,
		AggregateID:   order.ID,
		Actor:         &outbox.ActorRef{UserID: order.UserID},
		Data: outbox.OrderCreatedData{
			OrderID:       order.ID,
			UserID:        order.UserID,
			Status:        order.Status.String(),
			PaymentMethod: order.PaymentMethod.String(),
			TotalCents:    order.TotalCents,
			ItemCount:     len(order.Items),
		},
		Version: 1,
	})
}

func unavailableProductError(line models.CartItem) error {
	details := map[string]any{"product_id": line.ProductID}
	if line.Product != nil {
		details["product_name"] = line.Product.Name
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "product no longer available").WithDetails(details)
}
