package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freshkart/freshkart-backend/pkg/db/models"
	pkgerrors "github.com/freshkart/freshkart-backend/pkg/errors"
)

// Service defines the behavior needed by the cart controller.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	SetQuantity(ctx context.Context, userID uuid.UUID, req SetQuantityRequest) (*CartDTO, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartRepository interface {
	Upsert(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	DeleteLine(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	ListWithProducts(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
}

type productFinder interface {
	FindActiveProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     cartRepository
	products productFinder
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Repo     cartRepository
	Products productFinder
}

// NewService constructs a cart service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product finder is required")
	}
	return &service{repo: params.Repo, products: params.Products}, nil
}

func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	rows, err := s.repo.ListWithProducts(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	return buildCartDTO(rows), nil
}

// SetQuantity is last-write-wins: the provided quantity replaces whatever the
// line held before. Zero or negative removes the line and both outcomes are
// idempotent.
func (s *service) SetQuantity(ctx context.Context, userID uuid.UUID, req SetQuantityRequest) (*CartDTO, error) {
	if req.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}

	if req.Quantity <= 0 {
		if err := s.repo.DeleteLine(ctx, userID, req.ProductID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart line")
		}
		return s.GetCart(ctx, userID)
	}

	product, err := s.products.FindActiveProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	// Advisory ceiling only. The write itself never enforces stock, so a
	// concurrent stock edit cannot strand the upsert.
	if req.Quantity > product.StockQuantity {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity exceeds available stock").
			WithDetails(map[string]any{
				"product_id":     product.ID,
				"stock_quantity": product.StockQuantity,
			})
	}

	if err := s.repo.Upsert(ctx, userID, req.ProductID, req.Quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write cart line")
	}
	return s.GetCart(ctx, userID)
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return nil
}

func buildCartDTO(rows []models.CartItem) *CartDTO {
	items := make([]LineDTO, 0, len(rows))
	subtotal := 0
	for i := range rows {
		row := rows[i]
		line := LineDTO{
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Product:   lineProductFromModel(row.Product),
		}
		if row.Product != nil {
			line.UnitPriceCents = row.Product.PriceCents
			line.LineTotalCents = row.Product.PriceCents * row.Quantity
			subtotal += line.LineTotalCents
		}
		items = append(items, line)
	}
	return &CartDTO{
		Items:         items,
		ItemCount:     len(items),
		SubtotalCents: subtotal,
	}
}
