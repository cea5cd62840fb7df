package service

import (
	"bytes"
	"context"
	"strings"

	"designlab/internal/cart"
	"designlab/internal/domain"
	"designlab/internal/payment"
	"designlab/pkg/errors"
	"designlab/pkg/logger"

	"github.com/google/uuid"
)

// cartReader is implemented by stores that can read snapshots back
type cartReader interface {
	Get(ctx context.Context, id string) (*cart.Snapshot, error)
}

// CartService checks out carts: invoice, save, then optional payment
type CartService struct {
	store  cart.Store
	logger *logger.Logger
}

// NewCartService creates a cart service backed by store
func NewCartService(store cart.Store, logger *logger.Logger) *CartService {
	return &CartService{
		store:  store,
		logger: logger.Named("carts"),
	}
}

// Checkout builds a cart from the request, prints its invoice, saves it and
// pays the total when a payment method is given
func (s *CartService) Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	if len(req.Products) == 0 {
		return nil, errors.NewValidationError("At least one product is required", nil)
	}

	var strategy payment.Strategy
	if req.Payment != nil {
		var err error
		if strategy, err = payment.StrategyFor(req.Payment.Method, req.Payment.Reference); err != nil {
			return nil, err
		}
	}

	c := cart.New(uuid.NewString())
	for i, p := range req.Products {
		if strings.TrimSpace(p.Name) == "" || p.Price < 0 {
			return nil, errors.NewValidationError("Invalid product", map[string]interface{}{
				"index": i,
			})
		}
		c.AddProduct(cart.Product{Name: p.Name, Price: p.Price})
	}

	var invoice bytes.Buffer
	if err := cart.NewInvoicePrinter(c).Print(&invoice); err != nil {
		return nil, errors.NewInternalError("Failed to print invoice", err)
	}

	if err := s.store.Save(ctx, c); err != nil {
		s.logger.WithError(err).WithField("cart_id", c.ID()).Error("Failed to save cart")
		return nil, errors.NewInternalError("Failed to save cart", err)
	}

	response := &domain.CheckoutResponse{
		CartID:  c.ID(),
		Total:   c.Total(),
		Invoice: invoice.String(),
	}

	if strategy != nil {
		receipt, err := payment.Checkout(ctx, c, strategy)
		if err != nil {
			return nil, err
		}
		response.Receipt = receipt.String()
	}

	s.logger.WithFields(map[string]interface{}{
		"cart_id":  c.ID(),
		"products": len(req.Products),
		"paid":     strategy != nil,
	}).Info("Cart checked out")

	return response, nil
}

// Get returns a saved cart, when the store supports reading
func (s *CartService) Get(ctx context.Context, id string) (*cart.Snapshot, error) {
	reader, ok := s.store.(cartReader)
	if !ok {
		return nil, errors.NewNotApplicableError("Cart store does not support reading", nil)
	}
	return reader.Get(ctx, id)
}
