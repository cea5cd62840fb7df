// Package payment is the Strategy lesson: checkout depends on the Strategy
// interface and each payment method is a separate implementation.
package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	apperrors "designlab/pkg/errors"
)

// Receipt describes a completed payment
type Receipt struct {
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference,omitempty"`
}

// String renders the receipt the way the checkout prints it
func (r Receipt) String() string {
	amount := strconv.FormatFloat(r.Amount, 'f', -1, 64)
	if r.Reference == "" {
		return fmt.Sprintf("Paid ₹%s using %s", amount, r.Method)
	}
	return fmt.Sprintf("Paid ₹%s using %s (%s)", amount, r.Method, r.Reference)
}

// Strategy pays an amount
type Strategy interface {
	Pay(ctx context.Context, amount float64) (*Receipt, error)
}

func validateAmount(amount float64) error {
	if amount <= 0 {
		return apperrors.NewValidationError("Amount must be positive", map[string]interface{}{
			"amount": amount,
		})
	}
	return nil
}

// CreditCard pays with a card number
type CreditCard struct {
	CardNumber string
}

func (c CreditCard) Pay(ctx context.Context, amount float64) (*Receipt, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.CardNumber) == "" {
		return nil, apperrors.NewValidationError("Card number is required", nil)
	}
	return &Receipt{Method: "Credit Card", Amount: amount, Reference: c.CardNumber}, nil
}

// UPI pays with a virtual payment address
type UPI struct {
	VPA string
}

func (u UPI) Pay(ctx context.Context, amount float64) (*Receipt, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if !strings.Contains(u.VPA, "@") {
		return nil, apperrors.NewValidationError("UPI address must look like name@bank", map[string]interface{}{
			"vpa": u.VPA,
		})
	}
	return &Receipt{Method: "UPI", Amount: amount, Reference: u.VPA}, nil
}

// Cash needs nothing but a positive amount
type Cash struct{}

func (Cash) Pay(ctx context.Context, amount float64) (*Receipt, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	return &Receipt{Method: "Cash", Amount: amount}, nil
}

// Totaler is anything with a payable total, such as a cart
type Totaler interface {
	Total() float64
}

// Checkout pays the total of t using strategy
func Checkout(ctx context.Context, t Totaler, strategy Strategy) (*Receipt, error) {
	if strategy == nil {
		return nil, apperrors.NewValidationError("Payment method is required", nil)
	}
	return strategy.Pay(ctx, t.Total())
}

// StrategyFor builds a strategy from a method name and its reference
func StrategyFor(method, reference string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "credit_card", "credit", "card":
		return CreditCard{CardNumber: reference}, nil
	case "upi":
		return UPI{VPA: reference}, nil
	case "cash":
		return Cash{}, nil
	default:
		return nil, apperrors.NewValidationError("Unsupported payment method", map[string]interface{}{
			"method": method,
		})
	}
}
