// Package cart holds the shopping cart lessons. Cart only tracks products,
// InvoicePrinter only prints and each Store only saves.
package cart

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
)

// Product is a priced item
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Cart is an ordered collection of products
type Cart struct {
	mu       sync.RWMutex
	id       string
	products []Product
}

// New creates an empty cart with the given identifier
func New(id string) *Cart {
	return &Cart{id: id}
}

// ID returns the cart identifier
func (c *Cart) ID() string {
	return c.id
}

// AddProduct appends p to the cart
func (c *Cart) AddProduct(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
}

// Products returns a copy of the cart contents
func (c *Cart) Products() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.products)
}

// Total sums product prices
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, p := range c.products {
		total += p.Price
	}
	return total
}

// FormatAmount prints a price without trailing zeros
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// InvoicePrinter renders a cart invoice
type InvoicePrinter struct {
	cart *Cart
}

// NewInvoicePrinter creates a printer for cart
func NewInvoicePrinter(cart *Cart) *InvoicePrinter {
	return &InvoicePrinter{cart: cart}
}

// Print writes the invoice to w
func (p *InvoicePrinter) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Shopping Cart Invoice:"); err != nil {
		return err
	}
	for _, product := range p.cart.Products() {
		if _, err := fmt.Fprintf(w, "%s - Rs %s\n", product.Name, FormatAmount(product.Price)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: Rs %s\n", FormatAmount(p.cart.Total()))
	return err
}

// Store saves carts. New backends are added as new implementations.
type Store interface {
	Save(ctx context.Context, cart *Cart) error
}
