package cart

import (
	"fmt"
	"io"
)

// MonolithCart tracks products, prints its own invoice and saves itself.
// Every reason to change lands in this one type.
type MonolithCart struct {
	products []Product
	out      io.Writer
}

// NewMonolithCart creates a cart that reports everything to out
func NewMonolithCart(out io.Writer) *MonolithCart {
	return &MonolithCart{out: out}
}

func (c *MonolithCart) AddProduct(p Product) {
	c.products = append(c.products, p)
	fmt.Fprintln(c.out, "Product added")
}

func (c *MonolithCart) Total() float64 {
	var total float64
	for _, p := range c.products {
		total += p.Price
	}
	return total
}

func (c *MonolithCart) PrintInvoice() {
	fmt.Fprintln(c.out, "Shopping Cart Invoice:")
	for _, p := range c.products {
		fmt.Fprintf(c.out, "%s - Rs %s\n", p.Name, FormatAmount(p.Price))
	}
	fmt.Fprintf(c.out, "Total: Rs %s\n", FormatAmount(c.Total()))
}

func (c *MonolithCart) SaveToDatabase() {
	fmt.Fprintln(c.out, "Saving to databases")
}

// SwitchStorage needs a new method, and an edit, for every backend
type SwitchStorage struct {
	cart *Cart
	out  io.Writer
}

func NewSwitchStorage(cart *Cart, out io.Writer) *SwitchStorage {
	return &SwitchStorage{cart: cart, out: out}
}

func (s *SwitchStorage) SaveToSQLDatabase() {
	fmt.Fprintln(s.out, "Saving shopping cart to SQL DB...")
}

func (s *SwitchStorage) SaveToMongoDatabase() {
	fmt.Fprintln(s.out, "Saving shopping cart to Mongo DB...")
}

func (s *SwitchStorage) SaveToFile() {
	fmt.Fprintln(s.out, "Saving shopping cart to File...")
}
