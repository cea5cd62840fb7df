package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"

	"designlab/internal/cart"
	"designlab/internal/document"
	"designlab/internal/shape"
)

func legacyEditorScenario(opts Options) func(context.Context, io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		editor := document.NewLegacyEditor(opts.path(document.DefaultFileName))
		editor.AddText("Hello, world!")
		editor.AddImage("picture.jpg")
		editor.AddText("This is a document editor.")

		fmt.Fprintln(w, editor.Render())
		return editor.SaveToFile(w)
	}
}

func editorScenario(opts Options) func(context.Context, io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		path := opts.path(document.DefaultFileName)
		editor := document.NewEditor("document", nil, document.NewFileStorage(path))

		editor.AddText("Hello, world!")
		editor.AddNewLine()
		editor.AddText("This is a real-world document editor example.")
		editor.AddNewLine()
		editor.AddTabSpace()
		editor.AddText("Indented text after a tab space.")
		editor.AddNewLine()
		editor.AddImage("picture.jpg")

		fmt.Fprintln(w, editor.Render())

		if err := editor.Save(ctx); err != nil {
			fmt.Fprintln(w, "Error: Unable to open file for writing.")
			return err
		}
		fmt.Fprintf(w, "Document saved to %s\n", path)
		return nil
	}
}

func srpViolationScenario(ctx context.Context, w io.Writer) error {
	c := cart.NewMonolithCart(w)
	c.AddProduct(cart.Product{Name: "Laptop", Price: 50000})
	c.AddProduct(cart.Product{Name: "Mouse", Price: 2000})
	c.PrintInvoice()
	c.SaveToDatabase()
	return nil
}

func newLessonCart() *cart.Cart {
	c := cart.New("lesson")
	c.AddProduct(cart.Product{Name: "Toyota", Price: 10000})
	c.AddProduct(cart.Product{Name: "Mitsubishi", Price: 5000})
	return c
}

func srpScenario(opts Options) func(context.Context, io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		c := newLessonCart()
		if err := cart.NewInvoicePrinter(c).Print(w); err != nil {
			return err
		}

		path := opts.path("cart.json")
		if err := cart.NewFileStore(path).Save(ctx, c); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cart saved to %s\n", path)
		return nil
	}
}

func ocpViolationScenario(ctx context.Context, w io.Writer) error {
	c := cart.New("lesson")
	c.AddProduct(cart.Product{Name: "Laptop", Price: 50000})
	c.AddProduct(cart.Product{Name: "Mouse", Price: 2000})

	if err := cart.NewInvoicePrinter(c).Print(w); err != nil {
		return err
	}

	storage := cart.NewSwitchStorage(c, w)
	storage.SaveToSQLDatabase()
	storage.SaveToMongoDatabase()
	storage.SaveToFile()
	return nil
}

// printingStore stands in for a database backend in the OCP lesson
type printingStore struct {
	name string
	w    io.Writer
}

func (s printingStore) Save(ctx context.Context, c *cart.Cart) error {
	_, err := fmt.Fprintf(s.w, "Saving shopping cart to %s... (Rs %s)\n", s.name, cart.FormatAmount(c.Total()))
	return err
}

func ocpScenario(opts Options) func(context.Context, io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		c := newLessonCart()
		if err := cart.NewInvoicePrinter(c).Print(w); err != nil {
			return err
		}

		stores := []cart.Store{
			printingStore{name: "SQL DB", w: w},
			printingStore{name: "Mongo DB", w: w},
			cart.NewFileStore(opts.path("cart.json")),
		}
		for _, store := range stores {
			if err := store.Save(ctx, c); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "Saved to %d stores\n", len(stores))
		return nil
	}
}

func ispViolationScenario(ctx context.Context, w io.Writer) error {
	square := shape.Wide(shape.Square{Side: 5})
	rectangle := shape.Wide(shape.Rectangle{Length: 4, Breadth: 6})
	cube := shape.Wide(shape.Cube{Side: 3})

	fmt.Fprintf(w, "Square Area: %g\n", square.Area())
	fmt.Fprintf(w, "Rectangle Area: %g\n", rectangle.Area())
	fmt.Fprintf(w, "Cube Area: %g\n", cube.Area())

	volume, err := cube.Volume()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Cube Volume: %g\n", volume)

	if _, err := square.Volume(); err != nil {
		if !errors.Is(err, shape.ErrVolumeNotApplicable) {
			return err
		}
		fmt.Fprintf(w, "Exception: %s\n", shape.ErrVolumeNotApplicable)
	}
	return nil
}

func ispScenario(ctx context.Context, w io.Writer) error {
	var square shape.AreaShape = shape.Square{Side: 5}
	var rectangle shape.AreaShape = shape.Rectangle{Length: 4, Breadth: 6}
	cube := shape.Cube{Side: 3}

	fmt.Fprintf(w, "Square Area: %g\n", square.Area())
	fmt.Fprintf(w, "Rectangle Area: %g\n", rectangle.Area())
	fmt.Fprintf(w, "Cube Area: %g\n", cube.Area())
	fmt.Fprintf(w, "Cube Volume: %g\n", cube.Volume())
	return nil
}
