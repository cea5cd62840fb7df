// Package lessons runs each design lesson as a named scenario that prints
// what happens to a writer.
package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"sort"
)

// ErrUnknownScenario is returned by Run for a name that is not registered
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario is one runnable lesson
type Scenario struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, w io.Writer) error
}

// Options controls where file-writing scenarios put their output
type Options struct {
	Dir string
}

func (o Options) path(name string) string {
	if o.Dir == "" {
		return name
	}
	return filepath.Join(o.Dir, name)
}

// Catalog returns every scenario, sorted by name
func Catalog(opts Options) []Scenario {
	scenarios := []Scenario{
		{"observer", "Channel notifies subscribers of new uploads", observerScenario},
		{"editor-legacy", "Single-type editor renders and saves itself", legacyEditorScenario(opts)},
		{"editor", "Editor split into elements, document and persistence", editorScenario(opts)},
		{"srp-violation", "Cart that prints and saves itself", srpViolationScenario},
		{"srp", "Cart, invoice printer and store as separate types", srpScenario(opts)},
		{"ocp-violation", "Storage with one method per backend", ocpViolationScenario},
		{"ocp", "Storage extended by new Store implementations", ocpScenario(opts)},
		{"isp-violation", "Wide shape interface forces flat shapes to fail Volume", ispViolationScenario},
		{"isp", "Segregated area and volume interfaces", ispScenario},
		{"inheritance", "Manual and electric cars share a base car", inheritanceScenario},
		{"abstraction", "Sports car driven through the Drivable interface", abstractionScenario},
		{"vector", "Growable vector doubling its capacity", vectorScenario},
		{"payment", "Checkout with interchangeable payment strategies", paymentScenario},
		{"parking", "Parking lot assigning spots and pricing stays", parkingScenario},
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}

// Names lists the registered scenario names
func Names() []string {
	catalog := Catalog(Options{})
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}

// Run executes the named scenario
func Run(ctx context.Context, name string, w io.Writer, opts Options) error {
	catalog := Catalog(opts)
	i := slices.IndexFunc(catalog, func(s Scenario) bool { return s.Name == name })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return catalog[i].Run(ctx, w)
}
