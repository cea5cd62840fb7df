// Package shape contrasts one wide Shape interface, which forces flat shapes
// to implement Volume, with the narrower AreaShape and VolumeShape.
package shape

import (
	"errors"

	apperrors "designlab/pkg/errors"
)

// ErrVolumeNotApplicable is returned when a two-dimensional shape is asked for its volume
var ErrVolumeNotApplicable = errors.New("Volume not applicable")

// Shape is the wide interface every shape must satisfy
type Shape interface {
	Area() float64
	Volume() (float64, error)
}

// AreaShape is anything with a surface area
type AreaShape interface {
	Area() float64
}

// VolumeShape is anything with a volume
type VolumeShape interface {
	Volume() float64
}

type Square struct{ Side float64 }

func (s Square) Area() float64 { return s.Side * s.Side }

type Rectangle struct{ Length, Breadth float64 }

func (r Rectangle) Area() float64 { return r.Length * r.Breadth }

type Cube struct{ Side float64 }

func (c Cube) Area() float64 { return 6 * c.Side * c.Side }
func (c Cube) Volume() float64 { return c.Side * c.Side * c.Side }

var (
	_ AreaShape   = Square{}
	_ AreaShape   = Rectangle{}
	_ AreaShape   = Cube{}
	_ VolumeShape = Cube{}
)

// flat adapts an AreaShape to the wide Shape interface
type flat struct{ AreaShape }

func (flat) Volume() (float64, error) {
	return 0, apperrors.NewNotApplicableError("Volume not applicable", ErrVolumeNotApplicable)
}

// solid adapts a shape with both area and volume
type solid struct {
	AreaShape
	v VolumeShape
}

func (s solid) Volume() (float64, error) { return s.v.Volume(), nil }

// Wide exposes s through the wide Shape interface. Shapes without a volume
// fail Volume with ErrVolumeNotApplicable.
func Wide(s AreaShape) Shape {
	if v, ok := s.(VolumeShape); ok {
		return solid{AreaShape: s, v: v}
	}
	return flat{s}
}
