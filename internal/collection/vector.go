// Package collection provides a growable array that manages its own capacity.
package collection

// Vector is a slice-like container that doubles its backing array when full
type Vector[T any] struct {
	items []T
	size  int
}

// NewVector creates an empty vector with capacity 1
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{items: make([]T, 1)}
}

// Add appends v, doubling capacity and copying existing elements when full
func (v *Vector[T]) Add(item T) {
	if v.items == nil {
		v.items = make([]T, 1)
	}
	if v.size == len(v.items) {
		grown := make([]T, len(v.items)*2)
		copy(grown, v.items[:v.size])
		v.items = grown
	}
	v.items[v.size] = item
	v.size++
}

// At returns the element at i
func (v *Vector[T]) At(i int) (T, bool) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

func (v *Vector[T]) Len() int { return v.size }

// Cap returns the capacity of the backing array
func (v *Vector[T]) Cap() int {
	if v.items == nil {
		return 1
	}
	return len(v.items)
}

// Values returns a copy of the stored elements
func (v *Vector[T]) Values() []T {
	out := make([]T, v.size)
	copy(out, v.items[:v.size])
	return out
}
