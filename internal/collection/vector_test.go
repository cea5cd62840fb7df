package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_GrowsByDoubling(t *testing.T) {
	v := NewVector[int]()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 1, v.Cap())

	expectedCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, want := range expectedCaps {
		v.Add(i * 10)
		assert.Equal(t, i+1, v.Len())
		assert.Equal(t, want, v.Cap(), "after %d adds", i+1)
	}

	assert.Equal(t, []int{0, 10, 20, 30, 40, 50, 60, 70, 80}, v.Values())
}

func TestVector_At(t *testing.T) {
	v := NewVector[string]()
	v.Add("a")
	v.Add("b")

	got, ok := v.At(1)
	assert.True(t, ok)
	assert.Equal(t, "b", got)

	for _, i := range []int{-1, 2, 100} {
		_, ok := v.At(i)
		assert.False(t, ok, "index %d", i)
	}
}

func TestVector_ZeroValueUsable(t *testing.T) {
	var v Vector[int]
	assert.Equal(t, 1, v.Cap())
	v.Add(10)
	v.Add(20)
	assert.Equal(t, []int{10, 20}, v.Values())
	assert.Equal(t, 2, v.Cap())
}

func TestVector_ValuesIsCopy(t *testing.T) {
	v := NewVector[int]()
	v.Add(1)
	vals := v.Values()
	vals[0] = 99

	got, _ := v.At(0)
	assert.Equal(t, 1, got)
}
