package ndarray

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Shape represents the extents of an array, one per dimension.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements.
// A rank-0 shape describes a scalar and has one element. The count of a shape
// that passed Validate never overflows.
func (s Shape) NumElements() int {
	return lo.Reduce(s, func(n, dim, _ int) int { return n * dim }, 1)
}

// Validate checks that every extent is non-negative and that the product of
// the non-zero extents fits in an int, so element counts and strides are exact.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
		if dim == 0 {
			continue
		}
		var ok bool
		if n, ok = mulInt(n, dim); !ok {
			return fmt.Errorf("shape %v: element count overflows int", s)
		}
	}
	return nil
}

// IsZeroSize reports whether some extent is zero.
func (s Shape) IsZeroSize() bool {
	return lo.Contains(s, 0)
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// SubShape returns the shape with the given axis removed.
//
// Example:
//
//	Shape{2, 3, 4}.SubShape(1) → Shape{2, 4}
func (s Shape) SubShape(axis int) Shape {
	sub := make(Shape, 0, len(s)-1)
	sub = append(sub, s[:axis]...)
	return append(sub, s[axis+1:]...)
}

// ExpandIndex writes the sub-shape index sub into dst, leaving dst[axis]
// untouched. len(dst) must be len(sub)+1.
func ExpandIndex(sub []int, axis int, dst []int) {
	copy(dst[:axis], sub[:axis])
	copy(dst[axis+1:], sub[axis:])
}

func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// mulInt returns a*b and whether the product fits in an int.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == math.MinInt && b == -1) {
		return c, false
	}
	return c, true
}

// addInt returns a+b and whether the sum fits in an int.
func addInt(a, b int) (int, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}
