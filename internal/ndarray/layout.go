package ndarray

import (
	"github.com/samber/lo"
)

// Layout maps multi-indices to linear storage offsets:
//
//	offset(i) = base + Σ i[d] * strides[d]
//
// Strides are in elements and may be negative (reversed views).
type Layout struct {
	shape   Shape
	strides []int
	base    int
}

// ContiguousLayout returns the canonical row-major layout for shape.
func ContiguousLayout(shape Shape) Layout {
	return Layout{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// NewLayout builds a layout from explicit strides and base offset.
func NewLayout(shape Shape, strides []int, base int) (Layout, error) {
	if err := shape.Validate(); err != nil {
		return Layout{}, argErrorf(ErrShapeMismatch, "layout", "%v", err)
	}
	if len(strides) != len(shape) {
		return Layout{}, argErrorf(ErrRank, "layout", "%d strides for %d-D shape", len(strides), len(shape))
	}
	l := Layout{
		shape:   shape.Clone(),
		strides: append([]int(nil), strides...),
		base:    base,
	}
	if _, _, _, err := l.span(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Shape returns the extents.
func (l Layout) Shape() Shape { return l.shape }

// Strides returns the per-dimension strides.
func (l Layout) Strides() []int { return l.strides }

// Base returns the storage offset of the zero multi-index.
func (l Layout) Base() int { return l.base }

// Rank returns the number of dimensions.
func (l Layout) Rank() int { return len(l.shape) }

// Clone returns a deep copy.
func (l Layout) Clone() Layout {
	return Layout{
		shape:   l.shape.Clone(),
		strides: append([]int(nil), l.strides...),
		base:    l.base,
	}
}

// Offset returns the storage offset of idx. No bounds checking.
func (l Layout) Offset(idx []int) int {
	off := l.base
	for d, i := range idx {
		off += i * l.strides[d]
	}
	return off
}

// CheckedOffset validates idx against the extents before computing its offset.
func (l Layout) CheckedOffset(idx []int) (int, error) {
	if len(idx) != len(l.shape) {
		return 0, &IndexError{Index: append([]int(nil), idx...), Shape: l.shape, Axis: -1}
	}
	for d, i := range idx {
		if i < 0 || i >= l.shape[d] {
			return 0, &IndexError{Index: append([]int(nil), idx...), Shape: l.shape, Axis: d}
		}
	}
	return l.Offset(idx), nil
}

// Span returns the smallest and largest offsets reachable through the layout.
// ok is false for zero-size layouts, which reach no element.
func (l Layout) Span() (first, last int, ok bool) {
	first, last, ok, _ = l.span()
	return first, last, ok
}

// span is Span with overflow detection. NewLayout rejects layouts whose
// offsets do not fit in an int, so Offset of a valid index never wraps.
func (l Layout) span() (first, last int, ok bool, err error) {
	if l.shape.IsZeroSize() {
		return 0, 0, false, nil
	}
	first, last = l.base, l.base
	for d, dim := range l.shape {
		reach, fits := mulInt(dim-1, l.strides[d])
		if fits {
			if reach < 0 {
				first, fits = addInt(first, reach)
			} else {
				last, fits = addInt(last, reach)
			}
		}
		if !fits {
			return 0, 0, false, argErrorf(ErrBounds, "layout",
				"offsets of shape %v with strides %v from %d overflow int", l.shape, l.strides, l.base)
		}
	}
	return first, last, true, nil
}

// IsContiguous reports whether the layout is the canonical row-major layout
// at base 0. Strides of extent-1 axes are ignored.
func (l Layout) IsContiguous() bool {
	if l.base != 0 {
		return false
	}
	want := l.shape.ComputeStrides()
	return !lo.SomeBy(lo.Range(len(l.shape)), func(d int) bool {
		return l.shape[d] > 1 && l.strides[d] != want[d]
	})
}

// reverse flips the order of extents and strides in place.
func (l *Layout) reverse() {
	lo.Reverse(l.shape)
	lo.Reverse(l.strides)
}
