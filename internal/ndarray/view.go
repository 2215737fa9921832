package ndarray

import (
	"fmt"
	"sync/atomic"
)

// View is the capability set shared by owning arrays and strided views.
//
// Both variants describe how to read and write a region of a shared Storage:
// extents, strides and a base offset. Shapes are immutable after construction;
// rearranges return new views unless documented as in-place.
type View[T Elem] interface {
	// Shape returns the extents. Don't modify the returned slice.
	Shape() Shape
	// Strides returns the per-dimension strides in elements.
	Strides() []int
	// Offset returns the storage offset of the zero multi-index.
	Offset() int
	// Rank returns the number of dimensions.
	Rank() int
	// Size returns the number of elements.
	Size() int
	// Layout returns a copy of the view's layout.
	Layout() Layout
	// Storage returns the shared backing buffer.
	Storage() *Storage[T]
	// IsContiguous reports whether elements are laid out row-major from offset 0.
	IsContiguous() bool
	// DType returns the element data type.
	DType() DataType

	// At returns the element at idx. Panics with an *IndexError if idx is out of range.
	At(idx ...int) T
	// Set stores v at idx. Panics with an *IndexError if idx is out of range.
	Set(v T, idx ...int)
	// Get is the checked variant of At.
	Get(idx ...int) (T, error)
	// Put is the checked variant of Set.
	Put(v T, idx ...int) error

	// Release drops the view's reference to its storage. Only the first call
	// on a view has an effect.
	Release()
}

// base implements View for both variants.
type base[T Elem] struct {
	layout   Layout
	storage  *Storage[T]
	released atomic.Bool
}

func (b *base[T]) Shape() Shape { return b.layout.shape }
func (b *base[T]) Strides() []int { return b.layout.strides }
func (b *base[T]) Offset() int { return b.layout.base }
func (b *base[T]) Rank() int { return b.layout.Rank() }
func (b *base[T]) Size() int { return b.layout.shape.NumElements() }
func (b *base[T]) Layout() Layout { return b.layout.Clone() }
func (b *base[T]) Storage() *Storage[T] { return b.storage }
func (b *base[T]) IsContiguous() bool { return b.layout.IsContiguous() }
func (b *base[T]) DType() DataType { return DataTypeOf[T]() }

// Release drops the view's storage reference once; later calls are no-ops.
func (b *base[T]) Release() {
	if b.released.CompareAndSwap(false, true) {
		b.storage.Release()
	}
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	a := ndarray.Zeros[float64](ndarray.Shape{3, 4})
//	value := a.At(1, 2) // Row 1, column 2
func (b *base[T]) At(idx ...int) T {
	off, err := b.layout.CheckedOffset(idx)
	if err != nil {
		panic(err)
	}
	return b.storage.data[off]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (b *base[T]) Set(v T, idx ...int) {
	off, err := b.layout.CheckedOffset(idx)
	if err != nil {
		panic(err)
	}
	b.storage.data[off] = v
}

// Get returns the element at idx or an *IndexError.
func (b *base[T]) Get(idx ...int) (T, error) {
	off, err := b.layout.CheckedOffset(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.storage.data[off], nil
}

// Put stores v at idx or returns an *IndexError.
func (b *base[T]) Put(v T, idx ...int) error {
	off, err := b.layout.CheckedOffset(idx)
	if err != nil {
		return err
	}
	b.storage.data[off] = v
	return nil
}

func (b *base[T]) describe(kind string) string {
	return fmt.Sprintf("%s[%s]%v", kind, b.DType(), b.layout.shape)
}
