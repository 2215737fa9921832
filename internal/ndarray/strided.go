package ndarray

// Strided is a non-owning view with arbitrary extents, strides and offset.
//
// A Strided view always shares the storage of some originating array and never
// reallocates. Its layout is immutable except for the in-place Transpose.
type Strided[T Elem] struct {
	base[T]
}

// NewStrided creates a view over storage.
//
// Every element reachable through (shape, strides, offset) must lie inside the
// storage; otherwise ErrBounds is returned. The view takes a new reference on
// storage.
func NewStrided[T Elem](storage *Storage[T], shape Shape, strides []int, offset int) (*Strided[T], error) {
	layout, err := NewLayout(shape, strides, offset)
	if err != nil {
		return nil, err
	}
	if first, last, ok := layout.Span(); ok && (first < 0 || last >= storage.Len()) {
		return nil, argErrorf(ErrBounds, "strided view", "offsets [%d, %d] outside storage of %d elements",
			first, last, storage.Len())
	}

	storage.Retain()
	return &Strided[T]{base[T]{
		layout:  layout,
		storage: storage,
	}}, nil
}

// Transpose reverses the order of extents and strides in place and returns
// the receiver. O(rank), no data movement.
func (s *Strided[T]) Transpose() *Strided[T] {
	s.layout.reverse()
	return s
}

// String returns a human-readable description of the view.
func (s *Strided[T]) String() string {
	return s.describe("Strided")
}

// derive creates a view sharing v's storage with a new layout.
func derive[T Elem](v View[T], layout Layout) *Strided[T] {
	v.Storage().Retain()
	return &Strided[T]{base[T]{
		layout:  layout,
		storage: v.Storage(),
	}}
}

// Col returns column k of a matrix as a strided vector view.
func Col[T Elem](v View[T], k int) (*Strided[T], error) {
	if v.Rank() != 2 {
		return nil, RankError("col", 2, v.Rank())
	}
	if k < 0 || k >= v.Shape()[1] {
		return nil, &IndexError{Index: []int{0, k}, Shape: v.Shape().Clone(), Axis: 1}
	}
	return derive(v, Layout{
		shape:   Shape{v.Shape()[0]},
		strides: []int{v.Strides()[0]},
		base:    v.Offset() + k*v.Strides()[1],
	}), nil
}

// Row returns row m of a matrix as a strided vector view.
func Row[T Elem](v View[T], m int) (*Strided[T], error) {
	if v.Rank() != 2 {
		return nil, RankError("row", 2, v.Rank())
	}
	if m < 0 || m >= v.Shape()[0] {
		return nil, &IndexError{Index: []int{m, 0}, Shape: v.Shape().Clone(), Axis: 0}
	}
	return derive(v, Layout{
		shape:   Shape{v.Shape()[1]},
		strides: []int{v.Strides()[1]},
		base:    v.Offset() + m*v.Strides()[0],
	}), nil
}

// ReverseView returns a view that traverses axis backwards using a negative
// stride. O(rank), no data movement.
func ReverseView[T Elem](v View[T], axis int) (*Strided[T], error) {
	if axis < 0 || axis >= v.Rank() {
		return nil, AxisError("reverse view", axis, v.Rank())
	}
	layout := v.Layout()
	if n := layout.shape[axis]; n > 0 {
		layout.base += (n - 1) * layout.strides[axis]
	}
	layout.strides[axis] = -layout.strides[axis]
	return derive(v, layout), nil
}
