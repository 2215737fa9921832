package ndarray

// Array is an owning, contiguous N-dimensional array.
//
// Its strides are always the canonical row-major strides of its shape and its
// storage holds at least Size() elements from offset 0. Several arrays may share one storage
// (see Reshape).
//
// Example:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
//	a.At(1, 0) // 3
//	t := a.TransposeView() // aliasing 2x2 view, t.At(0, 1) == 3
type Array[T Elem] struct {
	base[T]
}

// newArray wraps storage with the canonical layout of shape.
// The caller transfers one storage reference to the array.
func newArray[T Elem](shape Shape, storage *Storage[T]) *Array[T] {
	return &Array[T]{base[T]{
		layout:  ContiguousLayout(shape),
		storage: storage,
	}}
}

// Data returns the elements in row-major order.
// The slice directly accesses the shared storage (zero-copy).
func (a *Array[T]) Data() []T {
	return a.storage.data[:a.Size()]
}

// AsStrided returns a shallow strided copy of the array: same storage, its own layout.
func (a *Array[T]) AsStrided() *Strided[T] {
	a.storage.Retain()
	return &Strided[T]{base[T]{
		layout:  a.layout.Clone(),
		storage: a.storage,
	}}
}

// TransposeView returns a view over the same storage with extents and strides
// reversed. Writes through the view are visible in the array.
func (a *Array[T]) TransposeView() *Strided[T] {
	return a.AsStrided().Transpose()
}

// String returns a human-readable description of the array.
func (a *Array[T]) String() string {
	return a.describe("Array")
}
