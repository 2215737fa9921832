package ndarray

import "fmt"

// Zeros creates a contiguous array filled with zeros.
// Panics if shape has a negative extent.
//
// Example:
//
//	a := ndarray.Zeros[float64](ndarray.Shape{3, 4})
func Zeros[T Elem](shape Shape) *Array[T] {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return newArray(shape, NewStorage[T](shape.NumElements()))
}

// Full creates a contiguous array filled with value.
//
// Example:
//
//	a := ndarray.Full(ndarray.Shape{2, 2}, 1.5)
func Full[T Elem](shape Shape, value T) *Array[T] {
	a := Zeros[T](shape)
	data := a.Data()
	for i := range data {
		data[i] = value
	}
	return a
}

// FromSlice creates an array from a Go slice in row-major order.
// The slice is copied into the array's storage.
func FromSlice[T Elem](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, argErrorf(ErrShapeMismatch, "from slice", "%v", err)
	}
	if shape.NumElements() != len(data) {
		return nil, argErrorf(ErrShapeMismatch, "from slice",
			"shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	a := Zeros[T](shape)
	copy(a.Data(), data)
	return a, nil
}

// Arange creates the vector [0, 1, ..., n-1].
func Arange[T Elem](n int) *Array[T] {
	a := Zeros[T](Shape{n})
	data := a.Data()
	for i := range data {
		data[i] = Convert[T](i)
	}
	return a
}

// Copy deep-copies any view into a fresh contiguous array with independent
// storage. Elements are written in the view's row-major iteration order.
func Copy[T Elem](v View[T]) *Array[T] {
	out := Zeros[T](v.Shape())
	dst := out.Data()
	src := v.Storage().Data()

	if v.IsContiguous() {
		copy(dst, src[:len(dst)])
		return out
	}

	layout := v.Layout()
	for k, idx := range Indices(layout.shape) {
		dst[k] = src[layout.Offset(idx)]
	}
	return out
}
