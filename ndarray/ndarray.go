// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"iter"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/numeric/internal/ndarray"
)

// Type aliases for public API

// Elem is a constraint for array element types: sized integers, int, uint,
// float32, float64, complex64 and complex128.
type Elem = ndarray.Elem

// DataType represents the element type at runtime.
type DataType = ndarray.DataType

// Data type constants.
const (
	Int8       DataType = ndarray.Int8
	Int16      DataType = ndarray.Int16
	Int32      DataType = ndarray.Int32
	Int64      DataType = ndarray.Int64
	Int        DataType = ndarray.Int
	Uint8      DataType = ndarray.Uint8
	Uint16     DataType = ndarray.Uint16
	Uint32     DataType = ndarray.Uint32
	Uint64     DataType = ndarray.Uint64
	Uint       DataType = ndarray.Uint
	Float32    DataType = ndarray.Float32
	Float64    DataType = ndarray.Float64
	Complex64  DataType = ndarray.Complex64
	Complex128 DataType = ndarray.Complex128
)

// Shape represents the extents of an array.
// Example: Shape{2, 3, 4} is a 3-D array with 24 elements.
type Shape = ndarray.Shape

// Layout maps multi-indices to storage offsets.
type Layout = ndarray.Layout

// Storage is a reference-counted buffer shared by views.
type Storage[T Elem] = ndarray.Storage[T]

// View is the capability set shared by Array and Strided.
type View[T Elem] = ndarray.View[T]

// Array is an owning contiguous array.
type Array[T Elem] = ndarray.Array[T]

// Strided is a non-owning strided view.
type Strided[T Elem] = ndarray.Strided[T]

// Iterator is a row-major multi-index cursor.
type Iterator = ndarray.Iterator

// IndexError describes an out-of-range element access.
type IndexError = ndarray.IndexError

// Argument validation errors.
var (
	ErrShapeMismatch     = ndarray.ErrShapeMismatch
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrBounds            = ndarray.ErrBounds
	ErrRank              = ndarray.ErrRank
	ErrDType             = ndarray.ErrDType
)

// Creation functions

// Zeros creates an array filled with zeros.
func Zeros[T Elem](shape Shape) *Array[T] { return ndarray.Zeros[T](shape) }

// Full creates an array filled with value.
func Full[T Elem](shape Shape, value T) *Array[T] { return ndarray.Full(shape, value) }

// FromSlice copies data into a new array of the given shape.
func FromSlice[T Elem](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}

// Arange creates the vector [0, 1, ..., n-1].
func Arange[T Elem](n int) *Array[T] { return ndarray.Arange[T](n) }

// Copy deep-copies a view into a new contiguous array.
func Copy[T Elem](v View[T]) *Array[T] { return ndarray.Copy(v) }

// NewStorage allocates a zeroed storage of n elements.
func NewStorage[T Elem](n int) *Storage[T] { return ndarray.NewStorage[T](n) }

// NewStrided creates a view over storage with explicit strides and offset.
//
// Example:
//
//	s := ndarray.NewStorage[float64](6)
//	v, _ := ndarray.NewStrided(s, ndarray.Shape{3, 2}, []int{1, 3}, 0) // column-major 3x2
func NewStrided[T Elem](storage *Storage[T], shape Shape, strides []int, offset int) (*Strided[T], error) {
	return ndarray.NewStrided(storage, shape, strides, offset)
}

// Views

// Col returns column k of a matrix as a view.
func Col[T Elem](v View[T], k int) (*Strided[T], error) { return ndarray.Col(v, k) }

// Row returns row m of a matrix as a view.
func Row[T Elem](v View[T], m int) (*Strided[T], error) { return ndarray.Row(v, m) }

// ReverseView returns a view traversing axis backwards (negative stride).
func ReverseView[T Elem](v View[T], axis int) (*Strided[T], error) {
	return ndarray.ReverseView(v, axis)
}

// Iteration

// NewIterator creates a row-major cursor over shape.
func NewIterator(shape Shape) *Iterator { return ndarray.NewIterator(shape) }

// Indices iterates over all multi-indices of shape in row-major order.
func Indices(shape Shape) iter.Seq2[int, []int] { return ndarray.Indices(shape) }

// Rearrange operations

// Transpose returns a reversed-axes copy of v with independent storage.
func Transpose[T Elem](v View[T]) *Strided[T] { return ndarray.Transpose(v) }

// Reshape reinterprets v with new extents of the same element count.
func Reshape[T Elem](v View[T], shape Shape) (*Array[T], error) { return ndarray.Reshape(v, shape) }

// Reverse returns a reversed copy of a vector.
func Reverse[T Elem](v View[T]) (*Array[T], error) { return ndarray.Reverse(v) }

// ReverseInPlace reverses a vector in place.
func ReverseInPlace[T Elem](v View[T]) error { return ndarray.ReverseInPlace(v) }

// FlipDim returns a copy of v reversed along axis.
func FlipDim[T Elem](v View[T], axis int) (*Array[T], error) { return ndarray.FlipDim(v, axis) }

// FlipDimInPlace reverses v along axis in place.
func FlipDimInPlace[T Elem](v View[T], axis int) error { return ndarray.FlipDimInPlace(v, axis) }

// FlipUD returns a copy of v with axis 0 reversed.
func FlipUD[T Elem](v View[T]) (*Array[T], error) { return ndarray.FlipUD(v) }

// FlipLR returns a copy of v with axis 1 reversed.
func FlipLR[T Elem](v View[T]) (*Array[T], error) { return ndarray.FlipLR(v) }

// FlipUDInPlace reverses axis 0 of v in place.
func FlipUDInPlace[T Elem](v View[T]) error { return ndarray.FlipUDInPlace(v) }

// FlipLRInPlace reverses axis 1 of v in place.
func FlipLRInPlace[T Elem](v View[T]) error { return ndarray.FlipLRInPlace(v) }

// RotL90 rotates a matrix by 90 degrees counter-clockwise.
func RotL90[T Elem](v View[T]) (*Array[T], error) { return ndarray.RotL90(v) }

// RotR90 rotates a matrix by 90 degrees clockwise.
func RotR90[T Elem](v View[T]) (*Array[T], error) { return ndarray.RotR90(v) }

// Rot180 rotates a matrix by 180 degrees.
func Rot180[T Elem](v View[T]) (*Array[T], error) { return ndarray.Rot180(v) }

// Elementwise operations

// Map applies f to every element of v.
func Map[R, T Elem](v View[T], f func(T) R) *Array[R] { return ndarray.Map(v, f) }

// Mul multiplies x and y elementwise in result type R.
func Mul[R, T, U Elem](x View[T], y View[U]) (*Array[R], error) { return ndarray.Mul[R](x, y) }

// Sum adds all elements of v.
func Sum[T Elem](v View[T]) T { return ndarray.Sum(v) }

// Conj returns the elementwise complex conjugate of v.
func Conj[T Elem](v View[T]) *Array[T] { return ndarray.ConjView(v) }

// Equal reports whether a and b have equal shapes and elements.
func Equal[T Elem](a, b View[T]) bool { return ndarray.Equal(a, b) }

// Type promotion

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Elem]() DataType { return ndarray.DataTypeOf[T]() }

// Promote resolves the common type of two element types.
func Promote(a, b DataType) DataType { return ndarray.Promote(a, b) }

// ResultType returns the common type of T and U.
func ResultType[T, U Elem]() DataType { return ndarray.ResultType[T, U]() }

// Convert converts a scalar to element type R.
func Convert[R, T Elem](v T) R { return ndarray.Convert[R](v) }

// gonum interop

// FromDense returns a view aliasing a gonum matrix.
func FromDense(d *mat.Dense) *Strided[float64] { return ndarray.FromDense(d) }

// ToDense copies a matrix view into a gonum Dense.
func ToDense(v View[float64]) (*mat.Dense, error) { return ndarray.ToDense(v) }

// AsMatrix adapts a matrix view to mat.Matrix without copying.
func AsMatrix(v View[float64]) (mat.Matrix, error) { return ndarray.AsMatrix(v) }
