// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides strided N-dimensional arrays for the Born numeric
// library.
//
// # Overview
//
// An array is a description of how to read and write a region of a shared
// buffer: extents, strides (in elements) and a base offset. Two forms exist:
//   - Array[T]: owning and contiguous, canonical row-major strides
//   - Strided[T]: non-owning view with arbitrary strides over another array's storage
//
// Both implement View[T], which every operation accepts.
//
// # Basic Usage
//
//	import "github.com/born-ml/numeric/ndarray"
//
//	func main() {
//	    a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
//
//	    t := a.TransposeView()          // aliasing view, O(rank)
//	    c := ndarray.Transpose(a)       // independent copy
//	    r, _ := ndarray.RotL90(a)       // [[2 4] [1 3]]
//	    v, _ := ndarray.Reshape(a, ndarray.Shape{4})
//	}
//
// # Memory Management
//
// Views share a reference-counted Storage. Cheap rearranges (TransposeView,
// contiguous Reshape, Col, Row, ReverseView) return views over the same
// storage; copying rearranges (Transpose, FlipDim, RotL90, ...) allocate.
// In-place rearranges (FlipDimInPlace, ReverseInPlace) hold the storage's
// write lock while they run.
//
// # Errors
//
// Operations validate their arguments before touching data and return errors
// that match ErrShapeMismatch, ErrDimensionMismatch, ErrBounds, ErrRank or
// ErrDType with errors.Is. Element access via At/Set panics on a bad index;
// Get/Put return the error instead.
package ndarray
