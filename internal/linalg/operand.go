package linalg

import (
	"github.com/born-ml/numeric/internal/ndarray"
)

// operand reads the elements of a view converted to the result type R.
// When T == R the storage is read directly without conversion.
type operand[T, R ndarray.Elem] struct {
	data    []T
	native  []R
	same    bool
	base    int
	strides []int
}

func newOperand[R, T ndarray.Elem](v ndarray.View[T]) operand[T, R] {
	data := v.Storage().Data()
	native, same := any(data).([]R)
	return operand[T, R]{
		data:    data,
		native:  native,
		same:    same,
		base:    v.Offset(),
		strides: v.Strides(),
	}
}

// at returns element i of a vector.
func (o operand[T, R]) at(i int) R {
	off := o.base + i*o.strides[0]
	if o.same {
		return o.native[off]
	}
	return ndarray.Convert[R](o.data[off])
}

// at2 returns element (i, j) of a matrix.
func (o operand[T, R]) at2(i, j int) R {
	off := o.base + i*o.strides[0] + j*o.strides[1]
	if o.same {
		return o.native[off]
	}
	return ndarray.Convert[R](o.data[off])
}

// contract sums term(i) for i in [0, n) in order.
//
// With AccumulateOperand the running sum is kept in T, the left operand's
// element type, unless T is real and R complex: a real accumulator would drop
// the imaginary part. Otherwise it is kept in R.
func contract[T, R ndarray.Elem](mode Accumulation, n int, term func(i int) R) R {
	if mode == AccumulatePromoted || ndarray.SameType[T, R]() ||
		(ndarray.DataTypeOf[R]().IsComplex() && !ndarray.DataTypeOf[T]().IsComplex()) {
		var acc R
		for i := 0; i < n; i++ {
			acc += term(i)
		}
		return acc
	}

	var acc T
	for i := 0; i < n; i++ {
		acc += ndarray.Convert[T](term(i))
	}
	return ndarray.Convert[R](acc)
}
