package ndarray

import (
	"gonum.org/v1/gonum/mat"
)

// FromDense returns a view over the backing slice of a gonum matrix.
// The view aliases d: writes through either are visible in both.
func FromDense(d *mat.Dense) *Strided[float64] {
	raw := d.RawMatrix()
	return &Strided[float64]{base[float64]{
		layout: Layout{
			shape:   Shape{raw.Rows, raw.Cols},
			strides: []int{raw.Stride, 1},
		},
		storage: WrapStorage(raw.Data),
	}}
}

// ToDense copies a matrix view into a new gonum Dense.
func ToDense(v View[float64]) (*mat.Dense, error) {
	if v.Rank() != 2 {
		return nil, RankError("to dense", 2, v.Rank())
	}
	if v.Shape().IsZeroSize() {
		return nil, argErrorf(ErrShapeMismatch, "to dense", "gonum matrices cannot be empty, got %v", v.Shape())
	}
	return mat.NewDense(v.Shape()[0], v.Shape()[1], Copy(v).Data()), nil
}

// AsMatrix adapts a matrix view to gonum's mat.Matrix without copying.
func AsMatrix(v View[float64]) (mat.Matrix, error) {
	if v.Rank() != 2 {
		return nil, RankError("as matrix", 2, v.Rank())
	}
	return matrixView{v: v}, nil
}

type matrixView struct {
	v View[float64]
}

func (m matrixView) Dims() (r, c int) {
	return m.v.Shape()[0], m.v.Shape()[1]
}

func (m matrixView) At(i, j int) float64 {
	return m.v.At(i, j)
}

func (m matrixView) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}
