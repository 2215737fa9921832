package ndarray

// Transpose deep-copies v into a fresh contiguous array and returns that copy
// with extents and strides reversed. The result is the only reference to its
// storage, so it never aliases v. A 0-D view transposes to a scalar copy.
//
// For a cheap aliasing transpose use (*Array).TransposeView or
// (*Strided).Transpose.
func Transpose[T Elem](v View[T]) *Strided[T] {
	c := Copy(v)
	t := c.TransposeView()
	c.Release()
	return t
}

// Reshape reinterprets v with new extents.
//
// The element count must not change (ErrShapeMismatch). A contiguous source
// shares its storage with the result (O(rank)); any other view is copied
// element by element in row-major order. A 0-D view reshapes to any
// one-element shape and back.
//
// Example:
//
//	a := ndarray.Arange[int](6)
//	m, _ := ndarray.Reshape(a, ndarray.Shape{2, 3}) // shares a's storage
func Reshape[T Elem](v View[T], shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, argErrorf(ErrShapeMismatch, "reshape", "%v", err)
	}
	if shape.NumElements() != v.Size() {
		return nil, argErrorf(ErrShapeMismatch, "reshape", "cannot reshape %v (%d elements) to %v (%d elements)",
			v.Shape(), v.Size(), shape, shape.NumElements())
	}

	if v.IsContiguous() {
		v.Storage().Retain()
		return newArray(shape, v.Storage()), nil
	}

	out := Copy(v)
	out.layout = ContiguousLayout(shape)
	return out, nil
}

// ReverseInPlace reverses a vector in place with a two-pointer swap.
func ReverseInPlace[T Elem](v View[T]) error {
	if v.Rank() != 1 {
		return RankError("reverse", 1, v.Rank())
	}

	s := v.Storage()
	s.Lock()
	defer s.Unlock()

	data := s.Data()
	start, stride := v.Offset(), v.Strides()[0]
	for i, j := 0, v.Shape()[0]-1; i < j; i, j = i+1, j-1 {
		a, b := start+i*stride, start+j*stride
		data[a], data[b] = data[b], data[a]
	}
	return nil
}

// Reverse returns a reversed copy of a vector.
func Reverse[T Elem](v View[T]) (*Array[T], error) {
	if v.Rank() != 1 {
		return nil, RankError("reverse", 1, v.Rank())
	}
	out := Copy(v)
	if err := ReverseInPlace[T](out); err != nil {
		return nil, err
	}
	return out, nil
}

// FlipDimInPlace reverses the elements of v along axis in place.
//
// Mirrored pairs along axis are swapped for every position of the remaining
// axes, which are enumerated with an Iterator over the sub-shape. For a 1-D
// view the axis argument is ignored and the vector is reversed.
func FlipDimInPlace[T Elem](v View[T], axis int) error {
	rank := v.Rank()
	if err := checkFlipAxis(rank, axis); err != nil {
		return err
	}
	if rank == 1 {
		return ReverseInPlace(v)
	}

	s := v.Storage()
	s.Lock()
	defer s.Unlock()

	data := s.Data()
	layout := v.Layout()
	n, stride := layout.shape[axis], layout.strides[axis]
	index := make([]int, rank)

	it := NewIterator(layout.shape.SubShape(axis))
	for k := 0; k < it.Len(); k++ {
		ExpandIndex(it.Index(), axis, index)
		index[axis] = 0
		start := layout.Offset(index)
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			a, b := start+i*stride, start+j*stride
			data[a], data[b] = data[b], data[a]
		}
		it.Next()
	}
	return nil
}

// FlipDim returns a copy of v reversed along axis.
func FlipDim[T Elem](v View[T], axis int) (*Array[T], error) {
	if err := checkFlipAxis(v.Rank(), axis); err != nil {
		return nil, err
	}
	out := Copy(v)
	if err := FlipDimInPlace[T](out, axis); err != nil {
		return nil, err
	}
	return out, nil
}

// FlipUDInPlace reverses the rows of v (axis 0) in place.
func FlipUDInPlace[T Elem](v View[T]) error { return FlipDimInPlace(v, 0) }

// FlipLRInPlace reverses the columns of v (axis 1) in place.
func FlipLRInPlace[T Elem](v View[T]) error { return FlipDimInPlace(v, 1) }

// FlipUD returns a copy of v with the rows (axis 0) reversed.
func FlipUD[T Elem](v View[T]) (*Array[T], error) { return FlipDim(v, 0) }

// FlipLR returns a copy of v with the columns (axis 1) reversed.
func FlipLR[T Elem](v View[T]) (*Array[T], error) { return FlipDim(v, 1) }

// checkFlipAxis validates axis for rank >= 2; 1-D flips ignore the axis.
func checkFlipAxis(rank, axis int) error {
	switch {
	case rank == 0:
		return argErrorf(ErrRank, "flipdim", "cannot flip a 0-D array")
	case rank == 1:
		return nil
	case axis < 0 || axis >= rank:
		return AxisError("flipdim", axis, rank)
	}
	return nil
}

// RotL90 rotates a matrix by 90 degrees counter-clockwise: B(N-n-1, m) = A(m, n).
// An M×N input yields an N×M result.
//
// Example:
//
//	[[1 2]    [[2 4]
//	 [3 4]] →  [1 3]]
func RotL90[T Elem](v View[T]) (*Array[T], error) {
	return rotate(v, "rotl90", func(m, n, rows, cols int) (int, int) {
		return cols - n - 1, m
	}, true)
}

// RotR90 rotates a matrix by 90 degrees clockwise: B(n, M-m-1) = A(m, n).
// An M×N input yields an N×M result.
func RotR90[T Elem](v View[T]) (*Array[T], error) {
	return rotate(v, "rotr90", func(m, n, rows, cols int) (int, int) {
		return n, rows - m - 1
	}, true)
}

// Rot180 rotates a matrix by 180 degrees: B(M-m-1, N-n-1) = A(m, n).
func Rot180[T Elem](v View[T]) (*Array[T], error) {
	return rotate(v, "rot180", func(m, n, rows, cols int) (int, int) {
		return rows - m - 1, cols - n - 1
	}, false)
}

// rotate copies every A(m, n) to B(target(m, n)).
func rotate[T Elem](v View[T], op string, target func(m, n, rows, cols int) (int, int), swapped bool) (*Array[T], error) {
	if v.Rank() != 2 {
		return nil, RankError(op, 2, v.Rank())
	}
	rows, cols := v.Shape()[0], v.Shape()[1]

	outShape := Shape{rows, cols}
	if swapped {
		outShape = Shape{cols, rows}
	}
	out := Zeros[T](outShape)
	dst := out.Data()
	outCols := outShape[1]

	src := v.Storage().Data()
	start, rs, cs := v.Offset(), v.Strides()[0], v.Strides()[1]
	for m := 0; m < rows; m++ {
		for n := 0; n < cols; n++ {
			i, j := target(m, n, rows, cols)
			dst[i*outCols+j] = src[start+m*rs+n*cs]
		}
	}
	return out, nil
}
