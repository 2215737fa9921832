package ndarray

// Map applies f to every element of v and returns a new contiguous array of
// the same shape. Elements are visited in row-major order.
func Map[R, T Elem](v View[T], f func(T) R) *Array[R] {
	out := Zeros[R](v.Shape())
	dst := out.Data()
	src := v.Storage().Data()
	layout := v.Layout()
	for k, idx := range Indices(layout.shape) {
		dst[k] = f(src[layout.Offset(idx)])
	}
	return out
}

// Mul multiplies x and y elementwise in the result type R.
// Shapes must be equal (ErrDimensionMismatch) and R must hold the common type
// of T and U (ErrDType).
func Mul[R, T, U Elem](x View[T], y View[U]) (*Array[R], error) {
	if err := CheckResultType[R, T, U]("mul"); err != nil {
		return nil, err
	}
	if !x.Shape().Equal(y.Shape()) {
		return nil, DimensionError("mul", x.Shape(), y.Shape())
	}

	out := Zeros[R](x.Shape())
	dst := out.Data()
	xs, ys := x.Storage().Data(), y.Storage().Data()
	xl, yl := x.Layout(), y.Layout()
	for k, idx := range Indices(xl.shape) {
		dst[k] = Convert[R](xs[xl.Offset(idx)]) * Convert[R](ys[yl.Offset(idx)])
	}
	return out, nil
}

// Sum adds all elements of v in row-major order.
func Sum[T Elem](v View[T]) T {
	var acc T
	src := v.Storage().Data()
	layout := v.Layout()
	for _, idx := range Indices(layout.shape) {
		acc += src[layout.Offset(idx)]
	}
	return acc
}

// ConjView returns the elementwise complex conjugate of v as a new array.
// For real element types it is a plain copy.
func ConjView[T Elem](v View[T]) *Array[T] {
	return Map(v, Conj[T])
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T Elem](a, b View[T]) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	as, bs := a.Storage().Data(), b.Storage().Data()
	al, bl := a.Layout(), b.Layout()
	for _, idx := range Indices(al.shape) {
		if as[al.Offset(idx)] != bs[bl.Offset(idx)] {
			return false
		}
	}
	return true
}

// CheckResultType verifies that R can hold the common type of T and U.
func CheckResultType[R, T, U Elem](op string) error {
	common := ResultType[T, U]()
	if r := DataTypeOf[R](); !CanHold(r, common) {
		return argErrorf(ErrDType, op, "result type %s cannot hold %s", r, common)
	}
	return nil
}
