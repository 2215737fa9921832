// Package ndarray provides the strided N-dimensional array model: shapes,
// layouts, shared storage, views, iteration and rearrange operations.
package ndarray

import (
	"fmt"
	"math/cmplx"
)

// Elem is a constraint for supported array element types.
// Named types are not supported: element conversion dispatches on the exact type.
type Elem interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64 |
		complex64 | complex128
}

// DataType represents runtime type information for array elements.
type DataType int

// Supported data types.
const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Int, Uint, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint:
		return "uint"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// IsComplex reports whether dt is a complex type.
func (dt DataType) IsComplex() bool { return dt == Complex64 || dt == Complex128 }

// IsFloat reports whether dt is a real floating-point type.
func (dt DataType) IsFloat() bool { return dt == Float32 || dt == Float64 }

// IsUnsigned reports whether dt is an unsigned integer type.
func (dt DataType) IsUnsigned() bool { return dt >= Uint8 && dt <= Uint }

// DataTypeOf returns the DataType of the element type T.
func DataTypeOf[T Elem]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case int:
		return Int
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case uint:
		return Uint
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}

// Promote resolves the common type of two element types, following the usual
// arithmetic conversions:
//
//   - complex beats float beats integer;
//   - a complex result is complex128 when either side is complex128 or float64;
//   - integers narrower than 32 bits are promoted to int32 first;
//   - mixed signedness picks the unsigned type unless the signed one is wider.
//
// Examples:
//
//	Promote(Float32, Float64)   → Float64
//	Promote(Int32, Float32)     → Float32
//	Promote(Int8, Uint8)        → Int32
//	Promote(Int32, Uint32)      → Uint32
//	Promote(Complex64, Float64) → Complex128
func Promote(a, b DataType) DataType {
	if a == b {
		return a
	}

	switch {
	case a.IsComplex() || b.IsComplex():
		if a == Complex128 || b == Complex128 || a == Float64 || b == Float64 {
			return Complex128
		}
		return Complex64
	case a.IsFloat() || b.IsFloat():
		if a == Float64 || b == Float64 {
			return Float64
		}
		return Float32
	}

	a, b = promoteInt(a), promoteInt(b)
	if a == b {
		return a
	}
	if a.IsUnsigned() == b.IsUnsigned() {
		switch {
		case a.Size() > b.Size():
			return a
		case b.Size() > a.Size():
			return b
		case a == Int64 || a == Uint64:
			return a
		default:
			return b
		}
	}

	signed, unsigned := a, b
	if a.IsUnsigned() {
		signed, unsigned = b, a
	}
	if unsigned.Size() >= signed.Size() {
		return unsigned
	}
	return signed
}

// promoteInt widens integer types narrower than 32 bits to int32.
func promoteInt(dt DataType) DataType {
	if dt.Size() < 4 {
		return Int32
	}
	return dt
}

// ResultType returns the common type of element types T and U.
func ResultType[T, U Elem]() DataType {
	return Promote(DataTypeOf[T](), DataTypeOf[U]())
}

// CanHold reports whether values of type src can be stored in dst without
// leaving the promotion lattice (Promote(dst, src) == dst).
func CanHold(dst, src DataType) bool {
	return Promote(dst, src) == dst
}

// SameType reports whether T and R are the same element type.
func SameType[T, R Elem]() bool {
	var dummy T
	_, ok := any(dummy).(R)
	return ok
}

// Conj returns the complex conjugate of v. Real values are returned unchanged.
func Conj[T Elem](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(x)))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v
	}
}

// Convert converts v to element type R.
// Complex values converted to a real type keep their real part.
func Convert[R, T Elem](v T) R {
	if r, ok := any(v).(R); ok {
		return r
	}
	return store[R](load(v))
}

// scalar is an element lifted to the widest representation of its kind.
type scalar struct {
	kind byte // 'i', 'u', 'f' or 'c'
	i    int64
	u    uint64
	f    float64
	c    complex128
}

func load[T Elem](v T) scalar {
	switch x := any(v).(type) {
	case int8:
		return scalar{kind: 'i', i: int64(x)}
	case int16:
		return scalar{kind: 'i', i: int64(x)}
	case int32:
		return scalar{kind: 'i', i: int64(x)}
	case int64:
		return scalar{kind: 'i', i: x}
	case int:
		return scalar{kind: 'i', i: int64(x)}
	case uint8:
		return scalar{kind: 'u', u: uint64(x)}
	case uint16:
		return scalar{kind: 'u', u: uint64(x)}
	case uint32:
		return scalar{kind: 'u', u: uint64(x)}
	case uint64:
		return scalar{kind: 'u', u: x}
	case uint:
		return scalar{kind: 'u', u: uint64(x)}
	case float32:
		return scalar{kind: 'f', f: float64(x)}
	case float64:
		return scalar{kind: 'f', f: x}
	case complex64:
		return scalar{kind: 'c', c: complex128(x)}
	case complex128:
		return scalar{kind: 'c', c: x}
	default:
		panic(fmt.Sprintf("unsupported type %T", v))
	}
}

func (s scalar) asInt() int64 {
	switch s.kind {
	case 'u':
		return int64(s.u)
	case 'f':
		return int64(s.f)
	case 'c':
		return int64(real(s.c))
	default:
		return s.i
	}
}

func (s scalar) asUint() uint64 {
	switch s.kind {
	case 'i':
		return uint64(s.i)
	case 'f':
		return uint64(s.f)
	case 'c':
		return uint64(real(s.c))
	default:
		return s.u
	}
}

func (s scalar) asFloat() float64 {
	switch s.kind {
	case 'i':
		return float64(s.i)
	case 'u':
		return float64(s.u)
	case 'c':
		return real(s.c)
	default:
		return s.f
	}
}

func (s scalar) asComplex() complex128 {
	if s.kind == 'c' {
		return s.c
	}
	return complex(s.asFloat(), 0)
}

func store[R Elem](s scalar) R {
	var r R
	switch p := any(&r).(type) {
	case *int8:
		*p = int8(s.asInt())
	case *int16:
		*p = int16(s.asInt())
	case *int32:
		*p = int32(s.asInt())
	case *int64:
		*p = s.asInt()
	case *int:
		*p = int(s.asInt())
	case *uint8:
		*p = uint8(s.asUint())
	case *uint16:
		*p = uint16(s.asUint())
	case *uint32:
		*p = uint32(s.asUint())
	case *uint64:
		*p = s.asUint()
	case *uint:
		*p = uint(s.asUint())
	case *float32:
		*p = float32(s.asFloat())
	case *float64:
		*p = s.asFloat()
	case *complex64:
		*p = complex64(s.asComplex())
	case *complex128:
		*p = s.asComplex()
	}
	return r
}
