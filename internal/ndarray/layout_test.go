package ndarray

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		elements int
		strides  []int
		zeroSize bool
	}{
		{"scalar", Shape{}, 1, []int{}, false},
		{"vector", Shape{5}, 5, []int{1}, false},
		{"matrix", Shape{2, 3}, 6, []int{3, 1}, false},
		{"3d", Shape{2, 3, 4}, 24, []int{12, 4, 1}, false},
		{"empty axis", Shape{2, 0, 3}, 0, []int{0, 3, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.elements, tt.shape.NumElements())
			assert.Equal(t, tt.strides, tt.shape.ComputeStrides())
			assert.Equal(t, tt.zeroSize, tt.shape.IsZeroSize())
			assert.Equal(t, len(tt.shape), tt.shape.Rank())
			assert.NoError(t, tt.shape.Validate())
		})
	}
}

func TestShape_Validate(t *testing.T) {
	assert.Error(t, Shape{2, -1}.Validate())
	assert.NoError(t, Shape{0}.Validate())

	assert.ErrorContains(t, Shape{math.MaxInt/2 + 1, 2}.Validate(), "overflows")
	assert.Error(t, Shape{0, math.MaxInt, 2}.Validate(), "a zero extent must not hide an overflowing product")
	assert.NoError(t, Shape{math.MaxInt, 1}.Validate())
}

func TestShape_Equal(t *testing.T) {
	assert.True(t, Shape{2, 3}.Equal(Shape{2, 3}))
	assert.False(t, Shape{2, 3}.Equal(Shape{3, 2}))
	assert.False(t, Shape{2, 3}.Equal(Shape{2, 3, 1}))
	assert.True(t, Shape{}.Equal(Shape{}))
}

func TestShape_SubShape(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, Shape{3, 4}, s.SubShape(0))
	assert.Equal(t, Shape{2, 4}, s.SubShape(1))
	assert.Equal(t, Shape{2, 3}, s.SubShape(2))
	assert.Equal(t, Shape{2, 3, 4}, s, "SubShape must not modify the receiver")

	dst := []int{-1, -1, -1}
	ExpandIndex([]int{1, 3}, 1, dst)
	assert.Equal(t, []int{1, -1, 3}, dst)

	ExpandIndex([]int{2, 5}, 0, dst)
	assert.Equal(t, []int{-1, 2, 5}, dst)
}

func TestLayout_Offset(t *testing.T) {
	l := ContiguousLayout(Shape{2, 3})
	assert.Equal(t, 0, l.Offset([]int{0, 0}))
	assert.Equal(t, 5, l.Offset([]int{1, 2}))

	l, err := NewLayout(Shape{3, 2}, []int{1, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2+2*1+1*3, l.Offset([]int{2, 1}))

	off, err := l.CheckedOffset([]int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, 7, off)
}

func TestLayout_CheckedOffset(t *testing.T) {
	l := ContiguousLayout(Shape{2, 3})

	_, err := l.CheckedOffset([]int{1, 3})
	require.ErrorIs(t, err, ErrBounds)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Axis)
	assert.Equal(t, []int{1, 3}, ie.Index)

	_, err = l.CheckedOffset([]int{-1, 0})
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 0, ie.Axis)

	_, err = l.CheckedOffset([]int{1})
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, -1, ie.Axis)
	assert.Contains(t, err.Error(), "got 1 indices for 2-D view")
}

func TestNewLayout_Errors(t *testing.T) {
	_, err := NewLayout(Shape{2, 3}, []int{1}, 0)
	assert.ErrorIs(t, err, ErrRank)

	_, err = NewLayout(Shape{-2}, []int{1}, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	tests := []struct {
		name    string
		shape   Shape
		strides []int
		base    int
		want    error
	}{
		{"element count", Shape{math.MaxInt/2 + 1, 2}, []int{2, 1}, 0, ErrShapeMismatch},
		{"last offset", Shape{2}, []int{math.MaxInt}, 1, ErrBounds},
		{"first offset", Shape{3}, []int{math.MinInt / 2}, -1, ErrBounds},
		{"extent times stride", Shape{3, 1}, []int{math.MaxInt/2 + 1, 1}, 0, ErrBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayout(tt.shape, tt.strides, tt.base)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	l, err := NewLayout(Shape{2}, []int{math.MaxInt}, 0)
	require.NoError(t, err)
	first, last, ok := l.Span()
	assert.True(t, ok)
	assert.Equal(t, 0, first)
	assert.Equal(t, math.MaxInt, last)
}

func TestLayout_Span(t *testing.T) {
	tests := []struct {
		name        string
		shape       Shape
		strides     []int
		base        int
		first, last int
		ok          bool
	}{
		{"contiguous", Shape{2, 3}, []int{3, 1}, 0, 0, 5, true},
		{"transposed", Shape{3, 2}, []int{1, 3}, 0, 0, 5, true},
		{"offset column", Shape{4}, []int{3}, 2, 2, 11, true},
		{"negative stride", Shape{3}, []int{-2}, 4, 0, 4, true},
		{"mixed", Shape{2, 3}, []int{-3, 1}, 3, 0, 5, true},
		{"scalar", Shape{}, []int{}, 7, 7, 7, true},
		{"empty", Shape{0, 3}, []int{3, 1}, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayout(tt.shape, tt.strides, tt.base)
			require.NoError(t, err)
			first, last, ok := l.Span()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestLayout_IsContiguous(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		strides []int
		base    int
		want    bool
	}{
		{"row-major", Shape{2, 3}, []int{3, 1}, 0, true},
		{"column-major", Shape{2, 3}, []int{1, 2}, 0, false},
		{"offset", Shape{2, 3}, []int{3, 1}, 1, false},
		{"unit axis stride ignored", Shape{1, 3}, []int{99, 1}, 0, true},
		{"reversed", Shape{3}, []int{-1}, 2, false},
		{"scalar", Shape{}, []int{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayout(tt.shape, tt.strides, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.IsContiguous())
		})
	}
}

func TestLayout_CloneIsIndependent(t *testing.T) {
	l := ContiguousLayout(Shape{2, 3})
	c := l.Clone()
	c.reverse()

	assert.Equal(t, Shape{2, 3}, l.Shape())
	assert.Equal(t, []int{3, 1}, l.Strides())
	assert.Equal(t, Shape{3, 2}, c.Shape())
	assert.Equal(t, []int{1, 3}, c.Strides())
}

func TestIterator_RowMajor(t *testing.T) {
	it := NewIterator(Shape{2, 3})
	require.Equal(t, 6, it.Len())

	var got [][]int
	for k := 0; k < it.Len(); k++ {
		assert.Equal(t, k, it.Pos())
		got = append(got, append([]int(nil), it.Index()...))
		it.Next()
	}

	want := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	assert.Equal(t, want, got)
	assert.Equal(t, []int{0, 0}, it.Index(), "iterator wraps to zero after the last index")
}

func TestIndices(t *testing.T) {
	t.Run("positions", func(t *testing.T) {
		l := ContiguousLayout(Shape{2, 2, 2})
		for k, idx := range Indices(l.Shape()) {
			assert.Equal(t, k, l.Offset(idx))
		}
	})

	t.Run("scalar yields once", func(t *testing.T) {
		n := 0
		for _, idx := range Indices(Shape{}) {
			assert.Empty(t, idx)
			n++
		}
		assert.Equal(t, 1, n)
	})

	t.Run("zero size yields nothing", func(t *testing.T) {
		for range Indices(Shape{3, 0}) {
			t.Fatal("unexpected index")
		}
	})

	t.Run("break", func(t *testing.T) {
		n := 0
		for k := range Indices(Shape{10}) {
			if k == 3 {
				break
			}
			n++
		}
		assert.Equal(t, 3, n)
	})
}
