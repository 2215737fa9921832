package ndarray

import "iter"

// Iterator is a cursor over the multi-indices of a shape in row-major order
// (last axis fastest).
//
// It is created for one traversal and is not restartable. Advancing past the
// last index wraps around to zero; callers bound the loop by Len:
//
//	it := NewIterator(shape)
//	for k := 0; k < it.Len(); k++ {
//	    use(it.Index())
//	    it.Next()
//	}
type Iterator struct {
	shape Shape
	index []int
	pos   int
}

// NewIterator creates an iterator positioned at the zero multi-index.
func NewIterator(shape Shape) *Iterator {
	return &Iterator{
		shape: shape.Clone(),
		index: make([]int, len(shape)),
	}
}

// Len returns the number of multi-indices in the traversal.
func (it *Iterator) Len() int {
	return it.shape.NumElements()
}

// Pos returns the flat position of the cursor.
func (it *Iterator) Pos() int {
	return it.pos
}

// Index returns the current multi-index.
// The slice is owned by the iterator and changes on Next.
func (it *Iterator) Index() []int {
	return it.index
}

// Next advances the cursor by one with carry across axes.
func (it *Iterator) Next() bool {
	it.pos++
	for d := len(it.index) - 1; d >= 0; d-- {
		it.index[d]++
		if it.index[d] < it.shape[d] {
			return true
		}
		it.index[d] = 0
	}
	return false
}

// Indices iterates over all multi-indices of shape.
//
// It yields the flat position and the multi-index. The yielded slice is reused
// between iterations: don't keep or modify it inside the loop.
func Indices(shape Shape) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		it := NewIterator(shape)
		for k := 0; k < it.Len(); k++ {
			if !yield(k, it.Index()) {
				return
			}
			it.Next()
		}
	}
}
