package binaryheap

import (
	"cmp"
	"iter"
	"slices"

	"github.com/navijation/njheaps/util"
)

// Heap is a slice-backed min-priority queue ordered by a strict weak order
// comparator. The binary tree shape is implicit in slice indexes: the children
// of i live at 2i+1 and 2i+2, so there is no node structure to allocate.
//
// A Heap owns its backing slice exclusively; mutate it only through Heap
// methods. The zero value is unusable because it has no comparator — construct
// heaps with New, NewFunc, FromSlice, or FromSeq.
type Heap[T any] struct {
	less func(a, b T) bool
	data []T
}

// New creates a heap over the natural ordering of T, seeded with items.
func New[T cmp.Ordered](items ...T) Heap[T] {
	return NewFunc(cmp.Less[T], items...)
}

// NewFunc creates a heap ordered by less, seeded with a copy of items. The
// caller's slice is never touched; use FromSlice to hand a slice over instead.
func NewFunc[T any](less func(a, b T) bool, items ...T) Heap[T] {
	return FromSlice(less, slices.Clone(items))
}

// FromSlice adopts data as the heap's backing storage without copying, then
// heapifies it in place. Ownership of data transfers to the heap; the caller
// must not use the slice afterwards.
func FromSlice[T any](less func(a, b T) bool, data []T) Heap[T] {
	out := Heap[T]{
		less: less,
		data: data,
	}
	out.heapify()
	return out
}

// FromSeq materializes seq into a fresh backing slice and heapifies it.
func FromSeq[T any](less func(a, b T) bool, seq iter.Seq[T]) Heap[T] {
	return FromSlice(less, util.CollectSeq(seq))
}

// Size returns the number of elements in the heap.
func (me *Heap[T]) Size() int {
	return len(me.data)
}

// Empty reports whether the heap holds no elements.
func (me *Heap[T]) Empty() bool {
	return len(me.data) == 0
}

// Min returns the minimum without removing it. It panics on an empty heap.
func (me *Heap[T]) Min() T {
	if len(me.data) == 0 {
		panic("binaryheap: Min on empty heap")
	}
	return me.data[0]
}

// Top is an alias for Min.
func (me *Heap[T]) Top() T {
	return me.Min()
}

// Push inserts elem in O(log n).
func (me *Heap[T]) Push(elem T) {
	me.data = append(me.data, elem)
	me.bubbleUp(len(me.data) - 1)
}

// Pop removes and returns the minimum in O(log n).
//
// Instead of moving the last element to the root and bubbling it down, the
// hole left by the minimum is walked down to a leaf by promoting the smaller
// child at each level; the last element then fills the hole and bubbles up.
// A former leaf rarely climbs far, whereas bubbling it down from the root
// tends to sink it all the way back, costing close to 2*log2(n) comparisons.
func (me *Heap[T]) Pop() T {
	if len(me.data) == 0 {
		panic("binaryheap: Pop on empty heap")
	}
	out := me.data[0]
	idx := me.moveHoleDown(0)
	last := len(me.data) - 1
	if idx == last {
		me.data = me.data[:last]
	} else {
		me.data[idx] = me.data[last]
		me.data = me.data[:last]
		me.bubbleUp(idx)
	}
	return out
}

// ReplaceTop overwrites the minimum with val, restores the heap property, and
// returns the displaced minimum. Observably equal to Pop followed by
// Push(val), but it touches each level once instead of twice.
func (me *Heap[T]) ReplaceTop(val T) T {
	if len(me.data) == 0 {
		panic("binaryheap: ReplaceTop on empty heap")
	}
	out := me.data[0]
	me.data[0] = val
	me.bubbleDown(0)
	return out
}

// ReplaceMin is an alias for ReplaceTop.
func (me *Heap[T]) ReplaceMin(val T) T {
	return me.ReplaceTop(val)
}

// Swap exchanges contents and comparators with other in O(1).
func (me *Heap[T]) Swap(other *Heap[T]) {
	me.data, other.data = other.data, me.data
	me.less, other.less = other.less, me.less
}

// Swap exchanges the contents and comparators of a and b.
func Swap[T any](a, b *Heap[T]) {
	a.Swap(b)
}

// Reserve grows the backing slice to hold at least capacity elements without
// changing the heap's contents.
func (me *Heap[T]) Reserve(capacity int) {
	me.data = util.GrowSlice(me.data, capacity)
}

// Clone returns a heap with the same contents and comparator, sharing no
// storage with the original.
func (me *Heap[T]) Clone() Heap[T] {
	return Heap[T]{
		less: me.less,
		data: util.CloneSliceFunc(me.data, func(v T) T { return v }),
	}
}

// Drain releases and returns the backing slice in heap order, leaving the
// heap valid and empty.
func (me *Heap[T]) Drain() []T {
	out := me.data
	me.data = nil
	return out
}

func parentIdx(idx int) int {
	return (idx - 1) / 2
}

func leftChildIdx(idx int) int {
	return 2*idx + 1
}

// bubbleUp shifts ancestors down until the element at idx reaches its resting
// slot, writing the saved element once rather than swapping pairwise.
func (me *Heap[T]) bubbleUp(idx int) {
	cur := me.data[idx]
	for idx > 0 {
		par := parentIdx(idx)
		if !me.less(cur, me.data[par]) {
			break
		}
		me.data[idx] = me.data[par]
		idx = par
	}
	me.data[idx] = cur
}

// bubbleDown sinks the element at idx, at each level descending into the
// smaller child while that child precedes the element.
func (me *Heap[T]) bubbleDown(idx int) {
	n := len(me.data)
	cur := me.data[idx]
	for {
		child := leftChildIdx(idx)
		if child >= n {
			break
		}
		if child+1 < n && me.less(me.data[child+1], me.data[child]) {
			child++
		}
		if !me.less(me.data[child], cur) {
			break
		}
		me.data[idx] = me.data[child]
		idx = child
	}
	me.data[idx] = cur
}

// moveHoleDown walks the hole at idx down to a leaf by promoting the smaller
// child at each level and returns the hole's final index. The slot left at
// that index holds a stale duplicate until the caller fills or drops it.
func (me *Heap[T]) moveHoleDown(idx int) int {
	n := len(me.data)
	for {
		child := leftChildIdx(idx)
		if child >= n {
			return idx
		}
		if child+1 < n && me.less(me.data[child+1], me.data[child]) {
			child++
		}
		me.data[idx] = me.data[child]
		idx = child
	}
}

// heapify builds the heap property bottom-up from an arbitrary slice, O(n).
func (me *Heap[T]) heapify() {
	for i := len(me.data)/2 - 1; i >= 0; i-- {
		me.bubbleDown(i)
	}
}
