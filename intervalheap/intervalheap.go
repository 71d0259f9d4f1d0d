package intervalheap

import (
	"cmp"
	"iter"
	"slices"

	"github.com/navijation/njheaps/util"
)

// Heap is a slice-backed double-ended priority queue with O(1) access to both
// the minimum and the maximum. Consecutive slot pairs (2k, 2k+1) form a node:
// the even slot holds the node's local minimum, the odd slot its local
// maximum, and a trailing node with odd total size has only a min slot. Min
// slots form a min-heap and max slots a max-heap over the node tree, so every
// node's [min, max] interval nests inside its parent's.
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
		panic("intervalheap: Min on empty heap")
	}
	return me.data[0]
}

// Max returns the maximum without removing it. It panics on an empty heap.
func (me *Heap[T]) Max() T {
	if len(me.data) == 0 {
		panic("intervalheap: Max on empty heap")
	}
	if len(me.data) > 1 {
		return me.data[1]
	}
	return me.data[0]
}

// Push inserts elem in O(log n).
func (me *Heap[T]) Push(elem T) {
	me.data = append(me.data, elem)
	me.bubbleUp(len(me.data) - 1)
}

// PopMin removes and returns the minimum in O(log n).
func (me *Heap[T]) PopMin() T {
	if len(me.data) == 0 {
		panic("intervalheap: PopMin on empty heap")
	}
	n := len(me.data)
	out := me.data[0]
	if n == 1 {
		me.data = me.data[:0]
		return out
	}
	if n%2 == 1 {
		// the lone min of the trailing node fills the root
		me.data[0] = me.data[n-1]
	} else {
		// the last node loses its min to the root; its max becomes a lone min
		me.data[0] = me.data[n-2]
		me.data[n-2] = me.data[n-1]
	}
	me.data = me.data[:n-1]
	me.bubbleDownMin(0)
	return out
}

// PopMax removes and returns the maximum in O(log n).
func (me *Heap[T]) PopMax() T {
	if len(me.data) == 0 {
		panic("intervalheap: PopMax on empty heap")
	}
	n := len(me.data)
	if n == 1 {
		out := me.data[0]
		me.data = me.data[:0]
		return out
	}
	out := me.data[1]
	me.data[1] = me.data[n-1]
	me.data = me.data[:n-1]
	if n > 2 {
		me.bubbleDownMax(1)
	}
	return out
}

// ReplaceMin overwrites the minimum with val, restores order, and returns the
// displaced minimum. Observably equal to PopMin followed by Push(val), but a
// single descent instead of an ascent plus a possible descent.
func (me *Heap[T]) ReplaceMin(val T) T {
	if len(me.data) == 0 {
		panic("intervalheap: ReplaceMin on empty heap")
	}
	out := me.data[0]
	me.data[0] = val
	if len(me.data) > 1 {
		me.balanceNode(0)
	}
	me.bubbleDownMin(0)
	return out
}

// ReplaceMax overwrites the maximum with val, restores order, and returns the
// displaced maximum. Observably equal to PopMax followed by Push(val).
func (me *Heap[T]) ReplaceMax(val T) T {
	if len(me.data) == 0 {
		panic("intervalheap: ReplaceMax on empty heap")
	}
	if len(me.data) == 1 {
		out := me.data[0]
		me.data[0] = val
		return out
	}
	out := me.data[1]
	me.data[1] = val
	me.balanceNode(0)
	me.bubbleDownMax(1)
	return out
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

// parentMinIdx returns the min slot of the parent node of the node containing
// idx. Only meaningful for idx > 1.
func parentMinIdx(idx int) int {
	return (idx - 2) / 4 * 2
}

// leftChildIdx returns the min slot of the left child node of the node whose
// min slot is idx.
func leftChildIdx(idx int) int {
	return (idx + 1) * 2
}

func isMaxSlot(idx int) bool {
	return idx%2 == 1
}

// bubbleUp restores order after an append at idx. The fresh element is first
// reconciled against the sibling slot of its own node; after that it can be
// out of order with at most one of the ancestor chains, so it ascends either
// the min chain or the max chain, shifting ancestors down and writing the
// saved element once.
func (me *Heap[T]) bubbleUp(idx int) {
	cur := me.data[idx]

	if isMaxSlot(idx) && me.less(cur, me.data[idx-1]) {
		me.data[idx] = me.data[idx-1]
		idx--
	}

	if idx > 1 {
		if par := parentMinIdx(idx); me.less(cur, me.data[par]) {
			// below the parent's min: climb the min chain
			for {
				me.data[idx] = me.data[par]
				idx = par
				if idx <= 1 {
					break
				}
				par = parentMinIdx(idx)
				if !me.less(cur, me.data[par]) {
					break
				}
			}
		} else if par := parentMinIdx(idx) + 1; me.less(me.data[par], cur) {
			// above the parent's max: climb the max chain
			for {
				me.data[idx] = me.data[par]
				idx = par
				if idx <= 1 {
					break
				}
				par = parentMinIdx(idx) + 1
				if !me.less(me.data[par], cur) {
					break
				}
			}
		}
	}
	me.data[idx] = cur
}

// bubbleDownMin sinks the min slot idx along the min chain. The node at idx
// must already satisfy the interval property.
func (me *Heap[T]) bubbleDownMin(idx int) {
	n := len(me.data)
	child := leftChildIdx(idx)
	for child < n {
		// smaller of the two child mins
		if child+2 < n && me.less(me.data[child+2], me.data[child]) {
			child += 2
		}
		if !me.less(me.data[child], me.data[idx]) {
			break
		}
		me.data[idx], me.data[child] = me.data[child], me.data[idx]
		// the displaced value may break the child node's interval
		if child+1 < n && me.less(me.data[child+1], me.data[child]) {
			me.data[child], me.data[child+1] = me.data[child+1], me.data[child]
		}
		idx = child
		child = leftChildIdx(idx)
	}
}

// bubbleDownMax sinks the max slot idx along the max chain. The node at idx
// must already satisfy the interval property. A trailing lone-min node has no
// max slot, yet its single value is still an eligible max supplier, which is
// why child max positions fall back to the min slot below.
func (me *Heap[T]) bubbleDownMax(idx int) {
	n := len(me.data)
	idx-- // track the node by its min slot
	child := leftChildIdx(idx)
	for child < n {
		leftMax := child
		if child+1 < n {
			leftMax = child + 1
		}
		rightMax := child + 2
		if child+3 < n {
			rightMax = child + 3
		}
		// bigger of the two child maxes
		if rightMax < n && me.less(me.data[leftMax], me.data[rightMax]) {
			child += 2
			leftMax = rightMax
		}
		if !me.less(me.data[idx+1], me.data[leftMax]) {
			break
		}
		me.data[idx+1], me.data[leftMax] = me.data[leftMax], me.data[idx+1]
		// if the supplier was a real max slot, the swapped-down value may now
		// undercut that node's min
		if isMaxSlot(leftMax) && me.less(me.data[leftMax], me.data[leftMax-1]) {
			me.data[leftMax], me.data[leftMax-1] = me.data[leftMax-1], me.data[leftMax]
		}
		idx = child
		child = leftChildIdx(idx)
	}
	// the element may have come to rest in a min slot above its sibling max
	if idx+1 < n && me.less(me.data[idx+1], me.data[idx]) {
		me.data[idx], me.data[idx+1] = me.data[idx+1], me.data[idx]
	}
}

func (me *Heap[T]) balanceNode(idx int) {
	if me.less(me.data[idx+1], me.data[idx]) {
		me.data[idx], me.data[idx+1] = me.data[idx+1], me.data[idx]
	}
}

// heapify builds a valid interval heap from an arbitrary slice in O(n): order
// every node's own interval, then bubble down both chains of every internal
// node from the deepest upwards.
func (me *Heap[T]) heapify() {
	n := len(me.data)
	if n <= 2 {
		if n == 2 {
			me.balanceNode(0)
		}
		return
	}
	for i := 0; i+1 < n; i += 2 {
		me.balanceNode(i)
	}
	for i := (n - 1) / 4 * 2; i >= 0; i -= 2 {
		me.bubbleDownMax(i + 1)
		me.bubbleDownMin(i)
	}
}
