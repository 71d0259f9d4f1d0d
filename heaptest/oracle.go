package heaptest

import "slices"

// Oracle is a reference double-ended priority queue used to cross-check heap
// behavior in randomized differential tests. It keeps a sorted slice, so
// every operation is trivially correct and independent of the code under
// test. Not intended for production use; insertion is O(n).
type Oracle[T any] struct {
	less  func(a, b T) bool
	items []T
}

// NewOracle creates an empty oracle ordered by less.
func NewOracle[T any](less func(a, b T) bool) Oracle[T] {
	return Oracle[T]{less: less}
}

func (me *Oracle[T]) Size() int {
	return len(me.items)
}

func (me *Oracle[T]) Empty() bool {
	return len(me.items) == 0
}

func (me *Oracle[T]) Push(v T) {
	idx, _ := slices.BinarySearchFunc(me.items, v, me.compare)
	me.items = slices.Insert(me.items, idx, v)
}

func (me *Oracle[T]) Min() T {
	return me.items[0]
}

func (me *Oracle[T]) Max() T {
	return me.items[len(me.items)-1]
}

func (me *Oracle[T]) PopMin() T {
	out := me.items[0]
	me.items = me.items[1:]
	return out
}

func (me *Oracle[T]) PopMax() T {
	out := me.items[len(me.items)-1]
	me.items = me.items[:len(me.items)-1]
	return out
}

// Items returns the tracked multiset in sorted order.
func (me *Oracle[T]) Items() []T {
	return slices.Clone(me.items)
}

// compare lowers the strict weak order into the three-way form that
// slices.BinarySearchFunc expects.
func (me *Oracle[T]) compare(a, b T) int {
	switch {
	case me.less(a, b):
		return -1
	case me.less(b, a):
		return 1
	default:
		return 0
	}
}
