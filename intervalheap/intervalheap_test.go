package intervalheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/navijation/njheaps/heaptest"
	"github.com/navijation/njheaps/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool {
	return a < b
}

// checkInvariants asserts the interval property within every node and the
// containment of every node's interval inside its parent's.
func checkInvariants[T any](t *testing.T, h *Heap[T]) {
	t.Helper()
	n := len(h.data)
	for i := 0; i < n; i += 2 {
		if i+1 < n {
			assert.False(t, h.less(h.data[i+1], h.data[i]),
				"interval property violated at node %d", i/2)
		}
		if i < 2 {
			continue
		}
		parMin := parentMinIdx(i)
		parMax := parMin + 1
		assert.False(t, h.less(h.data[i], h.data[parMin]),
			"min slot %d below parent min %d", i, parMin)
		nodeMax := i
		if i+1 < n {
			nodeMax = i + 1
		}
		assert.False(t, h.less(h.data[parMax], h.data[nodeMax]),
			"max slot %d above parent max %d", nodeMax, parMax)
	}
}

func TestHeap_scenario(t *testing.T) {
	t.Parallel()

	h := New(5, 3, 8, 1, 9, 2)
	checkInvariants(t, &h)

	assert.Equal(t, 6, h.Size())
	assert.Equal(t, 1, h.Min())
	assert.Equal(t, 9, h.Max())

	assert.Equal(t, 9, h.PopMax())
	assert.Equal(t, 8, h.Max())
	checkInvariants(t, &h)

	assert.Equal(t, 1, h.ReplaceMin(10))
	assert.Equal(t, 2, h.Min())
	assert.Equal(t, 10, h.Max())
	checkInvariants(t, &h)
}

func TestHeap_heapsortBothDirections(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		items []int
	}{
		{name: "empty", items: nil},
		{name: "single", items: []int{7}},
		{name: "pair", items: []int{9, 2}},
		{name: "sorted", items: []int{1, 2, 3, 4, 5}},
		{name: "reversed", items: []int{5, 4, 3, 2, 1}},
		{name: "duplicates", items: []int{3, 1, 3, 1, 3, 1}},
		{name: "odd size", items: []int{5, 3, 8, 1, 9, 2, -4}},
		{name: "even size", items: []int{5, 3, 8, 1, 9, 2, -4, 0, 7, 7}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ascending := New(tc.items...)
			checkInvariants(t, &ascending)
			descending := ascending.Clone()

			var asc []int
			for !ascending.Empty() {
				asc = append(asc, ascending.PopMin())
				checkInvariants(t, &ascending)
			}
			assert.True(t, sort.IntsAreSorted(asc))
			assert.ElementsMatch(t, tc.items, asc)

			var desc []int
			for !descending.Empty() {
				desc = append(desc, descending.PopMax())
				checkInvariants(t, &descending)
			}
			assert.True(t, sort.SliceIsSorted(desc, func(i, j int) bool {
				return desc[i] > desc[j]
			}))
			assert.ElementsMatch(t, tc.items, desc)
		})
	}
}

func TestHeap_smallSizesExhaustive(t *testing.T) {
	t.Parallel()

	// every odd/even boundary up to a few levels deep, for both heapify and
	// incremental insertion
	rng := rand.New(rand.NewSource(99))
	for size := 0; size <= 33; size++ {
		items := make([]int, size)
		for i := range items {
			items[i] = rng.Intn(50)
		}

		built := New(items...)
		checkInvariants(t, &built)

		pushed := New[int]()
		for _, v := range items {
			pushed.Push(v)
			checkInvariants(t, &pushed)
		}

		if size == 0 {
			continue
		}
		sorted := append([]int(nil), items...)
		sort.Ints(sorted)
		require.Equal(t, sorted[0], built.Min(), "size %d", size)
		require.Equal(t, sorted[size-1], built.Max(), "size %d", size)
		require.Equal(t, sorted[0], pushed.Min(), "size %d", size)
		require.Equal(t, sorted[size-1], pushed.Max(), "size %d", size)
	}
}

func TestHeap_singleElement(t *testing.T) {
	t.Parallel()

	h := New(42)
	assert.Equal(t, 42, h.Min())
	assert.Equal(t, 42, h.Max(), "Max aliases Min on a one-element heap")

	assert.Equal(t, 42, h.ReplaceMax(7))
	assert.Equal(t, 7, h.Min())
	assert.Equal(t, 7, h.Max())

	assert.Equal(t, 7, h.PopMax())
	assert.True(t, h.Empty())

	h.Push(1)
	assert.Equal(t, 1, h.PopMin())
	assert.True(t, h.Empty())
}

func TestHeap_randomizedAgainstOracle(t *testing.T) {
	t.Parallel()

	const ops = 20_000

	rng := rand.New(rand.NewSource(321))
	h := New[int]()
	oracle := heaptest.NewOracle(intLess)

	check := func() {
		require.Equal(t, oracle.Size(), h.Size())
		require.Equal(t, oracle.Empty(), h.Empty())
		if !oracle.Empty() {
			require.Equal(t, oracle.Min(), h.Min())
			require.Equal(t, oracle.Max(), h.Max())
		}
	}

	for i := 0; i < ops; i++ {
		v := rng.Intn(1000)
		switch op := rng.Intn(6); {
		case op == 0 && !h.Empty():
			require.Equal(t, oracle.PopMin(), h.PopMin())
		case op == 1 && !h.Empty():
			require.Equal(t, oracle.PopMax(), h.PopMax())
		case op == 2 && !h.Empty():
			oracle.PopMin()
			oracle.Push(v)
			h.ReplaceMin(v)
		case op == 3 && !h.Empty():
			oracle.PopMax()
			oracle.Push(v)
			h.ReplaceMax(v)
		default:
			oracle.Push(v)
			h.Push(v)
		}
		check()
	}

	for !h.Empty() {
		require.Equal(t, oracle.PopMin(), h.PopMin())
		check()
	}
	checkInvariants(t, &h)
}

func TestHeap_replaceMatchesPopPush(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(654))

	items := make([]int, 201)
	for i := range items {
		items[i] = rng.Intn(500)
	}

	fused := New(items...)
	naive := fused.Clone()

	for i := 0; i < 500; i++ {
		v := rng.Intn(500)
		if i%2 == 0 {
			assert.Equal(t, naive.PopMin(), fused.ReplaceMin(v))
		} else {
			assert.Equal(t, naive.PopMax(), fused.ReplaceMax(v))
		}
		naive.Push(v)

		require.Equal(t, naive.Size(), fused.Size())
		require.Equal(t, naive.Min(), fused.Min())
		require.Equal(t, naive.Max(), fused.Max())
	}

	// same multiset, same drain order
	for !naive.Empty() {
		require.Equal(t, naive.PopMin(), fused.PopMin())
	}
	assert.True(t, fused.Empty())
}

func TestHeap_emptyPreconditions(t *testing.T) {
	t.Parallel()

	h := New[int]()

	assert.True(t, h.Empty())
	assert.Zero(t, h.Size())
	assert.Panics(t, func() { h.Min() })
	assert.Panics(t, func() { h.Max() })
	assert.Panics(t, func() { h.PopMin() })
	assert.Panics(t, func() { h.PopMax() })
	assert.Panics(t, func() { h.ReplaceMin(1) })
	assert.Panics(t, func() { h.ReplaceMax(1) })
}

func TestHeap_swap(t *testing.T) {
	t.Parallel()

	a := New(4, 5, 6)
	b := New(1, 2)

	a.Swap(&b)
	assert.Equal(t, 1, a.Min())
	assert.Equal(t, 2, a.Max())
	assert.Equal(t, 4, b.Min())
	assert.Equal(t, 6, b.Max())

	Swap(&a, &b)
	assert.Equal(t, 4, a.Min())
	assert.Equal(t, 1, b.Min())
	checkInvariants(t, &a)
	checkInvariants(t, &b)
}

func TestHeap_drain(t *testing.T) {
	t.Parallel()

	h := New(3, 1, 2)
	data := h.Drain()

	assert.ElementsMatch(t, []int{1, 2, 3}, data)
	assert.True(t, h.Empty())

	// drained heap stays usable
	h.Push(10)
	assert.Equal(t, 10, h.Min())
	assert.Equal(t, 10, h.Max())
}

func TestHeap_reserve(t *testing.T) {
	t.Parallel()

	h := New(2, 1, 3)
	h.Reserve(100)

	assert.GreaterOrEqual(t, cap(h.data), 100)
	assert.Equal(t, 3, h.Size())
	assert.Equal(t, 1, h.Min())
	assert.Equal(t, 3, h.Max())
	checkInvariants(t, &h)
}

func TestHeap_newDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	items := []int{5, 3, 8, 1, 9, 2}
	h := New(items...)

	h.PopMax()
	h.Push(100)
	h.ReplaceMin(50)

	// construction copies; the caller's slice must never move
	assert.Equal(t, []int{5, 3, 8, 1, 9, 2}, items)
	checkInvariants(t, &h)
}

func TestHeap_fromSlice(t *testing.T) {
	t.Parallel()

	data := []int{5, 3, 8, 1, 9, 2}
	h := FromSlice(intLess, data)

	checkInvariants(t, &h)
	assert.Equal(t, 1, h.Min())
	assert.Equal(t, 9, h.Max())
	assert.Same(t, &data[0], &h.data[0], "FromSlice adopts the caller's slice")
}

func TestHeap_fromSeq(t *testing.T) {
	t.Parallel()

	h := FromSeq(intLess, util.SeqOf(5, 3, 8, 1, 9, 2))

	checkInvariants(t, &h)
	assert.Equal(t, 1, h.Min())
	assert.Equal(t, 9, h.Max())
}

func TestHeap_reversedComparator(t *testing.T) {
	t.Parallel()

	h := NewFunc(func(a, b int) bool { return b < a }, 5, 3, 8, 1, 9, 2)
	checkInvariants(t, &h)

	// roles flip: Min yields the largest element
	assert.Equal(t, 9, h.Min())
	assert.Equal(t, 1, h.Max())
}

func TestHeap_structElements(t *testing.T) {
	t.Parallel()

	type entry struct {
		key  string
		prio int
	}

	h := NewFunc(
		func(a, b entry) bool { return a.prio < b.prio },
		entry{key: "b", prio: 2},
		entry{key: "c", prio: 3},
		entry{key: "a", prio: 1},
	)

	assert.Equal(t, "a", h.Min().key)
	assert.Equal(t, "c", h.PopMax().key)
	assert.Equal(t, "b", h.PopMax().key)
	assert.Equal(t, "a", h.PopMax().key)
}
