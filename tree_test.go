package avl

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openacid/testkeys"
)

func buildTree[K int | string](keys ...K) Tree[K] {
	tree := New[K]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func TestTreeInsertRotations(t *testing.T) {
	dataSet := []struct {
		name      string
		keys      []int
		preOrder  []int
		postOrder []int
	}{
		{
			"single left",
			[]int{10, 20, 30},
			[]int{20, 10, 30},
			[]int{10, 30, 20},
		},
		{
			"single right",
			[]int{30, 20, 10},
			[]int{20, 10, 30},
			[]int{10, 30, 20},
		},
		{
			"right-left",
			[]int{10, 30, 20},
			[]int{20, 10, 30},
			[]int{10, 30, 20},
		},
		{
			"left-right",
			[]int{30, 10, 20},
			[]int{20, 10, 30},
			[]int{10, 30, 20},
		},
		{
			"ascending run",
			[]int{1, 2, 3, 4, 5, 6, 7},
			[]int{4, 2, 1, 3, 6, 5, 7},
			[]int{1, 3, 2, 5, 7, 6, 4},
		},
		{
			"descending run",
			[]int{7, 6, 5, 4, 3, 2, 1},
			[]int{4, 2, 1, 3, 6, 5, 7},
			[]int{1, 3, 2, 5, 7, 6, 4},
		},
	}

	for _, d := range dataSet {
		tree := buildTree(d.keys...)

		assert.Equal(t, d.preOrder, tree.PreOrder().Keys(), d.name)
		assert.Equal(t, d.postOrder, tree.PostOrder().Keys(), d.name)
		assert.NoError(t, tree.Check(), d.name)
	}
}

func TestTreeSingleLeftRotationShape(t *testing.T) {
	tree := buildTree(10, 20, 30)

	left, ok := tree.LeftChildKeyOf(20)
	require.True(t, ok)
	assert.Equal(t, 10, left)

	right, ok := tree.RightChildKeyOf(20)
	require.True(t, ok)
	assert.Equal(t, 30, right)

	for key, expected := range map[int]int{20: 1, 10: 0, 30: 0} {
		h, ok := tree.HeightOf(key)
		assert.True(t, ok)
		assert.Equal(t, expected, h, "height of %d", key)
	}

	assert.Equal(t, []int{10, 20, 30}, tree.InOrder().Keys())
	assert.Equal(t, 1, tree.Height())
}

func TestTreeRemoveTwoChildren(t *testing.T) {
	tree := buildTree(30, 20, 40, 10, 25, 35, 50, 5)
	require.NoError(t, tree.Check())

	assert.True(t, tree.Remove(30))
	assert.False(t, tree.Contains(30))
	assert.NoError(t, tree.Check())

	// the in-order successor took over the root slot
	assert.Equal(t, []int{35, 20, 10, 5, 25, 40, 50}, tree.PreOrder().Keys())
	assert.Equal(t, []int{5, 10, 20, 25, 35, 40, 50}, tree.InOrder().Keys())

	h, ok := tree.HeightOf(35)
	assert.True(t, ok)
	assert.Equal(t, 3, h)

	right, ok := tree.RightChildKeyOf(40)
	assert.True(t, ok)
	assert.Equal(t, 50, right)

	_, ok = tree.LeftChildKeyOf(40)
	assert.False(t, ok)
}

func TestTreeRemoveCases(t *testing.T) {
	dataSet := []struct {
		name     string
		keys     []int
		remove   int
		preOrder []int
	}{
		{
			"leaf",
			[]int{20, 10, 30},
			10,
			[]int{20, 30},
		},
		{
			"one child",
			[]int{20, 10, 30, 40},
			30,
			[]int{20, 10, 40},
		},
		{
			"root with two children",
			[]int{20, 10, 30},
			20,
			[]int{30, 10},
		},
		{
			"rotation on unwind",
			[]int{20, 10, 30, 40},
			10,
			[]int{30, 20, 40},
		},
		{
			"double rotation on unwind",
			[]int{20, 10, 30, 25},
			10,
			[]int{25, 20, 30},
		},
		{
			"last key",
			[]int{1},
			1,
			[]int{},
		},
	}

	for _, d := range dataSet {
		tree := buildTree(d.keys...)

		assert.True(t, tree.Remove(d.remove), d.name)
		assert.Equal(t, d.preOrder, tree.PreOrder().Keys(), d.name)
		assert.Equal(t, len(d.keys)-1, tree.Count(), d.name)
		assert.NoError(t, tree.Check(), d.name)
	}
}

func TestTreeEmpty(t *testing.T) {
	tree := New[int]()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, -1, tree.Height())
	assert.False(t, tree.Contains(1))
	assert.False(t, tree.Remove(1))
	assert.NoError(t, tree.Check())

	_, ok := tree.HeightOf(1)
	assert.False(t, ok)
	_, ok = tree.LeftChildKeyOf(1)
	assert.False(t, ok)
	_, ok = tree.RightChildKeyOf(1)
	assert.False(t, ok)
	_, ok = tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	assert.Equal(t, 0, tree.InOrder().Len())
	assert.Equal(t, 0, tree.PreOrder().Len())
	assert.Equal(t, 0, tree.PostOrder().Len())
}

func TestTreeRoundTrip(t *testing.T) {
	tree := New[string]()

	assert.True(t, tree.Insert("banana"))
	assert.True(t, tree.Contains("banana"))
	assert.False(t, tree.IsEmpty())

	assert.True(t, tree.Remove("banana"))
	assert.False(t, tree.Contains("banana"))
	assert.True(t, tree.IsEmpty())
}

func TestTreeDuplicatesAndAbsent(t *testing.T) {
	keys := []string{"dog", "cat", "elephant", "bird", "cat", "dog", "dog"}
	tree := buildTree(keys...)

	before := tree.InOrder().Keys()
	assert.Equal(t, []string{"bird", "cat", "dog", "elephant"}, before)
	assert.Equal(t, 4, tree.Count())

	assert.False(t, tree.Insert("cat"))
	assert.Equal(t, 4, tree.Count())
	assert.Equal(t, before, tree.InOrder().Keys())

	preBefore := tree.PreOrder().Keys()
	assert.False(t, tree.Remove("zebra"))
	assert.Equal(t, 4, tree.Count())
	assert.Equal(t, preBefore, tree.PreOrder().Keys())
}

func TestTreeMinMax(t *testing.T) {
	tree := buildTree(50, 20, 80, 10, 90, 60)

	lowest, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, 10, lowest)

	highest, ok := tree.Max()
	assert.True(t, ok)
	assert.Equal(t, 90, highest)
}

func TestTreeTraversalConsistency(t *testing.T) {
	tree := buildTree(42, 17, 8, 99, 23, 4, 15, 16, 71, 3, 64)

	in := tree.InOrder().Keys()
	for _, seq := range []*Sequence[int]{tree.PreOrder(), tree.PostOrder()} {
		keys := seq.Keys()
		assert.Len(t, keys, tree.Count())
		sort.Ints(keys)
		assert.Equal(t, in, keys)
	}

	// restartable and side effect free
	assert.Equal(t, in, tree.InOrder().Keys())
	assert.NoError(t, tree.Check())
}

// random workload checked against a map after every mutation
func TestTreeRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(20141014))

	for round := 0; round < 8; round++ {
		tree := New[int]()
		model := make(map[int]struct{})

		for i := 0; i < 3000; i++ {
			key := rnd.Intn(1000)
			_, present := model[key]

			if rnd.Intn(3) == 0 {
				assert.Equal(t, present, tree.Remove(key))
				delete(model, key)
			} else {
				assert.Equal(t, !present, tree.Insert(key))
				model[key] = struct{}{}
			}

			if i%97 == 0 {
				require.NoError(t, tree.Check(), "round %d op %d", round, i)
			}
		}

		require.NoError(t, tree.Check())
		assert.Equal(t, len(model), tree.Count())
		assertAscending(t, tree.InOrder().Keys())
		assertHeightBound(t, tree)

		for key := range model {
			assert.True(t, tree.Contains(key))
		}
	}
}

func TestTreeSequentialInsertRemove(t *testing.T) {
	const n = 1 << 12
	tree := New[int]()

	for i := 0; i < n; i++ {
		tree.Insert(i)
	}
	require.NoError(t, tree.Check())
	assertHeightBound(t, tree)

	for i := 0; i < n; i += 2 {
		require.True(t, tree.Remove(i))
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, n/2, tree.Count())
	assertHeightBound(t, tree)

	for i := 1; i < n; i += 2 {
		require.True(t, tree.Remove(i))
	}
	assert.True(t, tree.IsEmpty())
}

func TestWalkOrderNames(t *testing.T) {
	assert.Equal(t, "pre-order", preOrder.String())
	assert.Equal(t, "in-order", inOrder.String())
	assert.Equal(t, "post-order", postOrder.String())
}

func TestBigKeySet(t *testing.T) {
	keys := getKeys("1mvl5_10")

	n := len(keys)
	fmt.Printf("key len %d\n", n)

	expected := append([]string(nil), keys...)
	sort.Strings(expected)
	expected = dedupe(expected)

	tree := New[string]()
	for _, k := range keys {
		tree.Insert(k)
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, expected, tree.InOrder().Keys())
	assertHeightBound(t, tree)

	for i, k := range expected {
		if i%2 == 0 {
			tree.Remove(k)
		}
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, len(expected)/2, tree.Count())
}

func assertAscending[K int | string](t *testing.T, keys []K) {
	t.Helper()
	for i := 1; i < len(keys); i++ {
		if !assert.Less(t, keys[i-1], keys[i], "position %d", i) {
			return
		}
	}
}

// AVL height is below 1.4405*log2(n+2)
func assertHeightBound[K int | string](t *testing.T, tree Tree[K]) {
	t.Helper()
	n := tree.Count()
	bound := 1.4405 * math.Log2(float64(n)+2)
	assert.LessOrEqual(t, float64(tree.Height()), bound, "n=%d", n)
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, k := range sorted {
		if i == 0 || k != sorted[i-1] {
			out = append(out, k)
		}
	}
	return out
}

var cache map[string][]string = map[string][]string{}

func getKeys(fn string) []string {
	ss, ok := cache[fn]
	if ok {
		return ss
	}
	ks := testkeys.Load(fn)
	cache[fn] = ks
	return ks
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, typ string, key []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)

		n := len(keys)
		if n < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, fn, keys)
		})
	}
}

func BenchmarkWordsTreeInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			tree := New[string]()

			for _, k := range keys {
				tree.Insert(k)
			}
		}
	})
}

func BenchmarkWordsTreeContains(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tree := New[string]()
		for _, k := range keys {
			tree.Insert(k)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Contains(keys[i%len(keys)])
		}
	})
}

func BenchmarkWordsTreeRemove(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			b.StopTimer()
			tree := New[string]()
			for _, k := range keys {
				tree.Insert(k)
			}
			b.StartTimer()

			for _, k := range keys {
				tree.Remove(k)
			}
		}
	})
}
