package engine

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvzc/treeheap/internal/datastruct/heap"
	"github.com/xvzc/treeheap/internal/datastruct/tree"
)

func newTestEngine() *Engine {
	return New(zerolog.Nop())
}

func TestEngine_Report(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()

	for _, v := range []int32{5, 3, 8, 1, 4} {
		assert.True(t, e.InsertTree(ctx, v))
	}
	assert.False(t, e.InsertTree(ctx, 5))

	for _, v := range []int32{7, 2, 9, 2} {
		e.InsertHeap(ctx, v)
	}

	r := e.Report(ctx)
	assert.Equal(t, []int32{1, 3, 4, 5, 8}, r.InOrder)
	assert.Equal(t, []int32{5, 3, 1, 4, 8}, r.PreOrder)
	assert.Equal(t, []int32{1, 4, 3, 8, 5}, r.PostOrder)
	assert.Equal(t, []int32{2, 2, 7, 9}, r.Heap)

	// Reporting does not consume the heap.
	assert.Equal(t, r, e.Report(ctx))
	assert.Equal(t, Stats{TreeSize: 5, TreeHeight: 3, HeapSize: 4}, e.Stats())
}

func TestEngine_Traverse(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()

	for _, v := range []int32{5, 3, 8, 1, 4} {
		e.InsertTree(ctx, v)
	}

	tcs := []struct {
		order tree.Order
		want  []int32
	}{
		{order: tree.OrderIn, want: []int32{1, 3, 4, 5, 8}},
		{order: tree.OrderPre, want: []int32{5, 3, 1, 4, 8}},
		{order: tree.OrderPost, want: []int32{1, 4, 3, 8, 5}},
	}

	for _, tc := range tcs {
		t.Run(tc.order.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, e.Traverse(ctx, tc.order))
		})
	}

	assert.Equal(t, []int32{}, newTestEngine().Traverse(ctx, tree.OrderPost))
}

func TestEngine_EmptyReport(t *testing.T) {
	r := newTestEngine().Report(context.Background())

	assert.Empty(t, r.InOrder)
	assert.Empty(t, r.PreOrder)
	assert.Empty(t, r.PostOrder)
	assert.Empty(t, r.Heap)
}

func TestEngine_PopHeap(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()

	_, err := e.PopHeap(ctx)
	assert.ErrorIs(t, err, heap.ErrEmptyCollection)

	e.InsertHeap(ctx, 4)
	e.InsertHeap(ctx, -1)

	v, err := e.PopHeap(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
	assert.Equal(t, []int32{4}, e.Report(ctx).Heap)
}

func TestEngine_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()

	const workers, perWorker = 8, 200

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				v := int32(w*perWorker + i)
				e.InsertTree(ctx, v%500)
				e.InsertHeap(ctx, v%50)
				if i%50 == 0 {
					r := e.Report(ctx)
					assert.True(t, slices.IsSorted(r.InOrder))
					assert.True(t, slices.IsSorted(r.Heap))
				}
			}
		}()
	}
	wg.Wait()

	r := e.Report(ctx)

	expectTree := make([]int32, 500)
	for i := range expectTree {
		expectTree[i] = int32(i)
	}
	assert.Equal(t, expectTree, r.InOrder)
	assert.ElementsMatch(t, r.InOrder, r.PreOrder)

	require.Len(t, r.Heap, workers*perWorker)
	assert.True(t, slices.IsSorted(r.Heap))
	assert.Equal(t, int32(0), r.Heap[0])
	assert.Equal(t, int32(49), r.Heap[len(r.Heap)-1])
}

func TestEngine_Seed(t *testing.T) {
	tcs := []struct {
		name   string
		ctx    func() context.Context
		tree   []int32
		heap   []int32
		assert func(t *testing.T, e *Engine, err error)
	}{
		{
			name: "both structures",
			ctx:  context.Background,
			tree: []int32{5, 3, 8, 1, 4},
			heap: []int32{7, 2, 9, 2},
			assert: func(t *testing.T, e *Engine, err error) {
				require.NoError(t, err)
				r := e.Report(context.Background())
				assert.Equal(t, []int32{5, 3, 1, 4, 8}, r.PreOrder)
				assert.Equal(t, []int32{2, 2, 7, 9}, r.Heap)
			},
		},
		{
			name: "nothing to seed",
			ctx:  context.Background,
			assert: func(t *testing.T, e *Engine, err error) {
				require.NoError(t, err)
				assert.Equal(t, Stats{}, e.Stats())
			},
		},
		{
			name: "cancelled context",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			tree: []int32{1, 2, 3},
			heap: []int32{1},
			assert: func(t *testing.T, e *Engine, err error) {
				assert.ErrorIs(t, err, context.Canceled)
				assert.Equal(t, Stats{}, e.Stats())
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine()
			err := e.Seed(tc.ctx(), tc.tree, tc.heap)
			tc.assert(t, e, err)
		})
	}
}
