// Package engine owns the ordered tree and the min-heap the shell works on
// and serialises access to each of them.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xvzc/treeheap/internal/datastruct/heap"
	"github.com/xvzc/treeheap/internal/datastruct/tree"
	"golang.org/x/sync/errgroup"
)

// Report is a point-in-time view of both structures.
type Report struct {
	InOrder   []int32
	PreOrder  []int32
	PostOrder []int32
	Heap      []int32
}

type Stats struct {
	TreeSize   int
	TreeHeight int
	HeapSize   int
}

// Engine guards the tree and the heap with independent locks. Mutations take
// the write lock of the structure they touch; views take the read lock, so
// views of one structure may run in parallel with each other and with any
// operation on the other structure.
type Engine struct {
	logger zerolog.Logger

	treeMu sync.RWMutex
	tree   tree.SearchTree[int32]

	heapMu sync.RWMutex
	heap   *heap.SortedMultiset[int32]
}

func New(logger zerolog.Logger) *Engine {
	return &Engine{
		logger: logger,
		tree:   tree.New[int32](),
		heap:   heap.New[int32](),
	}
}

// InsertTree adds v to the tree and reports whether it was not already there.
func (e *Engine) InsertTree(ctx context.Context, v int32) bool {
	e.treeMu.Lock()
	added := e.tree.Add(v)
	size := e.tree.Len()
	e.treeMu.Unlock()

	if added {
		e.logger.Debug().Ctx(ctx).Int32("value", v).Int("size", size).Msg("tree insert")
	} else {
		e.logger.Debug().Ctx(ctx).Int32("value", v).Msg("tree insert ignored; duplicate")
	}

	return added
}

func (e *Engine) InsertHeap(ctx context.Context, v int32) {
	e.heapMu.Lock()
	e.heap.Insert(v)
	size := e.heap.Len()
	e.heapMu.Unlock()

	e.logger.Debug().Ctx(ctx).Int32("value", v).Int("size", size).Msg("heap insert")
}

// PopHeap removes the smallest heap value. The returned error wraps
// heap.ErrEmptyCollection when there is nothing to remove.
func (e *Engine) PopHeap(ctx context.Context) (int32, error) {
	e.heapMu.Lock()
	v, err := e.heap.RemoveMin()
	size := e.heap.Len()
	e.heapMu.Unlock()

	if err != nil {
		return 0, fmt.Errorf("error removing heap minimum: %w", err)
	}

	e.logger.Debug().Ctx(ctx).Int32("value", v).Int("size", size).Msg("heap pop")
	return v, nil
}

// Report collects the three tree traversals and the sorted heap contents.
func (e *Engine) Report(ctx context.Context) Report {
	var r Report

	e.treeMu.RLock()
	r.InOrder = e.tree.Traverse(tree.OrderIn)
	r.PreOrder = e.tree.Traverse(tree.OrderPre)
	r.PostOrder = e.tree.Traverse(tree.OrderPost)
	e.treeMu.RUnlock()

	e.heapMu.RLock()
	r.Heap = e.heap.Snapshot()
	e.heapMu.RUnlock()

	e.logger.Trace().Ctx(ctx).
		Int("tree_size", len(r.InOrder)).
		Int("heap_size", len(r.Heap)).
		Msg("report built")

	return r
}

// Traverse returns the tree values in a single order.
func (e *Engine) Traverse(ctx context.Context, order tree.Order) []int32 {
	e.treeMu.RLock()
	values := e.tree.Traverse(order)
	e.treeMu.RUnlock()

	e.logger.Trace().Ctx(ctx).Stringer("order", order).Int("size", len(values)).Msg("traversal built")

	return values
}

func (e *Engine) Stats() Stats {
	e.treeMu.RLock()
	s := Stats{TreeSize: e.tree.Len(), TreeHeight: e.tree.Height()}
	e.treeMu.RUnlock()

	e.heapMu.RLock()
	s.HeapSize = e.heap.Len()
	e.heapMu.RUnlock()

	return s
}

// Seed loads initial values into both structures. The tree and the heap are
// filled concurrently; each load stops early if ctx is cancelled.
func (e *Engine) Seed(ctx context.Context, treeValues, heapValues []int32) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for _, v := range treeValues {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("tree seed interrupted: %w", err)
			}
			e.InsertTree(ctx, v)
		}
		return nil
	})

	eg.Go(func() error {
		for _, v := range heapValues {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("heap seed interrupted: %w", err)
			}
			e.InsertHeap(ctx, v)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	s := e.Stats()
	e.logger.Info().
		Int("tree_size", s.TreeSize).
		Int("heap_size", s.HeapSize).
		Msg("seeded")

	return nil
}
