package tree

import (
	"cmp"
	"iter"
)

// node is a single value in the tree. Children are owned exclusively by
// their parent; there are no back references.
type node[T cmp.Ordered] struct {
	value       T
	left, right *node[T]
}

// OrderedTree is an unbalanced binary search tree. Exact duplicates are
// ignored on insertion, and nothing is ever removed, so the shape only
// depends on the order values were inserted in.
//
// OrderedTree is not safe for concurrent use.
type OrderedTree[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New creates an empty tree.
func New[T cmp.Ordered]() *OrderedTree[T] {
	return &OrderedTree[T]{}
}

// Insert adds value to the tree unless an equal value is already present.
func (t *OrderedTree[T]) Insert(value T) {
	t.insert(value)
}

// Add is Insert, reporting whether the tree changed.
func (t *OrderedTree[T]) Add(value T) bool {
	return t.insert(value)
}

func (t *OrderedTree[T]) insert(value T) bool {
	// Walk a pointer to the link that should hold the new node so that the
	// root and child cases are the same.
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case value < n.value:
			link = &n.left
		case value > n.value:
			link = &n.right
		default:
			return false
		}
	}

	*link = &node[T]{value: value}
	t.size++
	return true
}

// Contains reports whether value has been inserted.
func (t *OrderedTree[T]) Contains(value T) bool {
	n := t.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of distinct values in the tree.
func (t *OrderedTree[T]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *OrderedTree[T]) Height() int {
	if t.root == nil {
		return 0
	}

	type frame struct {
		n     *node[T]
		depth int
	}

	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		height = max(height, f.depth)
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}

	return height
}

// InOrder returns the values in ascending order.
func (t *OrderedTree[T]) InOrder() []T {
	return t.Traverse(OrderIn)
}

// PreOrder returns each node before its left and then right subtree.
func (t *OrderedTree[T]) PreOrder() []T {
	return t.Traverse(OrderPre)
}

// PostOrder returns each node after its left and then right subtree.
func (t *OrderedTree[T]) PostOrder() []T {
	return t.Traverse(OrderPost)
}

// Traverse collects the values in the given order. The result is never nil.
func (t *OrderedTree[T]) Traverse(order Order) []T {
	values := make([]T, 0, t.size)
	for v := range t.All(order) {
		values = append(values, v)
	}
	return values
}

// All returns an iterator over the values in the given order. The iterator
// reads the tree lazily and must not be used across an Insert.
func (t *OrderedTree[T]) All(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		switch order {
		case OrderPre:
			walkPreOrder(t.root, yield)
		case OrderPost:
			walkPostOrder(t.root, yield)
		default:
			walkInOrder(t.root, yield)
		}
	}
}
