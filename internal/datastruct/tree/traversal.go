package tree

import "cmp"

// The walks below use explicit stacks instead of recursion: the tree is
// never rebalanced, so its depth can equal its size.

func walkInOrder[T cmp.Ordered](root *node[T], yield func(T) bool) {
	var stack []*node[T]
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.value) {
			return
		}
		n = n.right
	}
}

func walkPreOrder[T cmp.Ordered](root *node[T], yield func(T) bool) {
	if root == nil {
		return
	}

	stack := []*node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.value) {
			return
		}

		// Right is pushed first so that left is visited first.
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func walkPostOrder[T cmp.Ordered](root *node[T], yield func(T) bool) {
	var (
		stack []*node[T]
		last  *node[T]
	)

	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}

		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}

		stack = stack[:len(stack)-1]
		if !yield(top.value) {
			return
		}
		last = top
	}
}
