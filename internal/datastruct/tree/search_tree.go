package tree

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrUnknownOrder = errors.New("unknown traversal order")

var _ SearchTree[int] = (*OrderedTree[int])(nil)

// SearchTree is an ordered set that can be walked depth-first.
type SearchTree[T cmp.Ordered] interface {
	Insert(value T)
	// Add is Insert, reporting whether the value was new.
	Add(value T) bool
	Contains(value T) bool
	Len() int
	Height() int
	Traverse(order Order) []T
	All(order Order) iter.Seq[T]
}

type Order int

var availableOrders = []string{"in-order", "pre-order", "post-order"}

const (
	OrderIn Order = iota
	OrderPre
	OrderPost
)

func (o Order) String() string {
	if o < 0 || int(o) >= len(availableOrders) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return availableOrders[o]
}

// ParseOrder accepts the names printed by Order.String, case-insensitively.
func ParseOrder(s string) (Order, error) {
	for i, name := range availableOrders {
		if strings.EqualFold(s, name) {
			return Order(i), nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownOrder, s)
}
