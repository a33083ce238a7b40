// Package avl implements an AVL tree: an ordered set of unique keys kept
// height balanced after every insert and remove.
//
// A tree is not safe for concurrent use. Access it from a single goroutine
// or guard the whole tree with a sync.Mutex (or sync.RWMutex for readers).
package avl

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	// height of an absent subtree, so a leaf has height 0
	emptyHeight = -1

	// largest |balance factor| a node may have once an operation returns
	maxImbalance = 1
)

var (
	ErrNoMoreKeys = errors.New("There are no more keys in the sequence")

	ErrOrder   = errors.New("key out of order")
	ErrHeight  = errors.New("stored height mismatch")
	ErrBalance = errors.New("node out of balance")
)

type (
	tree[K constraints.Ordered] struct {
		root *node[K]
	}

	node[K constraints.Ordered] struct {
		key    K
		height int
		left   *node[K]
		right  *node[K]
	}

	// walkOrder selects where a node is visited relative to its children
	walkOrder int
)

const (
	preOrder walkOrder = iota
	inOrder
	postOrder
)

func newLeaf[K constraints.Ordered](key K) *node[K] {
	return &node[K]{
		key:    key,
		height: 0,
	}
}

func (o walkOrder) String() string {
	return []string{"pre-order", "in-order", "post-order"}[o]
}
