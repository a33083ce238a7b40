package avl

import "golang.org/x/exp/constraints"

// height of a possibly absent subtree
func height[K constraints.Ordered](n *node[K]) int {
	if n == nil {
		return emptyHeight
	}
	return n.height
}

func balanceFactor[K constraints.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// children must already carry valid heights
func (n *node[K]) recomputeHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// promote n.left; n becomes the right child of the new root
func (n *node[K]) rotateRight() *node[K] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.recomputeHeight()
	pivot.recomputeHeight()

	return pivot
}

// promote n.right; n becomes the left child of the new root
func (n *node[K]) rotateLeft() *node[K] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	n.recomputeHeight()
	pivot.recomputeHeight()

	return pivot
}

// left subtree heavy but leaning right
func (n *node[K]) rotateLeftRight() *node[K] {
	n.left = n.left.rotateLeft()
	return n.rotateRight()
}

// right subtree heavy but leaning left
func (n *node[K]) rotateRightLeft() *node[K] {
	n.right = n.right.rotateRight()
	return n.rotateLeft()
}

// rebalance restores height and balance of n and returns the root of the
// subtree that now occupies n's slot.
func (n *node[K]) rebalance() *node[K] {
	n.recomputeHeight()

	bf := balanceFactor(n)
	leftBF := balanceFactor(n.left)
	rightBF := balanceFactor(n.right)

	switch {
	case bf > maxImbalance && leftBF >= 0:
		return n.rotateRight()
	case bf > maxImbalance && leftBF < 0:
		return n.rotateLeftRight()
	case bf < -maxImbalance && rightBF <= 0:
		return n.rotateLeft()
	case bf < -maxImbalance && rightBF > 0:
		return n.rotateRightLeft()
	}
	return n
}

// find the node holding key under n
func (n *node[K]) find(key K) *node[K] {
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// leftmost node under n, n must not be nil
func (n *node[K]) minimum() *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K]) maximum() *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *node[K]) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.count() + n.right.count()
}

func (n *node[K]) walk(order walkOrder, seq *Sequence[K]) {
	if n == nil {
		return
	}

	if order == preOrder {
		seq.PushBack(n.key)
	}
	n.left.walk(order, seq)
	if order == inOrder {
		seq.PushBack(n.key)
	}
	n.right.walk(order, seq)
	if order == postOrder {
		seq.PushBack(n.key)
	}
}
