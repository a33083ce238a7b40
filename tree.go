package avl

func (t *tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Count walks the whole tree, the size is not cached.
func (t *tree[K]) Count() int {
	if t == nil {
		return 0
	}
	return t.root.count()
}

func (t *tree[K]) Contains(key K) bool {
	return t.root.find(key) != nil
}

// HeightOf returns the stored height of the node holding key.
func (t *tree[K]) HeightOf(key K) (int, bool) {
	n := t.root.find(key)
	if n == nil {
		return 0, false
	}
	return n.height, true
}

func (t *tree[K]) LeftChildKeyOf(key K) (K, bool) {
	n := t.root.find(key)
	if n == nil || n.left == nil {
		var zero K
		return zero, false
	}
	return n.left.key, true
}

func (t *tree[K]) RightChildKeyOf(key K) (K, bool) {
	n := t.root.find(key)
	if n == nil || n.right == nil {
		var zero K
		return zero, false
	}
	return n.right.key, true
}

func (t *tree[K]) Insert(key K) bool {
	var added bool
	t.root, added = t.recursiveInsert(t.root, key)
	return added
}

// recursiveInsert returns the new root of the subtree that was rooted at curr
func (t *tree[K]) recursiveInsert(curr *node[K], key K) (*node[K], bool) {
	if curr == nil {
		return newLeaf(key), true
	}

	var added bool
	switch {
	case key < curr.key:
		curr.left, added = t.recursiveInsert(curr.left, key)
	case key > curr.key:
		curr.right, added = t.recursiveInsert(curr.right, key)
	default:
		// duplicate
		return curr, false
	}

	return curr.rebalance(), added
}

func (t *tree[K]) Remove(key K) bool {
	var removed bool
	t.root, removed = t.recursiveRemove(t.root, key)
	return removed
}

func (t *tree[K]) recursiveRemove(curr *node[K], key K) (*node[K], bool) {
	if curr == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < curr.key:
		curr.left, removed = t.recursiveRemove(curr.left, key)
	case key > curr.key:
		curr.right, removed = t.recursiveRemove(curr.right, key)
	default:
		if curr.left == nil || curr.right == nil {
			return t.detach(curr), true
		}

		// two children: take over the in-order successor's key and
		// drop the successor from the right subtree instead
		successor := curr.right.minimum()
		curr.key = successor.key
		curr.right, _ = t.recursiveRemove(curr.right, successor.key)
		removed = true
	}

	return curr.rebalance(), removed
}

// detach unlinks a node with at most one child and returns that child
func (t *tree[K]) detach(curr *node[K]) *node[K] {
	child := curr.left
	if child == nil {
		child = curr.right
	}
	curr.left, curr.right = nil, nil
	return child
}

func (t *tree[K]) InOrder() *Sequence[K] {
	return t.traverse(inOrder)
}

func (t *tree[K]) PreOrder() *Sequence[K] {
	return t.traverse(preOrder)
}

func (t *tree[K]) PostOrder() *Sequence[K] {
	return t.traverse(postOrder)
}

func (t *tree[K]) traverse(order walkOrder) *Sequence[K] {
	seq := NewSequence[K](t.Count())
	t.root.walk(order, seq)
	return seq
}

func (t *tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.minimum().key, true
}

func (t *tree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.maximum().key, true
}

// Height of the root, -1 for an empty tree.
func (t *tree[K]) Height() int {
	return height(t.root)
}
