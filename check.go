package avl

import (
	"github.com/pkg/errors"
)

// Check walks the whole tree and reports the first node that breaks the
// ordering, height or balance rules. A nil result means the tree is sound.
func (t *tree[K]) Check() error {
	if t == nil {
		return nil
	}
	_, err := t.root.check(nil, nil)
	return err
}

// check validates the subtree against the open interval (low, high) it
// inherited from its ancestors and returns the height it computed
func (n *node[K]) check(low, high *K) (int, error) {
	if n == nil {
		return emptyHeight, nil
	}

	if low != nil && !(*low < n.key) {
		return 0, errors.Wrapf(ErrOrder, "key %v not above %v", n.key, *low)
	}
	if high != nil && !(n.key < *high) {
		return 0, errors.Wrapf(ErrOrder, "key %v not below %v", n.key, *high)
	}

	lh, err := n.left.check(low, &n.key)
	if err != nil {
		return 0, err
	}
	rh, err := n.right.check(&n.key, high)
	if err != nil {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if h != n.height {
		return 0, errors.Wrapf(ErrHeight, "key %v stored %d computed %d", n.key, n.height, h)
	}
	if bf := lh - rh; bf > maxImbalance || bf < -maxImbalance {
		return 0, errors.Wrapf(ErrBalance, "key %v balance factor %+d", n.key, bf)
	}
	return h, nil
}
