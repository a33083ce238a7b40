package avl

import (
	"fmt"
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Dump writes an ASCII picture of the tree to w, right subtree above each
// node and left subtree below it, and returns the number of levels.
func (t *tree[K]) Dump(w io.Writer) (int, error) {
	if t == nil {
		return 0, nil
	}
	return t.root.dump(w, "", rootBranch)
}

func (n *node[K]) dump(w io.Writer, prefix string, br branch) (int, error) {
	if n == nil {
		return 0, nil
	}

	rd, ld := 0, 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		var err error
		if rd, err = n.right.dump(w, prefix+pad, rightBranch); err != nil {
			return 0, err
		}
	}

	marker := "|------+"
	switch br {
	case leftBranch:
		marker = "\\------+"
	case rightBranch:
		marker = "/------+"
	}
	if _, err := fmt.Fprintf(w, "%s%s %v h=%d bf=%+d\n", prefix, marker, n.key, n.height, balanceFactor(n)); err != nil {
		return 0, err
	}

	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		var err error
		if ld, err = n.left.dump(w, prefix+pad, leftBranch); err != nil {
			return 0, err
		}
	}

	return 1 + max(rd, ld), nil
}
