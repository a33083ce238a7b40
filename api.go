package avl

import (
	"io"

	"golang.org/x/exp/constraints"
)

type Tree[K constraints.Ordered] interface {
	IsEmpty() bool
	Count() int
	Contains(key K) bool
	HeightOf(key K) (int, bool)
	LeftChildKeyOf(key K) (K, bool)
	RightChildKeyOf(key K) (K, bool)

	// Insert reports whether key was added; a duplicate leaves the tree unchanged.
	Insert(key K) bool
	// Remove reports whether key was present.
	Remove(key K) bool

	InOrder() *Sequence[K]
	PreOrder() *Sequence[K]
	PostOrder() *Sequence[K]

	Min() (K, bool)
	Max() (K, bool)
	Height() int

	Check() error
	Dump(w io.Writer) (int, error)
}

type Iterator[K any] interface {
	HasNext() bool
	Next() (K, error)
}

func New[K constraints.Ordered]() Tree[K] {
	return &tree[K]{}
}
