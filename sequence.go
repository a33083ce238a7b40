package avl

// Sequence is an append-only list of keys kept in the order they were pushed.
// Traversals return a freshly built Sequence on every call.
type Sequence[K any] struct {
	keys []K
}

type sequenceIterator[K any] struct {
	seq  *Sequence[K]
	next int
}

func NewSequence[K any](capacity int) *Sequence[K] {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence[K]{keys: make([]K, 0, capacity)}
}

// PushBack appends k to the end of the sequence.
func (s *Sequence[K]) PushBack(k K) {
	s.keys = append(s.keys, k)
}

func (s *Sequence[K]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

func (s *Sequence[K]) At(i int) (K, bool) {
	if i < 0 || i >= s.Len() {
		var zero K
		return zero, false
	}
	return s.keys[i], true
}

// Keys returns a copy of the keys.
func (s *Sequence[K]) Keys() []K {
	keys := make([]K, s.Len())
	if s != nil {
		copy(keys, s.keys)
	}
	return keys
}

func (s *Sequence[K]) Iterator() Iterator[K] {
	return &sequenceIterator[K]{seq: s}
}

func (it *sequenceIterator[K]) HasNext() bool {
	return it != nil && it.next < it.seq.Len()
}

func (it *sequenceIterator[K]) Next() (K, error) {
	if !it.HasNext() {
		var zero K
		return zero, ErrNoMoreKeys
	}
	k := it.seq.keys[it.next]
	it.next++
	return k, nil
}
