package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/e11jah/avl"
)

const (
	intKeys    = "int"
	stringKeys = "string"
)

// runner applies steps to a tree whose key type is chosen at run time.
type runner interface {
	insert(raw []string) error
	remove(raw []string) error
	print(items []string) error
}

type session[K constraints.Ordered] struct {
	tree  avl.Tree[K]
	parse func(raw string) (K, error)
	out   io.Writer
}

func newRunner(keyType string, out io.Writer) (runner, error) {
	switch keyType {
	case "", intKeys:
		return &session[int]{tree: avl.New[int](), parse: parseInt, out: out}, nil
	case stringKeys:
		return &session[string]{tree: avl.New[string](), parse: parseString, out: out}, nil
	}
	return nil, errors.Errorf("unknown key type %q", keyType)
}

func parseInt(raw string) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(err, "key %q", raw)
	}
	return k, nil
}

func parseString(raw string) (string, error) {
	return raw, nil
}

func (s *session[K]) keys(raw []string) ([]K, error) {
	keys := make([]K, 0, len(raw))
	for _, r := range raw {
		k, err := s.parse(r)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (s *session[K]) insert(raw []string) error {
	keys, err := s.keys(raw)
	if err != nil {
		return err
	}
	for _, k := range keys {
		added := s.tree.Insert(k)
		h, _ := s.tree.HeightOf(k)
		Log.WithFields(logrus.Fields{
			"op":     "insert",
			"key":    k,
			"added":  added,
			"height": s.tree.Height(),
			"node_h": h,
		}).Debug("applied")
	}
	return nil
}

func (s *session[K]) remove(raw []string) error {
	keys, err := s.keys(raw)
	if err != nil {
		return err
	}
	for _, k := range keys {
		removed := s.tree.Remove(k)
		Log.WithFields(logrus.Fields{
			"op":      "remove",
			"key":     k,
			"removed": removed,
			"height":  s.tree.Height(),
		}).Debug("applied")
	}
	return nil
}

func (s *session[K]) print(items []string) error {
	for _, item := range items {
		var err error
		switch item {
		case "in":
			err = s.printSequence("in-order", s.tree.InOrder())
		case "pre":
			err = s.printSequence("pre-order", s.tree.PreOrder())
		case "post":
			err = s.printSequence("post-order", s.tree.PostOrder())
		case "count":
			_, err = fmt.Fprintf(s.out, "count: %d\n", s.tree.Count())
		case "heights":
			err = s.printHeights()
		case "dump":
			_, err = s.tree.Dump(s.out)
		case "check":
			if err = s.tree.Check(); err == nil {
				_, err = fmt.Fprintln(s.out, "check: ok")
			}
		default:
			err = errors.Errorf("unknown print item %q", item)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *session[K]) printSequence(label string, seq *avl.Sequence[K]) error {
	words := make([]string, 0, seq.Len())
	for it := seq.Iterator(); it.HasNext(); {
		k, err := it.Next()
		if err != nil {
			return err
		}
		words = append(words, fmt.Sprint(k))
	}
	_, err := fmt.Fprintf(s.out, "%s: %s\n", label, strings.Join(words, " "))
	return err
}

// one line per key in ascending order: stored height and both children
func (s *session[K]) printHeights() error {
	for _, k := range s.tree.InOrder().Keys() {
		h, _ := s.tree.HeightOf(k)
		left, right := "-", "-"
		if l, ok := s.tree.LeftChildKeyOf(k); ok {
			left = fmt.Sprint(l)
		}
		if r, ok := s.tree.RightChildKeyOf(k); ok {
			right = fmt.Sprint(r)
		}
		if _, err := fmt.Fprintf(s.out, "%v h=%d left=%s right=%s\n", k, h, left, right); err != nil {
			return err
		}
	}
	return nil
}
