package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Script struct {
	Keys  string `yaml:"keys"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one of its lists.
type Step struct {
	Insert keyList  `yaml:"insert"`
	Remove keyList  `yaml:"remove"`
	Print  []string `yaml:"print"`
}

// keyList keeps scalars as written so integer and string keys share one
// script format; parsing happens once the key type is known.
type keyList []string

func (l *keyList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: expected a list of keys", value.Line)
	}
	keys := make(keyList, 0, len(value.Content))
	for _, item := range value.Content {
		if item.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: key must be a scalar", item.Line)
		}
		keys = append(keys, item.Value)
	}
	*l = keys
	return nil
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, errors.Wrapf(err, "parse script %s", path)
	}
	return &script, nil
}

func (s *Script) Run(r runner) error {
	for i, step := range s.Steps {
		set := 0
		for _, present := range []bool{step.Insert != nil, step.Remove != nil, step.Print != nil} {
			if present {
				set++
			}
		}
		if set != 1 {
			return errors.Errorf("step %d: want exactly one of insert, remove, print", i+1)
		}

		var err error
		switch {
		case step.Insert != nil:
			err = r.insert(step.Insert)
		case step.Remove != nil:
			err = r.remove(step.Remove)
		default:
			err = r.print(step.Print)
		}
		if err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}
