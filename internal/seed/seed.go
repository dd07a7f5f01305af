// Package seed bulk-loads product definitions into a catalog.
package seed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ProductCatalog/internal/catalog"
)

// File is the wrapped seed layout. A bare list of products is accepted too.
type File struct {
	Products []catalog.Input `json:"products" yaml:"products"`
}

var ErrEmpty = errors.New("seed file contains no products")

// Load reads a seed file. ".json" files are decoded as JSON, anything else
// as YAML.
func Load(path string) ([]catalog.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var inputs []catalog.Input
	if strings.EqualFold(filepath.Ext(path), ".json") {
		inputs, err = decodeJSON(data)
	} else {
		inputs, err = decodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(inputs) == 0 {
		return nil, ErrEmpty
	}
	return inputs, nil
}

func decodeYAML(data []byte) ([]catalog.Input, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var inputs []catalog.Input
		if err := root.Decode(&inputs); err != nil {
			return nil, err
		}
		return inputs, nil
	}

	var f File
	if err := root.Decode(&f); err != nil {
		return nil, err
	}
	return f.Products, nil
}

func decodeJSON(data []byte) ([]catalog.Input, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var inputs []catalog.Input
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, err
		}
		return inputs, nil
	}

	var f File
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil, err
	}
	return f.Products, nil
}

// Adder is satisfied by catalog.FileStore.
type Adder interface {
	Add(in catalog.Input) (catalog.Product, error)
}

// Apply adds inputs in order and stops at the first failure. It returns the
// products added before that point.
func Apply(store Adder, inputs []catalog.Input) ([]catalog.Product, error) {
	added := make([]catalog.Product, 0, len(inputs))
	for i, in := range inputs {
		p, err := store.Add(in)
		if err != nil {
			return added, fmt.Errorf("seed entry %d (code %q): %w", i+1, in.Code, err)
		}
		added = append(added, p)
	}
	return added, nil
}
