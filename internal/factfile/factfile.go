// Package factfile reads fact pools from YAML files.
package factfile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/polybius/polybius-go/internal/model"
)

// Load reads a fact pool from the YAML file at path.
func Load(path string) (model.FactPool, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.FactPool{}, fmt.Errorf("open fact file: %w", err)
	}
	defer f.Close()

	pool, err := Decode(f)
	if err != nil {
		return model.FactPool{}, fmt.Errorf("%s: %w", path, err)
	}
	return pool, nil
}

// Decode parses a fact pool document:
//
//	numbers:
//	  - value: 1999
//	    category: birth_year
//	texts:
//	  - Apples
//
// Unknown categories decode as relevant_number. An empty document is an empty pool.
func Decode(r io.Reader) (model.FactPool, error) {
	var pool model.FactPool
	if err := yaml.NewDecoder(r).Decode(&pool); err != nil && err != io.EOF {
		return model.FactPool{}, fmt.Errorf("decode fact file: %w", err)
	}
	return pool, nil
}
