package knowledge

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/seed.yaml
var seed []byte

// Default returns the knowledge base built from the embedded seed.
func Default() (*Base, error) {
	return Load(bytes.NewReader(seed))
}

// LoadFile reads a knowledge seed from a YAML file.
func LoadFile(path string) (*Base, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening knowledge file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a YAML knowledge seed and validates it.
func Load(r io.Reader) (*Base, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b Base
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &b, nil
}
