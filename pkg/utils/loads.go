package utils

import (
	"encoding/json"
	"os"
)

// Load decodes the JSON file at path into a fresh T.
func Load[T any](path string) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&zero)
	return zero, err
}
