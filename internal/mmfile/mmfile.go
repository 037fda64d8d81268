// Package mmfile loads almanac files, memory-mapping them where the
// platform allows.
package mmfile

import "os"

// Read loads the whole file into memory. The cleanup it returns does nothing;
// it exists so Read and Map are interchangeable.
func Read(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
