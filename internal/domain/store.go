package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store resolves domain names to raw configuration bytes. The filesystem
// implementation below is the default; tests substitute their own.
type Store interface {
	// FetchRaw returns the raw configuration for the named domain, or a
	// *NotFoundError if no source matches.
	FetchRaw(name string) ([]byte, error)
	// List returns the sorted names of all available domains.
	List() ([]string, error)
}

// DirStore resolves domains as <dir>/<name>.yaml files.
type DirStore struct {
	dir string
}

// NewDirStore creates a Store backed by a directory of YAML files.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) FetchRaw(name string) ([]byte, error) {
	path := filepath.Join(s.dir, name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			available, _ := s.List()
			return nil, &NotFoundError{Name: name, Available: available}
		}
		return nil, fmt.Errorf("reading domain file %s: %w", path, err)
	}
	return data, nil
}

func (s *DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading domains directory %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ext)
		if stem == "template" {
			continue
		}
		names = append(names, stem)
	}
	sort.Strings(names)
	return names, nil
}
