package asset

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Set maps a category name to its texture
type Set map[string]*Texture

// LoadSet loads every file of files (category -> file name) from dir
// Failures are collected and the category is left out, so the material
// renders untextured
func LoadSet(dir string, files map[string]string) (Set, []error) {
	set := make(Set, len(files))
	var errs []error

	// Stable order keeps warnings reproducible
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, category := range keys {
		name := files[category]
		if name == "" {
			continue
		}
		tex, err := Load(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("texture %s: %w", category, err))
			continue
		}
		set[category] = tex
	}
	return set, errs
}

// Get returns the texture of category, nil when absent
func (s Set) Get(category string) *Texture {
	if s == nil {
		return nil
	}
	return s[category]
}
