package navigation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/appshell/internal/platform/icons"
	"gopkg.in/yaml.v3"
)

type fileEntry struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
	Icon  string `yaml:"icon"`
}

type fileRegistry struct {
	Entries []fileEntry `yaml:"entries"`
}

// Load reads a YAML registry document:
//
//	entries:
//	  - title: Home
//	    path: /
//	    icon: home
//
// Unknown keys and icon names are rejected. An empty document yields an
// empty registry.
func Load(r io.Reader) (Registry, error) {
	if r == nil {
		return Registry{}, errors.New("navigation source is required")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fileRegistry
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Registry{}, fmt.Errorf("decode navigation: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Entries))
	for idx, raw := range doc.Entries {
		kind := icons.KindUnspecified
		if name := strings.TrimSpace(raw.Icon); name != "" {
			parsed, ok := icons.ParseKind(name)
			if !ok {
				return Registry{}, &EntryError{
					Index: idx,
					Title: strings.TrimSpace(raw.Title),
					Err:   fmt.Errorf("%w: %q", ErrUnknownIcon, name),
				}
			}
			kind = parsed
		}
		entries = append(entries, Entry{Title: raw.Title, Path: raw.Path, Icon: kind})
	}
	return NewRegistry(entries...)
}

// LoadFile opens path and reads it with Load.
func LoadFile(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Registry{}, fmt.Errorf("open navigation file: %w", err)
	}
	defer f.Close()
	reg, err := Load(f)
	if err != nil {
		return Registry{}, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}
