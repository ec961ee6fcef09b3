// Package profiles persists named observer locations in a TOML file,
// conventionally ~/.starward/observers.toml.
package profiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/litescript/starward/internal/astro"
)

// Profile is one stored observer location.
type Profile struct {
	Name      string  `toml:"name"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Elevation float64 `toml:"elevation"`
	Timezone  string  `toml:"timezone,omitempty"`
}

// Observer converts the profile into a core observer value, validating
// the coordinate ranges.
func (p Profile) Observer() (astro.Observer, error) {
	return astro.NewObserver(p.Name, p.Latitude, p.Longitude, p.Elevation)
}

// fileLayout is the on-disk TOML shape:
//
//	default = "home"
//
//	[observers.home]
//	name = "Home"
//	latitude = 51.5
//	longitude = -0.12
type fileLayout struct {
	Default   string             `toml:"default,omitempty"`
	Observers map[string]Profile `toml:"observers,omitempty"`
}

// Store reads and writes observer profiles at a fixed path. Methods load
// the file on each call; profile operations are rare and interactive.
type Store struct {
	path string
}

// DefaultPath returns ~/.starward/observers.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".starward", "observers.toml"), nil
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// key normalizes a profile name into a stable map key.
func key(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func (s *Store) load() (fileLayout, error) {
	var f fileLayout
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileLayout{Observers: map[string]Profile{}}, nil
	}
	if err != nil {
		return f, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if f.Observers == nil {
		f.Observers = map[string]Profile{}
	}
	return f, nil
}

func (s *Store) save(f fileLayout) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Add inserts or replaces a profile. The first profile added becomes the
// default.
func (s *Store) Add(p Profile) error {
	if _, err := p.Observer(); err != nil {
		return err
	}
	f, err := s.load()
	if err != nil {
		return err
	}
	k := key(p.Name)
	f.Observers[k] = p
	if f.Default == "" {
		f.Default = k
	}
	return s.save(f)
}

// Remove deletes a profile by name. Returns false when no such profile
// exists. If the default is removed, another profile (if any) becomes the
// default.
func (s *Store) Remove(name string) (bool, error) {
	f, err := s.load()
	if err != nil {
		return false, err
	}
	k := key(name)
	if _, ok := f.Observers[k]; !ok {
		return false, nil
	}
	delete(f.Observers, k)
	if f.Default == k {
		f.Default = ""
		keys := make([]string, 0, len(f.Observers))
		for kk := range f.Observers {
			keys = append(keys, kk)
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			f.Default = keys[0]
		}
	}
	return true, s.save(f)
}

// Get looks up a profile by name.
func (s *Store) Get(name string) (Profile, bool, error) {
	f, err := s.load()
	if err != nil {
		return Profile{}, false, err
	}
	p, ok := f.Observers[key(name)]
	return p, ok, nil
}

// Default returns the default profile, if one is set.
func (s *Store) Default() (Profile, bool, error) {
	f, err := s.load()
	if err != nil {
		return Profile{}, false, err
	}
	if f.Default == "" {
		return Profile{}, false, nil
	}
	p, ok := f.Observers[f.Default]
	return p, ok, nil
}

// SetDefault marks an existing profile as the default. Returns false when
// the profile does not exist.
func (s *Store) SetDefault(name string) (bool, error) {
	f, err := s.load()
	if err != nil {
		return false, err
	}
	k := key(name)
	if _, ok := f.Observers[k]; !ok {
		return false, nil
	}
	f.Default = k
	return true, s.save(f)
}

// List returns all profiles sorted by name.
func (s *Store) List() ([]Profile, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]Profile, 0, len(f.Observers))
	for _, p := range f.Observers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Resolve returns the named profile's observer, or the default observer
// when name is empty.
func (s *Store) Resolve(name string) (astro.Observer, error) {
	if name == "" {
		p, ok, err := s.Default()
		if err != nil {
			return astro.Observer{}, err
		}
		if !ok {
			return astro.Observer{}, fmt.Errorf("no default observer configured; add one with 'starward observer add'")
		}
		return p.Observer()
	}
	p, ok, err := s.Get(name)
	if err != nil {
		return astro.Observer{}, err
	}
	if !ok {
		return astro.Observer{}, fmt.Errorf("observer %q not found", name)
	}
	return p.Observer()
}
