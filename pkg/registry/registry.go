// Package registry is a catalogue of LWM2M object definitions.
//
// A set of standard IPSO objects is embedded in the binary. Further
// definitions can be loaded from a directory of YAML files in the format
// read by schema.ParseObjectDef.
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

//go:embed defs/*.yaml
var defsFS embed.FS

// ErrDuplicateObject is returned when an object ID is registered twice.
var ErrDuplicateObject = errors.New("object already registered")

// Entry is a registered object definition.
type Entry struct {
	ID          uint16
	Name        string
	Description string

	def *schema.ObjectDef
}

// Definition returns a copy of the definition for object instance id.
// Pass schema.SingleInstance for single-instance objects.
func (e *Entry) Definition(id int) *schema.ObjectDef {
	def := *e.def
	def.Instance = id
	return &def
}

// Registry maps object IDs to definitions.
type Registry struct {
	mu      sync.RWMutex
	entries map[uint16]*Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[uint16]*Entry)}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns a registry holding the embedded definitions.
// It is loaded once and shared; callers must not add to it.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg = New()
		defaultErr = defaultReg.LoadEmbedded()
	})
	return defaultReg, defaultErr
}

// LoadEmbedded adds the embedded definitions.
func (r *Registry) LoadEmbedded() error {
	return r.loadFS(defsFS, "defs")
}

// LoadDir adds every *.yaml file in dir.
func (r *Registry) LoadDir(dir string) error {
	return r.loadFS(os.DirFS(dir), ".")
}

func (r *Registry) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("reading definitions: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if err := r.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(name), err)
		}
	}
	return nil
}

// Parse adds the YAML definition in data.
func (r *Registry) Parse(data []byte) error {
	raw, err := schema.ParseRawObjectDef(data)
	if err != nil {
		return err
	}
	return r.Add(raw)
}

// Add validates and adds a raw definition.
func (r *Registry) Add(raw *schema.RawObjectDef) error {
	def, err := raw.Build()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[raw.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateObject, raw.ID)
	}
	r.entries[raw.ID] = &Entry{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		def:         def,
	}
	return nil
}

// Get returns the entry for an object ID.
func (r *Registry) Get(id uint16) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	return e, ok
}

// IDs returns all registered object IDs in ascending order.
func (r *Registry) IDs() []uint16 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uint16, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
