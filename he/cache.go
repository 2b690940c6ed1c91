package he

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/npillmayer/itn"
)

// ArchiveName is the name of the grammar archive within a cache directory.
const ArchiveName = "he_itn.far"

// FarCache is a Cache backed by a single archive file in a directory. The
// archive is read lazily on first lookup; every Store rewrites it.
//
// With overwrite set, an existing archive is ignored and replaced by the
// grammars stored in this session.
type FarCache struct {
	dir       string
	overwrite bool
	mu        sync.Mutex
	loaded    bool
	rules     map[string]*itn.Fst
}

// NewFarCache creates a cache in directory dir, creating the directory if
// necessary.
func NewFarCache(dir string, overwrite bool) (*FarCache, error) {
	if dir == "" {
		return nil, errors.New("grammar cache: no directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("grammar cache: %w", err)
	}
	return &FarCache{dir: dir, overwrite: overwrite, rules: map[string]*itn.Fst{}}, nil
}

// Path returns the path of the archive file.
func (c *FarCache) Path() string {
	return filepath.Join(c.dir, ArchiveName)
}

// Lookup is part of interface Cache.
func (c *FarCache) Lookup(rule string) (*itn.Fst, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		tracer().Errorf("grammar cache %s: %v", c.Path(), err)
		return nil, false
	}
	f, ok := c.rules[rule]
	return f, ok
}

// Store is part of interface Cache.
func (c *FarCache) Store(rule string, f *itn.Fst) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		tracer().Errorf("grammar cache %s: %v; rewriting it", c.Path(), err)
	}
	c.rules[rule] = f
	tmp, err := os.CreateTemp(c.dir, ArchiveName+".*")
	if err != nil {
		return fmt.Errorf("grammar cache: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if err = itn.WriteArchive(tmp, c.rules); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("grammar cache: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("grammar cache: %w", err)
	}
	if err = os.Rename(tmp.Name(), c.Path()); err != nil {
		return fmt.Errorf("grammar cache: %w", err)
	}
	tracer().Infof("grammar %q saved to %s", rule, c.Path())
	return nil
}

// load reads the archive once. A missing archive is not an error.
func (c *FarCache) load() error {
	if c.loaded {
		return nil
	}
	c.loaded = true
	if c.overwrite {
		return nil
	}
	file, err := os.Open(c.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	defer file.Close()
	rules, err := itn.ReadArchive(file)
	if err != nil {
		return err
	}
	for name, f := range rules {
		c.rules[name] = f
	}
	tracer().Infof("grammar cache %s holds %d rules", c.Path(), len(rules))
	return nil
}
