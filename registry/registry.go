// Package registry stores encoded schemas content-addressed by their
// canonical fingerprint.
//
// Values are the compact encoding, snappy-compressed, keyed by the 32-byte
// fingerprint of the schema's longform bytes. Because the key derives from
// the canonical form, structurally equal schemas land on the same entry no
// matter which encoder produced them, and Put is idempotent.
package registry

import (
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/golang/snappy"

	"github.com/shapewire/shapewire/spec"
)

// ErrNotFound is returned by Get for fingerprints with no stored schema.
var ErrNotFound = pebble.ErrNotFound

// Registry is a persistent, content-addressed schema store.
type Registry struct {
	db *pebble.DB
}

// Options configures a Registry.
type Options struct {
	// ReadOnly opens the store without write access.
	ReadOnly bool
}

// Open opens or creates a registry at path.
func Open(path string, opts Options) (*Registry, error) {
	db, err := pebble.Open(path, &pebble.Options{ReadOnly: opts.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w", path, err)
	}
	return &Registry{db: db}, nil
}

// Put stores the schema and returns its fingerprint. Storing a schema that
// is already present rewrites the identical entry.
func (r *Registry) Put(s *spec.Spec) (spec.Fingerprint, error) {
	fp := s.Fingerprint()
	value := snappy.Encode(nil, s.ToBytes())
	if err := r.db.Set(fp[:], value, pebble.Sync); err != nil {
		return fp, fmt.Errorf("registry: put %s: %w", fp, err)
	}
	return fp, nil
}

// Get loads and decodes the schema stored under fp. It returns ErrNotFound
// for absent fingerprints.
func (r *Registry) Get(fp spec.Fingerprint) (*spec.Spec, error) {
	value, closer, err := r.db.Get(fp[:])
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("registry: get %s: %w", fp, err)
	}
	defer closer.Close()

	raw, err := snappy.Decode(nil, value)
	if err != nil {
		return nil, fmt.Errorf("registry: corrupt entry %s: %w", fp, err)
	}
	s, err := spec.FromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("registry: corrupt entry %s: %w", fp, err)
	}
	return s, nil
}

// Has reports whether a schema is stored under fp.
func (r *Registry) Has(fp spec.Fingerprint) (bool, error) {
	_, closer, err := r.db.Get(fp[:])
	if err != nil {
		if err == pebble.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("registry: has %s: %w", fp, err)
	}
	closer.Close()
	return true, nil
}

// Delete removes the schema stored under fp, if any.
func (r *Registry) Delete(fp spec.Fingerprint) error {
	if err := r.db.Delete(fp[:], pebble.Sync); err != nil {
		return fmt.Errorf("registry: delete %s: %w", fp, err)
	}
	return nil
}

// Close releases the underlying store.
func (r *Registry) Close() error {
	return r.db.Close()
}
