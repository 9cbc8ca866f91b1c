// Package yaml loads extraction catalogs from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/pricegrid"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements pricegrid.CatalogLoader at compile time.
var _ pricegrid.CatalogLoader = (*Loader)(nil)

// Loader reads catalogs from YAML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCatalog reads the catalog at path. Unknown fields are rejected. A
// relative source path is resolved against the directory of the catalog
// file.
func (l *Loader) LoadCatalog(path string) (*pricegrid.Catalog, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, pricegrid.Errorf(pricegrid.ENOTFOUND, "catalog %s not found", path)
	} else if err != nil {
		return nil, err
	}

	catalog, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if catalog.Source == "" {
		return nil, pricegrid.Errorf(pricegrid.EINVALID, "catalog %s: source required", path)
	}
	if !filepath.IsAbs(catalog.Source) {
		catalog.Source = filepath.Join(filepath.Dir(path), catalog.Source)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Decode parses a single catalog document from r without validating it.
func Decode(r io.Reader) (*pricegrid.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var catalog pricegrid.Catalog
	if err := dec.Decode(&catalog); errors.Is(err, io.EOF) {
		return nil, pricegrid.Errorf(pricegrid.EINVALID, "catalog is empty")
	} else if err != nil {
		if pricegrid.ErrorCode(err) == pricegrid.EINVALID {
			return nil, err
		}
		return nil, pricegrid.Errorf(pricegrid.EINVALID, "malformed catalog: %v", err)
	}
	return &catalog, nil
}
