package pricegrid

import (
	"math"
	"strings"
)

// Region selects which part of a page an entry reads.
type Region int

// Region values. RegionFull is the zero value.
const (
	RegionFull Region = iota
	RegionLeft
	RegionRight
)

// String returns the textual form of the region.
func (r Region) String() string {
	switch r {
	case RegionFull:
		return "full"
	case RegionLeft:
		return "left"
	case RegionRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	if r < RegionFull || r > RegionRight {
		return nil, Errorf(EINVALID, "invalid region %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty value means the full page.
func (r *Region) UnmarshalText(text []byte) error {
	region, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = region
	return nil
}

// ParseRegion parses "full", "left" or "right" (case-insensitive).
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return RegionFull, nil
	case "left":
		return RegionLeft, nil
	case "right":
		return RegionRight, nil
	default:
		return RegionFull, Errorf(EINVALID, "unknown region %q", s)
	}
}

// Layout defaults.
const (
	// DefaultMinHeaderColumns requires more than five integer tokens in a header row.
	DefaultMinHeaderColumns = 6
)

// DefaultStrip lists the symbols removed from price tokens before parsing.
var DefaultStrip = []string{"$", ","}

// Layout configures grid reconstruction for one document.
type Layout struct {
	// Granularity is the vertical quantization step used to group tokens
	// into rows. It must match the vertical text spacing of the source:
	// fine (0.1) for dense records, coarse (1.0) for sparse grids.
	Granularity float64 `json:"granularity" yaml:"granularity"`

	// MinHeaderColumns is the minimum number of integer tokens in a header row.
	MinHeaderColumns int `json:"minHeaderColumns" yaml:"min_header_columns"`

	// SplitX is the x-coordinate separating left and right regions.
	// Required when any entry reads a left or right region.
	SplitX float64 `json:"splitX" yaml:"split_x"`

	// Strip lists the symbols removed from tokens before numeric parsing.
	Strip []string `json:"strip" yaml:"strip"`
}

// WithDefaults returns a copy of the layout with unset optional fields filled in.
func (l Layout) WithDefaults() Layout {
	if l.MinHeaderColumns == 0 {
		l.MinHeaderColumns = DefaultMinHeaderColumns
	}
	if l.Strip == nil {
		l.Strip = append([]string(nil), DefaultStrip...)
	}
	return l
}

// Validate returns an error if the layout contains invalid fields.
func (l *Layout) Validate() error {
	if l.Granularity <= 0 || math.IsNaN(l.Granularity) || math.IsInf(l.Granularity, 0) {
		return Errorf(EINVALID, "layout granularity must be a positive number")
	}
	if l.MinHeaderColumns < 1 {
		return Errorf(EINVALID, "layout min header columns must be at least 1")
	}
	if l.SplitX < 0 || math.IsNaN(l.SplitX) || math.IsInf(l.SplitX, 0) {
		return Errorf(EINVALID, "layout split x must be a non-negative number")
	}
	for _, s := range l.Strip {
		if s == "" {
			return Errorf(EINVALID, "layout strip symbols must not be empty")
		}
	}
	return nil
}

// CatalogEntry names one grid to extract from a document.
type CatalogEntry struct {
	// Page is the 0-based page index.
	Page   int    `json:"page" yaml:"page"`
	Region Region `json:"region" yaml:"region"`
	Name   string `json:"name" yaml:"name"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CatalogEntry) Validate() error {
	if e.Page < 0 {
		return Errorf(EINVALID, "catalog entry %q: page must not be negative", e.Name)
	}
	if e.Region < RegionFull || e.Region > RegionRight {
		return Errorf(EINVALID, "catalog entry %q: invalid region", e.Name)
	}
	if strings.TrimSpace(e.Name) == "" {
		return Errorf(EINVALID, "catalog entry on page %d: name required", e.Page)
	}
	return nil
}

// Catalog drives an extraction run: an ordered list of entries read from
// one source document with one layout.
type Catalog struct {
	Name    string         `json:"name" yaml:"name"`
	Source  string         `json:"source" yaml:"source"`
	Layout  Layout         `json:"layout" yaml:"layout"`
	Entries []CatalogEntry `json:"entries" yaml:"entries"`

	// ExtrasPages lists the pages scanned for priced add-on lines.
	ExtrasPages []int `json:"extrasPages" yaml:"extras_pages"`

	// RulesPages lists the pages scanned for surcharge and rule text.
	RulesPages []int `json:"rulesPages" yaml:"rules_pages"`
}

// Validate returns an error if the catalog contains invalid fields.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return Errorf(EINVALID, "catalog entries required")
	}
	layout := c.Layout.WithDefaults()
	if err := layout.Validate(); err != nil {
		return err
	}
	for i := range c.Entries {
		e := &c.Entries[i]
		if err := e.Validate(); err != nil {
			return err
		}
		if e.Region != RegionFull && c.Layout.SplitX == 0 {
			return Errorf(EINVALID, "catalog entry %q reads the %s region but layout split x is not set", e.Name, e.Region)
		}
	}
	for _, page := range c.ExtrasPages {
		if page < 0 {
			return Errorf(EINVALID, "extras page must not be negative")
		}
	}
	for _, page := range c.RulesPages {
		if page < 0 {
			return Errorf(EINVALID, "rules page must not be negative")
		}
	}
	return nil
}

// CatalogLoader reads catalogs from external configuration.
type CatalogLoader interface {
	// LoadCatalog reads and validates the catalog at path.
	LoadCatalog(path string) (*Catalog, error)
}
