// Package catalog loads the read-only business directory from YAML.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"localbiz-insights/internal/domain/entity"
)

//go:embed businesses.yaml
var defaultCatalog []byte

// ErrDuplicateID is returned when two listings share an id.
var ErrDuplicateID = errors.New("duplicate listing id")

type catalogFile struct {
	Businesses []listingYAML `yaml:"businesses"`
}

// listingYAML uses pointers for the flags so that omitted values can default to true.
type listingYAML struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Rating      float64 `yaml:"rating"`
	ReviewCount int     `yaml:"review_count"`
	Address     string  `yaml:"address"`
	Image       string  `yaml:"image"`
	HasWebsite  *bool   `yaml:"has_website"`
	HasPhone    *bool   `yaml:"has_phone"`
	IsOnline    *bool   `yaml:"is_online"`
}

func (l listingYAML) toEntity() entity.Listing {
	return entity.Listing{
		ID:          l.ID,
		Name:        l.Name,
		Category:    l.Category,
		Rating:      l.Rating,
		ReviewCount: l.ReviewCount,
		Address:     l.Address,
		Image:       l.Image,
		HasWebsite:  boolOrTrue(l.HasWebsite),
		HasPhone:    boolOrTrue(l.HasPhone),
		IsOnline:    boolOrTrue(l.IsOnline),
	}
}

func boolOrTrue(b *bool) bool {
	return b == nil || *b
}

// Catalog is an immutable, ordered set of listings. It is safe for concurrent use.
type Catalog struct {
	listings []entity.Listing
	byID     map[string]int
}

// Parse decodes a YAML catalog. Unknown keys, invalid listings and duplicate
// ids are errors.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		listings: make([]entity.Listing, 0, len(file.Businesses)),
		byID:     make(map[string]int, len(file.Businesses)),
	}
	for i, raw := range file.Businesses {
		listing := raw.toEntity()
		if err := listing.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := c.byID[listing.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: %w: %q", i, ErrDuplicateID, listing.ID)
		}
		c.byID[listing.ID] = len(c.listings)
		c.listings = append(c.listings, listing)
	}
	return c, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	// #nosec G304 -- path comes from CATALOG_PATH, set by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded sample catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		slog.Info("using embedded business catalog")
		return Default()
	}
	slog.Info("loading business catalog", slog.String("path", path))
	return LoadFile(path)
}

// All returns a copy of the listings in catalog order.
func (c *Catalog) All() []entity.Listing {
	out := make([]entity.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Find returns the listing with the given id.
func (c *Catalog) Find(id string) (entity.Listing, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entity.Listing{}, false
	}
	return c.listings[i], true
}

// Len returns the number of listings.
func (c *Catalog) Len() int {
	return len(c.listings)
}
