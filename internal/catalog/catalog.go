package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"report-srv/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed reports.yaml
var defaultCatalog []byte

var (
	ErrEmptyCatalog = errors.New("catalog: no reports defined")
	ErrInvalid      = errors.New("catalog: invalid definition")
)

// Catalog is an immutable, ordered set of report definitions.
type Catalog struct {
	order []string
	defs  map[string]Definition
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path. An empty path loads the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(f.Reports) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{defs: make(map[string]Definition, len(f.Reports))}
	for _, def := range f.Reports {
		def = normalize(def)
		if err := validate(def); err != nil {
			return nil, err
		}
		if _, dup := c.defs[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalid, def.ID)
		}
		c.defs[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	return c, nil
}

// Get returns the definition with the given id.
func (c *Catalog) Get(id string) (Definition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// List returns every definition in catalog order.
func (c *Catalog) List() []Definition {
	defs := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		defs = append(defs, c.defs[id])
	}
	return defs
}

func normalize(def Definition) Definition {
	def.ID = strings.TrimSpace(def.ID)
	if def.Title == "" {
		def.Title = def.ID
	}
	if len(def.Keys) == 0 {
		def.Keys = []string{model.DatasetRowsKey, model.DatasetTotalKey}
	}
	for i := range def.Columns {
		if def.Columns[i].Format == "" {
			def.Columns[i].Format = FormatText
		}
		if def.Columns[i].Label == "" {
			def.Columns[i].Label = def.Columns[i].Key
		}
	}
	return def
}

func validate(def Definition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalid)
	}
	if def.URL == "" {
		return fmt.Errorf("%w: %s: url is required", ErrInvalid, def.ID)
	}
	if strings.TrimSpace(def.Query) == "" {
		return fmt.Errorf("%w: %s: query is required", ErrInvalid, def.ID)
	}
	for _, k := range []string{model.DatasetRowsKey, model.DatasetTotalKey} {
		if !slices.Contains(def.Keys, k) {
			return fmt.Errorf("%w: %s: keys must include %q", ErrInvalid, def.ID, k)
		}
	}
	for _, col := range def.Columns {
		switch col.Format {
		case FormatText, FormatDate, FormatNumber, FormatCurrency:
		default:
			return fmt.Errorf("%w: %s: column %s has unknown format %q", ErrInvalid, def.ID, col.Key, col.Format)
		}
	}
	return nil
}
