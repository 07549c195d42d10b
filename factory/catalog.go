/*
Package factory converts unit catalog documents into generic descriptors.

PURPOSE:
  Built-in categories (length, weight, volume, temperature) are Go tables.
  A catalog lets additional categories be defined as configuration instead of
  code. The factory validates the document and creates the matching
  *generic.Descriptor values, which work with generic.Quantity directly.

WHY YAML?
  - Catalogs are hand-edited configuration
  - yaml.v3 also accepts JSON documents, so either format works
  - Round-trips: a Catalog can be written back with Marshal

DOCUMENT SCHEMA:
  categories:
    - name: area
      base: square_metre      # optional, defaults to the identity unit
      arithmetic: true        # optional, defaults to true
      units:
        - name: square_metre
          factor: 1
          aliases: [m2]
        - name: square_foot
          factor: 0.09290304
    - name: pressure
      arithmetic: false
      units:
        - name: pascal
          factor: 1
        - name: bar_gauge       # affine: base = (value + offset) * scale
          scale: 100000
          offset: 1.01325

RULES:
  - Every unit is either linear (factor) or affine (scale, optional offset)
  - Factors and scales must be finite and non-zero
  - Names and aliases are unique across the catalog, ignoring case
  - The base unit must convert with factor 1 (or scale 1, offset 0)

USAGE:
  cat, err := factory.LoadCatalog("units.yaml")
  if err := cat.Register(); err != nil { ... }
  sqft, _ := cat.Unit("square_foot")
  q, _ := generic.New(10.0, sqft)

SEE ALSO:
  - generic/descriptor.go: Descriptor type definition
  - generic/registry.go: Where Register puts the units
*/
package factory

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/warp/measure-engine/generic"
)

// ErrInvalidCatalog is returned when a catalog document breaks a rule.
var ErrInvalidCatalog = errors.New("invalid catalog")

// =============================================================================
// DOCUMENT SCHEMA TYPES
// =============================================================================

// Document is the serialized form of a catalog.
type Document struct {
	Categories []CategoryDoc `yaml:"categories" json:"categories"`
}

// CategoryDoc describes one category and its units.
type CategoryDoc struct {
	Name       string    `yaml:"name" json:"name"`
	Base       string    `yaml:"base,omitempty" json:"base,omitempty"`
	Arithmetic *bool     `yaml:"arithmetic,omitempty" json:"arithmetic,omitempty"`
	Units      []UnitDoc `yaml:"units" json:"units"`
}

// UnitDoc describes one unit. Set Factor for a linear unit,
// Scale (and optionally Offset) for an affine one.
type UnitDoc struct {
	Name    string   `yaml:"name" json:"name"`
	Factor  *float64 `yaml:"factor,omitempty" json:"factor,omitempty"`
	Scale   *float64 `yaml:"scale,omitempty" json:"scale,omitempty"`
	Offset  *float64 `yaml:"offset,omitempty" json:"offset,omitempty"`
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog is a validated set of categories. It is immutable once built.
type Catalog struct {
	doc        Document
	categories []generic.Category
	units      []*generic.Descriptor
	aliases    map[*generic.Descriptor][]string
	byName     map[string]*generic.Descriptor
}

// LoadCatalog reads and parses a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses a YAML or JSON catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument validates doc and builds the descriptors it defines.
func FromDocument(doc Document) (*Catalog, error) {
	c := &Catalog{
		aliases: make(map[*generic.Descriptor][]string),
		byName:  make(map[string]*generic.Descriptor),
	}
	seenCategories := make(map[string]bool)
	doc.Categories = append([]CategoryDoc(nil), doc.Categories...)

	for i, cd := range doc.Categories {
		name := strings.TrimSpace(cd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category #%d has no name", ErrInvalidCatalog, i+1)
		}
		if seenCategories[name] {
			return nil, fmt.Errorf("%w: category %q defined twice", ErrInvalidCatalog, name)
		}
		seenCategories[name] = true

		base, err := c.addCategory(generic.Category(name), cd)
		if err != nil {
			return nil, err
		}
		doc.Categories[i].Name = name
		doc.Categories[i].Base = base
	}

	c.doc = doc
	return c, nil
}

func (c *Catalog) addCategory(category generic.Category, cd CategoryDoc) (string, error) {
	if len(cd.Units) == 0 {
		return "", fmt.Errorf("%w: category %q has no units", ErrInvalidCatalog, category)
	}
	arithmetic := cd.Arithmetic == nil || *cd.Arithmetic

	base := ""
	for _, ud := range cd.Units {
		conv, err := parseConversion(category, ud)
		if err != nil {
			return "", err
		}
		if base == "" && isIdentity(conv) {
			base = ud.Name
		}

		d := generic.NewDescriptor(ud.Name, category, conv)
		if !arithmetic {
			d = d.WithoutArithmetic()
		}
		if err := c.addUnit(&d, ud.Aliases); err != nil {
			return "", err
		}
	}

	if cd.Base != "" {
		d, ok := c.byName[strings.ToLower(cd.Base)]
		if !ok || d.Category() != category {
			return "", fmt.Errorf("%w: base %q is not a %s unit", ErrInvalidCatalog, cd.Base, category)
		}
		if !isIdentity(d.Conversion()) {
			return "", fmt.Errorf("%w: base %q must have factor 1", ErrInvalidCatalog, cd.Base)
		}
		base = d.Name()
	}
	if base == "" {
		return "", fmt.Errorf("%w: category %q has no unit with factor 1", ErrInvalidCatalog, category)
	}

	c.categories = append(c.categories, category)
	return base, nil
}

func (c *Catalog) addUnit(d *generic.Descriptor, aliases []string) error {
	names := append([]string{d.Name()}, aliases...)
	for _, name := range names {
		k := strings.ToLower(strings.TrimSpace(name))
		if k == "" {
			return fmt.Errorf("%w: empty unit name in %s", ErrInvalidCatalog, d.Category())
		}
		if _, taken := c.byName[k]; taken {
			return fmt.Errorf("%w: unit name %q used twice", ErrInvalidCatalog, name)
		}
		c.byName[k] = d
	}
	c.units = append(c.units, d)
	c.aliases[d] = aliases
	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Unit returns the descriptor registered under name or one of its aliases.
func (c *Catalog) Unit(name string) (*generic.Descriptor, error) {
	d, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", generic.ErrUnknownUnit, name)
	}
	return d, nil
}

// Units returns every descriptor in document order.
func (c *Catalog) Units() []*generic.Descriptor {
	out := make([]*generic.Descriptor, len(c.units))
	copy(out, c.units)
	return out
}

// Categories returns the categories in document order.
func (c *Catalog) Categories() []generic.Category {
	out := make([]generic.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Document returns the normalized document (base units filled in).
func (c *Catalog) Document() Document {
	return c.doc
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c.doc)
}

// Register adds every unit to the generic registry. A category that already
// has units from elsewhere (for example a built-in one), or a name or alias
// already taken by another unit, is rejected before anything is registered.
func (c *Catalog) Register() error {
	for _, category := range c.categories {
		for _, existing := range generic.ListUnitsByCategory(category) {
			if !c.ownsUnit(existing) {
				return fmt.Errorf("%w: category %q is already registered", generic.ErrDuplicateUnit, category)
			}
		}
	}
	for _, d := range c.units {
		for _, name := range append([]string{d.Name()}, c.aliases[d]...) {
			existing, err := generic.LookupUnit(name)
			if err != nil {
				continue
			}
			if !c.ownsUnit(existing) {
				return fmt.Errorf("%w: %q is already %s unit %q",
					generic.ErrDuplicateUnit, name, existing.Category(), existing.Name())
			}
		}
	}
	for _, d := range c.units {
		if err := generic.RegisterUnit(d, c.aliases[d]...); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) ownsUnit(u generic.Unit) bool {
	d, ok := u.(*generic.Descriptor)
	return ok && c.owns(d)
}

func (c *Catalog) owns(d *generic.Descriptor) bool {
	for _, u := range c.units {
		if u == d {
			return true
		}
	}
	return false
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func parseConversion(category generic.Category, ud UnitDoc) (generic.Conversion, error) {
	switch {
	case ud.Factor != nil && ud.Scale != nil:
		return nil, fmt.Errorf("%w: %s unit %q sets both factor and scale", ErrInvalidCatalog, category, ud.Name)
	case ud.Factor != nil:
		if ud.Offset != nil {
			return nil, fmt.Errorf("%w: %s unit %q: offset requires scale", ErrInvalidCatalog, category, ud.Name)
		}
		if !usableFactor(*ud.Factor) {
			return nil, fmt.Errorf("%w: %s unit %q: factor must be finite and non-zero", ErrInvalidCatalog, category, ud.Name)
		}
		return generic.LinearConversion{Factor: *ud.Factor}, nil
	case ud.Scale != nil:
		offset := 0.0
		if ud.Offset != nil {
			offset = *ud.Offset
		}
		if !usableFactor(*ud.Scale) || math.IsNaN(offset) || math.IsInf(offset, 0) {
			return nil, fmt.Errorf("%w: %s unit %q: scale must be finite and non-zero, offset finite", ErrInvalidCatalog, category, ud.Name)
		}
		return generic.AffineConversion{Scale: *ud.Scale, Offset: offset}, nil
	default:
		return nil, fmt.Errorf("%w: %s unit %q needs a factor or a scale", ErrInvalidCatalog, category, ud.Name)
	}
}

func usableFactor(f float64) bool {
	return f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isIdentity(conv generic.Conversion) bool {
	switch c := conv.(type) {
	case generic.LinearConversion:
		return c.Factor == 1
	case generic.AffineConversion:
		return c.Scale == 1 && c.Offset == 0
	default:
		return false
	}
}
