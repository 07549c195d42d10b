/*
registry.go - Unit registration and lookup

PURPOSE:
  Provides a registry for category packages to register their units under
  their display names and aliases. This lets callers (the CLI, catalogs)
  resolve a unit by name while the generic package stays category-agnostic.

HOW IT WORKS:
  1. Category packages define their Unit implementations
  2. Category packages register them in init()
  3. Callers look units up by case-insensitive name or alias

USAGE:
  // In length/length.go
  func init() {
      generic.MustRegisterUnit(Feet, "ft", "foot")
  }

  u, err := generic.LookupUnit("ft") // returns length.Feet

SEE ALSO:
  - types.go: Unit interface definition
  - factory/catalog.go: Registers catalog-defined units
*/
package generic

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// =============================================================================
// UNIT REGISTRY
// =============================================================================

var (
	unitRegistry    = make(map[string]Unit)
	unitAliases     = make(map[string][]string) // keyed by registryKey(unit name)
	registeredUnits []Unit
	registryMu      sync.RWMutex
)

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RegisterUnit adds a unit to the global registry under its name and aliases.
// Registering the same unit twice is a no-op. A name already taken by a
// different unit fails with ErrDuplicateUnit and registers nothing.
//
// Units are compared with ==, so u must be comparable at runtime. A
// Descriptor holding a func-backed Conversion is not; register a pointer
// to it instead.
func RegisterUnit(u Unit, aliases ...string) error {
	if u == nil {
		return ErrNilUnit
	}
	if !reflect.ValueOf(u).Comparable() {
		return fmt.Errorf("%w: %s unit %q is not comparable", ErrInvalidArgument, u.Category(), u.Name())
	}
	names := append([]string{u.Name()}, aliases...)

	registryMu.Lock()
	defer registryMu.Unlock()

	for _, name := range names {
		k := registryKey(name)
		if k == "" {
			return fmt.Errorf("%w: empty name for %s unit %q", ErrInvalidArgument, u.Category(), u.Name())
		}
		if existing, ok := unitRegistry[k]; ok && existing != u {
			return fmt.Errorf("%w: %q is already %s unit %q", ErrDuplicateUnit, name, existing.Category(), existing.Name())
		}
	}

	if _, ok := unitRegistry[registryKey(u.Name())]; !ok {
		registeredUnits = append(registeredUnits, u)
	}
	for _, name := range names {
		unitRegistry[registryKey(name)] = u
	}
	key := registryKey(u.Name())
	for _, alias := range aliases {
		if !containsFold(unitAliases[key], alias) && !strings.EqualFold(alias, u.Name()) {
			unitAliases[key] = append(unitAliases[key], alias)
		}
	}
	return nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// MustRegisterUnit is like RegisterUnit but panics on error.
// Call this from category package init() functions.
func MustRegisterUnit(u Unit, aliases ...string) {
	if err := RegisterUnit(u, aliases...); err != nil {
		panic(err)
	}
}

// LookupUnit finds a registered unit by name or alias, ignoring case.
func LookupUnit(name string) (Unit, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	u, ok := unitRegistry[registryKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// MustLookupUnit finds a registered unit or panics.
// Use in tests or when you're certain the unit exists.
func MustLookupUnit(name string) Unit {
	u, err := LookupUnit(name)
	if err != nil {
		panic(err)
	}
	return u
}

// Aliases returns the alternative names u was registered under, or nil if
// u is not the unit registered under its name.
func Aliases(u Unit) []string {
	if u == nil {
		return nil
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	key := registryKey(u.Name())
	if registered, ok := unitRegistry[key]; !ok || !sameUnit(registered, u) {
		return nil
	}
	out := make([]string, len(unitAliases[key]))
	copy(out, unitAliases[key])
	return out
}

func sameUnit(a, b Unit) bool {
	return reflect.ValueOf(b).Comparable() && a == b
}

// ListUnits returns all registered units ordered by category, then by
// registration order within the category.
func ListUnits() []Unit {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]Unit, len(registeredUnits))
	copy(result, registeredUnits)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Category() < result[j].Category()
	})
	return result
}

// ListUnitsByCategory returns the units of one category in registration order.
func ListUnitsByCategory(c Category) []Unit {
	registryMu.RLock()
	defer registryMu.RUnlock()
	var result []Unit
	for _, u := range registeredUnits {
		if u.Category() == c {
			result = append(result, u)
		}
	}
	return result
}

// ListCategories returns every category with at least one registered unit, sorted.
func ListCategories() []Category {
	registryMu.RLock()
	defer registryMu.RUnlock()
	seen := make(map[Category]bool)
	var result []Category
	for _, u := range registeredUnits {
		if !seen[u.Category()] {
			seen[u.Category()] = true
			result = append(result, u.Category())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
