package factory

import (
	"github.com/warp/measure-engine/generic"
	"github.com/warp/measure-engine/length"
	"github.com/warp/measure-engine/temperature"
	"github.com/warp/measure-engine/volume"
	"github.com/warp/measure-engine/weight"
)

// BuiltinDocument describes the built-in category tables as a catalog
// document. Useful as a starting point for custom catalogs.
func BuiltinDocument() Document {
	return Document{Categories: []CategoryDoc{
		categoryDoc(length.Category, length.Units()),
		categoryDoc(weight.Category, weight.Units()),
		categoryDoc(volume.Category, volume.Units()),
		categoryDoc(temperature.Category, temperature.Units()),
	}}
}

// BuiltinCatalog returns the built-in tables as a Catalog. Its descriptors
// are copies: do not Register it, the built-in units are already registered.
func BuiltinCatalog() (*Catalog, error) {
	return FromDocument(BuiltinDocument())
}

type tableUnit interface {
	generic.Unit
	Descriptor() generic.Descriptor
}

func categoryDoc[U tableUnit](category generic.Category, units []U) CategoryDoc {
	cd := CategoryDoc{Name: string(category)}
	for _, u := range units {
		d := u.Descriptor()
		if !d.SupportsArithmetic() {
			off := false
			cd.Arithmetic = &off
		}
		cd.Units = append(cd.Units, unitDoc(d, generic.Aliases(u)))
	}
	return cd
}

func unitDoc(d generic.Descriptor, aliases []string) UnitDoc {
	ud := UnitDoc{Name: d.Name(), Aliases: aliases}
	switch c := d.Conversion().(type) {
	case generic.LinearConversion:
		f := c.Factor
		ud.Factor = &f
	case generic.AffineConversion:
		s, o := c.Scale, c.Offset
		ud.Scale = &s
		if o != 0 {
			ud.Offset = &o
		}
	}
	return ud
}
