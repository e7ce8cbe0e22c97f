package profile

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type flangedRow struct {
	H    float64 `yaml:"h"`
	B    float64 `yaml:"b"`
	Tw   float64 `yaml:"tw"`
	Tf   float64 `yaml:"tf"`
	Area float64 `yaml:"area"`
	Ix   float64 `yaml:"ix"`
	Iy   float64 `yaml:"iy"`
	Wx   float64 `yaml:"wx"`
	Wy   float64 `yaml:"wy"`
	Sx   float64 `yaml:"sx"`
	Rx   float64 `yaml:"rx"`
	Ry   float64 `yaml:"ry"`
}

type angleRow struct {
	B    float64 `yaml:"b"`
	T    float64 `yaml:"t"`
	Area float64 `yaml:"area"`
	Ix   float64 `yaml:"ix"`
	Rx   float64 `yaml:"rx"`
	RMin float64 `yaml:"rmin"`
}

type catalogFile struct {
	IBeams   map[string]flangedRow `yaml:"ibeams"`
	Channels map[string]flangedRow `yaml:"channels"`
	Angles   map[string]angleRow   `yaml:"angles"`
}

// catalog is parsed once at package init and never mutated afterwards;
// concurrent readers need no synchronization.
var catalog catalogFile

func init() {
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		panic(fmt.Sprintf("profile: embedded catalog is malformed: %v", err))
	}
}

// Designations returns the sorted catalog keys for a shape, empty when
// the shape has no catalog.
func Designations(shape Shape) []string {
	var keys []string
	switch shape {
	case IBeam:
		for k := range catalog.IBeams {
			keys = append(keys, k)
		}
	case Channel:
		for k := range catalog.Channels {
			keys = append(keys, k)
		}
	case Angle:
		for k := range catalog.Angles {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func catalogLookup(shape Shape, designation string) (*Properties, error) {
	switch shape {
	case IBeam:
		row, ok := catalog.IBeams[designation]
		if !ok {
			return nil, geometryErrorf("unknown I-beam designation %q", designation)
		}
		return flangedFromRow(row, ibeamProperties(row.H, row.B, row.Tw, row.Tf)), nil
	case Channel:
		row, ok := catalog.Channels[designation]
		if !ok {
			return nil, geometryErrorf("unknown channel designation %q", designation)
		}
		return flangedFromRow(row, channelProperties(row.H, row.B, row.Tw, row.Tf)), nil
	case Angle:
		row, ok := catalog.Angles[designation]
		if !ok {
			return nil, geometryErrorf("unknown angle designation %q", designation)
		}
		props := angleProperties(row.B, row.T)
		props.A = row.Area * 100
		props.Ix = row.Ix * 1e4
		props.Iy = props.Ix
		props.Rx = row.Rx * 10
		props.Ry = props.Rx
		props.RMin = row.RMin * 10
		props.FromCatalog = true
		return props, nil
	}
	return nil, geometryErrorf("shape %q has no standard catalog", shape)
}

// flangedFromRow overlays table values on top of the closed-form result.
// Torsion and warping stay computed from nominal dimensions; the tables
// do not publish them.
func flangedFromRow(row flangedRow, props *Properties) *Properties {
	props.A = row.Area * 100 // cm² → mm²
	props.Ix = row.Ix * 1e4  // cm⁴ → mm⁴
	props.Iy = row.Iy * 1e4
	props.Wx = row.Wx * 1e3 // cm³ → mm³
	props.Wy = row.Wy * 1e3
	props.Sx = row.Sx * 1e3
	props.Rx = row.Rx * 10 // cm → mm
	props.Ry = row.Ry * 10
	if props.Ry < props.Rx {
		props.RMin = props.Ry
	} else {
		props.RMin = props.Rx
	}
	props.FromCatalog = true
	return props
}
