package profile

import "fmt"

// Shape identifies a cross-section family. The set is closed; every
// value maps to exactly one geometry routine and one buckling curve.
type Shape string

const (
	IBeam     Shape = "ibeam"
	Channel   Shape = "channel"
	Angle     Shape = "angle"
	RectTube  Shape = "rect_tube"
	CircTube  Shape = "circ_tube"
	Rectangle Shape = "rectangle"
)

// Shapes lists the supported section families in display order.
func Shapes() []Shape {
	return []Shape{IBeam, Channel, Angle, RectTube, CircTube, Rectangle}
}

// SectionProfile describes a member cross-section, either by a standard
// catalog designation (GOST rolled shapes) or by explicit dimensions.
// All dimensions are millimetres.
type SectionProfile struct {
	Shape       Shape  `json:"shape"`
	Designation string `json:"designation,omitempty"`

	H  float64 `json:"h,omitempty"`  // overall depth (ibeam, channel, rect_tube, rectangle)
	B  float64 `json:"b,omitempty"`  // flange width / overall width / angle leg
	Tw float64 `json:"tw,omitempty"` // web thickness (ibeam, channel)
	Tf float64 `json:"tf,omitempty"` // flange thickness (ibeam, channel)
	T  float64 `json:"t,omitempty"`  // wall/leg thickness (tubes, angle)
	D  float64 `json:"d,omitempty"`  // outer diameter (circ_tube)
}

// Properties holds the derived geometric characteristics of a section.
// Computed once from the profile and treated as immutable afterwards.
// Units: mm, mm², mm³, mm⁴, mm⁶.
type Properties struct {
	A  float64 `json:"a"`  // gross area
	Ix float64 `json:"ix"` // moment of inertia, strong axis
	Iy float64 `json:"iy"` // moment of inertia, weak axis
	Wx float64 `json:"wx"` // elastic section modulus, strong axis
	Wy float64 `json:"wy"` // elastic section modulus, weak axis
	Sx float64 `json:"sx"` // first moment of half-section about the neutral axis
	Rx float64 `json:"rx"` // radius of gyration, strong axis
	Ry float64 `json:"ry"` // radius of gyration, weak axis
	// RMin is the governing radius of gyration for stability. Equals the
	// principal minimum for angles (u-u axis), min(Rx, Ry) otherwise.
	RMin float64 `json:"r_min"`
	It   float64 `json:"it"` // St. Venant torsion constant
	Iw   float64 `json:"iw"` // warping constant

	Af float64 `json:"af"` // area of one flange
	Aw float64 `json:"aw"` // area of web

	// Carriers for downstream checks.
	Depth          float64 `json:"depth"`           // overall depth used by bending checks
	FlangeWidth    float64 `json:"flange_width"`    // b
	WebThickness   float64 `json:"web_thickness"`   // tw (shear); 2t for rect tubes
	PlateThickness float64 `json:"plate_thickness"` // thickness governing the strength bracket

	// TorsionApprox marks It as the open thin-walled Σb·t³/3 estimate
	// (or the rectangle fit formula) rather than an exact value.
	TorsionApprox bool `json:"torsion_approx"`

	// FromCatalog is set when the values were read from a rolled-shape
	// table instead of computed from nominal dimensions.
	FromCatalog bool `json:"from_catalog"`
}

// GeometryError reports a profile whose dimensions cannot form a valid
// section, or a catalog designation the library does not know.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return e.msg
}

func geometryErrorf(format string, args ...any) error {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks the dimensional invariants for the profile's shape.
// Catalog profiles skip dimension checks; the table is authoritative.
func (p *SectionProfile) Validate() error {
	if p.Designation != "" {
		return nil
	}
	switch p.Shape {
	case IBeam, Channel:
		return validateFlanged(p.H, p.B, p.Tw, p.Tf)
	case Angle:
		if p.B <= 0 || p.T <= 0 {
			return geometryErrorf("angle: leg width and thickness must be positive, got b=%.2f t=%.2f", p.B, p.T)
		}
		if p.T >= p.B {
			return geometryErrorf("angle: thickness %.2f mm must be less than leg width %.2f mm", p.T, p.B)
		}
	case RectTube:
		if p.H <= 0 || p.B <= 0 || p.T <= 0 {
			return geometryErrorf("rect tube: dimensions must be positive, got h=%.2f b=%.2f t=%.2f", p.H, p.B, p.T)
		}
		if 2*p.T >= p.H || 2*p.T >= p.B {
			return geometryErrorf("rect tube: wall thickness %.2f mm too large for %.0fx%.0f mm outline", p.T, p.H, p.B)
		}
	case CircTube:
		if p.D <= 0 || p.T <= 0 {
			return geometryErrorf("circ tube: dimensions must be positive, got d=%.2f t=%.2f", p.D, p.T)
		}
		if 2*p.T >= p.D {
			return geometryErrorf("circ tube: wall thickness %.2f mm leaves no bore in diameter %.2f mm", p.T, p.D)
		}
	case Rectangle:
		if p.H <= 0 || p.B <= 0 {
			return geometryErrorf("rectangle: dimensions must be positive, got h=%.2f b=%.2f", p.H, p.B)
		}
	default:
		return geometryErrorf("unknown section shape %q", p.Shape)
	}
	return nil
}

func validateFlanged(h, b, tw, tf float64) error {
	if h <= 0 || b <= 0 || tw <= 0 || tf <= 0 {
		return geometryErrorf("section dimensions must be positive, got h=%.2f b=%.2f tw=%.2f tf=%.2f", h, b, tw, tf)
	}
	if tw >= b {
		return geometryErrorf("web thickness %.2f mm must be less than flange width %.2f mm", tw, b)
	}
	if 2*tf >= h {
		return geometryErrorf("two flanges (%.2f mm) must be less than overall depth %.2f mm", 2*tf, h)
	}
	return nil
}
