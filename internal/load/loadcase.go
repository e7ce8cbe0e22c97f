// Package load normalizes user-supplied loading into the canonical
// internal-force vector consumed by the check engine.
package load

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Type tags the character of loading. The set is closed: the check
// engine binds each value to a fixed check set at compile time.
type Type int

const (
	CentralCompression Type = iota
	CentralTension
	UniaxialBending
	BiaxialBending
	EccentricCompression
	EccentricTension
	PureShear
	Combined
)

var typeNames = map[Type]string{
	CentralCompression:   "central compression",
	CentralTension:       "central tension",
	UniaxialBending:      "uniaxial bending",
	BiaxialBending:       "biaxial bending",
	EccentricCompression: "eccentric compression",
	EccentricTension:     "eccentric tension",
	PureShear:            "pure shear",
	Combined:             "combined",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("load.Type(%d)", int(t))
}

// Compression reports whether the axial force acts in compression.
func (t Type) Compression() bool {
	return t == CentralCompression || t == EccentricCompression || t == Combined
}

// Support enumerates the standard boundary-condition schemes of
// table A.4, each mapping to an effective-length factor.
type Support int

const (
	SupportNone        Support = iota // caller supplies explicit factors
	SupportCantilever                 // scheme 5, μ = 2.0
	SupportPinned                     // scheme 6, μ = 1.0
	SupportFixed                      // scheme 7, μ = 0.5
	SupportFixedPinned                // scheme 8, μ = 0.7
)

// muBySupport is the fixed scheme-to-factor table. Read-only.
var muBySupport = map[Support]float64{
	SupportCantilever:  2.0,
	SupportPinned:      1.0,
	SupportFixed:       0.5,
	SupportFixedPinned: 0.7,
}

var supportNames = map[Support]string{
	SupportNone:        "explicit",
	SupportCantilever:  "cantilever",
	SupportPinned:      "pinned-pinned",
	SupportFixed:       "fixed-fixed",
	SupportFixedPinned: "fixed-pinned",
}

func (s Support) String() string {
	if n, ok := supportNames[s]; ok {
		return n
	}
	return fmt.Sprintf("load.Support(%d)", int(s))
}

// ParseSupport maps a CLI spelling to a support scheme.
func ParseSupport(s string) (Support, error) {
	switch s {
	case "cantilever":
		return SupportCantilever, nil
	case "pinned", "pinned-pinned":
		return SupportPinned, nil
	case "fixed", "fixed-fixed":
		return SupportFixed, nil
	case "fixed-pinned":
		return SupportFixedPinned, nil
	}
	return SupportNone, fmt.Errorf("unknown support condition %q", s)
}

// ParseType maps a CLI spelling to a load type.
func ParseType(s string) (Type, error) {
	switch s {
	case "compression":
		return CentralCompression, nil
	case "tension":
		return CentralTension, nil
	case "bending":
		return UniaxialBending, nil
	case "biaxial-bending":
		return BiaxialBending, nil
	case "eccentric-compression":
		return EccentricCompression, nil
	case "eccentric-tension":
		return EccentricTension, nil
	case "shear":
		return PureShear, nil
	case "combined":
		return Combined, nil
	}
	return CentralCompression, fmt.Errorf("unknown load type %q", s)
}

// Raw is the user-facing load description. Units follow engineering
// input practice: forces kN, moments kN·m, eccentricities mm, member
// length m. Bounds mirror the original validation limits.
type Raw struct {
	Type Type

	N  float64 `validate:"gte=0,lte=100000"` // axial force magnitude, kN
	Mx float64 `validate:"gte=0,lte=100000"` // moment about strong axis, kN·m
	My float64 `validate:"gte=0,lte=100000"` // moment about weak axis, kN·m
	Q  float64 `validate:"gte=0,lte=100000"` // shear force, kN
	Ex float64 `validate:"gte=0,lte=5000"`   // eccentricity along x, mm (adds to My)
	Ey float64 `validate:"gte=0,lte=5000"`   // eccentricity along y, mm (adds to Mx)

	Length  float64 `validate:"gte=0,lte=100"` // geometric member length, m
	Support Support
	MuX     float64 `validate:"gte=0,lte=3"` // explicit effective-length factor, x axis
	MuY     float64 `validate:"gte=0,lte=3"` // explicit effective-length factor, y axis
}

// Case is the canonical internal-force vector: forces in N, moments in
// N·mm, lengths in mm. Immutable once produced.
type Case struct {
	Type Type

	N  float64
	Mx float64
	My float64
	Q  float64

	Length float64 // geometric length, mm
	MuX    float64
	MuY    float64
	LefX   float64 // effective length about x, mm
	LefY   float64 // effective length about y, mm
}

// InconsistentError reports magnitudes that contradict the load-type
// tag. The policy is to reject, never to silently re-tag.
type InconsistentError struct {
	msg string
}

func (e *InconsistentError) Error() string {
	return e.msg
}

func inconsistentf(format string, args ...any) error {
	return &InconsistentError{msg: fmt.Sprintf(format, args...)}
}

var validate = validator.New()

// Normalize validates a raw load against its type tag and produces the
// canonical case. Effective-length factors default from the support
// scheme when not supplied explicitly.
func Normalize(raw Raw) (*Case, error) {
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("load input out of range: %w", err)
	}
	if err := checkConsistency(raw); err != nil {
		return nil, err
	}

	muX, muY := raw.MuX, raw.MuY
	if muX == 0 {
		muX = muBySupport[raw.Support]
	}
	if muY == 0 {
		muY = muBySupport[raw.Support]
	}
	needsLength := raw.Type.Compression() || bendingType(raw.Type)
	if needsLength {
		if raw.Length <= 0 {
			return nil, inconsistentf("%s: member length must be positive", raw.Type)
		}
		if muX <= 0 || muY <= 0 {
			return nil, inconsistentf("%s: effective-length factors must be positive (supply --mu or a support condition)", raw.Type)
		}
	}

	lengthMM := raw.Length * 1000

	c := &Case{
		Type:   raw.Type,
		N:      raw.N * 1e3,  // kN → N
		Mx:     raw.Mx * 1e6, // kN·m → N·mm
		My:     raw.My * 1e6,
		Q:      raw.Q * 1e3,
		Length: lengthMM,
		MuX:    muX,
		MuY:    muY,
		LefX:   muX * lengthMM,
		LefY:   muY * lengthMM,
	}

	// Eccentric axial load folds into equivalent end moments.
	if raw.Type == EccentricCompression || raw.Type == EccentricTension || raw.Type == Combined {
		c.Mx += c.N * raw.Ey
		c.My += c.N * raw.Ex
	}
	return c, nil
}

func bendingType(t Type) bool {
	return t == UniaxialBending || t == BiaxialBending || t == Combined
}

func checkConsistency(raw Raw) error {
	switch raw.Type {
	case CentralCompression, CentralTension:
		if raw.N <= 0 {
			return inconsistentf("%s: axial force must be positive", raw.Type)
		}
		if raw.Mx != 0 || raw.My != 0 || raw.Ex != 0 || raw.Ey != 0 {
			return inconsistentf("%s carries a bending moment or eccentricity; choose an eccentric load type instead", raw.Type)
		}
		if raw.Q != 0 {
			return inconsistentf("%s carries a shear force; choose the combined load type instead", raw.Type)
		}
	case UniaxialBending:
		if raw.Mx <= 0 {
			return inconsistentf("uniaxial bending: moment Mx must be positive")
		}
		if raw.N != 0 || raw.Ex != 0 || raw.Ey != 0 {
			return inconsistentf("uniaxial bending carries an axial force; choose an eccentric or combined load type instead")
		}
		if raw.My != 0 {
			return inconsistentf("uniaxial bending carries a weak-axis moment; choose biaxial bending instead")
		}
	case BiaxialBending:
		if raw.Mx <= 0 || raw.My <= 0 {
			return inconsistentf("biaxial bending: both Mx and My must be positive")
		}
		if raw.N != 0 || raw.Ex != 0 || raw.Ey != 0 {
			return inconsistentf("biaxial bending carries an axial force; choose an eccentric or combined load type instead")
		}
	case EccentricCompression, EccentricTension:
		if raw.N <= 0 {
			return inconsistentf("%s: axial force must be positive", raw.Type)
		}
	case PureShear:
		if raw.Q <= 0 {
			return inconsistentf("pure shear: shear force Q must be positive")
		}
		if raw.N != 0 || raw.Mx != 0 || raw.My != 0 || raw.Ex != 0 || raw.Ey != 0 {
			return inconsistentf("pure shear carries other load components; choose the combined load type instead")
		}
	case Combined:
		if raw.N == 0 && raw.Mx == 0 && raw.My == 0 && raw.Q == 0 {
			return inconsistentf("combined loading: at least one load component must be nonzero")
		}
	default:
		return inconsistentf("unknown load type %d", int(raw.Type))
	}
	return nil
}
