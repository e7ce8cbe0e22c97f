package code

import "fmt"

// SP 16.13330.2017 material data for steels per GOST 27772.
//
// Strength brackets step down with plate thickness; for rolled shapes
// the flange thickness governs the bracket.

const (
	// E is the elastic modulus of structural steel, MPa.
	E = 206000.0

	// ShearRatio converts yield strength to design shear strength,
	// Rs = 0.58·Ry.
	ShearRatio = 0.58
)

type strengthBracket struct {
	MaxThickness float64 // mm, inclusive upper bound
	Ryn          float64 // normative yield strength, MPa
	Run          float64 // normative ultimate strength, MPa
}

// GradeSpec is one steel grade from table B.7 with its reliability
// factor. Brackets are ordered by strictly increasing thickness.
type GradeSpec struct {
	Name     string
	GammaM   float64 // material reliability factor, Ry = Ryn/γm
	brackets []strengthBracket
}

// grades is initialized once and read-only for the process lifetime.
var grades = map[string]GradeSpec{
	"C235": {Name: "C235", GammaM: 1.025, brackets: []strengthBracket{
		{20, 235, 360}, {40, 225, 360},
	}},
	"C245": {Name: "C245", GammaM: 1.025, brackets: []strengthBracket{
		{20, 245, 370}, {40, 235, 370},
	}},
	"C255": {Name: "C255", GammaM: 1.025, brackets: []strengthBracket{
		{10, 255, 380}, {20, 245, 370}, {40, 235, 370},
	}},
	"C345": {Name: "C345", GammaM: 1.025, brackets: []strengthBracket{
		{10, 345, 470}, {20, 325, 450}, {40, 305, 440},
	}},
	"C345K": {Name: "C345K", GammaM: 1.025, brackets: []strengthBracket{
		{10, 345, 470},
	}},
	"C355": {Name: "C355", GammaM: 1.025, brackets: []strengthBracket{
		{16, 355, 490}, {40, 345, 480},
	}},
	"C390": {Name: "C390", GammaM: 1.05, brackets: []strengthBracket{
		{10, 390, 540}, {20, 380, 530}, {40, 370, 520},
	}},
}

// Strength is the resolved material strength set for one grade and
// thickness bracket. All values in MPa.
type Strength struct {
	Grade  string
	Ryn    float64 // normative yield
	Run    float64 // normative ultimate
	Ry     float64 // design yield, Ryn/γm
	Ru     float64 // design ultimate, Run/γm
	Rs     float64 // design shear, 0.58·Ry
	E      float64
	GammaM float64
}

// UnknownGradeError reports a grade identifier missing from the table.
type UnknownGradeError struct {
	Grade string
}

func (e *UnknownGradeError) Error() string {
	return fmt.Sprintf("unknown steel grade %q", e.Grade)
}

// ThicknessRangeError reports a thickness outside the table: beyond the
// last bracket, or non-positive. Extrapolating strength is unsafe, so
// this is a hard failure, never a fallback.
type ThicknessRangeError struct {
	Grade     string
	Thickness float64
	Max       float64
}

func (e *ThicknessRangeError) Error() string {
	if e.Thickness <= 0 {
		return fmt.Sprintf("grade %s: thickness must be positive, got %.2f mm", e.Grade, e.Thickness)
	}
	return fmt.Sprintf("grade %s: thickness %.1f mm exceeds table maximum %.0f mm", e.Grade, e.Thickness, e.Max)
}

// ResolveStrength selects the strength bracket containing the supplied
// thickness (mm) and derives the design values.
func ResolveStrength(grade string, thickness float64) (*Strength, error) {
	spec, ok := grades[grade]
	if !ok {
		return nil, &UnknownGradeError{Grade: grade}
	}
	if thickness <= 0 {
		return nil, &ThicknessRangeError{Grade: grade, Thickness: thickness}
	}
	for _, b := range spec.brackets {
		if thickness <= b.MaxThickness {
			return &Strength{
				Grade:  spec.Name,
				Ryn:    b.Ryn,
				Run:    b.Run,
				Ry:     b.Ryn / spec.GammaM,
				Ru:     b.Run / spec.GammaM,
				Rs:     ShearRatio * b.Ryn / spec.GammaM,
				E:      E,
				GammaM: spec.GammaM,
			}, nil
		}
	}
	last := spec.brackets[len(spec.brackets)-1]
	return nil, &ThicknessRangeError{Grade: grade, Thickness: thickness, Max: last.MaxThickness}
}

// Grades lists the known grade identifiers in table order.
func Grades() []string {
	return []string{"C235", "C245", "C255", "C345", "C345K", "C355", "C390"}
}

// GradeBrackets exposes the thickness brackets of a grade for listings.
func GradeBrackets(grade string) ([]struct{ MaxThickness, Ryn, Run float64 }, error) {
	spec, ok := grades[grade]
	if !ok {
		return nil, &UnknownGradeError{Grade: grade}
	}
	out := make([]struct{ MaxThickness, Ryn, Run float64 }, len(spec.brackets))
	for i, b := range spec.brackets {
		out[i] = struct{ MaxThickness, Ryn, Run float64 }{b.MaxThickness, b.Ryn, b.Run}
	}
	return out, nil
}
