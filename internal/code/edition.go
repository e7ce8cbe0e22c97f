package code

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosteel/internal/profile"
)

//go:embed editions/*.yaml
var editionFS embed.FS

// Curve holds the coefficients of one flexural buckling curve.
type Curve struct {
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Threshold float64 `yaml:"threshold"`  // high-slenderness switch
	LowLambda float64 `yaml:"low_lambda"` // below this, phi = 1
}

// PlasticC1 describes the linear interpolation of the plastic
// adaptation coefficient on n = Af/Aw.
type PlasticC1 struct {
	NLow  float64 `yaml:"n_low"`
	CLow  float64 `yaml:"c_low"`
	NHigh float64 `yaml:"n_high"`
	CHigh float64 `yaml:"c_high"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// InteractionCoeffs are the per-shape bending-term coefficients of the
// strength interaction formula.
type InteractionCoeffs struct {
	Cx float64 `yaml:"cx"`
	Cy float64 `yaml:"cy"`
}

// Interaction carries the combined-loading formula parameters.
type Interaction struct {
	TensionExponent float64                      `yaml:"tension_exponent"`
	Coefficients    map[string]InteractionCoeffs `yaml:"coefficients"`
}

// ClassLimits are the local-stability slenderness limit coefficients.
type ClassLimits struct {
	WebUwBase    float64 `yaml:"web_uw_base"`
	WebUwQuad    float64 `yaml:"web_uw_quad"`
	WebUwLinBase float64 `yaml:"web_uw_lin_base"`
	WebUwLin     float64 `yaml:"web_uw_lin"`
	WebUwMax     float64 `yaml:"web_uw_max"`
	FlangeUfBase float64 `yaml:"flange_uf_base"`
	FlangeUfLin  float64 `yaml:"flange_uf_lin"`
	BendingWeb   float64 `yaml:"bending_web"`
	BendingFlg   float64 `yaml:"bending_flange"`
}

// LTB carries the lateral-torsional buckling coefficients.
type LTB struct {
	PsiA        float64 `yaml:"psi_a"`
	PsiB        float64 `yaml:"psi_b"`
	AlphaFactor float64 `yaml:"alpha_factor"`
	Phi1Break   float64 `yaml:"phi1_break"`
	CorrA       float64 `yaml:"corr_a"`
	CorrB       float64 `yaml:"corr_b"`
	SkipC0      float64 `yaml:"skip_c0"`
	SkipC1      float64 `yaml:"skip_c1"`
	SkipC2      float64 `yaml:"skip_c2"`
	SkipC3      float64 `yaml:"skip_c3"`
}

// Edition is one code edition's numeric tables, loaded once and passed
// explicitly into the check engine. Immutable after load.
type Edition struct {
	Name         string            `yaml:"name"`
	Curves       map[string]Curve  `yaml:"curves"`
	CurveByShape map[string]string `yaml:"curve_by_shape"`
	PlasticC1    PlasticC1         `yaml:"plastic_c1"`
	Interaction  Interaction       `yaml:"interaction"`
	ClassLimits  ClassLimits       `yaml:"class_limits"`
	LTB          LTB               `yaml:"ltb"`
}

// LoadEdition parses an embedded edition file by basename,
// e.g. "sp16-2017".
func LoadEdition(name string) (*Edition, error) {
	raw, err := editionFS.ReadFile("editions/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("code edition %q: %w", name, err)
	}
	var ed Edition
	if err := yaml.Unmarshal(raw, &ed); err != nil {
		return nil, fmt.Errorf("code edition %q: %w", name, err)
	}
	if len(ed.Curves) == 0 || len(ed.CurveByShape) == 0 {
		return nil, fmt.Errorf("code edition %q: missing buckling curves", name)
	}
	return &ed, nil
}

// DefaultEdition returns the shipped SP 16.13330.2017 tables. The
// embedded file is trusted; a parse failure is a build defect.
func DefaultEdition() *Edition {
	ed, err := LoadEdition("sp16-2017")
	if err != nil {
		panic(err)
	}
	return ed
}

// CurveFor returns the buckling curve assigned to a section shape and
// its code letter.
func (ed *Edition) CurveFor(shape profile.Shape) (Curve, string) {
	letter, ok := ed.CurveByShape[string(shape)]
	if !ok {
		letter = "b"
	}
	return ed.Curves[letter], letter
}

// InteractionFor returns the bending-term coefficients for a shape,
// falling back to the default row.
func (ed *Edition) InteractionFor(shape profile.Shape) InteractionCoeffs {
	if c, ok := ed.Interaction.Coefficients[string(shape)]; ok {
		return c
	}
	if c, ok := ed.Interaction.Coefficients["default"]; ok {
		return c
	}
	return InteractionCoeffs{Cx: 1, Cy: 1}
}

// C1 interpolates the plastic adaptation coefficient for a flanged
// section with flange/web area ratio n = af/aw. Sections without a
// distinct web get 1.
func (ed *Edition) C1(af, aw float64) float64 {
	if aw <= 0 || af <= 0 {
		return 1.0
	}
	p := ed.PlasticC1
	n := af / aw
	c1 := p.CLow + (n-p.NLow)*(p.CHigh-p.CLow)/(p.NHigh-p.NLow)
	if c1 < p.Min {
		c1 = p.Min
	}
	if c1 > p.Max {
		c1 = p.Max
	}
	return c1
}
