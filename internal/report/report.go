// Package report assembles check results into the structured
// verification report consumed by presentation layers. Pure
// aggregation: nothing here recomputes stresses or ratios.
package report

import (
	"math"

	"github.com/alexiusacademia/gosteel/internal/code"
	"github.com/alexiusacademia/gosteel/internal/load"
	"github.com/alexiusacademia/gosteel/internal/profile"
)

// PassTolerance absorbs floating-point rounding at the pass boundary:
// a check passes when ratio ≤ 1 + PassTolerance.
const PassTolerance = 1e-6

// Check category names. The set mirrors the engine's dispatch table.
const (
	CheckStrength       = "strength"
	CheckShear          = "shear"
	CheckFlexuralBuck   = "flexural-buckling"
	CheckLocalStability = "local-stability"
	CheckLTB            = "lateral-torsional"
	CheckInteraction    = "interaction"
)

// CheckResult is one completed check. Immutable once produced.
type CheckResult struct {
	Name     string  `json:"name"`
	Demand   float64 `json:"demand"`
	Capacity float64 `json:"capacity"`
	Ratio    float64 `json:"ratio"`
	Pass     bool    `json:"pass"`
	Detail   string  `json:"detail,omitempty"`
}

// NewCheckResult derives the ratio and pass flag from demand and
// capacity. A non-positive capacity is an unconditional failure, not a
// division error.
func NewCheckResult(name string, demand, capacity float64, detail string) CheckResult {
	ratio := math.Inf(1)
	if capacity > 0 {
		ratio = demand / capacity
	}
	return CheckResult{
		Name:     name,
		Demand:   demand,
		Capacity: capacity,
		Ratio:    ratio,
		Pass:     ratio <= 1+PassTolerance,
		Detail:   detail,
	}
}

// Policy event codes. Events are not errors: they record where a
// documented conservative policy replaced exact computation.
const (
	EventPhiLowLambda   = "phi-low-lambda"
	EventPhiHighLambda  = "phi-high-lambda"
	EventLTBNotRequired = "ltb-not-required"
	EventReducedSection = "reduced-section"
	EventZeroTerm       = "zero-term-short-circuit"
	EventApproxTorsion  = "approximate-torsion"
)

// PolicyEvent records an applied numeric edge-case policy so auditors
// can see where a conservative assumption was substituted.
type PolicyEvent struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Buckling summarizes the flexural-buckling evaluation: both axes are
// reported, the governing one drives the check verdict.
type Buckling struct {
	Axis      string         `json:"axis"` // governing axis, "x" or "y"
	LambdaX   float64        `json:"lambda_x"`
	LambdaY   float64        `json:"lambda_y"`
	Lambda    float64        `json:"lambda"` // governing slenderness
	LambdaBar float64        `json:"lambda_bar"`
	Phi       float64        `json:"phi"`
	Curve     string         `json:"curve"`
	Method    code.PhiMethod `json:"method"`
	RatioX    float64        `json:"ratio_x"`
	RatioY    float64        `json:"ratio_y"`
}

// Verification is the complete result of one verification run. Created
// once per run; a new run produces a new report.
type Verification struct {
	Edition  string                  `json:"edition"`
	Profile  profile.SectionProfile  `json:"profile"`
	Props    *profile.Properties     `json:"properties"`
	Strength *code.Strength          `json:"strength"`
	Case     *load.Case              `json:"load_case"`
	Results  []CheckResult           `json:"results"`
	Events   []PolicyEvent           `json:"events,omitempty"`
	Buckling *Buckling               `json:"buckling,omitempty"`
	// Governing is the applicable check with the largest ratio.
	Governing CheckResult `json:"governing"`
	Pass      bool        `json:"pass"`
}

// Assemble aggregates results into a report. Overall pass iff every
// applicable check passes; governing is the maximum ratio.
func Assemble(edition string, prof profile.SectionProfile, props *profile.Properties,
	strength *code.Strength, c *load.Case,
	results []CheckResult, events []PolicyEvent, buckling *Buckling) *Verification {

	v := &Verification{
		Edition:  edition,
		Profile:  prof,
		Props:    props,
		Strength: strength,
		Case:     c,
		Results:  results,
		Events:   events,
		Buckling: buckling,
		Pass:     true,
	}
	for i, r := range results {
		if !r.Pass {
			v.Pass = false
		}
		if i == 0 || r.Ratio > v.Governing.Ratio {
			v.Governing = r
		}
	}
	return v
}
