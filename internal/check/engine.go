// Package check implements the stability and strength verification of
// steel members per the loaded code edition. The engine is a pure
// function of (profile, grade, load) with no state beyond the
// immutable edition tables, so concurrent runs need no locking.
package check

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/code"
	"github.com/alexiusacademia/gosteel/internal/load"
	"github.com/alexiusacademia/gosteel/internal/profile"
	"github.com/alexiusacademia/gosteel/internal/report"
)

// Engine runs the check set bound to a load-case type. Edition tables
// are passed in explicitly; the engine never reaches for ambient state.
type Engine struct {
	Edition *code.Edition
	// GammaC is the service (working-conditions) factor applied to
	// design strength. Defaults to 1.0.
	GammaC float64
}

// New returns an engine over a code edition with γc = 1.
func New(ed *code.Edition) *Engine {
	return &Engine{Edition: ed, GammaC: 1.0}
}

// run carries the intermediates of one verification invocation.
type run struct {
	eng      *Engine
	prof     *profile.SectionProfile
	props    *profile.Properties
	st       *code.Strength
	c        *load.Case
	aeff     float64 // effective area after local-stability reduction
	buckling *report.Buckling
	results  []report.CheckResult
	events   []report.PolicyEvent
}

func (r *run) event(code, format string, args ...any) {
	r.events = append(r.events, report.PolicyEvent{Code: code, Detail: fmt.Sprintf(format, args...)})
}

// Verify validates all inputs, runs exactly the check set bound to the
// load type, and assembles the report. Validation failures surface
// before any check runs; no partial report is ever produced.
func (e *Engine) Verify(prof *profile.SectionProfile, grade string, raw load.Raw) (*report.Verification, error) {
	props, err := profile.Resolve(prof)
	if err != nil {
		return nil, err
	}
	st, err := code.ResolveStrength(grade, props.PlateThickness)
	if err != nil {
		return nil, err
	}
	c, err := load.Normalize(raw)
	if err != nil {
		return nil, err
	}

	r := &run{eng: e, prof: prof, props: props, st: st, c: c, aeff: props.A}
	if props.TorsionApprox {
		r.event(report.EventApproxTorsion,
			"torsion constant It=%.0f mm⁴ is a thin-walled approximation (Σb·t³/3)", props.It)
	}

	// Closed dispatch: each load type is statically bound to its check
	// set. Running an inapplicable check would be a correctness bug.
	switch c.Type {
	case load.CentralTension:
		r.strength()
	case load.CentralCompression:
		r.localStability()
		r.strength()
		r.flexuralBuckling()
	case load.UniaxialBending:
		r.localStability()
		r.strength()
		r.shear()
		r.lateralTorsional()
	case load.BiaxialBending:
		r.localStability()
		r.strength()
		r.shear()
		r.lateralTorsional()
		r.interaction()
	case load.EccentricCompression:
		r.localStability()
		r.strength()
		r.flexuralBuckling()
		r.interaction()
	case load.EccentricTension:
		r.strength()
		r.interaction()
	case load.PureShear:
		r.shear()
	case load.Combined:
		r.localStability()
		r.strength()
		r.shear()
		r.flexuralBuckling()
		r.lateralTorsional()
		r.interaction()
	default:
		return nil, fmt.Errorf("no check set bound to load type %v", c.Type)
	}

	return report.Assemble(e.Edition.Name, *prof, props, st, c, r.results, r.events, r.buckling), nil
}
