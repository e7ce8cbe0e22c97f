package check

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/code"
	"github.com/alexiusacademia/gosteel/internal/profile"
	"github.com/alexiusacademia/gosteel/internal/report"
)

// slenderness returns the member slenderness about both principal axes
// and the governing (larger) value. Angles buckle about the principal
// minimum axis, so that radius governs their weak direction.
func (r *run) slenderness() (lambdaX, lambdaY, governing float64) {
	ry := r.props.Ry
	if r.prof.Shape == profile.Angle {
		ry = r.props.RMin
	}
	if r.props.Rx > 0 {
		lambdaX = r.c.LefX / r.props.Rx
	}
	if ry > 0 {
		lambdaY = r.c.LefY / ry
	}
	return lambdaX, lambdaY, math.Max(lambdaX, lambdaY)
}

// strength runs the normal-stress check: linear superposition of the
// axial and bending contributions against design strength.
func (r *run) strength() {
	props, st, c := r.props, r.st, r.c

	sigma := 0.0
	if c.N > 0 && props.A > 0 {
		sigma += c.N / props.A
	}
	c1 := 1.0
	if c.Mx > 0 && props.Wx > 0 {
		// Plastic adaptation applies to strong-axis bending of shapes
		// with a distinct flange/web split.
		if r.prof.Shape == profile.IBeam || r.prof.Shape == profile.Channel {
			c1 = r.eng.Edition.C1(props.Af, props.Aw)
		}
		sigma += c.Mx / (c1 * props.Wx)
	}
	if c.My > 0 && props.Wy > 0 {
		sigma += c.My / props.Wy
	}

	capacity := st.Ry * r.eng.GammaC
	detail := fmt.Sprintf("σ = N/A + Mx/(c1·Wx) + My/Wy, c1 = %.3f, Ry·γc = %.1f MPa", c1, capacity)
	r.results = append(r.results, report.NewCheckResult(report.CheckStrength, sigma, capacity, detail))
}

// shear runs the web shear check τ = Q·Sx/(Ix·tw) ≤ Rs·γc.
func (r *run) shear() {
	props, st, c := r.props, r.st, r.c

	capacity := st.Rs * r.eng.GammaC
	if c.Q <= 0 {
		r.results = append(r.results, report.NewCheckResult(report.CheckShear, 0, capacity, "no shear force applied"))
		return
	}
	if props.Sx <= 0 || props.Ix <= 0 || props.WebThickness <= 0 {
		// Shape has no shear-carrying web model; record the policy
		// instead of dividing by zero.
		r.event(report.EventZeroTerm, "shear stress not evaluable for shape %s; term short-circuited", r.prof.Shape)
		r.results = append(r.results, report.NewCheckResult(report.CheckShear, 0, capacity, "shear term short-circuited"))
		return
	}
	tau := c.Q * props.Sx / (props.Ix * props.WebThickness)
	detail := fmt.Sprintf("τ = Q·Sx/(Ix·tw), Rs·γc = %.1f MPa", capacity)
	r.results = append(r.results, report.NewCheckResult(report.CheckShear, tau, capacity, detail))
}

// localStability classifies the plate elements of the section against
// the width-to-thickness limits. Overruns switch the governing capacity
// to a reduced effective section, which is flagged distinctly from a
// strength failure.
func (r *run) localStability() {
	props, st := r.props, r.st
	shape := r.prof.Shape
	if shape != profile.IBeam && shape != profile.Channel && shape != profile.RectTube {
		return // no slender plate elements to classify
	}

	lim := r.eng.Edition.ClassLimits
	scale := math.Sqrt(st.E / st.Ry)

	var hw, tw, overhang, tf float64
	switch shape {
	case profile.IBeam, profile.Channel:
		hw = props.Depth - 2*r.flangeThickness()
		tw = props.WebThickness
		overhang = (props.FlangeWidth - tw) / 2
		if shape == profile.Channel {
			overhang = props.FlangeWidth - tw
		}
		tf = r.flangeThickness()
	case profile.RectTube:
		tf = props.PlateThickness
		hw = props.Depth - 2*tf
		tw = tf // single wall governs
		overhang = props.FlangeWidth - 2*tf
	}

	var uw, uf float64
	if r.c.Type.Compression() {
		_, _, lambda := r.slenderness()
		curve, _ := r.eng.Edition.CurveFor(shape)
		lambdaBar := code.Phi(lambda, st.Ry, st.E, curve).LambdaBar
		if lambdaBar <= 2 {
			uw = lim.WebUwBase + lim.WebUwQuad*lambdaBar*lambdaBar
		} else {
			uw = lim.WebUwLinBase + lim.WebUwLin*lambdaBar
		}
		if uw > lim.WebUwMax {
			uw = lim.WebUwMax
		}
		uf = lim.FlangeUfBase + lim.FlangeUfLin*lambdaBar
	} else {
		uw = lim.BendingWeb
		uf = lim.BendingFlg
	}

	webLimit := uw * scale
	flangeLimit := uf * scale
	webRatio := hw / tw / webLimit
	flangeRatio := overhang / tf / flangeLimit

	demand, limit, element := hw/tw, webLimit, "web"
	if flangeRatio > webRatio {
		demand, limit, element = overhang/tf, flangeLimit, "flange"
	}

	if webRatio > 1 && r.c.Type.Compression() {
		// Exclude the web overshoot from the area carrying compression
		// (effective-section approach).
		excess := (hw - webLimit*tw) * tw
		if excess > 0 && excess < props.A {
			r.aeff = props.A - excess
			r.event(report.EventReducedSection,
				"web slenderness %.1f exceeds limit %.1f; effective area reduced from %.0f to %.0f mm²",
				hw/tw, webLimit, props.A, r.aeff)
		}
	}

	detail := fmt.Sprintf("governing element: %s, width-to-thickness vs limit ·√(E/Ry)", element)
	r.results = append(r.results, report.NewCheckResult(report.CheckLocalStability, demand, limit, detail))
}

func (r *run) flangeThickness() float64 {
	// For flanged catalog shapes PlateThickness carries tf.
	return r.props.PlateThickness
}

// flexuralBuckling runs the overall buckling check of compression
// members. Both axes are evaluated; the one with the larger ratio
// governs the verdict.
func (r *run) flexuralBuckling() {
	st, c := r.st, r.c
	if c.N <= 0 {
		r.event(report.EventZeroTerm, "no axial force; flexural buckling term short-circuited")
		r.results = append(r.results, report.NewCheckResult(report.CheckFlexuralBuck, 0, 1, "no axial force"))
		return
	}

	curve, letter := r.eng.Edition.CurveFor(r.prof.Shape)
	lambdaX, lambdaY, lambda := r.slenderness()

	phiX := code.Phi(lambdaX, st.Ry, st.E, curve)
	phiY := code.Phi(lambdaY, st.Ry, st.E, curve)
	gov := phiY
	axis := "y"
	if lambdaX >= lambdaY {
		gov = phiX
		axis = "x"
	}

	switch gov.Method {
	case code.PhiLowLambda:
		r.event(report.EventPhiLowLambda,
			"λ̄ = %.2f below curve %s applicability; φ capped at 1.0", gov.LambdaBar, letter)
	case code.PhiHighLambda:
		r.event(report.EventPhiHighLambda,
			"λ̄ = %.2f above curve %s threshold %.1f; φ = 7.6/λ̄² tail applied", gov.LambdaBar, letter, curve.Threshold)
	}

	design := st.Ry * r.eng.GammaC
	capX := phiX.Phi * r.aeff * design
	capY := phiY.Phi * r.aeff * design
	ratioX, ratioY := math.Inf(1), math.Inf(1)
	if capX > 0 {
		ratioX = c.N / capX
	}
	if capY > 0 {
		ratioY = c.N / capY
	}

	capacity := gov.Phi * r.aeff * design
	detail := fmt.Sprintf("governing axis %s: λ = %.1f, λ̄ = %.2f, φ = %.3f (curve %s)",
		axis, lambda, gov.LambdaBar, gov.Phi, letter)
	res := report.NewCheckResult(report.CheckFlexuralBuck, c.N, capacity, detail)
	r.results = append(r.results, res)

	r.buckling = &report.Buckling{
		Axis:      axis,
		LambdaX:   lambdaX,
		LambdaY:   lambdaY,
		Lambda:    lambda,
		LambdaBar: gov.LambdaBar,
		Phi:       gov.Phi,
		Curve:     letter,
		Method:    gov.Method,
		RatioX:    ratioX,
		RatioY:    ratioY,
	}
}

// lateralTorsional runs the lateral-torsional buckling check of bending
// members. Closed and compact shapes are torsionally stiff and are not
// in the susceptible set.
func (r *run) lateralTorsional() {
	props, st, c := r.props, r.st, r.c
	shape := r.prof.Shape
	if shape != profile.IBeam && shape != profile.Channel {
		return
	}
	if c.Mx <= 0 {
		r.event(report.EventZeroTerm, "no strong-axis moment; lateral-torsional term short-circuited")
		r.results = append(r.results, report.NewCheckResult(report.CheckLTB, 0, 1, "no strong-axis moment"))
		return
	}

	ltb := r.eng.Edition.LTB
	lef := c.LefY // unbraced length against lateral movement
	b := props.FlangeWidth
	h := props.Depth
	tf := r.flangeThickness()
	design := st.Ry * r.eng.GammaC

	// Applicability threshold (flange-restraint inequality): short
	// unbraced lengths need no reduction.
	limit := (ltb.SkipC0 + ltb.SkipC1*(b/tf) + (ltb.SkipC2+ltb.SkipC3*(b/tf))*(b/h)) * math.Sqrt(st.E/st.Ry)
	phiB := 1.0
	var detail string
	if lef/b <= limit {
		r.event(report.EventLTBNotRequired,
			"unbraced length %.0f mm within threshold %.0f mm; no lateral-torsional reduction", lef, limit*b)
		detail = fmt.Sprintf("lef/b = %.1f ≤ %.1f; φb = 1", lef/b, limit)
	} else {
		alpha := ltb.AlphaFactor * (props.It / props.Iy) * (lef / h) * (lef / h)
		psi := ltb.PsiA + ltb.PsiB*alpha
		phi1 := psi * (props.Iy / props.Ix) * (h / lef) * (h / lef) * (st.E / st.Ry)
		phiB = phi1
		if phi1 > ltb.Phi1Break {
			phiB = ltb.CorrA + ltb.CorrB*phi1
		}
		if phiB > 1 {
			phiB = 1
		}
		detail = fmt.Sprintf("α = %.2f, ψ = %.2f, φ1 = %.3f, φb = %.3f", alpha, psi, phi1, phiB)
	}

	capacity := phiB * props.Wx * design
	r.results = append(r.results, report.NewCheckResult(report.CheckLTB, c.Mx, capacity, detail))
}

// interaction runs the combined-loading check: normalized axial and
// bending demands must sum to at most 1. For compression members the
// axial term is exactly the flexural-buckling ratio, so a zero-moment
// eccentric case degenerates to the buckling check.
func (r *run) interaction() {
	props, st, c := r.props, r.st, r.c
	coeffs := r.eng.Edition.InteractionFor(r.prof.Shape)
	design := st.Ry * r.eng.GammaC

	axial := 0.0
	switch {
	case c.N <= 0:
		r.event(report.EventZeroTerm, "no axial force; interaction axial term short-circuited")
	case c.Type.Compression():
		if r.buckling != nil {
			if r.buckling.RatioX > r.buckling.RatioY {
				axial = r.buckling.RatioX
			} else {
				axial = r.buckling.RatioY
			}
		} else if props.A > 0 {
			axial = c.N / (props.A * design)
		}
	default: // tension
		axial = math.Pow(c.N/(props.A*design), r.eng.Edition.Interaction.TensionExponent)
	}

	bendX := 0.0
	if c.Mx > 0 && props.Wx > 0 {
		bendX = c.Mx / (coeffs.Cx * props.Wx * design)
	}
	bendY := 0.0
	if c.My > 0 && props.Wy > 0 {
		bendY = c.My / (coeffs.Cy * props.Wy * design)
	}

	sum := axial + bendX + bendY
	detail := fmt.Sprintf("axial %.3f + Mx %.3f + My %.3f (cx = %.2f, cy = %.2f)",
		axial, bendX, bendY, coeffs.Cx, coeffs.Cy)
	r.results = append(r.results, report.NewCheckResult(report.CheckInteraction, sum, 1.0, detail))
}
