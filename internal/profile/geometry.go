package profile

import "math"

// Resolve computes the section properties for a profile. Catalog
// designations take precedence over explicit dimensions: rolled-shape
// tables account for fillets and rolling tolerances that the closed-form
// formulas below do not.
func Resolve(p *SectionProfile) (*Properties, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Designation != "" {
		return catalogLookup(p.Shape, p.Designation)
	}
	switch p.Shape {
	case IBeam:
		return ibeamProperties(p.H, p.B, p.Tw, p.Tf), nil
	case Channel:
		return channelProperties(p.H, p.B, p.Tw, p.Tf), nil
	case Angle:
		return angleProperties(p.B, p.T), nil
	case RectTube:
		return rectTubeProperties(p.H, p.B, p.T), nil
	case CircTube:
		return circTubeProperties(p.D, p.T), nil
	case Rectangle:
		return rectangleProperties(p.H, p.B), nil
	}
	return nil, geometryErrorf("unknown section shape %q", p.Shape)
}

func ibeamProperties(h, b, tw, tf float64) *Properties {
	hw := h - 2*tf
	af := b * tf
	aw := hw * tw
	area := 2*af + aw

	bInner := (b - tw) / 2
	ix := b*h*h*h/12 - 2*(bInner*hw*hw*hw/12)
	iy := 2*(tf*b*b*b/12) + hw*tw*tw*tw/12

	// First moment of the half-section: one flange plus half the web.
	sx := af*(h/2-tf/2) + tw*(hw/2)*(hw/4)

	props := &Properties{
		A:  area,
		Ix: ix,
		Iy: iy,
		Wx: ix / (h / 2),
		Wy: iy / (b / 2),
		Sx: sx,
		Af: af,
		Aw: aw,
		// Open thin-walled approximation, Σb·t³/3 over the plates.
		It:            (2*b*tf*tf*tf + hw*tw*tw*tw) / 3,
		Iw:            iy * (h - tf) * (h - tf) / 4,
		TorsionApprox: true,

		Depth:          h,
		FlangeWidth:    b,
		WebThickness:   tw,
		PlateThickness: tf,
	}
	props.fillRadii()
	return props
}

func channelProperties(h, b, tw, tf float64) *Properties {
	hw := h - 2*tf
	af := b * tf
	aw := hw * tw
	area := 2*af + aw

	ix := b*h*h*h/12 - (b-tw)*hw*hw*hw/12

	// Centroid offset from the back of the web.
	xc := (2*af*(b/2) + aw*(tw/2)) / area
	iyFlanges := 2 * (tf*b*b*b/12 + af*(b/2-xc)*(b/2-xc))
	iyWeb := hw*tw*tw*tw/12 + aw*(tw/2-xc)*(tw/2-xc)
	iy := iyFlanges + iyWeb

	sx := af*(h/2-tf/2) + tw*(hw/2)*(hw/4)

	props := &Properties{
		A:  area,
		Ix: ix,
		Iy: iy,
		Wx: ix / (h / 2),
		Wy: iy / (b - xc),
		Sx: sx,
		Af: af,
		Aw: aw,
		It: (2*b*tf*tf*tf + hw*tw*tw*tw) / 3,
		// Warping constant taken as for a doubly symmetric shape of the
		// same flanges; adequate for the lateral-torsional threshold.
		Iw:            iy * (h - tf) * (h - tf) / 4,
		TorsionApprox: true,

		Depth:          h,
		FlangeWidth:    b,
		WebThickness:   tw,
		PlateThickness: tf,
	}
	props.fillRadii()
	return props
}

func angleProperties(b, t float64) *Properties {
	// Two rectangles: the full vertical leg b×t and the remaining
	// horizontal leg (b−t)×t.
	a1 := b * t
	a2 := (b - t) * t
	area := a1 + a2

	// Centroid (equal offsets on both axes by symmetry).
	zc := (a1*(t/2) + a2*(t+(b-t)/2)) / area

	ix := t*b*b*b/12 + a1*(b/2-zc)*(b/2-zc) +
		(b-t)*t*t*t/12 + a2*(t/2-zc)*(t/2-zc)

	// Product of inertia about the centroid; the principal minimum axis
	// of an equal-leg angle lies at 45°.
	ixy := a1*(t/2-zc)*(b/2-zc) + a2*(t+(b-t)/2-zc)*(t/2-zc)
	iMin := ix - math.Abs(ixy)

	props := &Properties{
		A:  area,
		Ix: ix,
		Iy: ix,
		Wx: ix / (b - zc),
		Wy: ix / (b - zc),
		Sx: 0,
		It: (2*b - t) * t * t * t / 3,
		Iw: 0,
		Af: 0,
		Aw: 0,

		TorsionApprox:  true,
		Depth:          b,
		FlangeWidth:    b,
		WebThickness:   t,
		PlateThickness: t,
	}
	props.fillRadii()
	props.RMin = math.Sqrt(iMin / area)
	return props
}

func rectTubeProperties(h, b, t float64) *Properties {
	hIn := h - 2*t
	bIn := b - 2*t

	area := h*b - hIn*bIn
	ix := (b*h*h*h - bIn*hIn*hIn*hIn) / 12
	iy := (h*b*b*b - hIn*bIn*bIn*bIn) / 12
	sx := (b*h*h - bIn*hIn*hIn) / 8

	// Closed thin-walled torsion: 4·A0²·t / perimeter of the midline.
	hm := h - t
	bm := b - t
	a0 := hm * bm
	it := 4 * a0 * a0 * t / (2 * (hm + bm))

	props := &Properties{
		A:  area,
		Ix: ix,
		Iy: iy,
		Wx: ix / (h / 2),
		Wy: iy / (b / 2),
		Sx: sx,
		It: it,
		Iw: 0,
		Af: b * t,
		Aw: hIn * 2 * t,

		TorsionApprox:  true,
		Depth:          h,
		FlangeWidth:    b,
		WebThickness:   2 * t, // two webs resist shear
		PlateThickness: t,
	}
	props.fillRadii()
	return props
}

func circTubeProperties(d, t float64) *Properties {
	dIn := d - 2*t

	area := math.Pi * (d*d - dIn*dIn) / 4
	ix := math.Pi * (d*d*d*d - dIn*dIn*dIn*dIn) / 64
	rO := d / 2
	rI := dIn / 2
	sx := 2.0 / 3.0 * (rO*rO*rO - rI*rI*rI)

	props := &Properties{
		A:  area,
		Ix: ix,
		Iy: ix,
		Wx: ix / rO,
		Wy: ix / rO,
		Sx: sx,
		It: 2 * ix, // polar, exact for the annulus
		Iw: 0,
		Af: 0,
		Aw: area,

		Depth:          d,
		FlangeWidth:    d,
		WebThickness:   2 * t,
		PlateThickness: t,
	}
	props.fillRadii()
	return props
}

func rectangleProperties(h, b float64) *Properties {
	area := b * h
	ix := b * h * h * h / 12
	iy := h * b * b * b / 12

	// Torsion fit formula for a solid rectangle (long side hh, short bb).
	bb, hh := b, h
	if bb > hh {
		bb, hh = hh, bb
	}
	it := hh * bb * bb * bb * (1.0/3.0 - 0.21*(bb/hh)*(1.0-bb*bb*bb*bb/(12.0*hh*hh*hh*hh)))

	props := &Properties{
		A:  area,
		Ix: ix,
		Iy: iy,
		Wx: b * h * h / 6,
		Wy: h * b * b / 6,
		Sx: b * h * h / 8,
		It: it,
		Iw: 0,
		Af: 0,
		Aw: area,

		TorsionApprox:  true,
		Depth:          h,
		FlangeWidth:    b,
		WebThickness:   b,
		PlateThickness: math.Min(b, h),
	}
	props.fillRadii()
	return props
}

func (p *Properties) fillRadii() {
	if p.A <= 0 {
		return
	}
	p.Rx = math.Sqrt(p.Ix / p.A)
	p.Ry = math.Sqrt(p.Iy / p.A)
	p.RMin = math.Min(p.Rx, p.Ry)
}
