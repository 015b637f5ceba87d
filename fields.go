package dxf

// pointAccumulator assembles Point3D values from the X/Y/Z triples DXF
// spreads across three separate records (e.g. codes 10/20/30), keyed by
// coordinateGroup so that a primary point (group 0) and a secondary point
// (group 1) accumulate independently even when their records interleave.
// Every entity/table/object decoder that reads point fields uses one of
// these instead of repeating the fold-three-records-into-one-point logic.
type pointAccumulator struct {
	pts map[int]*Point3D
}

func newPointAccumulator() *pointAccumulator {
	return &pointAccumulator{pts: make(map[int]*Point3D)}
}

// feed folds one coordinate record into the point it belongs to. Callers
// must already know r.Code satisfies isCoordinateCode.
func (a *pointAccumulator) feed(code uint16, v float64) {
	grp := coordinateGroup(code)
	if grp < 0 {
		return
	}
	p := a.pts[grp]
	if p == nil {
		p = &Point3D{}
		a.pts[grp] = p
	}
	switch coordinateAxis(code) {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
}

// get returns the accumulated point for a coordinateGroup, or the zero
// point if none was ever fed.
func (a *pointAccumulator) get(grp int) Point3D {
	if p := a.pts[grp]; p != nil {
		return *p
	}
	return Point3D{}
}

// vertexAccumulator collects the repeated point lists that appear in
// polyline-family entities, where the same group code (e.g. 10/20/30)
// recurs once per vertex rather than identifying distinct named points.
// A new vertex starts each time the lead axis (X, axis 0) is seen again.
type vertexAccumulator struct {
	verts []Point3D
}

func (a *vertexAccumulator) feed(code uint16, v float64) {
	axis := coordinateAxis(code)
	if axis == 0 {
		a.verts = append(a.verts, Point3D{X: v})
		return
	}
	if len(a.verts) == 0 {
		a.verts = append(a.verts, Point3D{})
	}
	p := &a.verts[len(a.verts)-1]
	switch axis {
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	}
}

// floatList collects repeated single-float fields (bulge lists, knot
// vectors, weight lists) in the order records were read.
type floatList []float64

func (l *floatList) feed(v float64) { *l = append(*l, v) }
