// Package studyarea keeps the polygons that delimit a report and encodes
// them into a PostGIS geometry array expression.
package studyarea

import (
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// DefaultTargetSRID is the projected reference system of the observation
// database (RGF93 / Lambert-93).
const DefaultTargetSRID = 2154

// Polygon is one feature of a study area, kept as Well-Known Text together
// with the spatial reference it is expressed in.
type Polygon struct {
	WKT  string `json:"wkt"`
	SRID int    `json:"srid"`
}

// StudyArea is the ordered set of polygons selected by the user.
type StudyArea struct {
	Polygons []Polygon `json:"polygons"`
}

// New creates a StudyArea from polygons, keeping their order.
func New(polygons ...Polygon) StudyArea {
	return StudyArea{Polygons: polygons}
}

// Len returns the number of polygons, including empty ones.
func (sa StudyArea) Len() int {
	return len(sa.Polygons)
}

// IsEmpty reports whether the polygon carries no geometry.
func (p Polygon) IsEmpty() bool {
	wkt := strings.ToUpper(strings.TrimSpace(p.WKT))
	return wkt == "" || strings.HasSuffix(wkt, " EMPTY") || wkt == "EMPTY"
}

func (p Polygon) geometryType() string {
	wkt := strings.ToUpper(strings.TrimSpace(p.WKT))
	idx := strings.IndexAny(wkt, " (")
	if idx < 0 {
		return wkt
	}
	return wkt[:idx]
}

// Encoder converts a StudyArea into an SQL array of geometries reprojected
// to TargetSRID.
type Encoder struct {
	TargetSRID int
}

// Encoded is the result of encoding a study area.
type Encoded struct {
	// Array is the SQL expression, for example
	// ARRAY[ST_GeomFromText('POLYGON(...)', 2154)].
	Array string

	// Count is the number of polygons in Array.
	Count int

	// Skipped is the number of polygons ignored for carrying no geometry.
	Skipped int
}

// Union returns the ST_union expression that merges the encoded polygons.
func (e Encoded) Union() string {
	return "ST_union(" + e.Array + ")"
}

// Encode builds the geometry array for sa. Polygons without geometry are
// skipped and counted. Every remaining polygon must be a POLYGON or a
// MULTIPOLYGON in the same spatial reference. When nothing is left to
// encode an error is returned, an empty ARRAY[] is never produced.
func (enc Encoder) Encode(sa StudyArea) (Encoded, error) {
	var res Encoded
	target := enc.TargetSRID
	if target == 0 {
		target = DefaultTargetSRID
	}

	srid := 0
	parts := make([]string, 0, len(sa.Polygons))
	for i, p := range sa.Polygons {
		if p.IsEmpty() {
			res.Skipped++
			continue
		}

		switch p.geometryType() {
		case "POLYGON", "MULTIPOLYGON":
		default:
			return Encoded{}, GeometryTypeError(i, p.geometryType())
		}

		if p.SRID <= 0 {
			return Encoded{}, SRIDError(i, p.SRID)
		}
		if srid == 0 {
			srid = p.SRID
		}
		if p.SRID != srid {
			return Encoded{}, MixedSRIDError(srid, p.SRID)
		}

		parts = append(parts, geometry(p, target))
	}

	if len(parts) == 0 {
		return Encoded{}, EmptyError(res.Skipped)
	}

	res.Array = "ARRAY[" + strings.Join(parts, ", ") + "]"
	res.Count = len(parts)
	return res, nil
}

func geometry(p Polygon, target int) string {
	geom := "ST_GeomFromText(" +
		strings.TrimSpace(pq.QuoteLiteral(strings.TrimSpace(p.WKT))) +
		", " + strconv.Itoa(p.SRID) + ")"
	if p.SRID == target {
		return geom
	}
	return "ST_Transform(" + geom + ", " + strconv.Itoa(target) + ")"
}

// ParseEWKT reads a polygon written as WKT or as PostGIS extended WKT
// ("SRID=4326;POLYGON(...)"). Plain WKT gets defaultSRID.
func ParseEWKT(s string, defaultSRID int) (Polygon, error) {
	s = strings.TrimSpace(s)
	head, wkt, found := strings.Cut(s, ";")
	if !found {
		return Polygon{WKT: s, SRID: defaultSRID}, nil
	}
	num, ok := strings.CutPrefix(strings.ToUpper(strings.TrimSpace(head)), "SRID=")
	if !ok {
		return Polygon{}, EWKTError(s)
	}
	srid, err := strconv.Atoi(num)
	if err != nil || srid <= 0 {
		return Polygon{}, EWKTError(s)
	}
	return Polygon{WKT: strings.TrimSpace(wkt), SRID: srid}, nil
}
