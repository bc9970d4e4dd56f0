package studyarea_test

import (
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
	"github.com/lpoaura/lpodata/pkg/studyarea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = "POLYGON((800000 6500000, 801000 6500000, 801000 6501000, 800000 6501000, 800000 6500000))"

func TestEncode(t *testing.T) {
	enc := studyarea.Encoder{TargetSRID: 2154}

	t.Run("same srid skips transform", func(t *testing.T) {
		sa := studyarea.New(studyarea.Polygon{WKT: square, SRID: 2154})
		res, err := enc.Encode(sa)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
		assert.Equal(t,
			"ARRAY[ST_GeomFromText('"+square+"', 2154)]", res.Array)
		assert.Equal(t, "ST_union("+res.Array+")", res.Union())
	})

	t.Run("reprojects other srid", func(t *testing.T) {
		wkt := "POLYGON((4.8 45.7, 4.9 45.7, 4.9 45.8, 4.8 45.7))"
		sa := studyarea.New(
			studyarea.Polygon{WKT: wkt, SRID: 4326},
			studyarea.Polygon{WKT: wkt, SRID: 4326},
		)
		res, err := enc.Encode(sa)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Count)
		part := "ST_Transform(ST_GeomFromText('" + wkt + "', 4326), 2154)"
		assert.Equal(t, "ARRAY["+part+", "+part+"]", res.Array)
	})

	t.Run("skips empty geometries", func(t *testing.T) {
		sa := studyarea.New(
			studyarea.Polygon{WKT: "POLYGON EMPTY", SRID: 2154},
			studyarea.Polygon{WKT: square, SRID: 2154},
			studyarea.Polygon{WKT: "  ", SRID: 2154},
		)
		res, err := enc.Encode(sa)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
		assert.Equal(t, 2, res.Skipped)
		assert.Equal(t, 1, strings.Count(res.Array, "ST_GeomFromText"))
	})

	t.Run("quotes text", func(t *testing.T) {
		sa := studyarea.New(studyarea.Polygon{WKT: "POLYGON((0 0'))", SRID: 2154})
		res, err := enc.Encode(sa)
		require.NoError(t, err)
		assert.Contains(t, res.Array, "'POLYGON((0 0''))'")
	})
}

func TestEncodeErrors(t *testing.T) {
	enc := studyarea.Encoder{TargetSRID: 2154}
	tests := []struct {
		msg  string
		sa   studyarea.StudyArea
		code gn.ErrorCode
	}{
		{"no polygons", studyarea.New(), errcode.StudyAreaEmptyError},
		{
			"only empty polygons",
			studyarea.New(studyarea.Polygon{WKT: "MULTIPOLYGON EMPTY", SRID: 2154}),
			errcode.StudyAreaEmptyError,
		},
		{
			"point",
			studyarea.New(studyarea.Polygon{WKT: "POINT(1 2)", SRID: 2154}),
			errcode.StudyAreaGeometryError,
		},
		{
			"missing srid",
			studyarea.New(studyarea.Polygon{WKT: square}),
			errcode.StudyAreaGeometryError,
		},
		{
			"mixed srid",
			studyarea.New(
				studyarea.Polygon{WKT: square, SRID: 2154},
				studyarea.Polygon{WKT: square, SRID: 4326},
			),
			errcode.StudyAreaGeometryError,
		},
	}

	for _, v := range tests {
		_, err := enc.Encode(v.sa)
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}
}

func TestParseEWKT(t *testing.T) {
	tests := []struct {
		msg  string
		in   string
		wkt  string
		srid int
		err  bool
	}{
		{"plain", "  " + square + " ", square, 2154, false},
		{"ewkt", "SRID=4326;POLYGON((4 45, 5 45, 5 46, 4 45))",
			"POLYGON((4 45, 5 45, 5 46, 4 45))", 4326, false},
		{"lower case", "srid=3857; POLYGON EMPTY", "POLYGON EMPTY", 3857, false},
		{"bad prefix", "EPSG=4326;POLYGON EMPTY", "", 0, true},
		{"bad number", "SRID=abc;POLYGON EMPTY", "", 0, true},
		{"zero", "SRID=0;POLYGON EMPTY", "", 0, true},
	}

	for _, v := range tests {
		p, err := studyarea.ParseEWKT(v.in, 2154)
		if v.err {
			require.Error(t, err, v.msg)
			assert.Equal(t, errcode.StudyAreaGeometryError, err.(*gn.Error).Code, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.wkt, p.WKT, v.msg)
		assert.Equal(t, v.srid, p.SRID, v.msg)
	}
}
