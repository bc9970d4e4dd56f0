package iostudyarea_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/internal/iostudyarea"
	"github.com/lpoaura/lpodata/internal/iotesting"
	"github.com/lpoaura/lpodata/pkg/errcode"
	"github.com/lpoaura/lpodata/pkg/studyarea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	content := `# study area of the Lyon survey
` + iotesting.Square + `

SRID=4326;POLYGON((4.8 45.7, 4.9 45.7, 4.9 45.8, 4.8 45.7))
`
	path := filepath.Join(t.TempDir(), "area.wkt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	sa, err := iostudyarea.NewFile(path).Features(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, sa.Len())
	assert.Equal(t, studyarea.Polygon{WKT: iotesting.Square, SRID: 2154}, sa.Polygons[0])
	assert.Equal(t, 4326, sa.Polygons[1].SRID)
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.wkt")
	require.NoError(t, os.WriteFile(bad, []byte("EPSG:4326;POLYGON EMPTY\n"), 0644))

	tests := []struct {
		path string
		code gn.ErrorCode
	}{
		{filepath.Join(dir, "missing.wkt"), errcode.StudyAreaReadError},
		{bad, errcode.StudyAreaGeometryError},
	}
	for _, v := range tests {
		_, err := iostudyarea.NewFile(v.path).Features(context.Background())
		require.Error(t, err, v.path)
		assert.Equal(t, v.code, err.(*gn.Error).Code, v.path)
	}
}

func TestTableSelectSQL(t *testing.T) {
	type sqler interface{ SelectSQL() (string, error) }

	src := iostudyarea.NewTable(nil, "ref_geo.l_areas", "", "area_code = '69123'")
	sql, err := src.(sqler).SelectSQL()
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT ST_AsText("geom"), ST_SRID("geom") FROM "ref_geo"."l_areas" `+
			`WHERE "geom" IS NOT NULL and area_code = '69123'`,
		sql)

	src = iostudyarea.NewTable(nil, "ref_geo.l_areas", "geom", "1=1; DROP TABLE x")
	_, err = src.(sqler).SelectSQL()
	require.Error(t, err)
	assert.Equal(t, errcode.FilterExtraPredicateError, err.(*gn.Error).Code)

	for _, filter := range []string{
		"area_code <> $$'$$); DROP TABLE x; SELECT ($$'$$",
		"area_code <> E'\\''); DROP TABLE x; SELECT (E'\\''",
	} {
		src = iostudyarea.NewTable(nil, "ref_geo.l_areas", "geom", filter)
		_, err = src.(sqler).SelectSQL()
		require.Error(t, err, filter)
		assert.Equal(t, errcode.FilterExtraPredicateError, err.(*gn.Error).Code)
	}

	src = iostudyarea.NewTable(nil, "l_areas a", "geom", "")
	_, err = src.(sqler).SelectSQL()
	require.Error(t, err)
	assert.Equal(t, errcode.StudyAreaReadError, err.(*gn.Error).Code)
}

func TestTable(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig()))
	defer op.Close()
	iotesting.LoadFixtures(t, op)

	src := iostudyarea.NewTable(op, "ref_geo.l_areas", "geom",
		"area_code = '"+iotesting.CellCode+"'")
	sa, err := src.Features(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sa.Len())
	assert.Equal(t, 2154, sa.Polygons[0].SRID)
	assert.Contains(t, sa.Polygons[0].WKT, "MULTIPOLYGON")
}
