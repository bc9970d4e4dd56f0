// Package iostudyarea reads study areas from WKT files and from PostGIS
// tables.
package iostudyarea

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/lpoaura/lpodata/pkg/lifecycle"
	"github.com/lpoaura/lpodata/pkg/studyarea"
)

type fileSource struct {
	path string
	srid int
}

// NewFile creates an AreaSource reading one polygon per line of a text
// file. Lines are WKT or extended WKT, empty lines and lines starting
// with # are ignored. Plain WKT is taken as Lambert-93.
func NewFile(path string) lifecycle.AreaSource {
	return &fileSource{path: path, srid: studyarea.DefaultTargetSRID}
}

// NewFileSRID is NewFile with another SRID for plain WKT lines.
func NewFileSRID(path string, srid int) lifecycle.AreaSource {
	return &fileSource{path: path, srid: srid}
}

func (f *fileSource) Features(ctx context.Context) (studyarea.StudyArea, error) {
	var res studyarea.StudyArea

	file, err := os.Open(f.path)
	if err != nil {
		return res, ReadError(f.path, err)
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	// polygons of communes easily exceed the default 64k line
	sc.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	for sc.Scan() {
		if err = ctx.Err(); err != nil {
			return res, err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := studyarea.ParseEWKT(line, f.srid)
		if err != nil {
			return res, err
		}
		res.Polygons = append(res.Polygons, p)
	}
	if err = sc.Err(); err != nil {
		return res, ReadError(f.path, err)
	}
	return res, nil
}
