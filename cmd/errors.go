package cmd

import (
	"errors"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/errcode"
)

// AreaFlagError reports a report command run without a study area.
func AreaFlagError() error {
	return &gn.Error{
		Code: errcode.CommandFlagError,
		Msg: `The study area is missing

Possible causes:
  - neither --area nor --area-table was given

How to fix:
  1. Give a WKT file: --area zone.wkt
  2. Or a PostGIS table: --area-table ref_geo.zones --area-filter "id=3"`,
		Err: errors.New("no study area flag"),
	}
}
