package lifecycle_test

import (
	"testing"

	"github.com/lpoaura/lpodata/internal/ioexport"
	"github.com/lpoaura/lpodata/internal/iolayer"
	"github.com/lpoaura/lpodata/internal/iomaterialize"
	"github.com/lpoaura/lpodata/internal/ioregistry"
	"github.com/lpoaura/lpodata/internal/iostudyarea"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestContracts is a compile-time check of the io implementations.
func TestContracts(t *testing.T) {
	var _ lifecycle.Materializer = iomaterialize.New(nil)
	var _ lifecycle.Loader = iolayer.New(nil, nil)
	var _ lifecycle.Exporter = ioexport.NewSQLite()
	var _ lifecycle.Exporter = ioexport.NewCSV()
	var _ lifecycle.Refresher = ioregistry.NewRefresher(nil, "", 1)
	var _ lifecycle.AreaSource = iostudyarea.NewFile("")
	var _ lifecycle.AreaSource = iostudyarea.NewTable(nil, "", "", "")

	assert.True(t, true)
}
