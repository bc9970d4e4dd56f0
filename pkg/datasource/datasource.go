// Package datasource builds layer data source URIs for a named database
// connection, in the key='value' form understood by desktop GIS clients.
package datasource

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lpoaura/lpodata/pkg/config"
)

// Resolver returns a Builder for a named connection.
type Resolver struct {
	cfg *config.Config
}

// NewResolver creates a Resolver over the connections of cfg.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve finds the connection called name, "" being the default one.
func (r *Resolver) Resolve(name string) (*Builder, error) {
	db, err := r.cfg.Connection(name)
	if err != nil {
		return nil, err
	}
	return &Builder{db: *db}, nil
}

// Builder creates URIs on one connection.
type Builder struct {
	db config.DatabaseConfig
}

// NewBuilder creates a Builder for db.
func NewBuilder(db config.DatabaseConfig) *Builder {
	return &Builder{db: db}
}

// Database returns the connection settings.
func (b *Builder) Database() config.DatabaseConfig {
	return b.db
}

// DSN returns the connection string used by the PostgreSQL driver.
func (b *Builder) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(b.db.User, b.db.Password),
		Host:   b.db.Host + ":" + strconv.Itoa(b.db.Port),
		Path:   "/" + b.db.Database,
	}
	if b.db.SSLMode != "" {
		u.RawQuery = "sslmode=" + url.QueryEscape(b.db.SSLMode)
	}
	return u.String()
}

// URI is the data source of one layer.
type URI struct {
	db             config.DatabaseConfig
	Schema         string
	Table          string
	GeometryColumn string
	KeyColumn      string
}

// SetDataSource creates the URI of a table or of a parenthesised
// subquery. Schema is ignored for subqueries, geometryColumn is empty for
// tabular layers.
func (b *Builder) SetDataSource(schema, table, geometryColumn, keyColumn string) URI {
	return URI{
		db:             b.db,
		Schema:         schema,
		Table:          table,
		GeometryColumn: geometryColumn,
		KeyColumn:      keyColumn,
	}
}

// IsSubquery is true when the URI reads a query instead of a table.
func (u URI) IsSubquery() bool {
	return strings.HasPrefix(strings.TrimSpace(u.Table), "(")
}

// String renders the URI. The password is left out.
func (u URI) String() string {
	parts := []string{
		"dbname=" + quote(u.db.Database),
		"host=" + u.db.Host,
		"port=" + strconv.Itoa(u.db.Port),
		"user=" + quote(u.db.User),
	}
	if u.db.SSLMode != "" {
		parts = append(parts, "sslmode="+u.db.SSLMode)
	}
	if u.KeyColumn != "" {
		parts = append(parts, "key="+quote(u.KeyColumn))
	}

	var table string
	switch {
	case u.IsSubquery():
		table = `table="` + escape(u.Table, '"') + `"`
	case u.Schema != "":
		table = fmt.Sprintf(`table="%s"."%s"`,
			escape(u.Schema, '"'), escape(u.Table, '"'))
	default:
		table = `table="` + escape(u.Table, '"') + `"`
	}
	if u.GeometryColumn != "" {
		table += " (" + u.GeometryColumn + ")"
	}
	parts = append(parts, table)
	return strings.Join(parts, " ")
}

func quote(s string) string {
	return "'" + escape(s, '\'') + "'"
}

func escape(s string, q byte) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, string(q), `\`+string(q))
}
