package ioweb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gnames/gn"
	"github.com/go-chi/chi/v5"
	"github.com/lpoaura/lpodata/pkg/materialize"
	"github.com/lpoaura/lpodata/pkg/report"
)

// maxBody limits request bodies, study areas of a few regions fit in it.
const maxBody = 16 << 20

// ReportResponse describes an assembled report.
type ReportResponse struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Mode        string   `json:"mode"`
	Table       string   `json:"table,omitempty"`
	Statements  []string `json:"statements"`
	URI         string   `json:"uri"`
	Polygons    int      `json:"polygons"`
	Skipped     int      `json:"skipped_polygons"`
	Warnings    []string `json:"warnings,omitempty"`
}

// ErrorResponse is the body of failed requests.
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) taxa(w http.ResponseWriter, _ *http.Request) {
	res := make(map[string][]string)
	for r, labels := range s.registry.All() {
		if labels == nil {
			labels = []string{}
		}
		res[string(r)] = labels
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) reportSQL(w http.ResponseWriter, r *http.Request) {
	kind, err := report.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var in report.Input
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.assemble(kind, in)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) assemble(kind report.Kind, in report.Input) (*ReportResponse, error) {
	now := s.now()
	req, err := in.Request(kind, now)
	if err != nil {
		return nil, err
	}
	b, err := s.resolver.Resolve(req.Connection)
	if err != nil {
		return nil, err
	}
	q, err := s.assembler.Assemble(req)
	if err != nil {
		return nil, err
	}
	tg, err := s.strategy.Prepare(q, req.Materialize, now)
	if err != nil {
		return nil, err
	}

	res := ReportResponse{
		Kind:        kind.String(),
		Name:        q.Name,
		DisplayName: q.DisplayName,
		Mode:        tg.Mode.String(),
		Polygons:    q.Predicate.Polygons,
		Skipped:     q.Predicate.Skipped,
		Warnings:    report.Warnings(req, q),
	}
	if tg.Mode == materialize.Table {
		res.Table = tg.Table
		res.Statements = tg.Sequence.Plan().SQL()
		res.URI = b.SetDataSource(tg.Schema, tg.Table,
			q.GeometryColumn, q.KeyColumn).String()
	} else {
		res.Statements = []string{q.SQL}
		res.URI = b.SetDataSource("", tg.Relation(),
			q.GeometryColumn, q.KeyColumn).String()
	}
	return &res, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	res := ErrorResponse{Error: err.Error()}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		res.Code = int(gnErr.Code)
		if gnErr.Msg != "" {
			res.Error = plain(gnErr)
		}
	}
	writeJSON(w, status, res)
}

// plain renders the first line of a user message without markup.
func plain(e *gn.Error) string {
	msg := fmt.Sprintf(e.Msg, e.Vars...)
	msg, _, _ = strings.Cut(msg, "\n")
	return strings.NewReplacer("<em>", "", "</em>", "").Replace(msg)
}
