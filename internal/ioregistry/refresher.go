package ioregistry

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/gnames/gnlib"
	"github.com/lpoaura/lpodata/internal/iodb"
	"github.com/lpoaura/lpodata/pkg/db"
	"github.com/lpoaura/lpodata/pkg/lifecycle"
	"github.com/lpoaura/lpodata/pkg/taxon"
	"golang.org/x/sync/errgroup"
)

type refresher struct {
	operator     db.Operator
	observations string
	jobs         int
}

// NewRefresher creates a Refresher reading distinct labels from the
// observations relation, with at most jobs concurrent queries.
func NewRefresher(op db.Operator, observations string, jobs int) lifecycle.Refresher {
	if jobs < 1 {
		jobs = 1
	}
	return &refresher{operator: op, observations: observations, jobs: jobs}
}

// Refresh runs one SELECT DISTINCT per rank.
func (r *refresher) Refresh(ctx context.Context) (map[taxon.Rank][]string, error) {
	if r.operator == nil || r.operator.Pool() == nil {
		return nil, iodb.NotConnectedError()
	}
	gdb, err := r.operator.GORM()
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	res := make(map[taxon.Rank][]string, len(taxon.Ranks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for _, rank := range taxon.Ranks {
		g.Go(func() error {
			col := string(rank)
			var labels []string
			err := gdb.WithContext(ctx).
				Table(r.observations).
				Where(col+" IS NOT NULL").
				Distinct(col).
				Order(col).
				Pluck(col, &labels).Error
			if err != nil {
				return RefreshError(rank, err)
			}

			var clean []string
			for _, l := range labels {
				l = strings.TrimSpace(gnlib.FixUtf8(l))
				if l != "" {
					clean = append(clean, l)
				}
			}
			slog.Debug("Rank refreshed", "rank", col, "labels", len(clean))

			mu.Lock()
			res[rank] = clean
			mu.Unlock()
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
