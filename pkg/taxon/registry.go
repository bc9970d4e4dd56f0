package taxon

import (
	"slices"
	"strings"
	"sync"
)

// Registry keeps the labels offered for each rank. It is read by the
// Compiler while a report is assembled and can be refreshed from the
// database at any time.
type Registry struct {
	mu      sync.RWMutex
	options map[Rank][]string
}

// NewRegistry creates a Registry from per-rank labels. Unknown ranks are
// ignored.
func NewRegistry(options map[Rank][]string) *Registry {
	res := &Registry{}
	res.Replace(options)
	return res
}

// Replace swaps all labels at once. Labels are deduplicated and sorted.
func (reg *Registry) Replace(options map[Rank][]string) {
	opts := make(map[Rank][]string, len(Ranks))
	for r, labels := range options {
		if !r.valid() {
			continue
		}
		ls := make([]string, 0, len(labels))
		for _, l := range labels {
			l = strings.TrimSpace(l)
			if l != "" {
				ls = append(ls, l)
			}
		}
		slices.Sort(ls)
		opts[r] = slices.Compact(ls)
	}

	reg.mu.Lock()
	reg.options = opts
	reg.mu.Unlock()
}

// Options returns a copy of the labels of a rank.
func (reg *Registry) Options(r Rank) []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return slices.Clone(reg.options[r])
}

// All returns a copy of all labels keyed by rank.
func (reg *Registry) All() map[Rank][]string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	res := make(map[Rank][]string, len(reg.options))
	for r, ls := range reg.options {
		res[r] = slices.Clone(ls)
	}
	return res
}

// Labels translates selection indices, as produced by a multi-choice
// widget, into labels of the rank.
func (reg *Registry) Labels(r Rank, indices []int) ([]string, error) {
	opts := reg.Options(r)
	res := make([]string, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(opts) {
			return nil, IndexOutOfRangeError(r, i, len(opts))
		}
		res = append(res, opts[i])
	}
	return res, nil
}

// Resolve matches labels against the known options of a rank, ignoring
// case, and returns them in their registered spelling. A rank without
// registered options accepts any label as is.
func (reg *Registry) Resolve(r Rank, labels []string) ([]string, error) {
	opts := reg.Options(r)
	res := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if len(opts) == 0 {
			res = append(res, l)
			continue
		}
		idx := slices.IndexFunc(opts, func(o string) bool {
			return strings.EqualFold(o, l)
		})
		if idx < 0 {
			return nil, UnknownLabelError(r, l)
		}
		res = append(res, opts[idx])
	}
	return res, nil
}
