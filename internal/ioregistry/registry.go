// Package ioregistry keeps the taxon option lists of the filter
// registry in taxa.yaml and rebuilds them from the observation source.
package ioregistry

import (
	"os"

	"github.com/gnames/gn"
	"github.com/lpoaura/lpodata/pkg/taxon"
	"gopkg.in/yaml.v3"
)

const header = `# Labels offered for each taxonomic rank. Report filters are validated
# against these lists, a rank with an empty list accepts any label.
# Run 'lpodata taxa refresh' to rebuild this file from the database.`

// Load reads a taxa.yaml file. Unknown ranks are reported and skipped.
func Load(path string) (*taxon.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	var raw map[string][]string
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, ReadError(path, err)
	}

	opts := make(map[taxon.Rank][]string, len(raw))
	for k, labels := range raw {
		r, err := taxon.ParseRank(k)
		if err != nil {
			gn.Warn("Unknown rank <em>%s</em> in %s, ignoring", k, path)
			continue
		}
		opts[r] = labels
	}
	return taxon.NewRegistry(opts), nil
}

// Save writes all ranks of reg to path, in rank order.
func Save(path string, reg *taxon.Registry) error {
	data, err := Marshal(reg)
	if err != nil {
		return WriteError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return WriteError(path, err)
	}
	return nil
}

// Marshal renders reg as taxa.yaml content.
func Marshal(reg *taxon.Registry) ([]byte, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, HeadComment: header}
	for _, r := range taxon.Ranks {
		labels := reg.Options(r)
		if labels == nil {
			labels = []string{}
		}
		var val yaml.Node
		if err := val.Encode(labels); err != nil {
			return nil, err
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(r)}, &val)
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{m}}
	return yaml.Marshal(doc)
}
