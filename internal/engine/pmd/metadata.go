package pmd

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/model"
)

//go:embed apex_nodes.yaml
var apexNodesYAML []byte

// MetadataProvider resolves PMD node-type names to semantic descriptions.
// The catalog only covers Apex; any other language gets an empty result,
// which is defined behavior rather than a failure.
type MetadataProvider struct {
	once    sync.Once
	loadErr error
	catalog map[string]string
}

func NewMetadataProvider() *MetadataProvider {
	return &MetadataProvider{}
}

func (p *MetadataProvider) GetMetadata(_ context.Context, language string, nodeNames []string) ([]model.NodeMetadata, error) {
	if !strings.EqualFold(language, "apex") {
		return []model.NodeMetadata{}, nil
	}
	if err := p.load(); err != nil {
		return nil, err
	}

	out := make([]model.NodeMetadata, 0, len(nodeNames))
	for _, name := range nodeNames {
		desc, ok := p.catalog[name]
		if !ok {
			continue
		}
		out = append(out, model.NodeMetadata{NodeName: name, Description: desc})
	}
	return out, nil
}

func (p *MetadataProvider) load() error {
	p.once.Do(func() {
		var doc struct {
			Nodes map[string]string `yaml:"nodes"`
		}
		if err := yaml.Unmarshal(apexNodesYAML, &doc); err != nil {
			p.loadErr = fmt.Errorf("load apex node catalog: %w", err)
			return
		}
		p.catalog = doc.Nodes
	})
	return p.loadErr
}
