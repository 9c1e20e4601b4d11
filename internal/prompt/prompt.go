package prompt

import (
	"fmt"
	"strings"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/engine"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/flatten"
)

// Builder renders the rule-generation prompt from a run's enriched AST
// data. Output is deterministic: node types in emission order, metadata in
// provider order.
type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Build(in engine.PromptInput) (string, error) {
	if in.Engine == "" || in.Language == "" {
		return "", fmt.Errorf("prompt input requires both engine and language")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are designing a static-analysis rule for the '%s' engine.\n", in.Engine)
	fmt.Fprintf(&sb, "Target language: %s.\n\n", in.Language)

	names := flatten.DistinctNodeNames(in.Nodes)
	fmt.Fprintf(&sb, "The analyzed source produced %d AST nodes across %d node types:\n", len(in.Nodes), len(names))
	for _, name := range names {
		fmt.Fprintf(&sb, "  - %s\n", name)
	}

	if len(in.Metadata) > 0 {
		sb.WriteString("\nNode type semantics:\n")
		for _, m := range in.Metadata {
			fmt.Fprintf(&sb, "  - %s: %s\n", m.NodeName, m.Description)
		}
	}

	sb.WriteString("\nUsing only the node types listed above, describe the rule's target pattern\n")
	sb.WriteString("as a traversal over these nodes, then propose the rule implementation.\n")
	return sb.String(), nil
}
