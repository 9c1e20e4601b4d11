package pmd

import (
	"github.com/vd09-projects/ast-llm-rule-creater/internal/engine"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/prompt"
)

// Name is the registry key for the PMD engine.
const Name = "pmd"

// NewStrategy bundles PMD's generation, metadata, and prompt capabilities
// for registry installation.
func NewStrategy(binary string, maxOutputBytes int64) engine.Strategy {
	return engine.Strategy{
		Name:     Name,
		Gen:      NewGenerator(binary, maxOutputBytes),
		Metadata: NewMetadataProvider(),
		Prompts:  prompt.NewBuilder(),
	}
}
