package engine

import (
	"context"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/model"
)

// Generator produces a raw XML AST dump for one piece of source text.
// Implementations own their staging storage for the call and must remove
// it on every exit path. Invoked exactly once per pipeline run.
type Generator interface {
	GenerateAstXML(ctx context.Context, code, language string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, code, language string) (string, error)

func (f GeneratorFunc) GenerateAstXML(ctx context.Context, code, language string) (string, error) {
	return f(ctx, code, language)
}

// MetadataProvider returns semantic descriptions for a set of distinct
// node-type names. An unsupported language yields an empty slice, never an
// error.
type MetadataProvider interface {
	GetMetadata(ctx context.Context, language string, nodeNames []string) ([]model.NodeMetadata, error)
}

// PromptInput is what downstream prompt construction consumes: the shape
// and ordering are guaranteed here, the prompt text is not.
type PromptInput struct {
	Engine   string
	Language string
	Nodes    []model.AstNode
	Metadata []model.NodeMetadata
}

// PromptBuilder renders a rule-generation prompt from enriched AST data.
type PromptBuilder interface {
	Build(in PromptInput) (string, error)
}

// Strategy bundles the per-engine capabilities the pipeline can swap out.
// Generator is required; Metadata and Prompts may be nil.
type Strategy struct {
	Name     string
	Gen      Generator
	Metadata MetadataProvider
	Prompts  PromptBuilder
}
