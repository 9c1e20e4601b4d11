package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/engine"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/flatten"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/model"
)

// Pipeline runs the fixed generate -> extract -> enrich sequence for one
// engine strategy. Stages execute strictly in order and fail fast; there
// are no retries and no partial results at this layer.
//
// A Pipeline holds no per-run state, so one instance may serve sequential
// or concurrent Run calls.
type Pipeline struct {
	strategy engine.Strategy
	log      *slog.Logger
}

// New builds a pipeline around one engine's capability bundle. The bundle
// must carry a generator; a nil metadata provider means the enrich stage
// returns no metadata.
func New(strategy engine.Strategy, log *slog.Logger) (*Pipeline, error) {
	if strategy.Gen == nil {
		return nil, fmt.Errorf("engine '%s' has no ast generator", strategy.Name)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{strategy: strategy, log: log}, nil
}

// Run executes one pipeline pass over the input. An error from an earlier
// stage short-circuits all later stages and surfaces the stage's specific
// condition to the caller.
func (p *Pipeline) Run(ctx context.Context, in model.PipelineInput) (model.PipelineOutput, error) {
	log := p.log.With("run", uuid.NewString(), "engine", p.strategy.Name, "language", in.Language)

	xmlText, err := p.strategy.Gen.GenerateAstXML(ctx, in.Code, in.Language)
	if err != nil {
		return model.PipelineOutput{}, err
	}
	log.Debug("ast xml generated", "bytes", len(xmlText))

	nodes, err := flatten.ExtractNodes(xmlText)
	if err != nil {
		return model.PipelineOutput{}, fmt.Errorf("%w: %v", engine.ErrParseFailed, err)
	}
	log.Debug("ast flattened", "nodes", len(nodes))

	metadata, err := p.enrich(ctx, in, nodes)
	if err != nil {
		return model.PipelineOutput{}, err
	}
	log.Debug("metadata enriched", "entries", len(metadata))

	return model.PipelineOutput{Nodes: nodes, Metadata: metadata}, nil
}

// enrich asks the engine's metadata provider about the distinct node-type
// names seen in this run, in first-seen order. Providers never see the raw
// per-instance node list.
func (p *Pipeline) enrich(ctx context.Context, in model.PipelineInput, nodes []model.AstNode) ([]model.NodeMetadata, error) {
	if p.strategy.Metadata == nil {
		return []model.NodeMetadata{}, nil
	}
	names := flatten.DistinctNodeNames(nodes)
	return p.strategy.Metadata.GetMetadata(ctx, in.Language, names)
}
