package model

import "encoding/json"

// AstNode is one element of a source AST, flattened out of the engine's
// XML dump. NodeName is the element tag and is not unique across nodes.
type AstNode struct {
	NodeName   string            `json:"nodeName"`
	Attributes map[string]string `json:"attributes"`
	// Parent is nil for the document root. It serializes as an explicit
	// null, never an empty string, so consumers can tell the root apart
	// from a parent whose name happens to be empty.
	Parent    *string  `json:"parent"`
	Ancestors []string `json:"ancestors"` // root-first; len == depth
}

// IsRoot reports whether the node is the document root.
func (n AstNode) IsRoot() bool { return n.Parent == nil }

// Depth is the node's nesting depth below the document root.
func (n AstNode) Depth() int { return len(n.Ancestors) }

func (n AstNode) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// NodeMetadata describes one distinct node-type name, not one node
// instance. Providers return at most one entry per requested name.
type NodeMetadata struct {
	NodeName    string `json:"nodeName"`
	Description string `json:"description"`
}

// PipelineInput is the immutable per-run input: raw source text plus the
// language identifier the engine should parse it as.
type PipelineInput struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// PipelineOutput is created fresh per run and owned by the caller.
type PipelineOutput struct {
	Nodes    []AstNode      `json:"nodes"`
	Metadata []NodeMetadata `json:"metadata"`
}
