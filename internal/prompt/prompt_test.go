package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/engine"
	"github.com/vd09-projects/ast-llm-rule-creater/internal/model"
)

func TestBuild(t *testing.T) {
	b := NewBuilder()

	text, err := b.Build(engine.PromptInput{
		Engine:   "pmd",
		Language: "apex",
		Nodes: []model.AstNode{
			{NodeName: "UserClass"},
			{NodeName: "Method"},
			{NodeName: "Method"},
		},
		Metadata: []model.NodeMetadata{
			{NodeName: "UserClass", Description: "Declaration of an Apex class."},
		},
	})
	require.NoError(t, err)

	require.Contains(t, text, "'pmd' engine")
	require.Contains(t, text, "Target language: apex")
	require.Contains(t, text, "3 AST nodes across 2 node types")
	require.Contains(t, text, "- UserClass: Declaration of an Apex class.")

	// Repeated node types are listed once.
	require.Equal(t, 1, strings.Count(text, "  - Method\n"))
}

func TestBuild_RequiresEngineAndLanguage(t *testing.T) {
	b := NewBuilder()

	_, err := b.Build(engine.PromptInput{Language: "apex"})
	require.Error(t, err)

	_, err = b.Build(engine.PromptInput{Engine: "pmd"})
	require.Error(t, err)
}
