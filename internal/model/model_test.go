package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAstNode_RootParentSerializesAsNull(t *testing.T) {
	n := AstNode{
		NodeName:   "CompilationUnit",
		Attributes: map[string]string{},
		Ancestors:  []string{},
	}

	b, err := n.ToJSON()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Equal(t, "null", string(raw["parent"]), "absent parent must be null, not empty string")
}

func TestAstNode_NonRootParentSerializesAsString(t *testing.T) {
	parent := "CompilationUnit"
	n := AstNode{
		NodeName:   "ClassDeclaration",
		Attributes: map[string]string{"Name": "Example"},
		Parent:     &parent,
		Ancestors:  []string{"CompilationUnit"},
	}

	b, err := n.ToJSON()
	require.NoError(t, err)
	require.Contains(t, string(b), `"parent":"CompilationUnit"`)

	var back AstNode
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, n, back)
}

func TestAstNode_DepthAndRoot(t *testing.T) {
	parent := "b"
	n := AstNode{NodeName: "c", Parent: &parent, Ancestors: []string{"a", "b"}}
	require.Equal(t, 2, n.Depth())
	require.False(t, n.IsRoot())

	root := AstNode{NodeName: "a"}
	require.Equal(t, 0, root.Depth())
	require.True(t, root.IsRoot())
}
