package flatten

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vd09-projects/ast-llm-rule-creater/internal/model"
)

// ExtractNodes converts an AST XML dump into a flat, pre-order sequence of
// typed nodes. Every element in the document yields exactly one node; text
// content, comments, and the XML declaration yield none.
//
// The decoder's token stream preserves true document order across siblings
// with different tag names, so emission order always matches the document.
// An explicit open-element stack stands in for call recursion, which keeps
// adversarially deep trees from exhausting the goroutine stack.
func ExtractNodes(xmlText string) ([]model.AstNode, error) {
	dec := xml.NewDecoder(strings.NewReader(xmlText))

	nodes := []model.AstNode{}
	var open []string // names of currently open elements, root first

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse ast xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local

			var parent *string
			if len(open) > 0 {
				p := open[len(open)-1]
				parent = &p
			}
			ancestors := make([]string, len(open))
			copy(ancestors, open)

			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}

			nodes = append(nodes, model.AstNode{
				NodeName:   name,
				Attributes: attrs,
				Parent:     parent,
				Ancestors:  ancestors,
			})
			open = append(open, name)

		case xml.EndElement:
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
		// CharData, Comment, ProcInst, Directive: nothing to emit.
	}

	return nodes, nil
}

// DistinctNodeNames reduces a node sequence to its distinct NodeName
// values in first-seen order. Metadata providers are keyed by node type,
// so they get this set rather than the raw per-instance list.
func DistinctNodeNames(nodes []model.AstNode) []string {
	seen := make(map[string]struct{}, len(nodes))
	var out []string
	for _, n := range nodes {
		if _, ok := seen[n.NodeName]; ok {
			continue
		}
		seen[n.NodeName] = struct{}{}
		out = append(out, n.NodeName)
	}
	return out
}
