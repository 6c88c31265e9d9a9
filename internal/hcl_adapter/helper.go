package hcl_adapter

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// traversalKey renders a traversal the way it would be written in source,
// e.g. `input.fit["model"]`, for use in diagnostics.
func traversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// referenceList renders the references of an expression for diagnostics.
func referenceList(expr hcl.Expression) string {
	vars := expr.Variables()
	refs := make([]string, 0, len(vars))
	for _, v := range vars {
		refs = append(refs, traversalKey(v))
	}
	return strings.Join(refs, ", ")
}
