package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/stepadapter/internal/adapter"
	"github.com/zclconf/go-cty/cty"
)

const (
	// inputRoot is the root name of every extractor traversal.
	inputRoot = "input"
	// tupleFunc is the pseudo-function that builds a tuple recipe.
	tupleFunc = "tuple"
)

// TranslateExpr converts a single HCL expression into a recipe:
//
//   - input.<step>.<key>, or the index form input["step"]["key"], becomes an
//     adapter.Extractor.
//   - a tuple constructor [a, b] becomes an adapter.ListRecipe.
//   - tuple(a, b) becomes an adapter.TupleRecipe.
//   - an object constructor becomes an adapter.MapRecipe. Bare identifier keys
//     are constant strings; other keys are translated like any expression.
//   - anything else must not reference variables and becomes a constant.
func TranslateExpr(expr hcl.Expression) (adapter.Recipe, hcl.Diagnostics) {
	switch e := expr.(type) {
	case *hclsyntax.ParenthesesExpr:
		return TranslateExpr(e.Expression)

	case *hclsyntax.ScopeTraversalExpr, *hclsyntax.IndexExpr, *hclsyntax.RelativeTraversalExpr:
		if traversal, ok := staticTraversal(expr); ok && traversal.RootName() == inputRoot {
			return translateExtractor(traversal, expr.Range())
		}

	case *hclsyntax.TupleConsExpr:
		elems, diags := translateExprs(e.Exprs)
		return adapter.ListOf(elems...), diags

	case *hclsyntax.FunctionCallExpr:
		if e.Name == tupleFunc {
			if e.ExpandFinal {
				return nil, hcl.Diagnostics{{
					Severity: hcl.DiagError,
					Summary:  "Invalid tuple recipe",
					Detail:   "The tuple() recipe needs its elements listed explicitly; argument expansion with '...' is not supported.",
					Subject:  e.Range().Ptr(),
				}}
			}
			elems, diags := translateExprs(e.Args)
			return adapter.TupleOf(elems...), diags
		}

	case *hclsyntax.ObjectConsExpr:
		var diags hcl.Diagnostics
		entries := make([]adapter.Entry, 0, len(e.Items))
		for _, item := range e.Items {
			key, keyDiags := translateKey(item.KeyExpr)
			diags = append(diags, keyDiags...)
			value, valueDiags := TranslateExpr(item.ValueExpr)
			diags = append(diags, valueDiags...)
			entries = append(entries, adapter.Pair(key, value))
		}
		return adapter.MapOf(entries...), diags
	}

	return translateConstant(expr)
}

func translateExprs(exprs []hclsyntax.Expression) ([]adapter.Recipe, hcl.Diagnostics) {
	var (
		diags   hcl.Diagnostics
		recipes []adapter.Recipe
	)
	for _, expr := range exprs {
		r, d := TranslateExpr(expr)
		diags = append(diags, d...)
		recipes = append(recipes, r)
	}
	return recipes, diags
}

// translateKey handles the key side of an object constructor item.
func translateKey(expr hclsyntax.Expression) (adapter.Recipe, hcl.Diagnostics) {
	if k, ok := expr.(*hclsyntax.ObjectConsKeyExpr); ok {
		if !k.ForceNonLiteral {
			if name := hcl.ExprAsKeyword(k.Wrapped); name != "" {
				return adapter.Const(name), nil
			}
		}
		return TranslateExpr(k.Wrapped)
	}
	return TranslateExpr(expr)
}

// translateExtractor validates an input.<step>.<key> traversal.
func translateExtractor(traversal hcl.Traversal, rng hcl.Range) (adapter.Recipe, hcl.Diagnostics) {
	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid extractor",
			Detail:   detail,
			Subject:  rng.Ptr(),
		}}
	}

	if len(traversal) != 3 {
		return nil, invalid(fmt.Sprintf("An extractor must have the form input.<step>.<key>, got %s.", traversalKey(traversal)))
	}
	step, ok := segmentName(traversal[1])
	if !ok {
		return nil, invalid(fmt.Sprintf("The step name in %s must be an identifier or a string index.", traversalKey(traversal)))
	}
	key, ok := segmentName(traversal[2])
	if !ok {
		return nil, invalid(fmt.Sprintf("The result key in %s must be an identifier or a string index.", traversalKey(traversal)))
	}
	return adapter.E(step, key), nil
}

// translateConstant evaluates a reference-free expression once.
func translateConstant(expr hcl.Expression) (adapter.Recipe, hcl.Diagnostics) {
	if len(expr.Variables()) > 0 {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported expression",
			Detail: fmt.Sprintf(
				"Only extractors (input.<step>.<key>), lists, tuple(), objects and literal values may be used in an adapt block; this expression references %s.",
				referenceList(expr),
			),
			Subject: expr.Range().Ptr(),
		}}
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	native, err := CtyToNative(val)
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported constant",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	return adapter.Const(native), diags
}

// staticTraversal flattens a chain of traversals and index operations with
// constant keys into a single absolute traversal.
func staticTraversal(expr hcl.Expression) (hcl.Traversal, bool) {
	switch e := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return e.Traversal, true
	case *hclsyntax.RelativeTraversalExpr:
		src, ok := staticTraversal(e.Source)
		if !ok {
			return nil, false
		}
		return append(append(hcl.Traversal{}, src...), e.Traversal...), true
	case *hclsyntax.IndexExpr:
		src, ok := staticTraversal(e.Collection)
		if !ok || len(e.Key.Variables()) > 0 {
			return nil, false
		}
		key, diags := e.Key.Value(nil)
		if diags.HasErrors() {
			return nil, false
		}
		return append(append(hcl.Traversal{}, src...), hcl.TraverseIndex{Key: key, SrcRange: e.Key.Range()}), true
	}
	return nil, false
}

// segmentName returns the name an attribute or string index step refers to.
func segmentName(t hcl.Traverser) (string, bool) {
	switch s := t.(type) {
	case hcl.TraverseAttr:
		return s.Name, true
	case hcl.TraverseIndex:
		if s.Key.IsKnown() && !s.Key.IsNull() && s.Key.Type() == cty.String {
			return s.Key.AsString(), true
		}
	}
	return "", false
}
