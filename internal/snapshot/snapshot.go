// Package snapshot reads an adapter.AllInputs snapshot from disk: the results
// of every upstream step, keyed by step name.
//
// JSON and native HCL files go through the HCL parser, so
//
//	{"prepare": {"rows": 10, "columns": ["a", "b"]}}
//
// and
//
//	prepare = { rows = 10, columns = ["a", "b"] }
//
// load identically. YAML files (.yaml, .yml) use the same top-level layout.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/stepadapter/internal/adapter"
	"github.com/specialistvlad/stepadapter/internal/ctxlog"
	"github.com/specialistvlad/stepadapter/internal/hcl_adapter"
	"gopkg.in/yaml.v3"
)

// Load reads the snapshot at path, choosing the format by file extension.
func Load(ctx context.Context, path string) (adapter.AllInputs, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)

	var (
		inputs adapter.AllInputs
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".hcl":
		inputs, err = loadHCL(path, ext)
	case ".yaml", ".yml":
		inputs, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q for %s: use .json, .hcl, .yaml or .yml", ext, path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Inputs snapshot loaded.", "step_count", len(inputs))
	return inputs, nil
}

func loadHCL(path, ext string) (adapter.AllInputs, error) {
	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if ext == ".json" {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, diags)
	}

	inputs := make(adapter.AllInputs, len(attrs))
	for step, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate results of step '%s' in %s: %w", step, path, diags)
		}
		native, err := hcl_adapter.CtyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("results of step '%s' in %s: %w", step, path, err)
		}
		results, err := asResults(step, native)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		inputs[step] = results
	}
	return inputs, nil
}

func loadYAML(path string) (adapter.AllInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	inputs := make(adapter.AllInputs, len(raw))
	for step, v := range raw {
		results, err := asResults(step, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		inputs[step] = results
	}
	return inputs, nil
}

// asResults checks that a step's results are a mapping keyed by string.
func asResults(step string, v any) (adapter.Results, error) {
	switch m := v.(type) {
	case map[string]any:
		return adapter.Results(m), nil
	case nil:
		return adapter.Results{}, nil
	default:
		return nil, fmt.Errorf("results of step '%s' must be a mapping, got %T", step, v)
	}
}
