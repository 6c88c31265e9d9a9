package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/stepadapter/internal/adapter"
	"github.com/specialistvlad/stepadapter/internal/config"
	"github.com/specialistvlad/stepadapter/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL recipe loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges their step blocks
// into a single model. A step name may only be declared once across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, step := range root.Steps {
			translated, err := l.translateStep(ctx, step)
			if err != nil {
				return nil, err
			}
			if err := model.AddStep(translated); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("HCL loading complete.", "steps", len(model.Steps))
	return model, nil
}

// translateStep converts the HCL-specific step schema into the agnostic model.
func (l *Loader) translateStep(ctx context.Context, s *Step) (*config.Step, error) {
	logger := ctxlog.FromContext(ctx).With("step_name", s.Name, "source", s.DefRange.String())
	logger.Debug("Translating HCL step to internal config model.")

	step := &config.Step{
		Name:        s.Name,
		Description: s.Description,
		Recipes:     make(map[string]adapter.Recipe),
		Source:      s.DefRange.String(),
	}
	if s.Adapt == nil || s.Adapt.Body == nil {
		logger.Debug("Step has no adapt block.")
		return step, nil
	}

	attrs, diags := s.Adapt.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("in step '%s': %w", s.Name, diags)
	}

	for name, attr := range attrs {
		recipe, exprDiags := TranslateExpr(attr.Expr)
		diags = append(diags, exprDiags...)
		if exprDiags.HasErrors() {
			continue
		}
		step.Recipes[name] = recipe
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("in step '%s': %w", s.Name, diags)
	}

	logger.Debug("Step translated.", "argument_count", len(step.Recipes))
	return step, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) != ".hcl" {
				return nil, fmt.Errorf("recipe file %s must have the .hcl extension", path)
			}
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
