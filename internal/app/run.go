package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/stepadapter/internal/ctxlog"
	"github.com/specialistvlad/stepadapter/internal/snapshot"
)

// Run loads the recipes and the inputs snapshot, adapts the configured step
// and writes its arguments to the output as a single JSON object.
func (a *App) Run(ctx context.Context) error {
	ctx, logger := ctxlog.With(a.Context(ctx), "run_id", uuid.NewString(), "step", a.config.Step)
	logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.RecipesPath)
	if err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}

	stepAdapter, err := model.Adapter(a.config.Step)
	if err != nil {
		return err
	}
	logger.Info("Adapter ready.", "arguments", len(stepAdapter.Recipes()), "dependencies", stepAdapter.Dependencies())

	inputs, err := snapshot.Load(ctx, a.config.InputsPath)
	if err != nil {
		return fmt.Errorf("failed to load inputs: %w", err)
	}

	args, err := stepAdapter.Adapt(ctx, inputs)
	if err != nil {
		return fmt.Errorf("failed to adapt arguments for step '%s': %w", a.config.Step, err)
	}

	out, err := a.converter.RenderJSON(args)
	if err != nil {
		return fmt.Errorf("failed to render arguments: %w", err)
	}
	if _, err := fmt.Fprintln(a.outW, string(out)); err != nil {
		return fmt.Errorf("failed to write arguments: %w", err)
	}

	logger.Info("Arguments adapted.", "arguments", len(args))
	logger.Debug("App.Run method finished.")
	return nil
}
