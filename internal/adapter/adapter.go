// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package adapter

import (
	"context"
	"maps"
	"slices"

	"github.com/specialistvlad/stepadapter/internal/ctxlog"
)

// Arguments maps argument names of a downstream step to their resolved values.
type Arguments map[string]any

// Adapter turns the results of upstream steps into the arguments of one
// downstream step.
type Adapter struct {
	recipes map[string]Recipe
	names   []string
}

// New creates an Adapter for the given argument recipes. Recipes are not
// checked here; problems surface when Adapt runs.
func New(recipes map[string]Recipe) *Adapter {
	own := maps.Clone(recipes)
	if own == nil {
		own = make(map[string]Recipe)
	}
	return &Adapter{
		recipes: own,
		names:   slices.Sorted(maps.Keys(own)),
	}
}

// Recipes returns a copy of the recipes the Adapter was created with.
func (a *Adapter) Recipes() map[string]Recipe {
	return maps.Clone(a.recipes)
}

// Adapt resolves every configured recipe against inputs. Arguments are
// resolved in name order and the first failure is returned as is, with no
// partial result.
func (a *Adapter) Adapt(ctx context.Context, inputs AllInputs) (Arguments, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Adapting arguments.", "argument_count", len(a.names), "input_count", len(inputs))

	adapted := make(Arguments, len(a.names))
	for _, name := range a.names {
		v, err := Resolve(inputs, a.recipes[name])
		if err != nil {
			logger.Debug("Argument adaptation failed.", "argument", name, "error", err)
			return nil, err
		}
		adapted[name] = v
	}

	logger.Debug("Arguments adapted.", "argument_count", len(adapted))
	return adapted, nil
}

// Dependencies returns the sorted, de-duplicated names of every step the
// configured recipes extract from.
func (a *Adapter) Dependencies() []string {
	seen := make(map[string]struct{})
	for _, name := range a.names {
		collectInputs(a.recipes[name], seen)
	}
	return slices.Sorted(maps.Keys(seen))
}

func collectInputs(recipe Recipe, seen map[string]struct{}) {
	switch r := recipe.(type) {
	case Extractor:
		seen[r.Input] = struct{}{}
	case ListRecipe:
		for _, elem := range r.Elems {
			collectInputs(elem, seen)
		}
	case TupleRecipe:
		for _, elem := range r.Elems {
			collectInputs(elem, seen)
		}
	case MapRecipe:
		for _, entry := range r.Entries {
			collectInputs(entry.Key, seen)
			collectInputs(entry.Value, seen)
		}
	}
}
