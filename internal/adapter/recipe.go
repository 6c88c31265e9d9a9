// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package adapter

import (
	"fmt"
	"slices"
	"strings"
)

// Recipe describes how to build one value from upstream results. The set of
// implementations is closed: Extractor, ListRecipe, TupleRecipe, MapRecipe and
// ConstRecipe.
type Recipe interface {
	fmt.Stringer
	isRecipe()
}

// Extractor references the value stored under Key in the results of the step
// named Input.
type Extractor struct {
	Input string
	Key   string
}

// E builds an Extractor.
func E(input, key string) Extractor {
	return Extractor{Input: input, Key: key}
}

func (Extractor) isRecipe() {}

func (e Extractor) String() string {
	return fmt.Sprintf("E(%q, %q)", e.Input, e.Key)
}

// ListRecipe resolves to a []any holding the resolved elements in order.
type ListRecipe struct {
	Elems []Recipe
}

// ListOf builds a ListRecipe from the given element recipes.
func ListOf(elems ...Recipe) ListRecipe {
	return ListRecipe{Elems: elems}
}

func (ListRecipe) isRecipe() {}

func (l ListRecipe) String() string {
	return "[" + joinRecipes(l.Elems) + "]"
}

// Tuple is the resolved form of a TupleRecipe. Its length is fixed by the
// recipe it was resolved from.
type Tuple []any

// TupleRecipe resolves to a Tuple of the same arity.
type TupleRecipe struct {
	Elems []Recipe
}

// TupleOf builds a TupleRecipe from the given element recipes.
func TupleOf(elems ...Recipe) TupleRecipe {
	return TupleRecipe{Elems: elems}
}

func (TupleRecipe) isRecipe() {}

func (t TupleRecipe) String() string {
	return "(" + joinRecipes(t.Elems) + ")"
}

// Entry is a single key/value pair of a MapRecipe.
type Entry struct {
	Key   Recipe
	Value Recipe
}

// Pair builds an Entry.
func Pair(key, value Recipe) Entry {
	return Entry{Key: key, Value: value}
}

// MapRecipe resolves to a map[any]any. Entries are resolved in order, so on a
// resolved-key collision the later entry's value is kept.
type MapRecipe struct {
	Entries []Entry
}

// MapOf builds a MapRecipe from entries in the given order.
func MapOf(entries ...Entry) MapRecipe {
	return MapRecipe{Entries: entries}
}

// Fields builds a MapRecipe with constant string keys. Entries are ordered by
// key.
func Fields(fields map[string]Recipe) MapRecipe {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Pair(Const(k), fields[k]))
	}
	return MapRecipe{Entries: entries}
}

func (MapRecipe) isRecipe() {}

func (m MapRecipe) String() string {
	parts := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		parts = append(parts, recipeString(e.Key)+": "+recipeString(e.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ConstRecipe resolves to Value unchanged. The type parameter keeps the static
// type of the constant for callers that build recipes in Go.
type ConstRecipe[T any] struct {
	Value T
}

// Const builds a ConstRecipe.
func Const[T any](v T) ConstRecipe[T] {
	return ConstRecipe[T]{Value: v}
}

func (ConstRecipe[T]) isRecipe() {}

func (c ConstRecipe[T]) constValue() any { return c.Value }

func (c ConstRecipe[T]) String() string {
	return fmt.Sprintf("%#v", c.Value)
}

// constant is satisfied by every instantiation of ConstRecipe.
type constant interface {
	Recipe
	constValue() any
}

// Lift returns v itself when it already is a Recipe and wraps it in a
// ConstRecipe otherwise.
func Lift(v any) Recipe {
	if r, ok := v.(Recipe); ok {
		return r
	}
	return Const(v)
}

func recipeString(r Recipe) string {
	if r == nil {
		return "<nil>"
	}
	return r.String()
}

func joinRecipes(rs []Recipe) string {
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		parts = append(parts, recipeString(r))
	}
	return strings.Join(parts, ", ")
}
