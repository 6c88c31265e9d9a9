// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package adapter translates the results of upstream steps into the arguments
// of a downstream step.
//
// # Recipes
//
// Every argument of the downstream step is described by a Recipe. A recipe is
// one of five shapes, and the shapes nest freely:
//
//   - E("train", "model") extracts the value stored under "model" in the
//     results of the step named "train".
//   - ListOf(...) resolves each element in order and yields a []any.
//   - TupleOf(...) does the same but yields a Tuple, whose length always
//     equals the number of recipes it was built from.
//   - MapOf(Pair(k, v), ...) resolves both sides of every entry and yields a
//     map[any]any. When two entries resolve to the same key the later entry
//     wins. A key that resolves to a Tuple is stored as an [N]any array of
//     the same elements; keys holding slices or maps are rejected with
//     ErrUnhashableKey.
//   - Const(v) yields v unchanged. Lift wraps arbitrary Go values this way.
//
// Values produced by an extractor are final: they are never resolved again,
// even when they happen to hold a Recipe.
//
// # Concurrency
//
// An Adapter never mutates its configuration after New returns and Adapt only
// reads the inputs it is given, so a single Adapter can serve concurrent
// callers without locking.
package adapter
