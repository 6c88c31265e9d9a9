// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package adapter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

func TestResolve_Constants(t *testing.T) {
	inputs := AllInputs{"s": Results{"k": 1}}
	ptr := &point{X: 1}

	testCases := []struct {
		name   string
		recipe Recipe
		want   any
	}{
		{name: "nil recipe", recipe: nil, want: nil},
		{name: "nil constant", recipe: Const[any](nil), want: nil},
		{name: "int", recipe: Const(7), want: 7},
		{name: "string", recipe: Const("hello"), want: "hello"},
		{name: "float", recipe: Const(2.5), want: 2.5},
		{name: "bool", recipe: Const(true), want: true},
		{name: "struct", recipe: Const(point{X: 1, Y: 2}), want: point{X: 1, Y: 2}},
		{name: "slice is not a list recipe", recipe: Const([]int{1, 2}), want: []int{1, 2}},
		{name: "map is not a map recipe", recipe: Const(map[string]int{"a": 1}), want: map[string]int{"a": 1}},
		{name: "lifted value", recipe: Lift("x"), want: "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(inputs, tc.recipe)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("pointer identity is kept", func(t *testing.T) {
		got, err := Resolve(inputs, Const(ptr))
		require.NoError(t, err)
		assert.Same(t, ptr, got)
	})
}

func TestResolve_Extractor(t *testing.T) {
	inputs := AllInputs{
		"stepA": Results{"out1": 42, "none": nil},
	}

	got, err := Resolve(inputs, E("stepA", "out1"))
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = Resolve(inputs, E("stepA", "none"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolve_ExtractedValuesAreFinal(t *testing.T) {
	inner := E("other", "k")
	inputs := AllInputs{"s": Results{"recipe": inner}}

	got, err := Resolve(inputs, E("s", "recipe"))
	require.NoError(t, err)
	assert.Equal(t, inner, got, "an extracted recipe must not be resolved again")
}

func TestResolve_ExtractorErrors(t *testing.T) {
	inputs := AllInputs{"present": Results{"k": 1}}

	_, err := Resolve(inputs, E("missing", "k"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownInput))
	var adErr *Error
	require.ErrorAs(t, err, &adErr)
	assert.Equal(t, KindUnknownInput, adErr.Kind)
	assert.Equal(t, "missing", adErr.Input)
	assert.EqualError(t, err, "no such input: 'missing'")

	_, err = Resolve(inputs, E("present", "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingKey))
	require.ErrorAs(t, err, &adErr)
	assert.Equal(t, "present", adErr.Input)
	assert.Equal(t, "nope", adErr.Key)
	assert.EqualError(t, err, "input 'present' didn't have 'nope' in its result")
}

func TestResolve_ListAndTuple(t *testing.T) {
	inputs := AllInputs{"stepA": Results{"a": 1, "b": 2}}

	got, err := Resolve(inputs, ListOf(E("stepA", "a"), E("stepA", "b"), Const("c")))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, "c"}, got)

	got, err = Resolve(inputs, TupleOf(E("stepA", "b"), E("stepA", "a")))
	require.NoError(t, err)
	assert.Equal(t, Tuple{2, 1}, got)

	got, err = Resolve(inputs, ListOf())
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)

	got, err = Resolve(inputs, TupleOf())
	require.NoError(t, err)
	assert.Equal(t, Tuple{}, got)
}

func TestResolve_Map(t *testing.T) {
	inputs := AllInputs{"s": Results{"k": "name", "v": "bob", "k2": "name"}}

	got, err := Resolve(inputs, MapOf(Pair(E("s", "k"), E("s", "v"))))
	require.NoError(t, err)
	assert.Equal(t, map[any]any{"name": "bob"}, got)

	t.Run("later entry wins on key collision", func(t *testing.T) {
		got, err := Resolve(inputs, MapOf(
			Pair(E("s", "k"), Const("first")),
			Pair(Const("other"), Const(1)),
			Pair(E("s", "k2"), Const("second")),
		))
		require.NoError(t, err)
		assert.Equal(t, map[any]any{"name": "second", "other": 1}, got)
	})

	t.Run("nil and composite comparable keys", func(t *testing.T) {
		got, err := Resolve(inputs, MapOf(
			Pair(nil, Const("nil key")),
			Pair(Const(point{X: 1}), Const("struct key")),
		))
		require.NoError(t, err)
		assert.Equal(t, map[any]any{nil: "nil key", point{X: 1}: "struct key"}, got)
	})

	t.Run("unhashable key", func(t *testing.T) {
		_, err := Resolve(inputs, MapOf(Pair(ListOf(Const(1)), Const("v"))))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnhashableKey))
		assert.EqualError(t, err, "map key resolved to unhashable value of type []interface {}")
	})

	t.Run("fields are ordered by key", func(t *testing.T) {
		m := Fields(map[string]Recipe{"b": Const(2), "a": E("s", "v")})
		require.Len(t, m.Entries, 2)
		assert.Equal(t, Const("a"), m.Entries[0].Key)
		assert.Equal(t, Const("b"), m.Entries[1].Key)

		got, err := Resolve(inputs, m)
		require.NoError(t, err)
		assert.Equal(t, map[any]any{"a": "bob", "b": 2}, got)
	})
}

func TestResolve_Nested(t *testing.T) {
	inputs := AllInputs{
		"fit":   Results{"model": "m1", "score": 0.93},
		"split": Results{"train": []int{1, 2}, "test": []int{3}},
	}

	recipe := Fields(map[string]Recipe{
		"model": E("fit", "model"),
		"data": TupleOf(
			E("split", "train"),
			E("split", "test"),
		),
		"report": ListOf(
			MapOf(Pair(Const("score"), E("fit", "score"))),
			Const("done"),
		),
	})

	got, err := Resolve(inputs, recipe)
	require.NoError(t, err)

	want := map[any]any{
		"model": "m1",
		"data":  Tuple{[]int{1, 2}, []int{3}},
		"report": []any{
			map[any]any{"score": 0.93},
			"done",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ErrorInNestedElementAbortsWhole(t *testing.T) {
	inputs := AllInputs{"s": Results{"a": 1}}

	got, err := Resolve(inputs, ListOf(E("s", "a"), MapOf(Pair(Const("x"), E("s", "b")))))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrMissingKey))
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	inputs := AllInputs{"s": Results{"list": []any{1, 2}}}
	before := AllInputs{"s": Results{"list": []any{1, 2}}}

	_, err := Resolve(inputs, ListOf(E("s", "list"), Fields(map[string]Recipe{"l": E("s", "list")})))
	require.NoError(t, err)
	assert.Equal(t, before, inputs)
}

func TestResolve_TupleKeys(t *testing.T) {
	inputs := AllInputs{"a": Results{"x": 1, "y": "two", "list": []int{1}}}

	got, err := Resolve(inputs, MapOf(
		Pair(TupleOf(E("a", "x"), E("a", "y")), Const("v")),
		Pair(TupleOf(Const(1), TupleOf(Const[any](nil))), Const("nested")),
	))
	require.NoError(t, err)
	assert.Equal(t, map[any]any{
		[2]any{1, "two"}:       "v",
		[2]any{1, [1]any{nil}}: "nested",
	}, got)

	t.Run("equal tuples share a key", func(t *testing.T) {
		got, err := Resolve(inputs, MapOf(
			Pair(TupleOf(E("a", "x")), Const("first")),
			Pair(TupleOf(Const(1)), Const("second")),
		))
		require.NoError(t, err)
		assert.Equal(t, map[any]any{[1]any{1}: "second"}, got)
	})

	t.Run("tuple holding a slice", func(t *testing.T) {
		_, err := Resolve(inputs, MapOf(Pair(TupleOf(E("a", "x"), E("a", "list")), Const("v"))))
		require.ErrorIs(t, err, ErrUnhashableKey)
		assert.EqualError(t, err, "map key resolved to unhashable value of type adapter.Tuple")
	})
}

// embedsExtractor picks up the Recipe methods of Extractor without being one.
type embedsExtractor struct {
	Extractor
}

func TestResolve_EmbeddedRecipeIsConstant(t *testing.T) {
	v := embedsExtractor{E("missing", "k")}

	got, err := Resolve(AllInputs{}, v)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestResolve_ErrorReturnsUntypedNil(t *testing.T) {
	recipes := []Recipe{
		ListOf(E("s", "missing")),
		TupleOf(E("s", "missing")),
		MapOf(Pair(Const("k"), E("s", "missing"))),
	}

	for _, recipe := range recipes {
		t.Run(recipe.String(), func(t *testing.T) {
			got, err := Resolve(AllInputs{"s": Results{}}, recipe)
			require.ErrorIs(t, err, ErrMissingKey)
			assert.True(t, got == nil, "got %#v", got)
		})
	}
}
