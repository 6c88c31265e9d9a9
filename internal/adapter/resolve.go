// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package adapter

import (
	"fmt"
	"reflect"
)

// Results is the result mapping produced by a single step.
type Results map[string]any

// AllInputs maps step names to the results those steps produced.
type AllInputs map[string]Results

// Resolve builds the value described by recipe from inputs. A nil recipe
// resolves to nil, like any other constant.
func Resolve(inputs AllInputs, recipe Recipe) (any, error) {
	switch r := recipe.(type) {
	case nil:
		return nil, nil
	case Extractor:
		return resolveExtractor(inputs, r)
	case ListRecipe:
		elems, err := resolveElems(inputs, r.Elems)
		if err != nil {
			return nil, err
		}
		return elems, nil
	case TupleRecipe:
		elems, err := resolveElems(inputs, r.Elems)
		if err != nil {
			return nil, err
		}
		return Tuple(elems), nil
	case MapRecipe:
		m, err := resolveMap(inputs, r)
		if err != nil {
			return nil, err
		}
		return m, nil
	case constant:
		return r.constValue(), nil
	default:
		// Types that only embed a recipe are plain values.
		return recipe, nil
	}
}

func resolveExtractor(inputs AllInputs, e Extractor) (any, error) {
	results, ok := inputs[e.Input]
	if !ok {
		return nil, &Error{Kind: KindUnknownInput, Input: e.Input}
	}
	v, ok := results[e.Key]
	if !ok {
		return nil, &Error{Kind: KindMissingKey, Input: e.Input, Key: e.Key}
	}
	return v, nil
}

func resolveElems(inputs AllInputs, elems []Recipe) ([]any, error) {
	out := make([]any, len(elems))
	for i, elem := range elems {
		v, err := Resolve(inputs, elem)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func resolveMap(inputs AllInputs, m MapRecipe) (map[any]any, error) {
	out := make(map[any]any, len(m.Entries))
	for _, entry := range m.Entries {
		k, err := Resolve(inputs, entry.Key)
		if err != nil {
			return nil, err
		}
		key, ok := mapKey(k)
		if !ok {
			return nil, &Error{Kind: KindUnhashableKey, KeyType: fmt.Sprintf("%T", k)}
		}
		v, err := Resolve(inputs, entry.Value)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// mapKey returns k in a form usable as a map key. A Tuple becomes an array
// of the same length, [N]any, with nested tuples converted the same way.
func mapKey(k any) (any, bool) {
	if k == nil {
		return nil, true
	}
	if t, ok := k.(Tuple); ok {
		arr := reflect.New(reflect.ArrayOf(len(t), reflect.TypeFor[any]())).Elem()
		for i, elem := range t {
			elemKey, ok := mapKey(elem)
			if !ok {
				return nil, false
			}
			if elemKey != nil {
				arr.Index(i).Set(reflect.ValueOf(elemKey))
			}
		}
		return arr.Interface(), true
	}
	if !reflect.ValueOf(k).Comparable() {
		return nil, false
	}
	return k, true
}
