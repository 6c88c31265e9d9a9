package hcl_adapter

import (
	"fmt"
	"math"
	"reflect"

	"github.com/specialistvlad/stepadapter/internal/adapter"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Converter moves values between cty and the plain Go values the adapter
// works with.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ToCtyValue converts a native Go value into its corresponding cty.Value.
// Sequences become tuples and maps become objects, so elements may have
// differing types. Non-string map keys are rendered with fmt.Sprint, and two
// keys rendering to the same name are an error.
func (c *Converter) ToCtyValue(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return t, nil
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return cty.NilVal, fmt.Errorf("cannot represent %v as a number", t)
		}
		return cty.NumberFloatVal(t), nil
	case []any:
		return c.tupleVal(t)
	case adapter.Tuple:
		return c.tupleVal(t)
	case adapter.Arguments:
		return c.ToCtyValue(map[string]any(t))
	case map[string]any:
		attrs := make(map[string]cty.Value, len(t))
		for k, elem := range t {
			val, err := c.ToCtyValue(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute '%s': %w", k, err)
			}
			attrs[k] = val
		}
		return cty.ObjectVal(attrs), nil
	case map[any]any:
		attrs := make(map[string]any, len(t))
		origins := make(map[string]any, len(t))
		for k, elem := range t {
			name, ok := k.(string)
			if !ok {
				name = fmt.Sprint(k)
			}
			if prev, dup := origins[name]; dup {
				return cty.NilVal, fmt.Errorf("map keys %#v and %#v both render as attribute '%s'", prev, k, name)
			}
			origins[name] = k
			attrs[name] = elem
		}
		return c.ToCtyValue(attrs)
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

func (c *Converter) tupleVal(elems []any) (cty.Value, error) {
	vals := make([]cty.Value, len(elems))
	for i, elem := range elems {
		val, err := c.ToCtyValue(elem)
		if err != nil {
			return cty.NilVal, fmt.Errorf("in element %d: %w", i, err)
		}
		vals[i] = val
	}
	return cty.TupleVal(vals), nil
}

// RenderJSON renders a native Go value as JSON through its cty form.
func (c *Converter) RenderJSON(v any) ([]byte, error) {
	val, err := c.ToCtyValue(v)
	if err != nil {
		return nil, err
	}
	return ctyjson.SimpleJSONValue{Value: val}.MarshalJSON()
}

// CtyToNative recursively converts a cty.Value to its most natural Go
// counterpart: strings, float64 numbers, bools, []any and map[string]any.
func CtyToNative(v cty.Value) (any, error) {
	// A nil or unknown value becomes a nil interface{}.
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		// float64 is the most sensible representation for an untyped number.
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, val := it.Element()
			nativeVal, err := CtyToNative(val)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nativeVal)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, val := it.Element()
			keyStr := key.AsString()
			nativeVal, err := CtyToNative(val)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}
			goMap[keyStr] = nativeVal
		}
		return goMap, nil

	default:
		return nil, fmt.Errorf("unsupported cty type for conversion: %s", ty.FriendlyName())
	}
}
