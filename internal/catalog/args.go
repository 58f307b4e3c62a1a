package catalog

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// UnknownToolError reports a call-tool request naming a tool absent from the
// registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// InvalidArgumentError reports an argument that failed schema validation,
// naming the offending field. Detected before any upstream request is built.
type InvalidArgumentError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q for tool %q: %s", e.Field, e.Tool, e.Reason)
}

// ValidateArguments checks args against the descriptor's parameter schema and
// returns a normalized copy: strings as string, numbers as float64, booleans
// as bool, arrays as []string. Unrecognized fields, missing required fields,
// inconvertible values, and enum violations all fail with InvalidArgumentError.
func (d Descriptor) ValidateArguments(args map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(args))

	for name, raw := range args {
		p, ok := d.Param(name)
		if !ok {
			return nil, &InvalidArgumentError{Tool: d.Name, Field: name, Reason: "unrecognized parameter"}
		}
		if raw == nil {
			continue
		}
		val, err := coerceValue(p, raw)
		if err != nil {
			return nil, &InvalidArgumentError{
				Tool:   d.Name,
				Field:  name,
				Reason: fmt.Sprintf("expected %s, got %T", p.Type, raw),
			}
		}
		if s, isStr := val.(string); isStr && len(p.Enum) > 0 && !contains(p.Enum, s) {
			return nil, &InvalidArgumentError{
				Tool:   d.Name,
				Field:  name,
				Reason: fmt.Sprintf("value %q not in allowed set [%s]", s, strings.Join(enumPreview(p.Enum), ", ")),
			}
		}
		normalized[name] = val
	}

	for _, p := range d.Params {
		if !p.Required {
			continue
		}
		val, present := normalized[p.Name]
		if !present {
			return nil, &InvalidArgumentError{Tool: d.Name, Field: p.Name, Reason: "required parameter is missing"}
		}
		if s, isStr := val.(string); isStr && s == "" {
			return nil, &InvalidArgumentError{Tool: d.Name, Field: p.Name, Reason: "required parameter must not be empty"}
		}
	}

	return normalized, nil
}

// coerceValue converts a raw argument into the parameter's declared Go type.
// JSON-decoded arguments arrive with loose types (all numbers are float64,
// arrays are []any), so decoding is weakly typed.
func coerceValue(p Param, raw any) (any, error) {
	switch p.Type {
	case TypeString:
		var s string
		if err := weakDecode(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	case TypeNumber:
		var f float64
		if err := weakDecode(raw, &f); err != nil {
			return nil, err
		}
		return f, nil
	case TypeBoolean:
		var b bool
		if err := weakDecode(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case TypeArray:
		var a []string
		if err := weakDecode(raw, &a); err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown parameter type %q", p.Type)
	}
}

func weakDecode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// enumPreview truncates long enums so error messages stay readable.
func enumPreview(enum []string) []string {
	const max = 8
	if len(enum) <= max {
		return enum
	}
	out := make([]string, max+1)
	copy(out, enum[:max])
	out[max] = "..."
	return out
}
