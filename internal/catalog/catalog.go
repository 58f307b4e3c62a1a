// Package catalog defines the static Semrush tool catalog: one descriptor per
// exposed MCP tool, naming the upstream report it maps to and the parameter
// schema its arguments must satisfy. The catalog is built once at startup and
// read-only afterwards.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ParamType is the declared type of a tool parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array" // array of strings
)

// ParamLocation says where a parameter lands on the upstream request.
type ParamLocation string

const (
	InPath  ParamLocation = "path"
	InQuery ParamLocation = "query"
	InBody  ParamLocation = "body"
)

// ResponseFormat tags how the upstream body for a tool is parsed.
type ResponseFormat string

const (
	FormatJSON      ResponseFormat = "json"
	FormatDelimited ResponseFormat = "delimited" // semicolon-separated Semrush CSV
)

// Param describes one parameter of a catalog tool.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	In          ParamLocation
	Enum        []string // allowed tokens for string params; empty means unconstrained
	Default     string   // sent when an optional string param is omitted; empty means send nothing
}

// Descriptor is the static metadata record for one tool: identity, schema,
// and upstream mapping. Immutable after registry construction.
type Descriptor struct {
	Name        string
	Description string
	Method      string            // GET or POST
	Path        string            // upstream path, may contain {placeholder} segments
	Fixed       map[string]string // query params sent verbatim on every call (e.g. type=phrase_kdi)
	Params      []Param
	Format      ResponseFormat
}

// Param returns the named parameter, if declared.
func (d Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// allowedMethods is the whitelist of HTTP methods for catalog tools.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true,
}

// ValidateDescriptor validates a single catalog entry.
func ValidateDescriptor(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if d.Description == "" {
		return fmt.Errorf("tool %q has empty description", d.Name)
	}
	if !allowedMethods[strings.ToUpper(d.Method)] {
		return fmt.Errorf("tool %q has unsupported method %q", d.Name, d.Method)
	}
	if !strings.HasPrefix(d.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /)", d.Name, d.Path)
	}
	if strings.Contains(d.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", d.Name, d.Path)
	}
	if d.Format != FormatJSON && d.Format != FormatDelimited {
		return fmt.Errorf("tool %q has unknown response format %q", d.Name, d.Format)
	}
	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a parameter with empty name", d.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("tool %q declares parameter %q twice", d.Name, p.Name)
		}
		seen[p.Name] = true
		switch p.Type {
		case TypeString, TypeNumber, TypeBoolean, TypeArray:
		default:
			return fmt.Errorf("tool %q parameter %q has unknown type %q", d.Name, p.Name, p.Type)
		}
		switch p.In {
		case InPath, InQuery, InBody:
		default:
			return fmt.Errorf("tool %q parameter %q has unknown location %q", d.Name, p.Name, p.In)
		}
		if p.In == InPath && !strings.Contains(d.Path, "{"+p.Name+"}") {
			return fmt.Errorf("tool %q parameter %q is in=path but path %q has no {%s} placeholder",
				d.Name, p.Name, d.Path, p.Name)
		}
		if len(p.Enum) > 0 && p.Type != TypeString {
			return fmt.Errorf("tool %q parameter %q declares an enum on non-string type %q",
				d.Name, p.Name, p.Type)
		}
		if p.Default != "" {
			if p.Required {
				return fmt.Errorf("tool %q parameter %q is required but declares a default", d.Name, p.Name)
			}
			if p.Type != TypeString {
				return fmt.Errorf("tool %q parameter %q declares a default on non-string type %q",
					d.Name, p.Name, p.Type)
			}
			if len(p.Enum) > 0 && !contains(p.Enum, p.Default) {
				return fmt.Errorf("tool %q parameter %q default %q is not in its enum",
					d.Name, p.Name, p.Default)
			}
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Registry is the read-only tool name -> descriptor mapping.
type Registry struct {
	byName map[string]Descriptor
	names  []string
}

// NewRegistry builds a registry from descriptors, rejecting invalid entries
// and duplicate names.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	byName := make(map[string]Descriptor, len(descriptors))
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		if err := ValidateDescriptor(d); err != nil {
			return nil, err
		}
		if _, dup := byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name %q", d.Name)
		}
		byName[d.Name] = d
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return &Registry{byName: byName, names: names}, nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns all registered tool names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// All returns the registered descriptors in name order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.names)
}

// Default builds the registry from the generated Semrush tool catalog.
func Default() (*Registry, error) {
	return NewRegistry(Descriptors())
}
