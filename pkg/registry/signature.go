package registry

import (
	"fmt"
	"strings"
)

type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Required declares a parameter without a default.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares a parameter that falls back to def when not supplied.
func Optional(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// Signature is the ordered parameter list of a constructor.
type Signature []Param

func (s Signature) Has(name string) bool {
	return s.index(name) >= 0
}

func (s Signature) index(name string) int {
	for i, p := range s {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Args are the values a caller passes to a constructor, by position and by name.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// Keywords is shorthand for keyword-only Args.
func Keywords(kv map[string]any) Args {
	return Args{Keyword: kv}
}

// Positional is shorthand for positional-only Args.
func Positional(values ...any) Args {
	return Args{Positional: values}
}

type BindError struct {
	Reason string
}

func (e *BindError) Error() string {
	return "bind arguments: " + e.Reason
}

// Bound is the canonical name to value mapping produced by binding Args
// against a Signature.
type Bound struct {
	Signature Signature
	Arguments map[string]any
}

// Bind maps args onto the signature and fails if a required parameter is missing.
func (s Signature) Bind(args Args) (*Bound, error) {
	return s.bind(args, false)
}

// BindPartial is Bind without the missing-parameter check.
func (s Signature) BindPartial(args Args) (*Bound, error) {
	return s.bind(args, true)
}

func (s Signature) bind(args Args, partial bool) (*Bound, error) {
	if len(args.Positional) > len(s) {
		return nil, &BindError{Reason: fmt.Sprintf("takes %d arguments but %d were given", len(s), len(args.Positional))}
	}

	arguments := make(map[string]any, len(s))
	for i, v := range args.Positional {
		arguments[s[i].Name] = v
	}

	for name, v := range args.Keyword {
		if !s.Has(name) {
			return nil, &BindError{Reason: fmt.Sprintf("unexpected keyword argument %q", name)}
		}
		if _, dup := arguments[name]; dup {
			return nil, &BindError{Reason: fmt.Sprintf("multiple values for argument %q", name)}
		}
		arguments[name] = v
	}

	if !partial {
		var missing []string
		for _, p := range s {
			if _, ok := arguments[p.Name]; !ok && !p.HasDefault {
				missing = append(missing, p.Name)
			}
		}
		if len(missing) > 0 {
			return nil, &BindError{Reason: "missing required argument: " + strings.Join(missing, ", ")}
		}
	}

	return &Bound{Signature: s, Arguments: arguments}, nil
}

// ApplyDefaults fills every unbound parameter that declares a default.
func (b *Bound) ApplyDefaults() {
	for _, p := range b.Signature {
		if _, ok := b.Arguments[p.Name]; !ok && p.HasDefault {
			b.Arguments[p.Name] = p.Default
		}
	}
}

// Keywords returns the bound values as keyword-only Args.
func (b *Bound) Keywords() Args {
	kv := make(map[string]any, len(b.Arguments))
	for k, v := range b.Arguments {
		kv[k] = v
	}
	return Args{Keyword: kv}
}
