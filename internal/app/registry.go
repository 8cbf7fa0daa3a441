package app

import (
	"fmt"
	"sort"
)

var registry = map[string]*Function{}

// MustRegister adds a generated function to the package registry. Kernels
// call it from init; a duplicate name means two generated files collided,
// which is unrecoverable.
func MustRegister(f *Function) {
	if _, ok := registry[f.Name]; ok {
		panic("duplicate generated function: " + f.Name)
	}
	registry[f.Name] = f
}

// Lookup returns the generated function with the given name.
func Lookup(name string) (*Function, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", name)
	}
	return f, nil
}

// Functions lists all registered functions sorted by name.
func Functions() []*Function {
	out := make([]*Function, 0, len(registry))
	for _, f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
