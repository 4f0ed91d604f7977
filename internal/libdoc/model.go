package libdoc

import (
	"cmp"
	"slices"
)

// Model is the library documentation model emitted by scriptdoc.
type Model struct {
	Functions []*Function `json:"functions" yaml:"functions"`
}

// Function documents one library function.
type Function struct {
	Name   string   `json:"name"             yaml:"name"`
	Group  string   `json:"group,omitempty"  yaml:"group,omitempty"`
	Doc    []string `json:"doc,omitempty"    yaml:"doc,omitempty"`
	Return []string `json:"return,omitempty" yaml:"return,omitempty"`
	Args   []*Arg   `json:"args,omitempty"   yaml:"args,omitempty"`
}

// Arg documents one function argument.
type Arg struct {
	Name string   `json:"name" yaml:"name"`
	Doc  []string `json:"doc"  yaml:"doc"`
}

// HasGroup reports whether the function's group was set.
func (f *Function) HasGroup() bool {
	return f.Group != ""
}

func (f *Function) lastArg() *Arg {
	if len(f.Args) == 0 {
		return nil
	}
	return f.Args[len(f.Args)-1]
}

func (f *Function) findArg(name string) *Arg {
	for _, arg := range f.Args {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// compareFunctions orders by (group, name). Functions without a group sort
// before every grouped function.
func compareFunctions(a, b *Function) int {
	if a.HasGroup() != b.HasGroup() {
		if a.HasGroup() {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(a.Group, b.Group); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

func sortFunctions(functions []*Function) {
	slices.SortStableFunc(functions, compareFunctions)
}
