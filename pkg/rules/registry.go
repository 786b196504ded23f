package rules

import "sort"

var registered []Rule

// Register adds a rule to the registry. Rules run in registration order.
func Register(r Rule) {
	registered = append(registered, r)
}

// All returns every registered rule in execution order
func All() []Rule {
	return registered
}

// Lookup finds a registered rule by name
func Lookup(name string) (Rule, bool) {
	for _, r := range registered {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// Names returns the sorted names of all registered rules
func Names() []string {
	names := make([]string, 0, len(registered))
	for _, r := range registered {
		names = append(names, r.Name())
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(SortImports{})
	Register(SortNamedImports{})
	Register(SortJSXProps{})
	Register(SortObjectDestructuring{})
}
