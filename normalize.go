package propcheck

import "sort"

// entry is a normalized schema slot bound to its property name.
type entry struct {
	property string
	spec     Spec
}

// normalize merges the schema with the keys of values into a single ordered
// list: declared properties first, then unsupported ones. Both groups are
// sorted by name so that error order does not depend on map iteration.
func normalize(s Schema, values Values) []entry {
	out := make([]entry, 0, len(s)+len(values))
	for _, k := range sortedKeys(s) {
		out = append(out, entry{property: k, spec: specOf(s[k])})
	}
	for _, k := range unsupportedKeys(s, values) {
		out = append(out, entry{property: k, spec: Spec{Required: false}})
	}
	return out
}

func specOf(r Rule) Spec {
	if r == nil {
		return Spec{}
	}
	return r.rule()
}

// unsupportedKeys lists keys of values that the schema does not declare.
func unsupportedKeys(s Schema, values Values) []string {
	var extra []string
	for k := range values {
		if _, ok := s[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
