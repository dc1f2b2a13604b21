package propcheck

// Result is the outcome of running a property's predicate.
type Result int

const (
	NotEvaluated Result = iota // No predicate (unsupported property).
	Passed
	Failed
)

func (r Result) String() string {
	switch r {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "not_evaluated"
	}
}

// EvaluatedSpec is a Spec bound to a property, its looked-up value and the
// predicate result. It only lives for the duration of one validation call.
type EvaluatedSpec struct {
	Spec
	Property string
	Value    any
	// Defined is false when the key is absent or holds Undefined.
	Defined bool
	Result  Result
}

// evaluate looks up each property and runs its predicate. Absent values are
// passed to predicates as Undefined. A panicking predicate is not recovered.
func evaluate(entries []entry, values Values) []EvaluatedSpec {
	out := make([]EvaluatedSpec, 0, len(entries))
	for _, e := range entries {
		v, ok := values[e.property]
		defined := ok && !IsUndefined(v)
		if !defined {
			v = Undefined
		}
		es := EvaluatedSpec{Spec: e.spec, Property: e.property, Value: v, Defined: defined}
		if e.spec.Predicate != nil {
			if e.spec.Predicate(v) {
				es.Result = Passed
			} else {
				es.Result = Failed
			}
		}
		out = append(out, es)
	}
	return out
}

// Evaluate runs the normalize and evaluate stages and returns every property's
// evaluation, passing or not. It is mainly useful for diagnostics.
func Evaluate(s Schema, values Values) []EvaluatedSpec {
	return evaluate(normalize(s, values), values)
}
