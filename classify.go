package propcheck

// classified pairs a failing property with its error code.
type classified struct {
	spec EvaluatedSpec
	code ErrorCode
}

// passing reports whether es produces no error: either its predicate was
// satisfied or it is optional and was simply left out.
func passing(es EvaluatedSpec) bool {
	if es.Result == Passed {
		return true
	}
	return !es.Required && !es.Defined
}

// classify assigns exactly one code to es. Order matters: a required property
// that is missing is REQUIRED even though its predicate also failed, and an
// undeclared property is UNSUPPORTED since it has no predicate to fail.
func classify(es EvaluatedSpec) ErrorCode {
	switch {
	case es.Required && !es.Defined:
		return CodeRequired
	case es.Predicate == nil:
		return CodeUnsupported
	case es.Defined && es.Result == Failed:
		return CodeValue
	default:
		return CodeUnknown
	}
}

// classifyAll keeps evaluation order. With failFast it stops after the first
// non-passing property.
func classifyAll(evaluated []EvaluatedSpec, failFast bool) []classified {
	var out []classified
	for _, es := range evaluated {
		if passing(es) {
			continue
		}
		out = append(out, classified{spec: es, code: classify(es)})
		if failFast {
			break
		}
	}
	return out
}
