package propcheck

// Predicate reports whether a single property value is acceptable. The engine
// never inspects a predicate beyond calling it.
type Predicate func(v any) bool

// Spec is a predicate annotated with its presence requirement.
type Spec struct {
	Predicate Predicate
	Required  bool
	// Message optionally replaces the formatted message for any error
	// reported on the property.
	Message string
}

// Rule is what a schema slot holds: either a bare Predicate (optional by
// default) or an already annotated Spec.
type Rule interface {
	rule() Spec
}

func (p Predicate) rule() Spec { return Optional(p) }
func (s Spec) rule() Spec      { return s }

// Required annotates p as mandatory.
func Required(p Predicate) Spec { return Spec{Predicate: p, Required: true} }

// Optional annotates p as optional. Bare predicates in a Schema are treated the
// same way, so this only exists for symmetry with Required.
func Optional(p Predicate) Spec { return Spec{Predicate: p, Required: false} }

// WithMessage returns a copy of s whose errors carry msg instead of the
// default formatted message.
func (s Spec) WithMessage(msg string) Spec {
	s.Message = msg
	return s
}

// Schema maps property names to rules. It is built once and may be reused
// across any number of validation calls.
type Schema map[string]Rule

// Values holds the candidate properties for a single validation call.
type Values = map[string]any

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a property as explicitly undefined. It is treated exactly
// like an absent key, and it is what predicates receive for absent keys.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}
