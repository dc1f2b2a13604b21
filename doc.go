// Package propcheck validates flat property maps against a schema of
// predicates.
//
// A Schema maps property names to rules. A rule is either a bare Predicate,
// which makes the property optional, or a Spec built with Required/Optional.
// Validation checks that:
//
// - every declared property that is present satisfies its predicate,
// - every required property is present,
// - no undeclared property exists.
//
// Each failing property gets exactly one ErrorCode, chosen in priority order
// REQUIRED, UNSUPPORTED, VALUE.
//
// Only the named Predicate type implements Rule. A func literal has to be
// converted before it can sit in a Schema:
//
//	propcheck.Schema{"even": propcheck.Predicate(func(v any) bool { ... })}
//
// Nested objects are handled by composition only: ValidateFunc(schema) is
// itself a Predicate and can be used as the rule of a property.
//
// Typical usage:
//
//	post := propcheck.Schema{
//	    "title": propcheck.Required(pred.IsString),
//	    "tags":  pred.IsArray,
//	    "meta":  propcheck.ValidateFunc(propcheck.Schema{"count": propcheck.Required(pred.IsNumber)}),
//	}
//	ok := propcheck.Validate(post, values)
//	errs := propcheck.GetErrors(post, values)
//	values, err := propcheck.ValidateOrThrow(post, values)
package propcheck
