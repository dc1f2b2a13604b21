package propcheck

import (
	"go.uber.org/zap"

	"github.com/reoring/propcheck/i18n"
)

// Options configures an Engine.
type Options struct {
	// Logger receives a debug entry for every failed validation. nil means
	// zap.NewNop().
	Logger *zap.Logger
	// Translator renders message prefixes. nil uses the package translator
	// from i18n.
	Translator i18n.Translator
	// FailFast stops at the first failing property, so ValidateOrThrow
	// reports a single message instead of joining all of them.
	FailFast bool
}

// Option mutates Options during New.
type Option func(*Options)

// WithLogger sets the logger used for validation diagnostics.
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithTranslator sets the message translator.
func WithTranslator(tr i18n.Translator) Option { return func(o *Options) { o.Translator = tr } }

// WithFailFast toggles first-error-only reporting.
func WithFailFast(enabled bool) Option { return func(o *Options) { o.FailFast = enabled } }

// Engine runs the validation pipeline with a fixed set of options. It holds no
// per-call state and is safe for concurrent use.
type Engine struct {
	opt Options
}

// New builds an Engine from opts.
func New(opts ...Option) *Engine {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return &Engine{opt: o}
}

// Options returns a copy of the engine configuration.
func (e *Engine) Options() Options { return e.opt }

// classified runs the pipeline and logs failures. When failFast is set only
// the first failure is known, so it is logged as first_failure instead of an
// error count.
func (e *Engine) classified(s Schema, values Values, failFast bool) []classified {
	errs := classifyAll(evaluate(normalize(s, values), values), failFast)
	if len(errs) == 0 || !e.opt.Logger.Core().Enabled(zap.DebugLevel) {
		return errs
	}
	if failFast {
		e.opt.Logger.Debug("validation failed",
			zap.String("first_failure", errs[0].spec.Property), zap.Stringer("code", errs[0].code))
		return errs
	}
	props := make([]string, 0, len(errs))
	for _, c := range errs {
		props = append(props, c.spec.Property)
	}
	e.opt.Logger.Debug("validation failed", zap.Int("errors", len(errs)), zap.Strings("properties", props))
	return errs
}

func (e *Engine) format(errs []classified) ErrorRecords {
	out := make(ErrorRecords, 0, len(errs))
	for _, c := range errs {
		msg := c.spec.Message
		if msg == "" {
			msg = FormatMessage(e.opt.Translator, c.code, c.spec.Property)
		}
		out = append(out, ErrorRecord{Property: c.spec.Property, Code: c.code, Message: msg})
	}
	return out
}

// Validate reports whether values satisfy s.
func (e *Engine) Validate(s Schema, values Values) bool {
	return len(e.classified(s, values, true)) == 0
}

// GetErrors returns one record per failing property, in schema order followed
// by unsupported properties. The result is empty, never nil, on success.
func (e *Engine) GetErrors(s Schema, values Values) ErrorRecords {
	return e.format(e.classified(s, values, e.opt.FailFast))
}

// ValidateOrThrow returns values unchanged when they satisfy s. Otherwise it
// returns an error wrapping ErrValidation whose message lists every failing
// property, or only the first one when FailFast is set.
func (e *Engine) ValidateOrThrow(s Schema, values Values) (Values, error) {
	errs := e.GetErrors(s, values)
	if len(errs) == 0 {
		return values, nil
	}
	return nil, validationError(errs.Messages())
}

// ValidateFunc binds s and returns a Predicate over whole objects, so that a
// schema can be used as the rule for a property of another schema. Inputs
// that ValuesOf rejects fail the predicate.
func (e *Engine) ValidateFunc(s Schema) Predicate {
	return func(v any) bool {
		values, err := ValuesOf(v)
		if err != nil {
			return false
		}
		return e.Validate(s, values)
	}
}

// OrThrowFunc binds s to ValidateOrThrow.
func (e *Engine) OrThrowFunc(s Schema) func(Values) (Values, error) {
	return func(values Values) (Values, error) {
		return e.ValidateOrThrow(s, values)
	}
}

var defaultEngine = New()

// Validate reports whether values satisfy s using the default engine.
func Validate(s Schema, values Values) bool { return defaultEngine.Validate(s, values) }

// GetErrors lists the failing properties using the default engine.
func GetErrors(s Schema, values Values) ErrorRecords { return defaultEngine.GetErrors(s, values) }

// ValidateOrThrow returns values or a joined validation error using the
// default engine.
func ValidateOrThrow(s Schema, values Values) (Values, error) {
	return defaultEngine.ValidateOrThrow(s, values)
}

// ValidateFunc is the curried form of Validate.
func ValidateFunc(s Schema) Predicate { return defaultEngine.ValidateFunc(s) }

// OrThrowFunc is the curried form of ValidateOrThrow.
func OrThrowFunc(s Schema) func(Values) (Values, error) { return defaultEngine.OrThrowFunc(s) }
