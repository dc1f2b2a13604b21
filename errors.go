package propcheck

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/propcheck/i18n"
)

// ErrorCode classifies why a property failed validation.
type ErrorCode int

// Error codes. The zero value is CodeUnknown.
const (
	CodeUnknown ErrorCode = iota
	CodeRequired
	CodeUnsupported
	CodeValue
)

// String returns the stable name of the code (REQUIRED, UNSUPPORTED, VALUE or
// UNKNOWN). Unrecognized values render as UNKNOWN.
func (c ErrorCode) String() string {
	switch c {
	case CodeRequired:
		return "REQUIRED"
	case CodeUnsupported:
		return "UNSUPPORTED"
	case CodeValue:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}

// ParseErrorCode is the inverse of String.
func ParseErrorCode(s string) (ErrorCode, error) {
	switch s {
	case "REQUIRED":
		return CodeRequired, nil
	case "UNSUPPORTED":
		return CodeUnsupported, nil
	case "VALUE":
		return CodeValue, nil
	case "UNKNOWN":
		return CodeUnknown, nil
	}
	return CodeUnknown, fmt.Errorf("propcheck: unknown error code %q", s)
}

func (c ErrorCode) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *ErrorCode) UnmarshalText(b []byte) error {
	v, err := ParseErrorCode(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c *ErrorCode) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// ErrorRecord describes a single failing property.
type ErrorRecord struct {
	Property string    `json:"property" yaml:"property"`
	Code     ErrorCode `json:"errorCode" yaml:"errorCode"`
	Message  string    `json:"message" yaml:"message"`
}

// ErrorRecords is the result of GetErrors. It implements error so that it can
// be returned directly by callers that want structured detail.
type ErrorRecords []ErrorRecord

// Error summarizes the first few records.
func (rs ErrorRecords) Error() string {
	if len(rs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(rs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", rs[i].Code, rs[i].Property)
	}
	if len(rs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(rs))
	}
	return b.String()
}

// Has reports whether any record concerns property.
func (rs ErrorRecords) Has(property string) bool {
	for _, r := range rs {
		if r.Property == property {
			return true
		}
	}
	return false
}

// Properties lists the failing properties in record order.
func (rs ErrorRecords) Properties() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Property)
	}
	return out
}

// Messages lists the formatted messages in record order.
func (rs ErrorRecords) Messages() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Message)
	}
	return out
}

// AsErrorRecords extracts ErrorRecords from an error using errors.As.
func AsErrorRecords(err error) (ErrorRecords, bool) {
	if err == nil {
		return nil, false
	}
	var rs ErrorRecords
	if errors.As(err, &rs) {
		return rs, true
	}
	return nil, false
}

// ErrValidation is wrapped by every error returned from ValidateOrThrow.
var ErrValidation = errors.New("validation error")

// validationError joins the given messages into one error.
func validationError(messages []string) error {
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, ", "))
}

// FormatMessage renders the default message for code on property using tr,
// or the package translator when tr is nil.
func FormatMessage(tr i18n.Translator, code ErrorCode, property string) string {
	data := map[string]string{"property": property}
	var prefix string
	if tr != nil {
		prefix = tr.Message(code.String(), data)
	} else {
		prefix = i18n.T(code.String(), data)
	}
	return prefix + ` "` + property + `"`
}
