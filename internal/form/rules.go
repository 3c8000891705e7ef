package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Limits applied by the poll and community creation workflows.
const (
	MaxQuestionLength = 250
	MaxChoiceLength   = 50
	MaxNameLength     = 64

	// MaxDurationHours is 15 days, the longest a poll may run.
	MinDurationHours = 1
	MaxDurationHours = 360
)

// Rule checks one constraint against a field value. It returns an error
// message when the value violates the constraint, or "" when it passes.
type Rule func(value string) string

// Required fails when the trimmed value is empty.
func Required() Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "This field is required"
		}
		return ""
	}
}

// MaxLength fails when the value is longer than n characters.
func MaxLength(n int) Rule {
	return func(value string) string {
		if len([]rune(value)) > n {
			return fmt.Sprintf("Max length is %d characters", n)
		}
		return ""
	}
}

// NumericRange fails when a present value is not a number within the
// inclusive range [min, max]. An empty value passes: the field is optional
// and defaulting is the server's concern.
func NumericRange(min, max int) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "Must be a number"
		}
		if n < min || n > max {
			return fmt.Sprintf("Must be between %d and %d", min, max)
		}
		return ""
	}
}

// FieldRules binds an ordered rule list to a field path such as "question"
// or "choices[2]".
type FieldRules struct {
	Path  string
	Value string
	Rules []Rule
}

// Errors maps a field path to its single error message. It is recomputed
// from scratch on every validation pass, never patched incrementally.
type Errors map[string]string

// Validate evaluates each field's rules in order, stopping at the first
// failing rule per field so a field carries at most one message. The result
// is empty when every field passes.
func Validate(fields []FieldRules) Errors {
	errs := Errors{}
	for _, f := range fields {
		for _, rule := range f.Rules {
			if msg := rule(f.Value); msg != "" {
				errs[f.Path] = msg
				break
			}
		}
	}
	return errs
}
