package attr

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Validator is a named predicate over candidate values plus the
// human-readable message surfaced when the predicate rejects. Validators are
// stateless and owned by the field that declares them.
type Validator[T any] struct {
	Name    string
	Message string
	Check   func(T) bool
}

// NonEmpty rejects empty or whitespace-only strings.
func NonEmpty() Validator[string] {
	return Validator[string]{
		Name:    "nonEmpty",
		Message: "must not be empty",
		Check: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
	}
}

// OneOf rejects values outside the allowed set.
func OneOf[T comparable](allowed ...T) Validator[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, value := range allowed {
		set[value] = struct{}{}
	}
	return Validator[T]{
		Name:    "oneOf",
		Message: fmt.Sprintf("must be one of %v", allowed),
		Check: func(value T) bool {
			_, ok := set[value]
			return ok
		},
	}
}

// Min rejects values below the bound.
func Min[T cmp.Ordered](bound T) Validator[T] {
	return Validator[T]{
		Name:    "min",
		Message: fmt.Sprintf("must be >= %v", bound),
		Check: func(value T) bool {
			return value >= bound
		},
	}
}

// Max rejects values above the bound.
func Max[T cmp.Ordered](bound T) Validator[T] {
	return Validator[T]{
		Name:    "max",
		Message: fmt.Sprintf("must be <= %v", bound),
		Check: func(value T) bool {
			return value <= bound
		},
	}
}

// Pattern rejects strings that do not match the anchored expression. The
// expression must be a valid regexp literal.
func Pattern(expr string) Validator[string] {
	re := regexp.MustCompile(expr)
	return Validator[string]{
		Name:    "pattern",
		Message: fmt.Sprintf("must match %s", expr),
		Check:   re.MatchString,
	}
}

var (
	safeHTMLOnce   sync.Once
	safeHTMLPolicy *bluemonday.Policy
)

// SafeHTML rejects strings that do not survive sanitization unchanged, so
// markup-bearing attributes (labels, tooltips) cannot smuggle active content
// to the consuming renderer.
func SafeHTML() Validator[string] {
	return Validator[string]{
		Name:    "safeHTML",
		Message: "must not contain unsafe markup",
		Check: func(value string) bool {
			return safeHTMLSanitizer().Sanitize(value) == value
		},
	}
}

func safeHTMLSanitizer() *bluemonday.Policy {
	safeHTMLOnce.Do(func() {
		safeHTMLPolicy = bluemonday.UGCPolicy()
	})
	return safeHTMLPolicy
}
