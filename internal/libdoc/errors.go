package libdoc

import "fmt"

// Kind classifies a fatal annotation error.
type Kind int

const (
	KindOutOfScope Kind = iota + 1
	KindDuplicateFunction
	KindGroupRedefined
	KindArgRedefined
	KindEmptyName
)

func (k Kind) String() string {
	switch k {
	case KindOutOfScope:
		return "out of scope"
	case KindDuplicateFunction:
		return "duplicate function"
	case KindGroupRedefined:
		return "group redefined"
	case KindArgRedefined:
		return "arg redefined"
	case KindEmptyName:
		return "empty name"
	default:
		return "unknown"
	}
}

// Code returns the error code used in CLI diagnostics.
func (k Kind) Code() string {
	switch k {
	case KindOutOfScope:
		return "OUT_OF_SCOPE"
	case KindDuplicateFunction:
		return "DUPLICATE_FUNCTION"
	case KindGroupRedefined:
		return "GROUP_REDEFINED"
	case KindArgRedefined:
		return "ARG_REDEFINED"
	case KindEmptyName:
		return "EMPTY_NAME"
	default:
		return "UNKNOWN"
	}
}

// Error is returned by the parser for any annotation rule violation.
// Name is the offending function or argument name; it is the keyword
// itself for out-of-scope function keywords, and empty for KindEmptyName.
type Error struct {
	Kind    Kind
	File    string
	Line    int
	Keyword Keyword
	Name    string
}

func (e *Error) Error() string {
	var detail string
	switch e.Kind {
	case KindOutOfScope:
		if e.Keyword == KeywordArg {
			detail = fmt.Sprintf("arg %q keyword used outside of function scope", e.Name)
		} else {
			detail = fmt.Sprintf("%s keyword used outside of function scope", e.Keyword)
		}
	case KindDuplicateFunction:
		detail = fmt.Sprintf("function %q redefined", e.Name)
	case KindGroupRedefined:
		detail = fmt.Sprintf("function %q group redefined", e.Name)
	case KindArgRedefined:
		detail = fmt.Sprintf("arg %q redefined", e.Name)
	case KindEmptyName:
		detail = fmt.Sprintf("invalid %s name %q", emptyNameSubject(e.Keyword), e.Name)
	default:
		detail = e.Kind.String()
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, detail)
}

func emptyNameSubject(keyword Keyword) string {
	if keyword == KeywordGroup {
		return "function group"
	}
	return string(keyword)
}
