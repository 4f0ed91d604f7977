package libdoc

import "fmt"

// Issue is a completeness problem found by Check.
type Issue struct {
	// Function is empty for model-level issues.
	Function string
	Message  string
}

func (i Issue) String() string {
	if i.Function == "" {
		return i.Message
	}
	return fmt.Sprintf("function %q %s", i.Function, i.Message)
}

// Check reports functions that are missing a group or documentation, and
// an empty model. Parsing never requires either; Check backs --strict.
func Check(m *Model) []Issue {
	if m == nil || len(m.Functions) == 0 {
		return []Issue{{Message: "no library functions"}}
	}

	var issues []Issue
	for _, fn := range m.Functions {
		if !fn.HasGroup() {
			issues = append(issues, Issue{Function: fn.Name, Message: "missing group"})
		}
		if len(fn.Doc) == 0 {
			issues = append(issues, Issue{Function: fn.Name, Message: "missing documentation"})
		}
	}

	return issues
}
