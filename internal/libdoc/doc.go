// Package libdoc extracts library function documentation from comment
// annotations and builds the documentation model.
//
// An annotation is a line comment ("//" or "#") whose body starts with one
// of the keywords below:
//
//	// $function: add
//	// $group: Math
//	// $doc: Adds two numbers.
//	// $arg a: first addend
//	// $arg b: second addend
//	// $return: the sum
//
// A $function line opens a scope; the other keywords attach to the most
// recently opened function until the next $function line, even across
// input files. Repeating an $arg line for the same argument continues its
// description. Violations (keywords outside a scope, duplicate functions,
// redefined groups or args) are reported as *Error and abort parsing.
package libdoc
