package source

import (
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
)

// Expand resolves command-line inputs in order. URLs and plain paths pass
// through unchanged; glob patterns ("**" included) expand to the matching
// files in lexical order, minus any that match an exclude pattern.
func Expand(args []string, exclude []string) ([]string, error) {
	var inputs []string

	for _, arg := range args {
		if IsURL(arg) || !hasMeta(arg) {
			inputs = append(inputs, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, oops.
				Code("INVALID_ARGS").
				With("pattern", arg).
				Hint("Check the glob syntax; quote patterns so the shell does not expand them").
				Wrapf(err, "expanding %q", arg)
		}
		slices.Sort(matches)

		kept := 0
		for _, match := range matches {
			excluded, matchErr := matchesAny(exclude, match)
			if matchErr != nil {
				return nil, matchErr
			}
			if excluded {
				continue
			}
			inputs = append(inputs, match)
			kept++
		}

		if kept == 0 {
			return nil, oops.
				Code("NO_INPUT_MATCH").
				With("pattern", arg).
				Hint("Adjust the pattern or the exclude list").
				Errorf("no files match %q", arg)
		}
	}

	return inputs, nil
}

func hasMeta(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func matchesAny(patterns []string, candidate string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.PathMatch(pattern, candidate)
		if err != nil {
			return false, oops.
				Code("INVALID_ARGS").
				With("pattern", pattern).
				Wrapf(err, "invalid exclude pattern %q", pattern)
		}

		if matched {
			return true, nil
		}
	}

	return false, nil
}
