package libdoc

import (
	"regexp"
	"strings"
)

// Keyword identifies an annotation type.
type Keyword string

const (
	KeywordFunction Keyword = "function"
	KeywordGroup    Keyword = "group"
	KeywordDoc      Keyword = "doc"
	KeywordReturn   Keyword = "return"
	KeywordArg      Keyword = "arg"
)

// Annotation is one recognized annotation line.
type Annotation struct {
	Keyword Keyword
	// Name is only set for KeywordArg.
	Name string
	Text string
}

// Comment markers are "//" (C-style sources) and "#" (script/Python sources).
// Whitespace includes Unicode space separators such as NBSP.
var (
	reKeyword = regexp.MustCompile(`^[\s\p{Zs}]*(?://|#)[\s\p{Zs}]*\$(function|group|doc|return):(.*)$`)
	reArg     = regexp.MustCompile(`^[\s\p{Zs}]*(?://|#)[\s\p{Zs}]*\$arg[\s\p{Zs}]+(.+?):(.*)$`)
)

// Scan classifies a source line. Name and Text are trimmed and may be
// empty; the parser decides what an empty value means for each keyword.
func Scan(line string) (Annotation, bool) {
	if m := reKeyword.FindStringSubmatch(line); m != nil {
		return Annotation{Keyword: Keyword(m[1]), Text: strings.TrimSpace(m[2])}, true
	}

	if m := reArg.FindStringSubmatch(line); m != nil {
		return Annotation{
			Keyword: KeywordArg,
			Name:    strings.TrimSpace(m[1]),
			Text:    strings.TrimSpace(m[2]),
		}, true
	}

	return Annotation{}, false
}
