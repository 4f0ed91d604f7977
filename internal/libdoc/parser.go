package libdoc

// Parser builds a Model from annotated source lines. A single Parser is
// fed every input file of a run, in order, so function scope and the
// function registry carry over from one file to the next.
type Parser struct {
	functions map[string]*Function
	current   *Function
}

// NewParser returns a parser with an empty registry and no open function.
func NewParser() *Parser {
	return &Parser{
		functions: make(map[string]*Function),
	}
}

// ParseLines feeds every line of file to the parser, numbering lines from 1.
// It stops at the first error.
func (p *Parser) ParseLines(file string, lines []string) error {
	for i, line := range lines {
		if err := p.ParseLine(file, i+1, line); err != nil {
			return err
		}
	}
	return nil
}

// ParseLine applies one source line. Non-annotation lines are ignored.
func (p *Parser) ParseLine(file string, lineNumber int, line string) error {
	ann, ok := Scan(line)
	if !ok {
		return nil
	}

	if ann.Keyword != KeywordFunction && p.current == nil {
		name := ann.Name
		if ann.Keyword != KeywordArg {
			name = string(ann.Keyword)
		}
		return newError(KindOutOfScope, file, lineNumber, ann.Keyword, name)
	}

	switch ann.Keyword {
	case KeywordFunction:
		return p.startFunction(file, lineNumber, ann.Text)
	case KeywordGroup:
		if ann.Text == "" {
			return newError(KindEmptyName, file, lineNumber, ann.Keyword, "")
		}
		if p.current.HasGroup() {
			return newError(KindGroupRedefined, file, lineNumber, ann.Keyword, p.current.Name)
		}
		p.current.Group = ann.Text
	case KeywordDoc:
		p.current.Doc = appendText(p.current.Doc, ann.Text)
	case KeywordReturn:
		p.current.Return = appendText(p.current.Return, ann.Text)
	case KeywordArg:
		return p.addArg(file, lineNumber, ann.Name, ann.Text)
	}

	return nil
}

func (p *Parser) startFunction(file string, lineNumber int, name string) error {
	if name == "" {
		return newError(KindEmptyName, file, lineNumber, KeywordFunction, "")
	}
	if _, exists := p.functions[name]; exists {
		return newError(KindDuplicateFunction, file, lineNumber, KeywordFunction, name)
	}

	fn := &Function{Name: name}
	p.functions[name] = fn
	p.current = fn
	return nil
}

func (p *Parser) addArg(file string, lineNumber int, name, text string) error {
	if name == "" {
		return newError(KindEmptyName, file, lineNumber, KeywordArg, "")
	}

	if last := p.current.lastArg(); last != nil && last.Name == name {
		last.Doc = appendText(last.Doc, text)
		return nil
	}

	if p.current.findArg(name) != nil {
		return newError(KindArgRedefined, file, lineNumber, KeywordArg, name)
	}

	p.current.Args = append(p.current.Args, &Arg{Name: name, Doc: appendText([]string{}, text)})
	return nil
}

// appendText adds a documentation line. Blank lines separate paragraphs, so
// they are kept unless they would lead the sequence.
func appendText(lines []string, text string) []string {
	if text == "" && len(lines) == 0 {
		return lines
	}
	return append(lines, text)
}

func newError(kind Kind, file string, lineNumber int, keyword Keyword, name string) error {
	return &Error{
		Kind:    kind,
		File:    file,
		Line:    lineNumber,
		Keyword: keyword,
		Name:    name,
	}
}

// Len returns the number of registered functions.
func (p *Parser) Len() int {
	return len(p.functions)
}

// Model returns the registered functions sorted by (group, name).
func (p *Parser) Model() *Model {
	functions := make([]*Function, 0, len(p.functions))
	for _, fn := range p.functions {
		functions = append(functions, fn)
	}
	sortFunctions(functions)

	return &Model{Functions: functions}
}
