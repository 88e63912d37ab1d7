package usage

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

type tokKind int

const (
	tokIdent tokKind = iota
	tokNumber
	tokPunct
	tokEOF
)

type token struct {
	kind tokKind
	text string
	line int
}

func (t token) is(punct string) bool {
	return t.kind == tokPunct && t.text == punct
}

func (t token) isIdent(name string) bool {
	return t.kind == tokIdent && t.text == name
}

// tokenize splits Java source into identifiers, numbers and single-rune
// punctuation. Comments, string, text block and char literals are dropped.
func tokenize(src string) []token {
	rs := []rune(src)
	var toks []token
	line := 1

	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case c == '\n':
			line++
			i++
		case unicode.IsSpace(c):
			i++
		case c == '/' && i+1 < len(rs) && rs[i+1] == '/':
			for i < len(rs) && rs[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(rs) && rs[i+1] == '*':
			i += 2
			for i < len(rs) && !(rs[i] == '*' && i+1 < len(rs) && rs[i+1] == '/') {
				if rs[i] == '\n' {
					line++
				}
				i++
			}
			i += 2
		case c == '"' && i+2 < len(rs) && rs[i+1] == '"' && rs[i+2] == '"':
			i += 3
			for i < len(rs) && !(rs[i] == '"' && i+2 < len(rs) && rs[i+1] == '"' && rs[i+2] == '"') {
				if rs[i] == '\\' {
					i++
				} else if rs[i] == '\n' {
					line++
				}
				i++
			}
			i += 3
		case c == '"' || c == '\'':
			i++
			for i < len(rs) && rs[i] != c && rs[i] != '\n' {
				if rs[i] == '\\' {
					i++
				}
				i++
			}
			i++
		case c == '_' || c == '$' || unicode.IsLetter(c):
			start := i
			for i < len(rs) && (rs[i] == '_' || rs[i] == '$' || unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i])) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(rs[start:i]), line: line})
		case unicode.IsDigit(c):
			start := i
			for i < len(rs) && (rs[i] == '_' || rs[i] == '.' || unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i])) {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: string(rs[start:i]), line: line})
		default:
			toks = append(toks, token{kind: tokPunct, text: string(c), line: line})
			i++
		}
	}
	return append(toks, token{kind: tokEOF, line: line})
}

var typeKeywords = map[string]bool{
	"class":     true,
	"interface": true,
	"enum":      true,
	"record":    true,
}

var knownAnnotations = func() map[string]bool {
	m := map[string]bool{}
	for _, a := range ClassAnnotations {
		m[a] = true
	}
	for _, r := range Rules {
		m[r.Owner] = true
		for _, a := range r.FieldAnnotations {
			m[a] = true
		}
	}
	return m
}()

type parser struct {
	toks      []token
	pos       int
	pkg       string
	imports   map[string]string // simple name -> qualified name
	wildcards []string          // packages imported with .*
	classes   []Class
}

// Scan reads one Java compilation unit and returns every type declared in
// it, nested types included, with annotation names resolved through the
// file's package and imports. Method bodies and initializers are skipped.
func Scan(r io.Reader) ([]Class, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	p := &parser{
		toks:    tokenize(string(src)),
		imports: map[string]string{},
	}
	p.parseMembers(-1, "")
	return p.classes, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// readQualified reads ident(.ident)* and stops before a dot that is not
// followed by an identifier.
func (p *parser) readQualified() string {
	if p.peek().kind != tokIdent {
		return ""
	}
	parts := []string{p.next().text}
	for p.peek().is(".") && p.peekAt(1).kind == tokIdent {
		p.next()
		parts = append(parts, p.next().text)
	}
	return strings.Join(parts, ".")
}

// skipBalanced consumes tokens up to and including the close matching an
// already consumed open.
func (p *parser) skipBalanced(open, close string) {
	depth := 1
	for depth > 0 {
		t := p.next()
		switch {
		case t.kind == tokEOF:
			return
		case t.is(open):
			depth++
		case t.is(close):
			depth--
		}
	}
}

// skipInitializer consumes a field initializer and returns the terminator
// that ended it: "," for another declarator, ";" or "" at EOF.
//
// A "<" only opens type arguments in a type position: after new, or after a
// dot as in Collections.<String>emptyList(). Elsewhere it is a comparison.
func (p *parser) skipInitializer() string {
	depth, angle := 0, 0
	inType := false
	var prev token
	for {
		t := p.next()
		switch {
		case t.kind == tokEOF:
			return ""
		case t.isIdent("new"):
			inType = true
		case t.is("(") || t.is("[") || t.is("{"):
			depth++
			inType = false
		case t.is(")") || t.is("]") || t.is("}"):
			depth--
			if depth < 0 {
				return ";"
			}
		case t.is("<"):
			if n := p.peek(); (inType || prev.is(".")) && (n.kind == tokIdent || n.is(">") || n.is("?")) {
				angle++
			}
		case t.is(">"):
			if angle > 0 {
				angle--
			}
		case depth == 0 && t.is(";"):
			return ";"
		case depth == 0 && angle == 0 && t.is(","):
			return ","
		}
		prev = t
	}
}

func (p *parser) resolve(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	if q, ok := p.imports[name]; ok {
		return q
	}
	for _, pkg := range p.wildcards {
		if q := pkg + "." + name; knownAnnotations[q] {
			return q
		}
	}
	if p.pkg != "" {
		return p.pkg + "." + name
	}
	return name
}

func (p *parser) parseImport() {
	if p.peek().isIdent("static") {
		p.next()
	}
	name := p.readQualified()
	if p.peek().is(".") && p.peekAt(1).is("*") {
		p.next()
		p.next()
		p.wildcards = append(p.wildcards, name)
	} else if i := strings.LastIndex(name, "."); i >= 0 {
		p.imports[name[i+1:]] = name
	}
	p.skipTo(";")
}

func (p *parser) skipTo(punct string) {
	for {
		t := p.next()
		if t.kind == tokEOF || t.is(punct) {
			return
		}
	}
}

// member accumulates the pieces of one member declaration.
type member struct {
	annotations []string
	private     bool
	static      bool
	idents      []token
	declared    int // declarators already emitted for this statement
	angle       int
	method      bool
}

var modifierIdents = map[string]bool{
	"public": true, "protected": true, "private": true, "static": true,
	"final": true, "transient": true, "volatile": true, "abstract": true,
	"synchronized": true, "native": true, "strictfp": true, "default": true,
	"sealed": true,
}

// parseMembers reads declarations until the closing brace of the type at
// owner, or until EOF when owner is -1.
func (p *parser) parseMembers(owner int, prefix string) {
	var m member
	for {
		t := p.next()
		switch {
		case t.kind == tokEOF:
			return
		case t.is("}"):
			if owner >= 0 {
				return
			}
			m = member{}
		case t.is("@"):
			if p.peek().isIdent("interface") {
				p.next()
				p.parseTypeDecl(prefix, m.annotations, t.line)
				m = member{}
				continue
			}
			name := p.readQualified()
			if p.peek().is("(") {
				p.next()
				p.skipBalanced("(", ")")
			}
			if name != "" {
				m.annotations = append(m.annotations, p.resolve(name))
			}
		case t.kind == tokIdent && typeKeywords[t.text] && len(m.idents) == 0 && !m.method:
			p.parseTypeDecl(prefix, m.annotations, t.line)
			m = member{}
		case owner < 0 && t.isIdent("package"):
			p.pkg = p.readQualified()
			p.skipTo(";")
			m = member{}
		case owner < 0 && t.isIdent("import"):
			p.parseImport()
			m = member{}
		case t.isIdent("non") && p.peek().is("-") && p.peekAt(1).isIdent("sealed"):
			p.next()
			p.next()
		case t.kind == tokIdent && modifierIdents[t.text]:
			switch t.text {
			case "private":
				m.private = true
			case "static":
				m.static = true
			}
		case t.is("<"):
			m.angle++
		case t.is(">"):
			if m.angle > 0 {
				m.angle--
			}
		case t.is("("):
			p.skipBalanced("(", ")")
			m.method = true
		case t.is("{"):
			p.skipBalanced("{", "}")
			m = member{}
		case t.is(";"):
			if owner >= 0 && !m.method {
				p.emitField(owner, &m)
			}
			m = member{}
		case t.is("="):
			if owner < 0 || m.method {
				continue
			}
			p.emitField(owner, &m)
			if p.skipInitializer() != "," {
				m = member{}
			}
		case t.is(",") && m.angle == 0:
			if owner >= 0 && !m.method {
				p.emitField(owner, &m)
			}
		case t.kind == tokIdent:
			m.idents = append(m.idents, t)
		}
	}
}

// emitField records the declarator whose name is the last identifier seen.
// The first declarator of a statement needs a type in front of its name.
func (p *parser) emitField(owner int, m *member) {
	need := 2
	if m.declared > 0 {
		need = 1
	}
	if len(m.idents) >= need {
		name := m.idents[len(m.idents)-1]
		p.classes[owner].Fields = append(p.classes[owner].Fields, Field{
			Name:        name.text,
			Annotations: append([]string(nil), m.annotations...),
			Private:     m.private,
			Static:      m.static,
			Line:        name.line,
		})
		m.declared++
	}
	m.idents = nil
}

// parseTypeDecl reads a type name, skips the header up to its body and
// parses the body.
func (p *parser) parseTypeDecl(prefix string, annotations []string, line int) {
	if p.peek().kind != tokIdent {
		return
	}
	name := p.next().text
	if prefix != "" {
		name = prefix + "." + name
	}

	for {
		t := p.next()
		if t.kind == tokEOF || t.is(";") {
			return
		}
		if t.is("(") {
			p.skipBalanced("(", ")")
			continue
		}
		if t.is("{") {
			break
		}
	}

	idx := len(p.classes)
	p.classes = append(p.classes, Class{
		Name:        name,
		Annotations: append([]string(nil), annotations...),
		Line:        line,
	})
	p.parseMembers(idx, name)
}
