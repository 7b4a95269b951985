// Package ntriples reads the line-based N-Triples serialization into a triple
// store. Each line carries one complete triple, so the reader never needs
// lookahead across lines and malformed lines are skipped individually.
package ntriples

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/c360studio/owlgraph/rdf"
	"github.com/c360studio/owlgraph/vocabulary"
)

// ParseError describes one unreadable line. Parsing continues past it.
type ParseError struct {
	Line    int
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Reader parses N-Triples documents.
type Reader struct {
	logger  *slog.Logger
	baseIRI string
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the structured logger used for parse traces.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithBaseIRI resolves relative IRI references against the given base.
// Strict N-Triples requires absolute IRIs; the base makes hand-written
// documents with relative references usable.
func WithBaseIRI(base string) Option {
	return func(r *Reader) {
		r.baseIRI = base
	}
}

// NewReader returns a reader with default settings.
func NewReader(opts ...Option) *Reader {
	r := &Reader{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read parses the input into a fresh store. Blank lines and comment lines are
// skipped; unparseable lines are collected as ParseErrors without aborting the
// document.
func (r *Reader) Read(src io.Reader) (*rdf.Store, []*ParseError, error) {
	store := rdf.NewStore()
	var parseErrs []*ParseError

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		triple, err := parseLine(line, r.baseIRI)
		if err != nil {
			perr := &ParseError{Line: lineNo, Text: line, Message: err.Error()}
			parseErrs = append(parseErrs, perr)
			r.logger.Debug("skipping malformed line", "line", lineNo, "error", err)
			continue
		}
		store.Assert(triple)
	}
	if err := scanner.Err(); err != nil {
		return nil, parseErrs, fmt.Errorf("reading input: %w", err)
	}

	r.logger.Debug("document read", "triples", store.Len(), "errors", len(parseErrs))
	return store, parseErrs, nil
}

// parseLine parses one "subject predicate object ." statement.
func parseLine(line, baseIRI string) (rdf.Triple, error) {
	p := &lineParser{input: line, base: baseIRI}

	subject, err := p.term()
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("subject: %w", err)
	}
	if _, ok := subject.(rdf.Literal); ok {
		return rdf.Triple{}, fmt.Errorf("subject: literal not allowed")
	}

	predTerm, err := p.term()
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("predicate: %w", err)
	}
	predicate, ok := predTerm.(rdf.IRI)
	if !ok {
		return rdf.Triple{}, fmt.Errorf("predicate: must be an IRI")
	}

	object, err := p.term()
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("object: %w", err)
	}

	if err := p.terminator(); err != nil {
		return rdf.Triple{}, err
	}

	return rdf.Triple{Subject: subject, Predicate: predicate, Object: object}, nil
}

// lineParser is a cursor over one statement.
type lineParser struct {
	input string
	base  string
	pos   int
}

func (p *lineParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// term reads the next IRI, blank node label, or literal.
func (p *lineParser) term() (rdf.Term, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of line")
	}

	switch p.input[p.pos] {
	case '<':
		return p.iriRef()
	case '_':
		return p.blankLabel()
	case '"':
		return p.literal()
	default:
		return nil, fmt.Errorf("unexpected character %q", p.input[p.pos])
	}
}

func (p *lineParser) iriRef() (rdf.Term, error) {
	end := strings.IndexByte(p.input[p.pos:], '>')
	if end < 0 {
		return nil, fmt.Errorf("unterminated IRI")
	}
	iri := p.input[p.pos+1 : p.pos+end]
	p.pos += end + 1
	if iri == "" {
		return nil, fmt.Errorf("empty IRI")
	}
	// A reference without a scheme is relative; resolve against the base
	if p.base != "" && !strings.Contains(iri, ":") {
		iri = p.base + iri
	}
	return rdf.IRI(iri), nil
}

func (p *lineParser) blankLabel() (rdf.Term, error) {
	if !strings.HasPrefix(p.input[p.pos:], "_:") {
		return nil, fmt.Errorf("malformed blank node label")
	}
	start := p.pos + 2
	end := start
	for end < len(p.input) && p.input[end] != ' ' && p.input[end] != '\t' {
		end++
	}
	if end == start {
		return nil, fmt.Errorf("empty blank node label")
	}
	label := p.input[start:end]
	p.pos = end
	return rdf.BlankNode(label), nil
}

// literal reads a quoted literal with optional language tag or datatype.
func (p *lineParser) literal() (rdf.Term, error) {
	// Scan to the closing quote, honoring backslash escapes.
	end := p.pos + 1
	for end < len(p.input) {
		if p.input[end] == '\\' {
			end += 2
			continue
		}
		if p.input[end] == '"' {
			break
		}
		end++
	}
	if end >= len(p.input) {
		return nil, fmt.Errorf("unterminated literal")
	}

	value, err := unescape(p.input[p.pos+1 : end])
	if err != nil {
		return nil, err
	}
	p.pos = end + 1

	lit := rdf.Literal{Value: value}

	if p.pos < len(p.input) && p.input[p.pos] == '@' {
		start := p.pos + 1
		tagEnd := start
		for tagEnd < len(p.input) && p.input[tagEnd] != ' ' && p.input[tagEnd] != '\t' {
			tagEnd++
		}
		if tagEnd == start {
			return nil, fmt.Errorf("empty language tag")
		}
		lit.Lang = p.input[start:tagEnd]
		lit.Datatype = rdf.IRI(vocabulary.RDFLangString)
		p.pos = tagEnd
		return lit, nil
	}

	if strings.HasPrefix(p.input[p.pos:], "^^") {
		p.pos += 2
		if p.pos >= len(p.input) || p.input[p.pos] != '<' {
			return nil, fmt.Errorf("datatype must be an IRI")
		}
		dt, err := p.iriRef()
		if err != nil {
			return nil, err
		}
		lit.Datatype = dt.(rdf.IRI)
		return lit, nil
	}

	return lit, nil
}

func (p *lineParser) terminator() error {
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != '.' {
		return fmt.Errorf("statement not terminated with '.'")
	}
	p.pos++
	p.skipSpace()
	if p.pos != len(p.input) {
		return fmt.Errorf("trailing content after terminator")
	}
	return nil
}

// unescape resolves the N-Triples string escapes.
func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("dangling escape")
		}
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'u', 'U':
			width := 4
			if s[i] == 'U' {
				width = 8
			}
			if i+width >= len(s) {
				return "", fmt.Errorf("truncated unicode escape")
			}
			code, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid unicode escape: %w", err)
			}
			b.WriteRune(rune(code))
			i += width
		default:
			return "", fmt.Errorf("unknown escape \\%c", s[i])
		}
	}
	return b.String(), nil
}
