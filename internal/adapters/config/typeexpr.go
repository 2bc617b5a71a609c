package config

import (
	"strings"
	"unicode"

	"go.trai.ch/zerr"

	"go.trai.ch/weft/internal/core/domain"
)

// typeParser parses manifest type expressions such as "Widget",
// "Provider<Lazy<Widget>>" and "() -> Widget". Lowercase-initial names parse
// as primitives; names listed as generated parse as unresolved references.
type typeParser struct {
	input     string
	pos       int
	generated map[string]bool
}

func newTypeParser(generated []string) *typeParser {
	gen := make(map[string]bool, len(generated))
	for _, g := range generated {
		gen[g] = true
	}
	return &typeParser{generated: gen}
}

// Parse parses one complete type expression.
func (p *typeParser) Parse(expr string) (domain.Type, error) {
	p.input = expr
	p.pos = 0

	t, err := p.parseType()
	if err != nil {
		return domain.Type{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return domain.Type{}, p.errorf("trailing input")
	}
	return t, nil
}

func (p *typeParser) parseType() (domain.Type, error) {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], "()") {
		return p.parseCallable()
	}
	return p.parseNamed()
}

// parseCallable parses "() -> T".
func (p *typeParser) parseCallable() (domain.Type, error) {
	p.pos += len("()")
	p.skipSpace()
	if !strings.HasPrefix(p.input[p.pos:], "->") {
		return domain.Type{}, p.errorf("expected '->' after '()'")
	}
	p.pos += len("->")

	ret, err := p.parseType()
	if err != nil {
		return domain.Type{}, err
	}
	return domain.Callable(ret), nil
}

// parseNamed parses a possibly generic name: Name or Name<T, U>.
func (p *typeParser) parseNamed() (domain.Type, error) {
	name := p.parseName()
	if name == "" {
		return domain.Type{}, p.errorf("expected a type name")
	}

	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != '<' {
		return p.named(name, nil), nil
	}
	p.pos++ // consume '<'

	var args []domain.Type
	for {
		arg, err := p.parseType()
		if err != nil {
			return domain.Type{}, err
		}
		args = append(args, arg)

		p.skipSpace()
		if p.pos >= len(p.input) {
			return domain.Type{}, p.errorf("unterminated type arguments")
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case '>':
			p.pos++
			return p.named(name, args), nil
		default:
			return domain.Type{}, p.errorf("expected ',' or '>'")
		}
	}
}

func (p *typeParser) named(name string, args []domain.Type) domain.Type {
	if p.generated[name] {
		return domain.Unresolved(name)
	}
	if len(args) == 0 && unicode.IsLower(rune(name[0])) {
		return domain.Primitive(name)
	}
	return domain.Declared(name, args...)
}

func (p *typeParser) parseName() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != '.' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) errorf(msg string) error {
	return zerr.With(zerr.With(zerr.With(domain.ErrTypeParseFailed,
		"reason", msg),
		"expression", p.input),
		"position", p.pos)
}
