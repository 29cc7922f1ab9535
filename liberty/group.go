package liberty

import "fmt"

// Group is a generic Liberty group: its type keyword ("library",
// "cell", "pin", "timing", "cell_rise", ...), its parenthesized
// arguments (most groups take exactly one, the group's name), its
// simple/complex attributes keyed by name, and its nested groups in
// source order.
type Group struct {
	Type     string
	Args     []string
	Attrs    map[string][]string
	Children []*Group
}

// Attr returns a group's sole attribute value, or ok=false when the
// attribute is absent.
func (g *Group) Attr(name string) (string, bool) {
	v, ok := g.Attrs[name]
	if !ok || len(v) == 0 {
		return "", false
	}

	return v[0], true
}

// ChildrenOf returns every direct child group of the given type.
func (g *Group) ChildrenOf(typ string) []*Group {
	var out []*Group
	for _, c := range g.Children {
		if c.Type == typ {
			out = append(out, c)
		}
	}

	return out
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token  { return p.toks[p.pos] }
func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind) (token, error) {
	t := p.advance()
	if t.kind != k {
		return t, fmt.Errorf("liberty: unexpected token at position %d: %w", p.pos, ErrSyntax)
	}

	return t, nil
}

// Parse tokenizes and parses src into a synthetic root Group (Type
// "file") whose Children are the top-level groups the source
// declares — normally a single "library(...)" group.
func Parse(src string) (*Group, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	root := &Group{Type: "file", Attrs: map[string][]string{}}

	for p.peek().kind != tokEOF {
		if err := p.parseStatement(root); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// parseStatement consumes one "name : value ;" simple attribute,
// "name ( args ) ;" complex attribute, or "name ( args ) { ... }"
// nested group, attaching the result to parent.
func (p *parser) parseStatement(parent *Group) error {
	nameTok := p.advance()
	if nameTok.kind != tokIdent {
		return fmt.Errorf("liberty: expected identifier, got token kind %d: %w", nameTok.kind, ErrSyntax)
	}
	name := nameTok.text

	switch p.peek().kind {
	case tokColon:
		p.advance()
		val, err := p.parseScalarValue()
		if err != nil {
			return err
		}
		if _, err := p.expect(tokSemi); err != nil {
			return err
		}
		parent.Attrs[name] = append(parent.Attrs[name], val)

		return nil

	case tokLParen:
		p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return err
		}

		if p.peek().kind == tokLBrace {
			p.advance()
			group := &Group{Type: name, Args: args, Attrs: map[string][]string{}}
			for p.peek().kind != tokRBrace {
				if p.peek().kind == tokEOF {
					return fmt.Errorf("liberty: unterminated group %q: %w", name, ErrSyntax)
				}
				if err := p.parseStatement(group); err != nil {
					return err
				}
			}
			p.advance() // consume '}'
			parent.Children = append(parent.Children, group)

			return nil
		}

		// Complex attribute: "name ( args ) ;".
		if p.peek().kind == tokSemi {
			p.advance()
		}
		parent.Attrs[name] = args

		return nil

	default:
		return fmt.Errorf("liberty: expected ':' or '(' after %q: %w", name, ErrSyntax)
	}
}

func (p *parser) parseScalarValue() (string, error) {
	t := p.advance()
	switch t.kind {
	case tokIdent, tokString:
		return t.text, nil
	default:
		return "", fmt.Errorf("liberty: expected scalar value: %w", ErrSyntax)
	}
}

func (p *parser) parseArgList() ([]string, error) {
	var args []string
	if p.peek().kind == tokRParen {
		return args, nil
	}

	for {
		t := p.advance()
		switch t.kind {
		case tokIdent, tokString:
			args = append(args, t.text)
		default:
			return nil, fmt.Errorf("liberty: expected argument: %w", ErrSyntax)
		}

		if p.peek().kind != tokComma {
			break
		}
		p.advance()
	}

	return args, nil
}
