package lang

// Parse consumes a token sequence and produces the program AST. It fails
// with *SyntaxError on the first grammar fault.
//
// Procedure names are not validated for uniqueness here; that is deferred to
// executor construction, which reports both definition lines.
func Parse(tokens []Token) (*Program, error) {
	p := &parser{toks: tokens}

	return p.parseProgram()
}

// parser holds the recursive-descent state: the token sequence is owned by
// the parser for the duration of parsing.
type parser struct {
	toks []Token
	pos  int
}

// parseProgram is the top-level production: any interleaving of one
// 'programa' block and zero or more 'procedimiento' declarations.
func (p *parser) parseProgram() (*Program, error) {
	prog := new(Program)

	for {
		tok := p.peek()

		switch tok.Kind {
		case KindEOF:
			if prog.Main == nil {
				return nil, &SyntaxError{
					Line:     tok.Line,
					Col:      tok.Col,
					Expected: "a 'programa' block somewhere in the source",
					Found:    tok.Text(),
					Hint:     "programa { MoverDerecha }",
				}
			}

			return prog, nil

		case KindPrograma:
			if prog.Main != nil {
				return nil, &SyntaxError{
					Line:     tok.Line,
					Col:      tok.Col,
					Expected: "at most one 'programa' block per program",
					Found:    tok.Text(),
					Hint:     "move these statements into the existing programa block",
				}
			}

			p.advance()

			block, err := p.parseBraceBlock("programa { PintarRojo }")
			if err != nil {
				return nil, err
			}

			prog.Main = block

		case KindProcedimiento:
			proc, err := p.parseProcedure()
			if err != nil {
				return nil, err
			}

			prog.Procs = append(prog.Procs, proc)

		default:
			return nil, &SyntaxError{
				Line:     tok.Line,
				Col:      tok.Col,
				Expected: "'programa' or 'procedimiento' at the top level",
				Found:    tok.Text(),
				Hint:     "procedimiento Linea() { MoverDerecha }",
			}
		}
	}
}

// parseProcedure parses: 'procedimiento' identifier '(' ')' '{' statements
// '}'. Procedures are parameterless by grammar.
func (p *parser) parseProcedure() (*Procedure, error) {
	kw := p.peek()

	p.advance()

	name, err := p.expect(
		KindIdent,
		"a procedure name after 'procedimiento'",
		"procedimiento Linea() { ... }",
	)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(
		KindLParen,
		"'(' after the procedure name",
		"procedimiento "+name.Lit+"() { ... }",
	); err != nil {
		return nil, err
	}

	if _, err := p.expect(
		KindRParen,
		"')' to close the empty parameter list",
		"procedimiento "+name.Lit+"() { ... }",
	); err != nil {
		return nil, err
	}

	body, err := p.parseBraceBlock("procedimiento " + name.Lit + "() { PintarRojo }")
	if err != nil {
		return nil, err
	}

	return &Procedure{Name: name.Lit, Line: kw.Line, Body: body}, nil
}

// parseBraceBlock parses '{' statements '}'. A missing closing brace before
// end of input is reported at the block's opening line, not at end of input.
func (p *parser) parseBraceBlock(hint string) (*Block, error) {
	open, err := p.expect(KindLBrace, "'{' to open a block", hint)
	if err != nil {
		return nil, err
	}

	block, err := p.parseStmts()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != KindRBrace {
		// Only '}' or end of input stop a statement sequence, so this is
		// always the unclosed-block case.
		return nil, &SyntaxError{
			Line:     open.Line,
			Col:      open.Col,
			Expected: "'}' before end of input (block not closed)",
			Found:    p.peek().Text(),
			Hint:     hint,
		}
	}

	p.advance()

	return block, nil
}

// parseStmts parses a statement sequence, stopping at '}' or end of input.
// The caller decides whether stopping at end of input is an error.
func (p *parser) parseStmts() (*Block, error) {
	block := new(Block)

	for {
		tok := p.peek()
		if tok.Kind == KindRBrace || tok.Kind == KindEOF {
			return block, nil
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		block.Stmts = append(block.Stmts, stmt)
	}
}

func (p *parser) parseStmt() (Stmt, error) {
	tok := p.peek()

	switch {
	case tok.Kind.IsCommand():
		p.advance()

		return &CommandStmt{Cmd: commandKinds[tok.Kind], Line: tok.Line}, nil

	case tok.Kind == KindRepetir:
		return p.parseRepeat()

	case tok.Kind == KindSi:
		return p.parseIf()

	case tok.Kind == KindIdent:
		return p.parseCall()

	default:
		return nil, &SyntaxError{
			Line:     tok.Line,
			Col:      tok.Col,
			Expected: "a command, 'repetir', 'si', or a procedure call",
			Found:    tok.Text(),
			Hint:     "PintarRojo",
		}
	}
}

// parseRepeat parses: 'repetir' NUMBER 'veces' '{' statements '}'.
func (p *parser) parseRepeat() (Stmt, error) {
	kw := p.peek()

	p.advance()

	count, err := p.expect(
		KindNumber,
		"the number of repetitions after 'repetir'",
		"repetir 5 veces { MoverDerecha }",
	)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(
		KindVeces,
		"'veces' after the repetition count",
		"repetir "+count.Lit+" veces { MoverDerecha }",
	); err != nil {
		return nil, err
	}

	body, err := p.parseBraceBlock("repetir " + count.Lit + " veces { MoverDerecha }")
	if err != nil {
		return nil, err
	}

	return &RepeatStmt{Count: count.Int, Line: kw.Line, Body: body}, nil
}

// parseIf parses: 'si' '(' sensor ')' '{' statements '}'
// ['sino' '{' statements '}'].
func (p *parser) parseIf() (Stmt, error) {
	kw := p.peek()

	p.advance()

	if _, err := p.expect(
		KindLParen,
		"'(' after 'si'",
		"si (estaVacia?) { PintarVerde }",
	); err != nil {
		return nil, err
	}

	cond := p.peek()
	if !cond.Kind.IsSensor() {
		return nil, &SyntaxError{
			Line:     cond.Line,
			Col:      cond.Col,
			Expected: "a sensor query as the condition",
			Found:    cond.Text(),
			Hint:     "si (estaPintadaRojo?) { Limpiar }",
		}
	}

	p.advance()

	if _, err := p.expect(
		KindRParen,
		"')' after the sensor query",
		"si ("+cond.Lit+") { PintarVerde }",
	); err != nil {
		return nil, err
	}

	then, err := p.parseBraceBlock("si (" + cond.Lit + ") { PintarVerde }")
	if err != nil {
		return nil, err
	}

	stmt := &IfStmt{Cond: sensorKinds[cond.Kind], Line: kw.Line, Then: then}

	if p.peek().Kind == KindSino {
		p.advance()

		stmt.Else, err = p.parseBraceBlock("sino { Limpiar }")
		if err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

// parseCall parses: identifier '(' ')'. Calls are zero-argument by grammar;
// there is no parameter list.
func (p *parser) parseCall() (Stmt, error) {
	name := p.peek()

	p.advance()

	if _, err := p.expect(
		KindLParen,
		"'(' after the procedure name '"+name.Lit+"'",
		name.Lit+"()",
	); err != nil {
		return nil, err
	}

	if _, err := p.expect(
		KindRParen,
		"')' to close the call, procedure calls take no arguments",
		name.Lit+"()",
	); err != nil {
		return nil, err
	}

	return &CallStmt{Name: name.Lit, Line: name.Line}, nil
}

// expect is the single diagnostic primitive shared by every production: it
// consumes a token of the given kind or fails with the expected construct in
// natural language, the literal text actually found, and a corrective
// example.
func (p *parser) expect(kind Kind, expected, hint string) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			Line:     tok.Line,
			Col:      tok.Col,
			Expected: expected,
			Found:    tok.Text(),
			Hint:     hint,
		}
	}

	p.advance()

	return tok, nil
}

func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		// The lexer always terminates the stream with EOF; guard anyway.
		return Token{Kind: KindEOF}
	}

	return p.toks[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.toks) {
		p.pos++
	}
}
