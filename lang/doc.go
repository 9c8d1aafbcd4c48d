// Package lang implements the language front end for QDraw, a teaching DSL
// that moves a head over a bounded 2-D grid and paints cells.
//
// The pipeline is: source text is tokenized by [Tokenize], the tokens are
// consumed by [Parse] into a [Program] AST, and the AST is walked by the
// exec package against a board.
//
// # Grammar
//
// Informal EBNF:
//
//	Source    → (Programa | Procedimiento)* EOF    (exactly one Programa)
//	Programa  → 'programa' '{' Stmt* '}'
//	Procedimiento → 'procedimiento' IDENT '(' ')' '{' Stmt* '}'
//	Stmt      → Command | Repetir | Si | Call
//	Command   → 'MoverArriba' | 'MoverAbajo' | 'MoverDerecha'
//	          | 'MoverIzquierda' | 'PintarNegro' | 'PintarRojo'
//	          | 'PintarVerde' | 'Limpiar'
//	Repetir   → 'repetir' NUMBER 'veces' '{' Stmt* '}'
//	Si        → 'si' '(' Sensor ')' '{' Stmt* '}' ['sino' '{' Stmt* '}']
//	Call      → IDENT '(' ')'
//	Sensor    → 'estaVacia?' | 'estaPintadaNegro?' | 'estaPintadaRojo?'
//	          | 'estaPintadaVerde?'
//
// Newlines carry no syntactic meaning. Block comments nest.
//
// # Diagnostics
//
// Every error is line-addressed. Lexical faults are *[LexError]; grammar
// faults are *[SyntaxError] carrying expected-versus-found text and a
// corrective example. [Annotate] renders an error with a source snippet and
// a caret pointing at the offending column.
package lang
