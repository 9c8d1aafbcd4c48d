package lang

// Kind identifies the lexical class of a token.
type Kind int

const (
	// KindEOF marks the end of the token stream. The lexer always emits
	// exactly one as its final token.
	KindEOF Kind = iota

	// KindNumber is a non-negative integer literal.
	KindNumber

	// KindIdent is an identifier that matched no keyword table entry.
	// Identifiers are only legal as procedure-call names.
	KindIdent

	// Keywords.
	KindPrograma
	KindProcedimiento
	KindSi
	KindSino
	KindRepetir
	KindVeces

	// Movement and paint commands.
	KindMoverArriba
	KindMoverAbajo
	KindMoverDerecha
	KindMoverIzquierda
	KindPintarNegro
	KindPintarRojo
	KindPintarVerde
	KindLimpiar

	// Sensors (legal only inside an 'si' condition).
	KindEstaVacia
	KindEstaPintadaNegro
	KindEstaPintadaRojo
	KindEstaPintadaVerde

	// Delimiters.
	KindLBrace
	KindRBrace
	KindLParen
	KindRParen
)

// Token is a single lexical unit with its source position.
// Tokens are immutable once produced.
type Token struct {
	Kind Kind
	Lit  string // literal text as it appeared in the source
	Int  int    // parsed value, set only for KindNumber
	Line int
	Col  int
}

// keywords maps surface syntax to token kinds. It is process-wide immutable
// configuration data, initialized once and never mutated.
var keywords = map[string]Kind{
	"programa":      KindPrograma,
	"procedimiento": KindProcedimiento,
	"si":            KindSi,
	"sino":          KindSino,
	"repetir":       KindRepetir,
	"veces":         KindVeces,

	"MoverArriba":    KindMoverArriba,
	"MoverAbajo":     KindMoverAbajo,
	"MoverDerecha":   KindMoverDerecha,
	"MoverIzquierda": KindMoverIzquierda,
	"PintarNegro":    KindPintarNegro,
	"PintarRojo":     KindPintarRojo,
	"PintarVerde":    KindPintarVerde,
	"Limpiar":        KindLimpiar,

	"estaVacia?":        KindEstaVacia,
	"estaPintadaNegro?": KindEstaPintadaNegro,
	"estaPintadaRojo?":  KindEstaPintadaRojo,
	"estaPintadaVerde?": KindEstaPintadaVerde,
}

// String returns the surface text of keyword and delimiter kinds, and a
// descriptive name for the value-bearing kinds. It is used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindNumber:
		return "number"
	case KindIdent:
		return "identifier"
	case KindLBrace:
		return "{"
	case KindRBrace:
		return "}"
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	default:
		for lit, kind := range keywords {
			if kind == k {
				return lit
			}
		}

		return "unknown"
	}
}

// IsCommand reports whether k is one of the eight movement/paint commands.
func (k Kind) IsCommand() bool {
	return k >= KindMoverArriba && k <= KindLimpiar
}

// IsSensor reports whether k is one of the four sensor queries.
func (k Kind) IsSensor() bool {
	return k >= KindEstaVacia && k <= KindEstaPintadaVerde
}

// Text returns the token's literal text, or the kind's surface text for
// tokens whose literal is empty (e.g. EOF).
func (t Token) Text() string {
	if t.Lit == "" {
		return t.Kind.String()
	}

	return t.Lit
}
