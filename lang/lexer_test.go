package lang

import (
	"errors"
	"strings"
	"testing"
)

// kinds strips everything but the token kinds, for comparing sequences.
func kinds(tokens []Token) []Kind {
	ks := make([]Kind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}
	return ks
}

func kindsEqual(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "empty source",
			input: "",
			want:  []Kind{KindEOF},
		},
		{
			name:  "minimal program",
			input: "programa { }",
			want:  []Kind{KindPrograma, KindLBrace, KindRBrace, KindEOF},
		},
		{
			name:  "commands",
			input: "MoverArriba MoverAbajo MoverDerecha MoverIzquierda",
			want: []Kind{
				KindMoverArriba, KindMoverAbajo,
				KindMoverDerecha, KindMoverIzquierda,
				KindEOF,
			},
		},
		{
			name:  "paint commands",
			input: "PintarNegro PintarRojo PintarVerde Limpiar",
			want: []Kind{
				KindPintarNegro, KindPintarRojo,
				KindPintarVerde, KindLimpiar,
				KindEOF,
			},
		},
		{
			name:  "sensors keep the trailing question mark",
			input: "estaVacia? estaPintadaNegro? estaPintadaRojo? estaPintadaVerde?",
			want: []Kind{
				KindEstaVacia, KindEstaPintadaNegro,
				KindEstaPintadaRojo, KindEstaPintadaVerde,
				KindEOF,
			},
		},
		{
			name:  "repeat header",
			input: "repetir 5 veces { }",
			want: []Kind{
				KindRepetir, KindNumber, KindVeces,
				KindLBrace, KindRBrace, KindEOF,
			},
		},
		{
			name:  "call syntax",
			input: "Linea()",
			want:  []Kind{KindIdent, KindLParen, KindRParen, KindEOF},
		},
		{
			name:  "keywords are case sensitive",
			input: "Programa moverDerecha",
			want:  []Kind{KindIdent, KindIdent, KindEOF},
		},
		{
			name:  "newlines carry no syntactic meaning",
			input: "programa\n{\nPintarRojo\n}\n",
			want: []Kind{
				KindPrograma, KindLBrace,
				KindPintarRojo, KindRBrace, KindEOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}

			if got := kinds(tokens); !kindsEqual(got, tt.want) {
				t.Errorf("got kinds %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenize_Comments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "simple comment",
			input: "programa /* paint stuff */ { }",
			want:  []Kind{KindPrograma, KindLBrace, KindRBrace, KindEOF},
		},
		{
			name:  "nested comment",
			input: "programa /* outer /* inner */ still outer */ { }",
			want:  []Kind{KindPrograma, KindLBrace, KindRBrace, KindEOF},
		},
		{
			name:  "comment spanning lines",
			input: "programa /* line one\nline two\n*/ { PintarRojo }",
			want: []Kind{
				KindPrograma, KindLBrace,
				KindPintarRojo, KindRBrace, KindEOF,
			},
		},
		{
			name:  "adjacent comments",
			input: "/*a*//*b*/ MoverDerecha",
			want:  []Kind{KindMoverDerecha, KindEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}

			if got := kinds(tokens); !kindsEqual(got, tt.want) {
				t.Errorf("got kinds %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenize_UnterminatedComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{
			name:     "never closed",
			input:    "programa { } /* dangling",
			wantLine: 1,
		},
		{
			name:     "nested level left open",
			input:    "/* outer /* inner */ still open",
			wantLine: 1,
		},
		{
			name:     "reported at the opening line",
			input:    "programa {\n}\n/* starts here\nand never ends",
			wantLine: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if err == nil {
				t.Fatal("expected lex error, got nil")
			}

			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexError, got %T", err)
			}

			if lexErr.Line != tt.wantLine {
				t.Errorf("error at line %d, want line %d", lexErr.Line, tt.wantLine)
			}

			if !strings.Contains(lexErr.Msg, "unterminated comment") {
				t.Errorf("message %q does not mention unterminated comment", lexErr.Msg)
			}
		})
	}
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "zero", input: "0", want: 0},
		{name: "plain", input: "42", want: 42},
		{name: "at the cap", input: "1000000", want: 1_000_000},
		{name: "above the cap", input: "1000001", wantErr: true},
		{name: "absurdly large", input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected lex error, got nil")
				}

				var lexErr *LexError
				if !errors.As(err, &lexErr) {
					t.Fatalf("expected *LexError, got %T", err)
				}

				if !strings.Contains(lexErr.Msg, "number too large") {
					t.Errorf("message %q does not mention the cap", lexErr.Msg)
				}

				return
			}

			if err != nil {
				t.Fatalf("lex error: %v", err)
			}

			if tokens[0].Kind != KindNumber || tokens[0].Int != tt.want {
				t.Errorf("got %v/%d, want number %d",
					tokens[0].Kind, tokens[0].Int, tt.want)
			}
		})
	}
}

func TestTokenize_IllegalCharacter(t *testing.T) {
	_, err := Tokenize("programa { Pintar@Rojo }")
	if err == nil {
		t.Fatal("expected lex error, got nil")
	}

	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %T", err)
	}

	if !strings.Contains(lexErr.Msg, "illegal character") {
		t.Errorf("message %q does not mention illegal character", lexErr.Msg)
	}
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := Tokenize("programa {\n  PintarRojo\n}")
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	want := []struct {
		line, col int
	}{
		{1, 1},  // programa
		{1, 10}, // {
		{2, 3},  // PintarRojo
		{3, 1},  // }
		{3, 2},  // EOF
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}

	for i, w := range want {
		if tokens[i].Line != w.line || tokens[i].Col != w.col {
			t.Errorf("token %d (%s) at %d:%d, want %d:%d",
				i, tokens[i].Text(), tokens[i].Line, tokens[i].Col, w.line, w.col)
		}
	}
}
