package lang

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormat_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "commands",
			input: "programa { PintarRojo MoverDerecha Limpiar }",
		},
		{
			name:  "repeat",
			input: "programa { repetir 3 veces { MoverArriba } }",
		},
		{
			name:  "if with else",
			input: "programa { si (estaVacia?) { PintarVerde } sino { Limpiar } }",
		},
		{
			name:  "procedure",
			input: "programa { Linea() } procedimiento Linea() { MoverDerecha MoverDerecha }",
		},
		{
			name: "nested",
			input: `programa {
				repetir 2 veces {
					si (estaPintadaNegro?) { Limpiar }
					PintarNegro
				}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, tt.input)

			var buf strings.Builder
			if err := Format(prog, &buf); err != nil {
				t.Fatalf("format error: %v", err)
			}

			// Formatted output is itself a valid program with the same
			// shape as the original.
			again := parse(t, buf.String())

			var buf2 strings.Builder
			if err := Format(again, &buf2); err != nil {
				t.Fatalf("format error on second pass: %v", err)
			}

			if buf.String() != buf2.String() {
				t.Errorf("format is not a fixed point:\nfirst:\n%s\nsecond:\n%s",
					buf.String(), buf2.String())
			}
		})
	}
}

func TestFormat_Listing(t *testing.T) {
	prog := parse(t, "programa { repetir 2 veces { PintarRojo } } procedimiento Linea() { MoverDerecha }")

	var buf strings.Builder
	if err := Format(prog, &buf); err != nil {
		t.Fatalf("format error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"programa {",
		"  repetir 2 veces {",
		"    PintarRojo",
		"procedimiento Linea() {",
		"  MoverDerecha",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing does not contain %q:\n%s", want, got)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	prog := parse(t, "programa { si (estaVacia?) { PintarVerde } sino { Limpiar } }")

	var buf strings.Builder
	if err := FormatJSON(prog, &buf); err != nil {
		t.Fatalf("format error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	main, ok := decoded["programa"].([]any)
	if !ok {
		t.Fatalf("decoded %v has no programa list", decoded)
	}

	cond, ok := main[0].(map[string]any)
	if !ok {
		t.Fatalf("first statement %v is not an object", main[0])
	}

	if cond["si"] != "estaVacia?" {
		t.Errorf("condition = %v, want estaVacia?", cond["si"])
	}

	if _, ok := cond["sino"]; !ok {
		t.Error("else branch missing from encoding")
	}
}

func TestFormatYAML(t *testing.T) {
	prog := parse(t, "programa { repetir 4 veces { MoverAbajo } }")

	var buf strings.Builder
	if err := FormatYAML(prog, &buf); err != nil {
		t.Fatalf("format error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"programa:", "repetir: 4", "MoverAbajo"} {
		if !strings.Contains(got, want) {
			t.Errorf("yaml output does not contain %q:\n%s", want, got)
		}
	}
}
