package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestParseString_CachesByContent(t *testing.T) {
	source := "programa { PintarRojo /* cached */ }"

	first, err := ParseString(source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	second, err := ParseString(source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if first != second {
		t.Error("identical source did not return the cached program")
	}

	other, err := ParseString("programa { PintarVerde }")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if other == first {
		t.Error("different source returned the same program")
	}
}

func TestParseString_DoesNotCacheFailures(t *testing.T) {
	source := "programa { repetir }"

	for range 2 {
		if _, err := ParseString(source); err == nil {
			t.Fatal("expected parse error, got nil")
		}
	}
}

func TestParseReader(t *testing.T) {
	prog, err := ParseReader(strings.NewReader("programa { MoverAbajo }"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(prog.Main.Stmts) != 1 {
		t.Errorf("main has %d statements, want 1", len(prog.Main.Stmts))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadSource_WrapsReadErrors(t *testing.T) {
	_, err := ReadSource(failingReader{})
	if err == nil {
		t.Fatal("expected read error, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "failed to read input") ||
		!strings.Contains(msg, "disk on fire") {
		t.Errorf("error %q does not chain the read failure", msg)
	}
}
