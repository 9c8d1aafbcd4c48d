// Package cmd implements the qdraw subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/Reader10/Interprete-QDraw/lang"
)

// LoadSource reads program source from the file at path,
// or from stdin when path is "-".
func LoadSource(path string) (string, error) {
	if path == "-" {
		return lang.ReadSource(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return lang.ReadSource(file)
}

// report prints err annotated with a source snippet to stderr and
// returns err unchanged so the caller can propagate it.
func report(err error, source string) error {
	fmt.Fprintln(os.Stderr, lang.Annotate(err, source))
	return err
}
