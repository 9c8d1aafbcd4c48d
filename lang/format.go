package lang

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the program in native QDraw syntax to the writer.
func Format(prog *Program, w io.Writer) error {
	if prog.Main != nil {
		if _, err := fmt.Fprintln(w, "programa {"); err != nil {
			return err
		}

		if err := formatBlock(prog.Main, w, 1); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}

	for _, proc := range prog.Procs {
		if _, err := fmt.Fprintf(w, "\nprocedimiento %s() {\n", proc.Name); err != nil {
			return err
		}

		if err := formatBlock(proc.Body, w, 1); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}

	return nil
}

func formatBlock(block *Block, w io.Writer, indent int) error {
	prefix := strings.Repeat("  ", indent)

	for _, stmt := range block.Stmts {
		switch s := stmt.(type) {
		case *CommandStmt:
			if _, err := fmt.Fprintln(w, prefix+s.Cmd.String()); err != nil {
				return err
			}

		case *CallStmt:
			if _, err := fmt.Fprintln(w, prefix+s.Name+"()"); err != nil {
				return err
			}

		case *RepeatStmt:
			header := prefix + "repetir " + strconv.Itoa(s.Count) + " veces {"
			if _, err := fmt.Fprintln(w, header); err != nil {
				return err
			}

			if err := formatBlock(s.Body, w, indent+1); err != nil {
				return err
			}

			if _, err := fmt.Fprintln(w, prefix+"}"); err != nil {
				return err
			}

		case *IfStmt:
			header := prefix + "si (" + s.Cond.String() + ") {"
			if _, err := fmt.Fprintln(w, header); err != nil {
				return err
			}

			if err := formatBlock(s.Then, w, indent+1); err != nil {
				return err
			}

			if s.Else != nil {
				if _, err := fmt.Fprintln(w, prefix+"} sino {"); err != nil {
					return err
				}

				if err := formatBlock(s.Else, w, indent+1); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintln(w, prefix+"}"); err != nil {
				return err
			}
		}
	}

	return nil
}

// FormatJSON writes the program AST as JSON to the writer.
func FormatJSON(prog *Program, w io.Writer) error {
	data, err := json.MarshalIndent(ToMap(prog), "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the program AST as YAML to the writer.
func FormatYAML(prog *Program, w io.Writer) error {
	data, err := yaml.Marshal(ToMap(prog))
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// ToMap converts the program to a native Go map structure suitable for
// structured marshaling.
func ToMap(prog *Program) map[string]any {
	result := make(map[string]any)

	if prog.Main != nil {
		result["programa"] = blockToList(prog.Main)
	}

	if len(prog.Procs) > 0 {
		procs := make(map[string]any, len(prog.Procs))
		for _, proc := range prog.Procs {
			procs[proc.Name] = blockToList(proc.Body)
		}

		result["procedimientos"] = procs
	}

	return result
}

func blockToList(block *Block) []any {
	list := make([]any, 0, len(block.Stmts))

	for _, stmt := range block.Stmts {
		switch s := stmt.(type) {
		case *CommandStmt:
			list = append(list, s.Cmd.String())

		case *CallStmt:
			list = append(list, s.Name+"()")

		case *RepeatStmt:
			list = append(list, map[string]any{
				"repetir": s.Count,
				"cuerpo":  blockToList(s.Body),
			})

		case *IfStmt:
			entry := map[string]any{
				"si":       s.Cond.String(),
				"entonces": blockToList(s.Then),
			}
			if s.Else != nil {
				entry["sino"] = blockToList(s.Else)
			}

			list = append(list, entry)
		}
	}

	return list
}
